package analysis

import (
	"strings"
)

// Score bands for suggestions. Lower bounds are inclusive.
const (
	moderateMatchThreshold = 30
	strongMatchThreshold   = 60

	// maxSkillsInSuggestion caps how many skills a suggestion lists.
	maxSkillsInSuggestion = 3
)

// Fixed suggestion texts.
const (
	SuggestionTailor    = "Consider tailoring your resume more closely to this job description"
	SuggestionKeywords  = "Add more relevant keywords from the job posting"
	SuggestionModerate  = "Good match! Consider highlighting more relevant experiences"
	SuggestionStrong    = "Excellent match! Your resume aligns well with this position"
	missingSkillsPrefix = "Consider adding these skills to your resume: "
	matchedSkillsPrefix = "Great! You have these relevant skills: "
)

// GenerateSuggestions builds the ordered advice list: the score band
// message(s), then the first missing skills, then the first matched skills.
// The result has at most 4 entries and at least 2 unless the score is 30 or
// more and neither skill list has entries.
func GenerateSuggestions(matched, missing []string, percentage int) []string {
	suggestions := make([]string, 0, 4)

	switch {
	case percentage < moderateMatchThreshold:
		suggestions = append(suggestions, SuggestionTailor, SuggestionKeywords)
	case percentage < strongMatchThreshold:
		suggestions = append(suggestions, SuggestionModerate)
	default:
		suggestions = append(suggestions, SuggestionStrong)
	}

	if len(missing) > 0 {
		suggestions = append(suggestions, missingSkillsPrefix+joinFirst(missing, maxSkillsInSuggestion))
	}
	if len(matched) > 0 {
		suggestions = append(suggestions, matchedSkillsPrefix+joinFirst(matched, maxSkillsInSuggestion))
	}

	return suggestions
}

// IsBandSuggestion reports whether s is one of the score band messages that
// lead every suggestion list.
func IsBandSuggestion(s string) bool {
	switch s {
	case SuggestionTailor, SuggestionModerate, SuggestionStrong:
		return true
	}
	return false
}

func joinFirst(items []string, n int) string {
	return strings.Join(items[:min(n, len(items))], ", ")
}
