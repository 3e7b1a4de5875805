// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// AnalysisResult is the outcome of comparing one résumé with one job
// description. A fresh value is produced per analysis and owned by the caller.
type AnalysisResult struct {
	MatchPercentage int            `json:"matchPercentage"` // 0-100
	MatchedSkills   []string       `json:"matchedSkills"`   // In both documents, résumé order
	MissingSkills   []string       `json:"missingSkills"`   // In the job description only, job order
	TopKeywords     []KeywordScore `json:"topKeywords"`     // At most 10, score descending
	Suggestions     []string       `json:"suggestions"`     // At most 4 entries, score band first
}

// KeywordScore is a job-description term with its relative frequency
// rounded to three decimals.
type KeywordScore struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// StrongMatchThreshold is the lowest percentage in the strong band.
const StrongMatchThreshold = 70

// Match bands used when presenting a percentage.
const (
	BandStrong   = "strong"
	BandModerate = "moderate"
	BandWeak     = "weak"
)

// MatchBand classifies a match percentage for display.
func MatchBand(percentage int) string {
	switch {
	case percentage >= StrongMatchThreshold:
		return BandStrong
	case percentage >= 40:
		return BandModerate
	default:
		return BandWeak
	}
}
