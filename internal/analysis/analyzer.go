// Package analysis scores a résumé against a job description.
//
// Analyze is pure: it performs no I/O, keeps no state between calls and is
// safe to call from many goroutines at once.
package analysis

import (
	"math"

	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Analyzer holds the read-only configuration of an analysis.
type Analyzer struct {
	extractor   *skills.Extractor
	topKeywords int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithExtractor replaces the built-in skill vocabulary.
func WithExtractor(e *skills.Extractor) Option {
	return func(a *Analyzer) {
		if e != nil {
			a.extractor = e
		}
	}
}

// WithTopKeywords sets how many job keywords are reported. Non-positive
// values keep the default.
func WithTopKeywords(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.topKeywords = n
		}
	}
}

// New returns an Analyzer using the built-in vocabulary and reporting the
// top ten keywords unless options say otherwise.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		extractor:   skills.Default(),
		topKeywords: ranking.DefaultTopKeywords,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var defaultAnalyzer = New()

// Analyze compares resumeText with jobDescriptionText using the default
// Analyzer.
func Analyze(resumeText, jobDescriptionText string) *types.AnalysisResult {
	return defaultAnalyzer.Analyze(resumeText, jobDescriptionText)
}

// Analyze compares resumeText with jobDescriptionText. It is defined for all
// inputs, including empty strings, and is deterministic.
func (a *Analyzer) Analyze(resumeText, jobDescriptionText string) *types.AnalysisResult {
	resumeSkills := a.extractor.Extract(resumeText)
	jobSkills := a.extractor.Extract(jobDescriptionText)

	matched := resumeSkills.Intersect(jobSkills)
	missing := jobSkills.Difference(resumeSkills)

	resumeVector := ranking.Vectorize(parsing.Tokens(resumeText))
	jobVector := ranking.Vectorize(parsing.Tokens(jobDescriptionText))

	percentage := MatchPercentage(ranking.CosineSimilarity(resumeVector, jobVector))

	return &types.AnalysisResult{
		MatchPercentage: percentage,
		MatchedSkills:   matched,
		MissingSkills:   missing,
		TopKeywords:     ranking.TopKeywords(jobVector, a.topKeywords),
		Suggestions:     GenerateSuggestions(matched, missing, percentage),
	}
}

// Skills returns the skills the Analyzer's vocabulary finds in text, in
// first-occurrence order.
func (a *Analyzer) Skills(text string) []string {
	return a.extractor.Extract(text).Values()
}

// MatchPercentage converts a similarity in [0,1] to an integer percentage,
// rounding halves away from zero (12.5 becomes 13).
func MatchPercentage(similarity float64) int {
	p := int(math.Round(similarity * 100))
	return max(0, min(100, p))
}
