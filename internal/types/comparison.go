package types

import (
	"time"

	"github.com/google/uuid"
)

// Comparison wraps an AnalysisResult with the caller-side bookkeeping of a
// single résumé submission.
type Comparison struct {
	ID        uuid.UUID       `json:"id"`
	FileName  string          `json:"file_name,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	Result    *AnalysisResult `json:"result"`
}

// Report ranks several résumés against one job description.
type Report struct {
	JobSkills     []string     `json:"job_skills"`
	Comparisons   []Comparison `json:"comparisons"`    // matchPercentage descending
	AverageScore  int          `json:"average_score"`  // rounded mean of matchPercentage
	TopScore      int          `json:"top_score"`      // highest matchPercentage
	StrongMatches int          `json:"strong_matches"` // comparisons at or above StrongMatchThreshold
	GeneratedAt   time.Time    `json:"generated_at"`
}
