package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSuggestions(t *testing.T) {
	tests := []struct {
		name       string
		matched    []string
		missing    []string
		percentage int
		expected   []string
	}{
		{
			name:       "weak match with nothing else",
			percentage: 0,
			expected:   []string{SuggestionTailor, SuggestionKeywords},
		},
		{
			name:       "weak band upper edge",
			missing:    []string{"aws"},
			percentage: 29,
			expected: []string{
				SuggestionTailor,
				SuggestionKeywords,
				"Consider adding these skills to your resume: aws",
			},
		},
		{
			name:       "moderate band lower edge",
			percentage: 30,
			expected:   []string{SuggestionModerate},
		},
		{
			name:       "moderate band upper edge",
			matched:    []string{"go"},
			percentage: 59,
			expected:   []string{SuggestionModerate, "Great! You have these relevant skills: go"},
		},
		{
			name:       "strong band lower edge",
			percentage: 60,
			expected:   []string{SuggestionStrong},
		},
		{
			name:       "lists only the first three skills",
			matched:    []string{"react", "typescript", "aws", "docker"},
			missing:    []string{"kubernetes", "terraform", "gcp", "jenkins", "git"},
			percentage: 10,
			expected: []string{
				SuggestionTailor,
				SuggestionKeywords,
				"Consider adding these skills to your resume: kubernetes, terraform, gcp",
				"Great! You have these relevant skills: react, typescript, aws",
			},
		},
		{
			name:       "missing comes before matched",
			matched:    []string{"react"},
			missing:    []string{"vue"},
			percentage: 100,
			expected: []string{
				SuggestionStrong,
				"Consider adding these skills to your resume: vue",
				"Great! You have these relevant skills: react",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateSuggestions(tt.matched, tt.missing, tt.percentage)
			assert.Equal(t, tt.expected, got)
			assert.True(t, IsBandSuggestion(got[0]))
			assert.GreaterOrEqual(t, len(got), 2-boolToInt(tt.percentage >= moderateMatchThreshold))
			assert.LessOrEqual(t, len(got), 4)
		})
	}
}

func TestIsBandSuggestion(t *testing.T) {
	assert.True(t, IsBandSuggestion(SuggestionTailor))
	assert.True(t, IsBandSuggestion(SuggestionModerate))
	assert.True(t, IsBandSuggestion(SuggestionStrong))
	assert.False(t, IsBandSuggestion(SuggestionKeywords))
	assert.False(t, IsBandSuggestion(""))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
