package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

func sampleResult() *types.AnalysisResult {
	return &types.AnalysisResult{
		MatchPercentage: 51,
		MatchedSkills:   []string{"typescript", "react", "aws"},
		MissingSkills:   []string{"docker"},
		TopKeywords: []types.KeywordScore{
			{Word: "react", Score: 0.333},
			{Word: "engineer", Score: 0.2},
		},
		Suggestions: []string{
			"Good match! Consider emphasizing relevant experience more prominently.",
			"Consider adding these skills to your resume: docker",
		},
	}
}

func TestPrintAnalysisResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysisResult("resume.txt", sampleResult())
	output := buf.String()

	assert.Contains(t, output, "MATCH ANALYSIS")
	assert.Contains(t, output, "resume.txt")
	assert.Contains(t, output, "51% (moderate)")
	assert.Contains(t, output, "• typescript")
	assert.Contains(t, output, "• docker")
	assert.Contains(t, output, "TOP KEYWORDS")
	assert.Contains(t, output, " 33.3%")
	assert.Contains(t, output, " 20.0%")
	assert.Contains(t, output, "SUGGESTIONS")
	assert.Contains(t, output, "Consider adding these skills")
}

func TestPrintAnalysisResult_NoSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysisResult("", &types.AnalysisResult{
		MatchedSkills: []string{},
		MissingSkills: []string{},
		TopKeywords:   []types.KeywordScore{},
		Suggestions:   []string{"Consider tailoring your resume more closely to the job description."},
	})
	output := buf.String()

	assert.Contains(t, output, "Matched skills: none")
	assert.Contains(t, output, "Missing skills: none")
	assert.Contains(t, output, "0% (weak)")
	assert.NotContains(t, output, "Resume:")
	assert.NotContains(t, output, "TOP KEYWORDS")
}

func TestPrintAnalysisResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysisResult("x", nil)
	p.PrintReport(nil)

	assert.Empty(t, buf.String())
}

func TestPrintBox_LinesHaveFixedWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", "short\n"+strings.Repeat("é", 100))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), "line %q", line)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestScoreBar(t *testing.T) {
	assert.Equal(t, "["+strings.Repeat("░", barWidth)+"]", scoreBar(0))
	assert.Equal(t, "["+strings.Repeat("█", barWidth)+"]", scoreBar(100))
	assert.Equal(t, 10, strings.Count(scoreBar(51), "█"))
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	unnamed := uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")
	report := &types.Report{
		JobSkills: []string{"typescript", "react", "aws", "docker", "kubernetes", "go"},
		Comparisons: []types.Comparison{
			{ID: uuid.New(), FileName: "alice.txt", Result: sampleResult()},
			{ID: unnamed, Result: &types.AnalysisResult{MatchPercentage: 12, MissingSkills: []string{"a", "b"}}},
		},
		AverageScore:  32,
		TopScore:      51,
		StrongMatches: 0,
	}

	p.PrintReport(report)
	output := buf.String()

	assert.Contains(t, output, "BATCH REPORT")
	assert.Contains(t, output, "Resumes analyzed: 2")
	assert.Contains(t, output, "Average score:    32%")
	assert.Contains(t, output, "Top score:        51%")
	assert.Contains(t, output, "Above 70%:        0")
	assert.Contains(t, output, "... and 1 more")
	assert.Contains(t, output, "alice.txt")
	assert.Contains(t, output, "0f8fad5b")
	assert.Less(t, strings.Index(output, "alice.txt"), strings.Index(output, "0f8fad5b"))
}

func TestPrintVocabulary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintVocabulary(skills.Categories())
	output := buf.String()

	for _, c := range skills.Categories() {
		assert.Contains(t, output, strings.ToUpper(c.Name))
		for _, term := range c.Terms {
			assert.Contains(t, output, term.Name)
		}
	}
	assert.NotContains(t, output, "...", "wrapped lines should never be truncated")
}

func TestPrintSuggestions_WrapsLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	long := "Consider adding these skills to your resume: kubernetes, elasticsearch, postgresql"
	p.PrintSuggestions([]string{long})
	output := buf.String()

	assert.NotContains(t, output, "...")
	assert.Contains(t, output, "• Consider adding these skills to your resume:")
	assert.Contains(t, output, "postgresql")
}

func TestPrintReport_LongPathKeepsFileName(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReport(&types.Report{
		Comparisons: []types.Comparison{{
			ID:       uuid.New(),
			FileName: "/home/recruiting/candidates/2024/march/alice/resume.txt",
			Result:   sampleResult(),
		}},
	})

	output := buf.String()
	assert.Contains(t, output, "...24/march/alice/resume.txt")
	assert.NotContains(t, output, "/home/recruiting")
}

func TestTruncateLeft(t *testing.T) {
	assert.Equal(t, "short", truncateLeft("short", 10))
	assert.Equal(t, "...6789", truncateLeft("0123456789", 7))
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"a b", "c"}, wrap("a b c", 3))
	assert.Equal(t, []string{""}, wrap("", 10))
	assert.Equal(t, []string{"short"}, wrap("short", 10))
}
