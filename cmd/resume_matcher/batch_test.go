package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	job := writeFixture(t, dir, "job.txt", jobText)
	weak := writeFixture(t, dir, "weak.txt", potteryText)
	moderate := writeFixture(t, dir, "moderate.txt", resumeText)
	strong := writeFixture(t, dir, "strong.txt", jobText)

	stdout, _, err := executeCommand(t, "batch", "--job", job,
		"--resume", weak, "--resume", moderate, "-r", strong, "--concurrency", "2")
	require.NoError(t, err)

	var report types.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	require.Len(t, report.Comparisons, 3)
	assert.Equal(t, strong, report.Comparisons[0].FileName)
	assert.Equal(t, moderate, report.Comparisons[1].FileName)
	assert.Equal(t, weak, report.Comparisons[2].FileName)
	assert.Equal(t, 50, report.AverageScore)
	assert.Equal(t, 100, report.TopScore)
	assert.Equal(t, 1, report.StrongMatches)
}

func TestBatchCommand_SameBaseNameInDifferentDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "alice"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "bob"), 0755))
	job := writeFixture(t, dir, "job.txt", jobText)
	alice := writeFixture(t, filepath.Join(dir, "alice"), "resume.txt", resumeText)
	bob := writeFixture(t, filepath.Join(dir, "bob"), "resume.txt", potteryText)

	stdout, _, err := executeCommand(t, "batch", "-j", job, "-r", alice, "-r", bob)
	require.NoError(t, err)

	var report types.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	require.Len(t, report.Comparisons, 2)
	assert.Equal(t, alice, report.Comparisons[0].FileName)
	assert.Equal(t, bob, report.Comparisons[1].FileName)
}

func TestBatchCommand_RepeatedPathCountsOnce(t *testing.T) {
	dir := t.TempDir()
	job := writeFixture(t, dir, "job.txt", jobText)
	resume := writeFixture(t, dir, "resume.txt", resumeText)

	stdout, _, err := executeCommand(t, "batch", "-j", job, "-r", resume,
		"-r", filepath.Join(dir, ".", "resume.txt"))
	require.NoError(t, err)

	var report types.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Len(t, report.Comparisons, 1)
}

func TestBatchCommand_Text(t *testing.T) {
	dir := t.TempDir()
	job := writeFixture(t, dir, "job.txt", jobText)
	resume := writeFixture(t, dir, "alice.txt", resumeText)

	stdout, _, err := executeCommand(t, "batch", "-j", job, "-r", resume, "-f", "text")
	require.NoError(t, err)
	assert.Contains(t, stdout, "BATCH REPORT")
	assert.Contains(t, stdout, "alice.txt")
	assert.Contains(t, stdout, "Average score:    51%")
}

func TestBatchCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	job := writeFixture(t, dir, "job.txt", jobText)
	resume := writeFixture(t, dir, "resume.txt", resumeText)

	tooMany := []string{"batch", "-j", job}
	for i := 0; i <= types.MaxBatchResumes; i++ {
		tooMany = append(tooMany, "-r", resume)
	}

	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{"missing job", []string{"batch", "-r", resume}, "--job is required"},
		{"missing resumes", []string{"batch", "-j", job}, "at least one --resume"},
		{"too many resumes", tooMany, fmt.Sprintf("at most %d resumes", types.MaxBatchResumes)},
		{"resume not found", []string{"batch", "-j", job, "-r", filepath.Join(dir, "nope.txt")}, "file not found"},
		{"negative concurrency", []string{"batch", "-j", job, "-r", resume, "--concurrency", "-2"}, "non-negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}
