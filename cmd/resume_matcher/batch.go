package main

import (
	"fmt"
	"path/filepath"

	"github.com/jonathan/resume-matcher/internal/analysis"
	"github.com/jonathan/resume-matcher/internal/batch"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Rank several resumes against one job description",
	Long: "Analyze every --resume file against the --job file concurrently and output a report " +
		"ranked by match percentage with the average score.",
	RunE: runBatch,
}

var (
	batchJob         string
	batchResumes     []string
	batchOut         string
	batchFormat      string
	batchConcurrency int
)

func init() {
	batchCmd.Flags().StringVarP(&batchJob, "job", "j", "", "Path to job description text file")
	batchCmd.Flags().StringArrayVarP(&batchResumes, "resume", "r", nil, "Path to a resume text file (repeatable)")
	batchCmd.Flags().StringVarP(&batchOut, "out", "o", "", "Path to output file (default stdout)")
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "", "Output format: json or text (default json)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Analyses run in parallel (default 4)")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	opts := settings
	if cmd.Flags().Changed("job") {
		opts.Job = batchJob
	}
	if cmd.Flags().Changed("out") {
		opts.Out = batchOut
	}
	if cmd.Flags().Changed("format") {
		opts.Format = batchFormat
	}
	if cmd.Flags().Changed("concurrency") {
		opts.Concurrency = batchConcurrency
	}

	paths := batchResumes
	if len(paths) == 0 && opts.Resume != "" {
		paths = []string{opts.Resume}
	}

	if opts.Job == "" {
		return fmt.Errorf("--job is required (or set 'job' in the config file)")
	}
	if len(paths) == 0 {
		return fmt.Errorf("at least one --resume is required")
	}
	if len(paths) > types.MaxBatchResumes {
		return fmt.Errorf("at most %d resumes per batch, got %d", types.MaxBatchResumes, len(paths))
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	job, err := ingestion.ReadText(opts.Job, opts.MaxInputBytes)
	if err != nil {
		return err
	}
	docs, err := ingestion.ReadAll(paths, opts.MaxInputBytes)
	if err != nil {
		return err
	}

	// Label by path so files sharing a base name in different directories
	// stay distinct; only a repeated path collapses.
	inputs := make([]batch.Input, 0, len(docs))
	for i, d := range docs {
		inputs = append(inputs, batch.Input{FileName: filepath.Clean(paths[i]), Text: d.Text})
	}

	analyzer := analysis.New(analysis.WithTopKeywords(opts.TopKeywords))
	report, err := batch.Run(cmd.Context(), analyzer, job.Text, inputs, batch.Options{
		Concurrency:   opts.Concurrency,
		MaxInputBytes: opts.MaxInputBytes,
	})
	if err != nil {
		return err
	}

	if err := schemas.ValidateReport(report); err != nil {
		return fmt.Errorf("batch report failed schema validation: %w", err)
	}

	out, closeOut, err := openOutput(cmd, opts.Out)
	if err != nil {
		return err
	}
	defer func() { _ = closeOut() }()

	if opts.Format == config.FormatText {
		observability.NewPrinter(out).PrintReport(report)
	} else if err := writeJSON(out, report); err != nil {
		return err
	}

	if opts.Out != "" {
		if err := closeOut(); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote report for %d resumes to %s\n", len(report.Comparisons), opts.Out)
	}
	return nil
}
