package main

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/analysis"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/logging"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score one resume against a job description",
	Long: "Analyze a plain-text resume against a plain-text job description and output the match " +
		"percentage, matched and missing skills, top job keywords and suggestions.",
	RunE: runAnalyze,
}

var (
	analyzeResume  string
	analyzeJob     string
	analyzeOut     string
	analyzeFormat  string
	analyzeTop     int
	analyzeVerbose bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Path to output file (default stdout)")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "", "Output format: json or text (default json)")
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", 0, "Number of job keywords to report (default 10)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Also print the text report to stderr")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	opts := settings
	if cmd.Flags().Changed("resume") {
		opts.Resume = analyzeResume
	}
	if cmd.Flags().Changed("job") {
		opts.Job = analyzeJob
	}
	if cmd.Flags().Changed("out") {
		opts.Out = analyzeOut
	}
	if cmd.Flags().Changed("format") {
		opts.Format = analyzeFormat
	}
	if cmd.Flags().Changed("top") {
		opts.TopKeywords = analyzeTop
	}
	if cmd.Flags().Changed("verbose") {
		opts.Verbose = analyzeVerbose
	}

	if opts.Resume == "" {
		return fmt.Errorf("--resume is required (or set 'resume' in the config file)")
	}
	if opts.Job == "" {
		return fmt.Errorf("--job is required (or set 'job' in the config file)")
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if opts.TopKeywords <= 0 {
		return fmt.Errorf("--top must be positive")
	}

	resume, err := ingestion.ReadText(opts.Resume, opts.MaxInputBytes)
	if err != nil {
		return err
	}
	job, err := ingestion.ReadText(opts.Job, opts.MaxInputBytes)
	if err != nil {
		return err
	}

	analyzer := analysis.New(analysis.WithTopKeywords(opts.TopKeywords))
	result := analyzer.Analyze(resume.Text, job.Text)

	if err := schemas.ValidateResult(result); err != nil {
		return fmt.Errorf("analysis result failed schema validation: %w", err)
	}

	logging.L().Debug().
		Str("resume", resume.Name).
		Str("job", job.Name).
		Int("match_percentage", result.MatchPercentage).
		Msg("analysis complete")

	out, closeOut, err := openOutput(cmd, opts.Out)
	if err != nil {
		return err
	}
	defer func() { _ = closeOut() }()

	if opts.Format == config.FormatText {
		observability.NewPrinter(out).PrintAnalysisResult(resume.Name, result)
	} else if err := writeJSON(out, result); err != nil {
		return err
	}

	if opts.Verbose && opts.Format != config.FormatText {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintAnalysisResult(resume.Name, result)
	}

	if opts.Out != "" {
		if err := closeOut(); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote analysis to %s\n", opts.Out)
	}
	return nil
}
