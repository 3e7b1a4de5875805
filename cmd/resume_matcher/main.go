// Package main provides the resume_matcher command line interface and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/logging"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	logFormat  string

	// settings is resolved before every command runs.
	settings config.Config
)

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Score resumes against job descriptions",
	Long: "resume_matcher compares a plain-text resume with a job description, reports a 0-100 match " +
		"percentage with matched and missing skills, the job's top keywords and improvement suggestions.",
	SilenceUsage:      true,
	PersistentPreRunE: resolveSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a JSON or YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (json or pretty)")
}

// resolveSettings merges, from highest precedence to lowest, command flags,
// RESUME_MATCHER_* environment variables, the config file and the defaults.
func resolveSettings(cmd *cobra.Command, _ []string) error {
	var fileCfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		fileCfg = *loaded
	}

	env := config.FromEnv()
	merged := env.MergeWithDefaults(fileCfg)
	merged = merged.MergeWithDefaults(config.Default())
	merged.Verbose = fileCfg.Verbose

	if cmd.Flags().Changed("log-level") {
		merged.LogLevel = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		merged.LogFormat = logFormat
	}

	if err := merged.Validate(); err != nil {
		return err
	}

	settings = merged
	logging.InitWithWriter(logging.Config{Level: settings.LogLevel, Format: settings.LogFormat}, cmd.ErrOrStderr())
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
