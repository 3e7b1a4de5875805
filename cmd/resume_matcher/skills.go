package main

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the recognized skill vocabulary",
	RunE:  runSkills,
}

var (
	skillsCategory string
	skillsFormat   string
)

func init() {
	skillsCmd.Flags().StringVar(&skillsCategory, "category", "", "Only list this category")
	skillsCmd.Flags().StringVarP(&skillsFormat, "format", "f", config.FormatText, "Output format: json or text")

	rootCmd.AddCommand(skillsCmd)
}

func runSkills(cmd *cobra.Command, _ []string) error {
	categories := skills.Categories()
	if skillsCategory != "" {
		c, ok := skills.CategoryByName(skillsCategory)
		if !ok {
			return fmt.Errorf("unknown category %q", skillsCategory)
		}
		categories = []skills.Category{c}
	}

	switch skillsFormat {
	case config.FormatJSON:
		return writeJSON(cmd.OutOrStdout(), categories)
	case config.FormatText:
		observability.NewPrinter(cmd.OutOrStdout()).PrintVocabulary(categories)
		return nil
	default:
		return fmt.Errorf("--format must be %q or %q, got %q", config.FormatJSON, config.FormatText, skillsFormat)
	}
}
