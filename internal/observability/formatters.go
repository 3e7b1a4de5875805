// Package observability provides the human-readable report output of the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// barWidth is the number of cells in a score bar
	barWidth = 20
)

// Printer writes formatted analysis reports
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// truncateLeft keeps the last n runes of s, marking the cut with "...".
func truncateLeft(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return "..." + string(r[len(r)-(n-3):])
}

// wrap splits s into lines of at most width runes, breaking at spaces.
// Words longer than width are left for printBox to truncate.
func wrap(s string, width int) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		if line != "" && len([]rune(line))+1+len([]rune(word)) > width {
			lines = append(lines, line)
			line = ""
		}
		if line != "" {
			line += " "
		}
		line += word
	}
	if line != "" || len(lines) == 0 {
		lines = append(lines, line)
	}
	return lines
}

// scoreBar renders a percentage as a fixed-width bar.
func scoreBar(percentage int) string {
	filled := max(0, min(barWidth, percentage*barWidth/100))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled) + "]"
}

// writeList writes up to limit items under a heading, noting how many were hidden.
func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	sb.WriteString(heading)
	if len(items) == 0 {
		sb.WriteString(" none\n")
		return
	}
	sb.WriteString("\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

// PrintAnalysisResult outputs the score, skills, keywords and suggestions of
// one analysis. label names the résumé and may be empty.
func (p *Printer) PrintAnalysisResult(label string, result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if label != "" {
		sb.WriteString(fmt.Sprintf("Resume:   %s\n", label))
	}
	sb.WriteString(fmt.Sprintf("Score:    %d%% (%s)\n", result.MatchPercentage, types.MatchBand(result.MatchPercentage)))
	sb.WriteString(fmt.Sprintf("          %s\n\n", scoreBar(result.MatchPercentage)))
	writeList(&sb, "Matched skills:", result.MatchedSkills, len(result.MatchedSkills))
	sb.WriteString("\n")
	writeList(&sb, "Missing skills:", result.MissingSkills, len(result.MissingSkills))
	p.printBox("MATCH ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))

	p.PrintKeywords(result.TopKeywords)
	p.PrintSuggestions(result.Suggestions)
}

// PrintKeywords outputs the job-description keywords with their frequency as
// a percentage.
func (p *Printer) PrintKeywords(keywords []types.KeywordScore) {
	if len(keywords) == 0 {
		return
	}

	var sb strings.Builder
	for i, kw := range keywords {
		sb.WriteString(fmt.Sprintf("%2d. %-30s %5.1f%%\n", i+1, kw.Word, kw.Score*100))
	}
	p.printBox("TOP KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs the improvement suggestions.
func (p *Printer) PrintSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	for _, s := range suggestions {
		for i, line := range wrap(s, boxWidth-6) {
			if i == 0 {
				sb.WriteString("• " + line + "\n")
			} else {
				sb.WriteString("  " + line + "\n")
			}
		}
	}
	p.printBox("SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs a ranked table of a batch report.
func (p *Printer) PrintReport(report *types.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resumes analyzed: %d\n", len(report.Comparisons)))
	sb.WriteString(fmt.Sprintf("Average score:    %d%%\n", report.AverageScore))
	sb.WriteString(fmt.Sprintf("Top score:        %d%%\n", report.TopScore))
	sb.WriteString(fmt.Sprintf("Above %d%%:        %d\n", types.StrongMatchThreshold, report.StrongMatches))
	writeList(&sb, "Job skills:", report.JobSkills, maxItemsToShow)
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("%-4s %-28s %6s  %s\n", "#", "Resume", "Score", "Missing"))
	for i, c := range report.Comparisons {
		name := c.FileName
		if name == "" {
			name = c.ID.String()[:8]
		}
		missing := 0
		score := 0
		if c.Result != nil {
			missing = len(c.Result.MissingSkills)
			score = c.Result.MatchPercentage
		}
		sb.WriteString(fmt.Sprintf("%-4d %-28s %5d%%  %d\n", i+1, truncateLeft(name, 28), score, missing))
	}

	p.printBox("BATCH REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintVocabulary outputs the skill vocabulary grouped by category.
func (p *Printer) PrintVocabulary(categories []skills.Category) {
	for _, c := range categories {
		names := make([]string, 0, len(c.Terms))
		for _, term := range c.Terms {
			names = append(names, term.Name)
		}

		var sb strings.Builder
		line := ""
		for _, n := range names {
			if line != "" && len([]rune(line))+len([]rune(n))+2 > boxWidth-5 {
				sb.WriteString(line + ",\n")
				line = ""
			}
			if line != "" {
				line += ", "
			}
			line += n
		}
		sb.WriteString(line)

		p.printBox(fmt.Sprintf("%s (%d)", strings.ToUpper(c.Name), len(names)), sb.String())
	}
}
