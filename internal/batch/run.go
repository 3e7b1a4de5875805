// Package batch analyzes many résumés against one job description and ranks
// the results.
package batch

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-matcher/internal/analysis"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/logging"
	"github.com/jonathan/resume-matcher/internal/types"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of analyses in flight.
const DefaultConcurrency = 4

// Input is one résumé submitted to a batch.
type Input struct {
	FileName string
	Text     string
}

// Options configures a batch run.
type Options struct {
	Concurrency   int              // <= 0 uses DefaultConcurrency
	MaxInputBytes int64            // 0 disables the per-document size check
	Now           func() time.Time // defaults to time.Now
}

// Run analyzes every input against jobDescription and returns a Report with
// comparisons ranked by match percentage, highest first. Ties keep submission
// order. Inputs sharing a non-empty file name are collapsed to the last one
// submitted.
func Run(ctx context.Context, a *analysis.Analyzer, jobDescription string, inputs []Input, opts Options) (*types.Report, error) {
	if a == nil {
		a = analysis.New()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	if err := ingestion.CheckText("job description", jobDescription, opts.MaxInputBytes); err != nil {
		return nil, &InputError{Index: -1, Cause: err}
	}

	inputs = dedupe(inputs)
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}
	for i, in := range inputs {
		if err := ingestion.CheckText(sourceName(in), in.Text, opts.MaxInputBytes); err != nil {
			return nil, &InputError{Index: i, FileName: in.FileName, Cause: err}
		}
	}

	log := logging.Ctx(ctx)
	log.Debug().Int("resumes", len(inputs)).Int("concurrency", limit).Msg("starting batch analysis")

	comparisons := make([]types.Comparison, len(inputs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, in := range inputs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			result := a.Analyze(in.Text, jobDescription)
			comparisons[i] = types.Comparison{
				ID:        uuid.New(),
				FileName:  in.FileName,
				CreatedAt: now().UTC(),
				Result:    result,
			}
			log.Debug().
				Str("file", in.FileName).
				Int("match_percentage", result.MatchPercentage).
				Msg("analyzed resume")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(comparisons, func(i, j int) bool {
		return comparisons[i].Result.MatchPercentage > comparisons[j].Result.MatchPercentage
	})

	report := &types.Report{
		JobSkills:     a.Skills(jobDescription),
		Comparisons:   comparisons,
		AverageScore:  AverageScore(comparisons),
		TopScore:      TopScore(comparisons),
		StrongMatches: StrongMatches(comparisons),
		GeneratedAt:   now().UTC(),
	}

	log.Info().
		Int("resumes", len(comparisons)).
		Int("average_score", report.AverageScore).
		Int("top_score", report.TopScore).
		Int("strong_matches", report.StrongMatches).
		Msg("batch analysis complete")

	return report, nil
}

// AverageScore is the mean match percentage rounded half away from zero, or 0
// for no comparisons.
func AverageScore(comparisons []types.Comparison) int {
	if len(comparisons) == 0 {
		return 0
	}
	total := 0
	for _, c := range comparisons {
		total += c.Result.MatchPercentage
	}
	return int(math.Round(float64(total) / float64(len(comparisons))))
}

// TopScore is the highest match percentage, or 0 for no comparisons.
func TopScore(comparisons []types.Comparison) int {
	top := 0
	for _, c := range comparisons {
		top = max(top, c.Result.MatchPercentage)
	}
	return top
}

// StrongMatches counts the comparisons scoring at least
// types.StrongMatchThreshold.
func StrongMatches(comparisons []types.Comparison) int {
	n := 0
	for _, c := range comparisons {
		if c.Result.MatchPercentage >= types.StrongMatchThreshold {
			n++
		}
	}
	return n
}

// dedupe drops every input whose non-empty file name reappears later in the
// batch. Survivors keep their relative order.
func dedupe(inputs []Input) []Input {
	last := make(map[string]int, len(inputs))
	for i, in := range inputs {
		if in.FileName != "" {
			last[in.FileName] = i
		}
	}

	out := make([]Input, 0, len(inputs))
	for i, in := range inputs {
		if in.FileName != "" && last[in.FileName] != i {
			continue
		}
		out = append(out, in)
	}
	return out
}

func sourceName(in Input) string {
	if in.FileName != "" {
		return in.FileName
	}
	return "resume"
}
