package ranking

import (
	"math"
	"sort"

	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultTopKeywords is the number of keywords reported per analysis.
const DefaultTopKeywords = 10

// TopKeywords returns up to n terms of v ordered by weight descending, each
// score rounded to three decimals. Equal weights keep first-occurrence order.
func TopKeywords(v FrequencyVector, n int) []types.KeywordScore {
	if n <= 0 || v.Len() == 0 {
		return []types.KeywordScore{}
	}

	terms := v.Terms()
	sort.SliceStable(terms, func(i, j int) bool {
		return v.weights[terms[i]] > v.weights[terms[j]]
	})
	if len(terms) > n {
		terms = terms[:n]
	}

	keywords := make([]types.KeywordScore, len(terms))
	for i, term := range terms {
		keywords[i] = types.KeywordScore{Word: term, Score: RoundTo(v.weights[term], 3)}
	}
	return keywords
}

// RoundTo rounds x to the given number of decimal places, halves away from
// zero.
func RoundTo(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}
