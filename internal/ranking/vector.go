// Package ranking builds term-frequency vectors and scores them against each
// other.
package ranking

import (
	"iter"
)

// FrequencyVector maps each distinct term of a document to its relative
// frequency (count / total tokens). Weights sum to 1 unless the vector is
// empty. Terms keep their first-occurrence order.
type FrequencyVector struct {
	terms   []string
	weights map[string]float64
}

// Vectorize consumes tokens once and returns their relative-frequency vector.
// An empty sequence yields an empty vector. No inverse-document-frequency
// weighting is applied: documents are only ever compared pairwise.
func Vectorize(tokens iter.Seq[string]) FrequencyVector {
	counts := make(map[string]int)
	var terms []string
	total := 0
	for token := range tokens {
		if _, seen := counts[token]; !seen {
			terms = append(terms, token)
		}
		counts[token]++
		total++
	}

	weights := make(map[string]float64, len(counts))
	for term, count := range counts {
		weights[term] = float64(count) / float64(total)
	}
	return FrequencyVector{terms: terms, weights: weights}
}

// VectorizeSlice is Vectorize over a slice.
func VectorizeSlice(tokens []string) FrequencyVector {
	return Vectorize(func(yield func(string) bool) {
		for _, t := range tokens {
			if !yield(t) {
				return
			}
		}
	})
}

// Len returns the number of distinct terms.
func (v FrequencyVector) Len() int {
	return len(v.terms)
}

// Weight returns the weight of term, or 0 when absent.
func (v FrequencyVector) Weight(term string) float64 {
	return v.weights[term]
}

// Terms returns the distinct terms in first-occurrence order.
func (v FrequencyVector) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// All iterates over (term, weight) pairs in first-occurrence order.
func (v FrequencyVector) All() iter.Seq2[string, float64] {
	return func(yield func(string, float64) bool) {
		for _, term := range v.terms {
			if !yield(term, v.weights[term]) {
				return
			}
		}
	}
}
