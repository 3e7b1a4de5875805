package ranking

import (
	"math"
	"slices"
)

// CosineSimilarity returns dot(a, b) / (|a| * |b|) over the union of both
// vectors' terms, treating absent terms as 0. It returns 0 when either vector
// has zero magnitude. Terms are summed in sorted order so the result does not
// depend on argument order or map iteration.
func CosineSimilarity(a, b FrequencyVector) float64 {
	keys := unionTerms(a, b)

	var dot, sumA, sumB float64
	for _, k := range keys {
		x, y := a.Weight(k), b.Weight(k)
		dot += x * y
		sumA += x * x
		sumB += y * y
	}

	magnitudeA := math.Sqrt(sumA)
	magnitudeB := math.Sqrt(sumB)
	if magnitudeA == 0 || magnitudeB == 0 {
		return 0
	}

	similarity := dot / (magnitudeA * magnitudeB)
	return math.Max(0, math.Min(1, similarity))
}

func unionTerms(a, b FrequencyVector) []string {
	keys := make([]string, 0, a.Len()+b.Len())
	keys = append(keys, a.terms...)
	for _, t := range b.terms {
		if _, ok := a.weights[t]; !ok {
			keys = append(keys, t)
		}
	}
	slices.Sort(keys)
	return keys
}
