// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

package recommend

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Cosine computes the cosine similarity between two rating vectors.
//
// Unrated entries take part as literal zeros, so the score reflects the full
// vectors rather than only co-rated items. If either vector is all zeros the
// similarity is 0. The vectors must have the same length; a mismatch is a
// programming error and panics.
func Cosine(a, b []int) float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("recommend: cosine of vectors with lengths %d and %d", len(a), len(b)))
	}
	return cosine(toFloats(a), toFloats(b))
}

// cosine is Cosine over float vectors of equal length.
func cosine(a, b []float64) float64 {
	normA := math.Sqrt(floats.Dot(a, a))
	normB := math.Sqrt(floats.Dot(b, b))
	if normA == 0 || normB == 0 {
		return 0
	}
	return floats.Dot(a, b) / (normA * normB)
}

func toFloats(v []int) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
