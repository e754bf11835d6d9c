// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package tfidf

import "math"

// Vector is a sparse vector with column indexes in ascending order.
type Vector struct {
	Terms   []int
	Weights []float64
}

// IsZero reports whether the vector has no non-zero component.
func (v Vector) IsZero() bool {
	for _, w := range v.Weights {
		if w != 0 {
			return false
		}
	}
	return true
}

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 {
	var sum float64
	for _, w := range v.Weights {
		sum += w * w
	}
	return math.Sqrt(sum)
}

func (v *Vector) normalize() {
	n := v.Norm()
	if n == 0 {
		return
	}
	for i := range v.Weights {
		v.Weights[i] /= n
	}
}

// Dot returns the inner product of two sparse vectors.
func Dot(a, b Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a.Terms) && j < len(b.Terms) {
		switch {
		case a.Terms[i] == b.Terms[j]:
			sum += a.Weights[i] * b.Weights[j]
			i++
			j++
		case a.Terms[i] < b.Terms[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// Cosine returns the cosine similarity of a and b, or 0 when either
// vector has zero magnitude.
func Cosine(a, b Vector) float64 {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	sim := Dot(a, b) / (na * nb)
	// rounding drift on parallel vectors
	if sim > 1 {
		return 1
	}
	return sim
}
