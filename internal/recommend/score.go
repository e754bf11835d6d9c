// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package recommend

import (
	"strings"

	"github.com/tomtom215/pantrychef/internal/ingredient"
	"github.com/tomtom215/pantrychef/internal/tfidf"
)

// Blend weights. They sum to 1 so a blended score stays in [0, 1].
const (
	VectorWeight   = 0.5
	JaccardWeight  = 0.3
	CoverageWeight = 0.2
)

// ScoreDetail breaks a blended score into its signals.
type ScoreDetail struct {
	// Vector is the TF-IDF cosine between query and recipe.
	Vector float64 `json:"vector"`

	// Jaccard is |user ∩ recipe| / |user ∪ recipe| over ingredient keys.
	Jaccard float64 `json:"jaccard"`

	// Coverage is the fraction of the recipe's ingredients the user has.
	Coverage float64 `json:"coverage"`

	// Blended is the weighted sum of the three signals.
	Blended float64 `json:"blended"`
}

// Score returns one blended score per recipe in snap, aligned by position.
func Score(user []string, snap *Snapshot) []float64 {
	details := ScoreDetails(user, snap)
	scores := make([]float64, len(details))
	for i := range details {
		scores[i] = details[i].Blended
	}
	return scores
}

// ScoreDetails is Score with every signal exposed.
func ScoreDetails(user []string, snap *Snapshot) []ScoreDetail {
	n := snap.Len()
	details := make([]ScoreDetail, n)
	if n == 0 || len(user) == 0 {
		return details
	}

	userSet := ingredient.Set(user)
	query := snap.Index.Transform(strings.Join(user, " "))

	// a query with no known term has no vector signal for any recipe
	vectorless := query.IsZero()

	for i := 0; i < n; i++ {
		var d ScoreDetail
		if !vectorless {
			d.Vector = tfidf.Cosine(query, snap.Index.Row(i))
		}
		d.Jaccard, d.Coverage = overlap(userSet, snap.Corpus.At(i).Ingredients)
		d.Blended = VectorWeight*d.Vector + JaccardWeight*d.Jaccard + CoverageWeight*d.Coverage
		details[i] = d
	}
	return details
}

// overlap returns the Jaccard index and the recipe coverage of user over
// the distinct keys of recipe. Empty denominators yield 0.
func overlap(user map[string]struct{}, recipe []string) (jaccard, coverage float64) {
	recipeSet := ingredient.Set(recipe)
	shared := 0
	for key := range recipeSet {
		if _, ok := user[key]; ok {
			shared++
		}
	}

	if union := len(user) + len(recipeSet) - shared; union > 0 {
		jaccard = float64(shared) / float64(union)
	}
	if len(recipeSet) > 0 {
		coverage = float64(shared) / float64(len(recipeSet))
	}
	return jaccard, coverage
}

// matched returns the recipe keys present in user, in recipe order.
func matched(user map[string]struct{}, recipe []string) []string {
	out := make([]string, 0, len(recipe))
	for _, key := range recipe {
		if _, ok := user[key]; ok {
			out = append(out, key)
		}
	}
	return out
}
