// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package recommend

import (
	"fmt"
	"sort"

	"github.com/tomtom215/pantrychef/internal/ingredient"
	"github.com/tomtom215/pantrychef/internal/logging"
)

// Rank parses a comma-separated ingredient string and returns the recipes
// of snap ordered by descending score. Ties keep corpus order, recipes
// scoring zero are dropped and limit > 0 truncates the result.
//
// Rank never fails: empty input, an empty snapshot and internal faults all
// yield an empty, non-nil slice.
func Rank(input string, snap *Snapshot, limit int) []Result {
	return RankKeys(ingredient.ParseList(input), snap, limit)
}

// RankKeys is Rank over already normalized ingredient keys.
func RankKeys(keys []string, snap *Snapshot, limit int) (results []Result) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error().
				Str("component", "recommend").
				Err(fmt.Errorf("panic: %v", r)).
				Int("ingredients", len(keys)).
				Msg("ranking panicked, returning no results")
			results = []Result{}
		}
	}()

	return rank(keys, snap, limit)
}

func rank(keys []string, snap *Snapshot, limit int) []Result {
	if len(keys) == 0 || snap.Len() == 0 {
		return []Result{}
	}

	scores := Score(keys, snap)

	order := make([]int, 0, len(scores))
	for pos, s := range scores {
		if s > 0 {
			order = append(order, pos)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})
	if limit > 0 && len(order) > limit {
		order = order[:limit]
	}

	userSet := ingredient.Set(keys)
	results := make([]Result, len(order))
	for i, pos := range order {
		recipe := snap.Corpus.At(pos)
		results[i] = Result{
			Position:     pos,
			Title:        recipe.Title,
			Score:        scores[pos],
			Ingredients:  recipe.Ingredients,
			Instructions: recipe.Instructions,
			Matched:      matched(userSet, recipe.Ingredients),
		}
	}
	return results
}

// ResultAt builds the Result for the recipe at position scored against
// keys, whether or not it would rank. ok is false when position is outside
// the snapshot.
func ResultAt(keys []string, snap *Snapshot, position int) (result Result, ok bool) {
	if position < 0 || position >= snap.Len() {
		return Result{}, false
	}

	recipe := snap.Corpus.At(position)
	result = Result{
		Position:     position,
		Title:        recipe.Title,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
		Matched:      []string{},
	}
	if len(keys) > 0 {
		result.Score = Score(keys, snap)[position]
		result.Matched = matched(ingredient.Set(keys), recipe.Ingredients)
	}
	return result, true
}
