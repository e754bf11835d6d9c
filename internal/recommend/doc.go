// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

// Package recommend ranks recipes against the ingredients a user has.
//
// # Scoring
//
// Every recipe gets three signals, each in [0, 1]:
//
//   - Vector: cosine similarity of TF-IDF vectors (see package tfidf)
//   - Jaccard: shared ingredient keys over the union of both sets
//   - Coverage: shared ingredient keys over the recipe's own keys
//
// The blended score is 0.5*vector + 0.3*jaccard + 0.2*coverage. The weights
// are constants; they are not part of Config.
//
// # Ranking
//
// Rank parses a comma-separated query with ingredient.ParseList, scores the
// corpus, sorts by descending score keeping corpus order for ties, drops
// recipes scoring zero and truncates to the requested limit.
//
// # Snapshots
//
// A Snapshot pairs a corpus with the index built from it and is never
// modified after it is published. Load degrades to an empty snapshot with
// Err set instead of failing.
//
// The Engine holds the active snapshot behind an atomic pointer. Reload
// builds a new snapshot off to the side and swaps it in; requests that
// already hold the previous snapshot finish against it. A failed reload
// leaves the previous snapshot active.
//
// # Usage
//
//	engine, err := recommend.NewEngine(cfg, logger)
//	if err != nil {
//	    return err
//	}
//
//	resp := engine.Recommend(ctx, recommend.Request{
//	    Ingredients: "eggs, milk, flour",
//	    Limit:       10,
//	})
//
// # Thread Safety
//
// Engine, Snapshot and the package-level functions are safe for concurrent
// use.
package recommend
