// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

// Package tfidf implements a sparse TF-IDF vector space over recipe
// ingredient lists.
//
// Build fits the vocabulary and inverse document frequencies once per
// corpus. Transform projects a query into the same space without changing
// the index, so a fitted Index can be shared by any number of readers.
//
//	ix := tfidf.Build(corpus.Documents())
//	q := ix.Transform("egg milk")
//	sim := tfidf.Cosine(q, ix.Row(0))
package tfidf
