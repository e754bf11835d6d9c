// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

// Package corpus loads recipe datasets into an ordered, immutable Corpus.
//
// # Dataset Layout
//
// Delimited datasets (CSV or TSV) carry a header row. Three columns are
// required: a title, an ingredient list encoded as a bracketed list of
// quoted strings, and free-text instructions. Column names default to the
// public recipe dataset layout and can be overridden with Options.
//
// JSON datasets are an array of objects with title, ingredients and
// instructions keys. Ingredients may be a JSON array or an encoded list.
//
// # Row Handling
//
// Every ingredient is normalized with ingredient.Normalize and empty keys
// are discarded. A row is dropped when its list cannot be parsed, when its
// title or instructions are blank, or when no ingredient survives. Dropped
// rows are counted in Stats rather than reported as errors.
//
// Structural problems such as a missing file, a missing column or an
// undecodable stream are returned as errors. Callers that must never fail
// wrap LoadFile and fall back to Empty.
package corpus
