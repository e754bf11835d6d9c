// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

// Package ingredient turns free-text ingredient names into matching keys.
//
// Both the recipe corpus and user queries pass through Normalize, so two
// spellings match exactly when they share a stem and plural form:
//
//	ingredient.Normalize("Tomatoes") // "tomatoes"
//	ingredient.Normalize("tomato")   // "tomatoes"
//	ingredient.Normalize("Onions")   // "onion"
//
// The override table is a plain map; extend it rather than adding
// special cases to the suffix rules.
package ingredient
