// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package corpus

import (
	"strings"

	"github.com/tomtom215/pantrychef/internal/ingredient"
)

// Recipe is a single dataset row after normalization.
// Ingredients keep source order and may repeat.
type Recipe struct {
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
}

// NewRecipe normalizes raw ingredient names and validates the row.
// It reports false when the title or instructions are blank or when no
// ingredient survives normalization.
func NewRecipe(title string, rawIngredients []string, instructions string) (Recipe, bool) {
	title = strings.TrimSpace(title)
	if title == "" || strings.TrimSpace(instructions) == "" {
		return Recipe{}, false
	}
	keys := normalizeAll(rawIngredients)
	if len(keys) == 0 {
		return Recipe{}, false
	}
	return Recipe{Title: title, Ingredients: keys, Instructions: instructions}, true
}

func normalizeAll(raw []string) []string {
	keys := make([]string, 0, len(raw))
	for _, r := range raw {
		if k := ingredient.Normalize(r); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// Corpus is an ordered, read-only collection of recipes. Positions are
// stable for the lifetime of the value.
type Corpus struct {
	recipes []Recipe
}

// New returns a corpus over a copy of recipes.
func New(recipes []Recipe) *Corpus {
	cp := make([]Recipe, len(recipes))
	copy(cp, recipes)
	return &Corpus{recipes: cp}
}

// Empty returns a corpus with no recipes.
func Empty() *Corpus {
	return &Corpus{recipes: []Recipe{}}
}

// Len returns the number of recipes. A nil corpus is empty.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.recipes)
}

// At returns the recipe at position i.
func (c *Corpus) At(i int) Recipe {
	return c.recipes[i]
}

// Documents returns each recipe's ingredient list, aligned by position.
// The inner slices are shared and must not be modified.
func (c *Corpus) Documents() [][]string {
	if c == nil {
		return [][]string{}
	}
	docs := make([][]string, len(c.recipes))
	for i := range c.recipes {
		docs[i] = c.recipes[i].Ingredients
	}
	return docs
}
