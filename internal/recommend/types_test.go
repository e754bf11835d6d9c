// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package recommend

import "testing"

func TestResult_MatchPercent(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{0, 0},
		{0.004, 0},
		{0.006, 1},
		{0.7415816, 74},
		{0.746, 75},
		{0.125, 12},
		{0.375, 38},
		{0.625, 62},
		{1, 100},
	}

	for _, tt := range tests {
		if got := (Result{Score: tt.score}).MatchPercent(); got != tt.want {
			t.Errorf("MatchPercent(%v) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestResult_PlainText(t *testing.T) {
	r := Result{
		Title:        "Tomato Soup",
		Score:        0.5,
		Ingredients:  []string{"tomatoes", "onion", "salt"},
		Instructions: "Simmer.\nBlend.",
	}

	want := "Tomato Soup\n\nMatch Score: 50%\n\nIngredients:\ntomatoes, onion, salt\n\nInstructions:\nSimmer.\nBlend.\n"
	if got := r.PlainText(); got != want {
		t.Errorf("PlainText() =\n%q\nwant\n%q", got, want)
	}
}

func TestResult_Filename(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Tomato Soup", "Tomato_Soup.txt"},
		{"Mac & Cheese", "Mac_&_Cheese.txt"},
		{"Half/Half: Latte?", "HalfHalf_Latte.txt"},
		{"", "recipe.txt"},
		{"///", "recipe.txt"},
	}

	for _, tt := range tests {
		if got := (Result{Title: tt.title}).Filename(); got != tt.want {
			t.Errorf("Filename(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
