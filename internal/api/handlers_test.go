// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package api

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/tomtom215/pantrychef/internal/config"
	"github.com/tomtom215/pantrychef/internal/models"
)

func itemTitles(items []models.RecipeItem) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].Title
	}
	return out
}

func TestGetRecommendations_Paging(t *testing.T) {
	env := newTestEnv(t, testRecipesCSV, nil)

	tests := []struct {
		name       string
		target     string
		wantTitles []string
		wantPage   int
		wantMore   bool
	}{
		{
			name:       "first page uses page size",
			target:     "/api/v1/recommendations?ingredients=eggs,%20milk",
			wantTitles: []string{"Omelette", "Pancakes"},
			wantPage:   1,
			wantMore:   true,
		},
		{
			name:       "second page",
			target:     "/api/v1/recommendations?ingredients=eggs,%20milk&offset=2",
			wantTitles: []string{"Frittata"},
			wantPage:   2,
			wantMore:   false,
		},
		{
			name:       "explicit limit",
			target:     "/api/v1/recommendations?ingredients=eggs,%20milk&limit=3",
			wantTitles: []string{"Omelette", "Pancakes", "Frittata"},
			wantPage:   1,
			wantMore:   false,
		},
		{
			name:       "offset past end",
			target:     "/api/v1/recommendations?ingredients=eggs&offset=40",
			wantTitles: []string{},
			wantPage:   2,
			wantMore:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := env.do(t, http.MethodGet, tt.target, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
			}

			var data models.RecommendationsData
			decodeData(t, resp, &data)

			got := itemTitles(data.Items)
			if strings.Join(got, ",") != strings.Join(tt.wantTitles, ",") {
				t.Errorf("titles = %v, want %v", got, tt.wantTitles)
			}

			p := resp.Metadata.Pagination
			if p == nil {
				t.Fatal("pagination metadata missing")
			}
			if p.Total != 3 {
				t.Errorf("total = %d, want 3", p.Total)
			}
			if p.Page != tt.wantPage {
				t.Errorf("page = %d, want %d", p.Page, tt.wantPage)
			}
			if p.HasMore != tt.wantMore {
				t.Errorf("has_more = %v, want %v", p.HasMore, tt.wantMore)
			}
		})
	}
}

func TestGetRecommendations_PagesBeyondMaxLimit(t *testing.T) {
	var csv strings.Builder
	csv.WriteString("Title,Cleaned_Ingredients,Instructions\n")
	for i := 0; i < 150; i++ {
		fmt.Fprintf(&csv, "Recipe %03d,\"['eggs', 'spice%d']\",Cook.\n", i, i)
	}
	env := newTestEnv(t, csv.String(), nil)

	rec, resp := env.do(t, http.MethodGet, "/api/v1/recommendations?ingredients=eggs&offset=120&limit=5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var data models.RecommendationsData
	decodeData(t, resp, &data)
	if len(data.Items) != 5 {
		t.Errorf("len(items) = %d, want 5", len(data.Items))
	}
	p := resp.Metadata.Pagination
	if p == nil {
		t.Fatal("pagination metadata missing")
	}
	if p.Total != 150 {
		t.Errorf("total = %d, want 150 (MaxLimit must not cap paging)", p.Total)
	}
	if !p.HasMore {
		t.Error("has_more = false, want true")
	}
}

func TestGetRecommendations_ItemFields(t *testing.T) {
	env := newTestEnv(t, testRecipesCSV, nil)

	_, resp := env.do(t, http.MethodGet, "/api/v1/recommendations?ingredients=Eggs,milk", "")

	var data models.RecommendationsData
	decodeData(t, resp, &data)

	if strings.Join(data.Query, ",") != "egg,milk" {
		t.Errorf("query = %v, want [egg milk]", data.Query)
	}
	if len(data.Items) == 0 {
		t.Fatal("no items")
	}

	top := data.Items[0]
	if top.Position != 0 {
		t.Errorf("position = %d, want 0", top.Position)
	}
	if top.Score <= 0 || top.Score > 1 {
		t.Errorf("score = %v, want in (0, 1]", top.Score)
	}
	if top.MatchPercent < 1 || top.MatchPercent > 100 {
		t.Errorf("match_percent = %d", top.MatchPercent)
	}
	if strings.Join(top.Matched, ",") != "egg,milk" {
		t.Errorf("matched = %v, want [egg milk]", top.Matched)
	}
	if top.Instructions != "Beat and fry." {
		t.Errorf("instructions = %q", top.Instructions)
	}
	if resp.Metadata.Version == 0 {
		t.Error("corpus_version missing from metadata")
	}
}

func TestGetRecommendations_Cached(t *testing.T) {
	env := newTestEnv(t, testRecipesCSV, nil)
	target := "/api/v1/recommendations?ingredients=eggs"

	if _, resp := env.do(t, http.MethodGet, target, ""); resp.Metadata.Cached {
		t.Error("first request reported cached")
	}
	// The next page reads the same cached ranking.
	if _, resp := env.do(t, http.MethodGet, target+"&offset=2", ""); !resp.Metadata.Cached {
		t.Error("second page was not served from cache")
	}
}

func TestGetRecommendations_Invalid(t *testing.T) {
	env := newTestEnv(t, testRecipesCSV, nil)

	tests := []struct {
		name   string
		target string
	}{
		{"missing ingredients", "/api/v1/recommendations"},
		{"only separators", "/api/v1/recommendations?ingredients=,%20,"},
		{"non-integer limit", "/api/v1/recommendations?ingredients=eggs&limit=ten"},
		{"negative offset", "/api/v1/recommendations?ingredients=eggs&offset=-1"},
		{"limit too large", "/api/v1/recommendations?ingredients=eggs&limit=5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := env.do(t, http.MethodGet, tt.target, "")
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if resp.Error == nil || resp.Error.Code != models.ErrCodeValidation {
				t.Errorf("error = %+v, want VALIDATION_ERROR", resp.Error)
			}
		})
	}
}

func TestGetRecommendations_EmptyCorpus(t *testing.T) {
	env := newTestEnv(t, "", nil)

	rec, resp := env.do(t, http.MethodGet, "/api/v1/recommendations?ingredients=eggs", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var data models.RecommendationsData
	decodeData(t, resp, &data)
	if data.Items == nil || len(data.Items) != 0 {
		t.Errorf("items = %v, want empty list", data.Items)
	}
}

func TestPostRecommendations(t *testing.T) {
	env := newTestEnv(t, testRecipesCSV, nil)

	t.Run("valid body", func(t *testing.T) {
		rec, resp := env.do(t, http.MethodPost, "/api/v1/recommendations",
			`{"ingredients": "flour, eggs", "limit": 1}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
		}

		var data models.RecommendationsData
		decodeData(t, resp, &data)
		if got := itemTitles(data.Items); len(got) != 1 || got[0] != "Pancakes" {
			t.Errorf("titles = %v, want [Pancakes]", got)
		}
	})

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"malformed JSON", `{"ingredients": `, models.ErrCodeInvalidJSON},
		{"unknown field", `{"ingredients": "eggs", "sort": "title"}`, models.ErrCodeInvalidJSON},
		{"trailing data", `{"ingredients": "eggs"} {}`, models.ErrCodeInvalidJSON},
		{"empty ingredients", `{"ingredients": ""}`, models.ErrCodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := env.do(t, http.MethodPost, "/api/v1/recommendations", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want %s", resp.Error, tt.wantCode)
			}
		})
	}
}

func TestExportRecipeText(t *testing.T) {
	env := newTestEnv(t, testRecipesCSV, nil)

	t.Run("scored export", func(t *testing.T) {
		rec, _ := env.do(t, http.MethodGet, "/api/v1/recipes/0/text?ingredients=eggs,milk,salt", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
			t.Errorf("Content-Type = %q, want text/plain", ct)
		}
		if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") || !strings.Contains(cd, "Omelette.txt") {
			t.Errorf("Content-Disposition = %q", cd)
		}

		body := rec.Body.String()
		for _, want := range []string{"Omelette", "Match Score: 100%", "egg, milk, salt", "Beat and fry."} {
			if !strings.Contains(body, want) {
				t.Errorf("body missing %q:\n%s", want, body)
			}
		}
	})

	t.Run("unscored export", func(t *testing.T) {
		rec, _ := env.do(t, http.MethodGet, "/api/v1/recipes/3/text", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if body := rec.Body.String(); !strings.Contains(body, "Salad") || !strings.Contains(body, "Match Score: 0%") {
			t.Errorf("body = %q", body)
		}
	})

	t.Run("position out of range", func(t *testing.T) {
		rec, resp := env.do(t, http.MethodGet, "/api/v1/recipes/4/text", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		if resp.Error == nil || resp.Error.Code != models.ErrCodeNotFound {
			t.Errorf("error = %+v, want NOT_FOUND", resp.Error)
		}
	})

	t.Run("position not an integer", func(t *testing.T) {
		rec, _ := env.do(t, http.MethodGet, "/api/v1/recipes/first/text", "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestCorpusStatus(t *testing.T) {
	env := newTestEnv(t, testRecipesCSV, nil)

	// one miss then one hit
	for i := 0; i < 2; i++ {
		if rec, _ := env.do(t, http.MethodGet, "/api/v1/recommendations?ingredients=eggs", ""); rec.Code != http.StatusOK {
			t.Fatalf("recommendations status = %d", rec.Code)
		}
	}

	rec, resp := env.do(t, http.MethodGet, "/api/v1/corpus", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var data models.CorpusData
	decodeData(t, resp, &data)
	status := data.Snapshot
	if status.Recipes != 4 {
		t.Errorf("recipes = %d, want 4", status.Recipes)
	}
	if status.Source != env.datasetPath {
		t.Errorf("source = %q, want %q", status.Source, env.datasetPath)
	}
	if status.Version == 0 || resp.Metadata.Version != status.Version {
		t.Errorf("version = %d, metadata = %d", status.Version, resp.Metadata.Version)
	}

	if data.Engine.RequestCount != 2 {
		t.Errorf("engine request_count = %d, want 2", data.Engine.RequestCount)
	}
	if data.Cache.Hits != 1 || data.Cache.Misses != 1 {
		t.Errorf("cache hits/misses = %d/%d, want 1/1", data.Cache.Hits, data.Cache.Misses)
	}
	if data.Cache.Capacity != 16 {
		t.Errorf("cache capacity = %d, want 16", data.Cache.Capacity)
	}
	if data.CacheHitRate != 0.5 {
		t.Errorf("cache_hit_rate = %v, want 0.5", data.CacheHitRate)
	}
}

func TestReloadCorpus(t *testing.T) {
	env := newTestEnv(t, testRecipesCSV, nil)
	before := env.engine.Snapshot().Version

	trimmed := strings.Join(strings.Split(testRecipesCSV, "\n")[:3], "\n") + "\n"
	if err := os.WriteFile(env.datasetPath, []byte(trimmed), 0o600); err != nil {
		t.Fatal(err)
	}

	rec, resp := env.do(t, http.MethodPost, "/api/v1/corpus/reload", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var data models.ReloadData
	decodeData(t, resp, &data)
	if data.Previous != before || data.Version != before+1 {
		t.Errorf("versions = %d -> %d, want %d -> %d", data.Previous, data.Version, before, before+1)
	}
	if data.Recipes != 2 {
		t.Errorf("recipes = %d, want 2", data.Recipes)
	}

	t.Run("throttled", func(t *testing.T) {
		rec, resp := env.do(t, http.MethodPost, "/api/v1/corpus/reload", "")
		if rec.Code != http.StatusTooManyRequests {
			t.Fatalf("status = %d, want 429", rec.Code)
		}
		if resp.Error == nil || resp.Error.Code != models.ErrCodeRateLimit {
			t.Errorf("error = %+v, want RATE_LIMIT_EXCEEDED", resp.Error)
		}
	})
}

func TestReloadCorpus_Failures(t *testing.T) {
	t.Run("no dataset", func(t *testing.T) {
		env := newTestEnv(t, "", nil)
		rec, resp := env.do(t, http.MethodPost, "/api/v1/corpus/reload", "")
		if rec.Code != http.StatusConflict {
			t.Fatalf("status = %d, want 409", rec.Code)
		}
		if resp.Error == nil || resp.Error.Code != models.ErrCodeNoDataset {
			t.Errorf("error = %+v, want NO_DATASET", resp.Error)
		}
	})

	t.Run("dataset removed keeps snapshot", func(t *testing.T) {
		env := newTestEnv(t, testRecipesCSV, nil)
		before := env.engine.Snapshot()
		if err := os.Remove(env.datasetPath); err != nil {
			t.Fatal(err)
		}

		rec, resp := env.do(t, http.MethodPost, "/api/v1/corpus/reload", "")
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rec.Code)
		}
		if resp.Error == nil || resp.Error.Code != models.ErrCodeReloadFailed {
			t.Errorf("error = %+v, want RELOAD_FAILED", resp.Error)
		}
		if env.engine.Snapshot() != before {
			t.Error("failed reload replaced the snapshot")
		}
	})
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name        string
		dataset     string
		modify      func(*config.Config)
		wantStatus  string
		wantRecipes int
		wantError   bool
	}{
		{"loaded dataset", testRecipesCSV, nil, "healthy", 4, false},
		{"no dataset configured", "", nil, "healthy", 0, false},
		{
			name:    "failed initial load",
			dataset: "",
			modify: func(c *config.Config) {
				c.Dataset.Path = "/nonexistent/recipes.csv"
			},
			wantStatus:  "degraded",
			wantRecipes: 0,
			wantError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.dataset, tt.modify)

			rec, resp := env.do(t, http.MethodGet, "/healthz", "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}

			var health models.HealthData
			decodeData(t, resp, &health)
			if health.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", health.Status, tt.wantStatus)
			}
			if health.Recipes != tt.wantRecipes {
				t.Errorf("recipes = %d, want %d", health.Recipes, tt.wantRecipes)
			}
			if (health.Error != "") != tt.wantError {
				t.Errorf("error = %q, wantError %v", health.Error, tt.wantError)
			}
		})
	}
}
