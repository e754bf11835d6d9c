// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package models

import (
	"github.com/tomtom215/pantrychef/internal/cache"
	"github.com/tomtom215/pantrychef/internal/recommend"
)

// RecommendationsRequest is the POST /api/v1/recommendations body.
// GET takes the same fields as query parameters.
type RecommendationsRequest struct {
	Ingredients string `json:"ingredients" validate:"required,max=4096,ingredients"`
	Limit       int    `json:"limit" validate:"min=0,max=1000"`
	Offset      int    `json:"offset" validate:"min=0,max=1000000"`
}

// RecipeItem is one ranked recipe as the API presents it.
type RecipeItem struct {
	Position     int      `json:"position"`
	Title        string   `json:"title"`
	Score        float64  `json:"score"`
	MatchPercent int      `json:"match_percent"`
	Ingredients  []string `json:"ingredients"`
	Matched      []string `json:"matched"`
	Instructions string   `json:"instructions"`
}

// RecommendationsData is the data payload of a recommendations response.
// Query is the normalized ingredient list that was scored.
type RecommendationsData struct {
	Query []string     `json:"query"`
	Items []RecipeItem `json:"items"`
}

// ReloadData reports the outcome of a manual corpus reload.
type ReloadData struct {
	Version  uint64 `json:"version"`
	Recipes  int    `json:"recipes"`
	Previous uint64 `json:"previous_version"`
}

// HealthData is the /healthz payload.
type HealthData struct {
	Status  string  `json:"status"`
	Version uint64  `json:"corpus_version"`
	Recipes int     `json:"recipes"`
	Uptime  float64 `json:"uptime_seconds"`
	Error   string  `json:"error,omitempty"`
}

// CorpusData is the GET /api/v1/corpus body: the active snapshot plus the
// engine's counters and result cache statistics.
type CorpusData struct {
	Snapshot     recommend.Status  `json:"snapshot"`
	Engine       recommend.Metrics `json:"engine"`
	Cache        cache.Stats       `json:"cache"`
	CacheHitRate float64           `json:"cache_hit_rate"`
}
