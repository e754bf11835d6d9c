// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package recommend

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/pantrychef/internal/corpus"
)

// Result is one recommended recipe.
type Result struct {
	// Position is the recipe's index in the snapshot corpus.
	Position int `json:"position"`

	// Title is the recipe name.
	Title string `json:"title"`

	// Score is the blended similarity in [0, 1].
	Score float64 `json:"score"`

	// Ingredients is the full normalized ingredient list in source order.
	Ingredients []string `json:"ingredients"`

	// Instructions is the unmodified instructions text.
	Instructions string `json:"instructions"`

	// Matched lists the recipe ingredients the user has, in recipe order.
	Matched []string `json:"matched"`
}

// MatchPercent returns the score as a percentage rounded half to even.
//
//nolint:gocritic // hugeParam: value receiver keeps Result immutable
func (r Result) MatchPercent() int {
	return int(math.RoundToEven(r.Score * 100))
}

// PlainText renders the recipe as a downloadable text document.
//
//nolint:gocritic // hugeParam: value receiver keeps Result immutable
func (r Result) PlainText() string {
	var b strings.Builder
	b.WriteString(r.Title)
	b.WriteString("\n\nMatch Score: ")
	b.WriteString(strconv.Itoa(r.MatchPercent()))
	b.WriteString("%\n\nIngredients:\n")
	b.WriteString(strings.Join(r.Ingredients, ", "))
	b.WriteString("\n\nInstructions:\n")
	b.WriteString(r.Instructions)
	b.WriteString("\n")
	return b.String()
}

// Filename returns a file name for the PlainText export.
//
//nolint:gocritic // hugeParam: value receiver keeps Result immutable
func (r Result) Filename() string {
	name := strings.Map(func(c rune) rune {
		switch c {
		case ' ':
			return '_'
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return -1
		}
		return c
	}, r.Title)
	if name == "" {
		name = "recipe"
	}
	return name + ".txt"
}

// Request represents a recommendation request.
type Request struct {
	// Ingredients is the raw comma-separated ingredient string.
	Ingredients string `json:"ingredients"`

	// Limit is the maximum number of results.
	// Zero applies the configured default; negative means no limit and
	// is not capped by MaxLimit.
	Limit int `json:"limit"`

	// RequestID is used for tracing. Generated when empty.
	RequestID string `json:"request_id,omitempty"`
}

// Response contains ranked results and metadata.
type Response struct {
	// Items are the ranked results, best first. Never nil.
	Items []Result `json:"items"`

	// Query is the normalized ingredient set used for scoring.
	Query []string `json:"query"`

	// Metadata contains request processing details.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains details about how a response was produced.
type ResponseMetadata struct {
	// RequestID echoes the request ID.
	RequestID string `json:"request_id"`

	// Limit is the effective limit after defaults and caps; 0 means unlimited.
	Limit int `json:"limit"`

	// CorpusVersion identifies the snapshot that was ranked.
	CorpusVersion uint64 `json:"corpus_version"`

	// CorpusSize is the number of recipes in that snapshot.
	CorpusSize int `json:"corpus_size"`

	// LatencyMS is the processing time in milliseconds.
	LatencyMS int64 `json:"latency_ms"`

	// CacheHit indicates the result was served from cache.
	CacheHit bool `json:"cache_hit"`

	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp"`
}

// Status describes the active snapshot.
type Status struct {
	Version    uint64       `json:"version"`
	Source     string       `json:"source"`
	Recipes    int          `json:"recipes"`
	Vocabulary int          `json:"vocabulary"`
	LoadedAt   time.Time    `json:"loaded_at"`
	LoadMS     int64        `json:"load_ms"`
	Stats      corpus.Stats `json:"stats"`
	Error      string       `json:"error,omitempty"`
}

// Metrics contains engine counters.
type Metrics struct {
	RequestCount int64 `json:"request_count"`
	CacheHits    int64 `json:"cache_hits"`
	CacheMisses  int64 `json:"cache_misses"`
	ReloadCount  int64 `json:"reload_count"`
	ErrorCount   int64 `json:"error_count"`
}
