// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package recommend

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/pantrychef/internal/corpus"
)

// Config contains all configuration for the recommendation engine.
// Scoring weights are constants; see VectorWeight, JaccardWeight and
// CoverageWeight.
type Config struct {
	// Dataset locates the recipe table loaded by Load and Reload.
	Dataset DatasetConfig `json:"dataset"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`

	// Cache contains result caching parameters.
	Cache CacheConfig `json:"cache"`
}

// DatasetConfig locates and describes the recipe dataset.
type DatasetConfig struct {
	// Path is the dataset file. Empty means start with an empty corpus.
	Path string `json:"path"`

	// Format is csv, tsv or json. Empty selects by file extension.
	Format string `json:"format"`

	// TitleColumn names the recipe title column.
	// Default: Title.
	TitleColumn string `json:"title_column"`

	// IngredientsColumn names the encoded ingredient list column.
	// Default: Cleaned_Ingredients.
	IngredientsColumn string `json:"ingredients_column"`

	// InstructionsColumn names the instructions column.
	// Default: Instructions.
	InstructionsColumn string `json:"instructions_column"`
}

// Options converts the dataset section into loader options.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (d DatasetConfig) Options() corpus.Options {
	return corpus.Options{
		Format:             d.Format,
		TitleColumn:        d.TitleColumn,
		IngredientsColumn:  d.IngredientsColumn,
		InstructionsColumn: d.InstructionsColumn,
	}
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultLimit applies when a request leaves Limit at zero.
	// Zero means return every qualifying recipe.
	// Default: 10.
	DefaultLimit int `json:"default_limit"`

	// MaxLimit caps zero and positive limits. A negative request limit
	// returns every match uncapped. Zero disables the cap.
	// Default: 100.
	MaxLimit int `json:"max_limit"`

	// MaxIngredients bounds the number of distinct ingredients per query.
	// Extra ingredients are ignored.
	// Default: 50.
	MaxIngredients int `json:"max_ingredients"`
}

// CacheConfig contains result caching parameters.
type CacheConfig struct {
	// Enabled controls whether ranked results are cached.
	// Default: true.
	Enabled bool `json:"enabled"`

	// TTL is the cache entry time-to-live.
	// Default: 5m.
	TTL time.Duration `json:"ttl"`

	// MaxEntries is the maximum number of cached queries.
	// Default: 1024.
	MaxEntries int `json:"max_entries"`
}

// DefaultConfig returns a Config with sensible production defaults.
func DefaultConfig() *Config {
	opts := corpus.DefaultOptions()
	return &Config{
		Dataset: DatasetConfig{
			TitleColumn:        opts.TitleColumn,
			IngredientsColumn:  opts.IngredientsColumn,
			InstructionsColumn: opts.InstructionsColumn,
		},
		Limits: LimitsConfig{
			DefaultLimit:   10,
			MaxLimit:       100,
			MaxIngredients: 50,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        5 * time.Minute,
			MaxEntries: 1024,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Dataset.Path != "" {
		if _, err := corpus.ParseFormat(c.Dataset.Format, c.Dataset.Path); err != nil {
			return fmt.Errorf("dataset: %w", err)
		}
	}

	if c.Limits.DefaultLimit < 0 {
		return fmt.Errorf("limits.default_limit must be non-negative, got %d", c.Limits.DefaultLimit)
	}
	if c.Limits.MaxLimit < 0 {
		return fmt.Errorf("limits.max_limit must be non-negative, got %d", c.Limits.MaxLimit)
	}
	if c.Limits.MaxLimit > 0 && c.Limits.DefaultLimit > c.Limits.MaxLimit {
		return fmt.Errorf("limits.max_limit must be >= limits.default_limit, got %d < %d", c.Limits.MaxLimit, c.Limits.DefaultLimit)
	}
	if c.Limits.MaxIngredients < 1 {
		return fmt.Errorf("limits.max_ingredients must be positive, got %d", c.Limits.MaxIngredients)
	}

	if c.Cache.Enabled {
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be positive, got %d", c.Cache.MaxEntries)
		}
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
		}
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// nested structs hold only value types
	return &Config{
		Dataset: c.Dataset,
		Limits:  c.Limits,
		Cache:   c.Cache,
	}
}

// MarshalJSON renders durations as strings.
func (c *Config) MarshalJSON() ([]byte, error) {
	type cacheJSON struct {
		Enabled    bool   `json:"enabled"`
		TTL        string `json:"ttl"`
		MaxEntries int    `json:"max_entries"`
	}
	return json.Marshal(&struct {
		Dataset DatasetConfig `json:"dataset"`
		Limits  LimitsConfig  `json:"limits"`
		Cache   cacheJSON     `json:"cache"`
	}{
		Dataset: c.Dataset,
		Limits:  c.Limits,
		Cache: cacheJSON{
			Enabled:    c.Cache.Enabled,
			TTL:        c.Cache.TTL.String(),
			MaxEntries: c.Cache.MaxEntries,
		},
	})
}
