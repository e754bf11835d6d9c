// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package config

import (
	"net"
	"strconv"
	"time"

	"github.com/tomtom215/pantrychef/internal/logging"
	"github.com/tomtom215/pantrychef/internal/recommend"
)

// Config holds all application configuration.
type Config struct {
	Dataset   DatasetConfig   `koanf:"dataset"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DatasetConfig locates the recipe table and controls reloading.
type DatasetConfig struct {
	// Path is the CSV, TSV or JSON dataset. Empty starts with no recipes.
	Path string `koanf:"path"`

	// Format overrides detection by file extension: csv, tsv or json.
	Format string `koanf:"format"`

	TitleColumn        string `koanf:"title_column"`
	IngredientsColumn  string `koanf:"ingredients_column"`
	InstructionsColumn string `koanf:"instructions_column"`

	// ReloadEnabled starts the background service that reloads the corpus
	// when the dataset file changes.
	// Default: true
	ReloadEnabled bool `koanf:"reload_enabled"`

	// ReloadInterval is how often the dataset file is checked for changes.
	// Default: 30s
	ReloadInterval time.Duration `koanf:"reload_interval"`
}

// RecommendConfig holds result limits and caching.
type RecommendConfig struct {
	// DefaultLimit applies when a request gives no limit. 0 returns every match.
	// Default: 10
	DefaultLimit int `koanf:"default_limit"`

	// MaxLimit caps requested limits. 0 disables the cap.
	// Default: 100
	MaxLimit int `koanf:"max_limit"`

	// MaxIngredients bounds distinct ingredients per query.
	// Default: 50
	MaxIngredients int `koanf:"max_ingredients"`

	// PageSize is the default page size of the paginated API.
	// Default: 5
	PageSize int `koanf:"page_size"`

	CacheEnabled    bool          `koanf:"cache_enabled"`
	CacheTTL        time.Duration `koanf:"cache_ttl"`
	CacheMaxEntries int           `koanf:"cache_max_entries"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`

	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// RequestTimeout bounds handler execution.
	// Default: 30s
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// CORSOrigins lists allowed origins. A comma-separated string is accepted
	// from the environment.
	// Default: ["*"]
	CORSOrigins []string `koanf:"cors_origins"`

	// RateLimitReqs requests per RateLimitWindow per client IP.
	// Default: 100 per minute
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	// ReloadEvery is the minimum spacing of manual corpus reloads.
	// Default: 10s
	ReloadEvery time.Duration `koanf:"reload_every"`

	// ReloadBurst is how many manual reloads may run back to back.
	// Default: 1
	ReloadBurst int `koanf:"reload_burst"`
}

// Address returns host:port for net.Listen.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is trace, debug, info, warn or error.
	// Default: info
	Level string `koanf:"level"`

	// Format is json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller adds file:line to entries.
	Caller bool `koanf:"caller"`
}

// Options converts the section into logging.Config.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (l LoggingConfig) Options() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = l.Level
	cfg.Format = l.Format
	cfg.Caller = l.Caller
	cfg.Service = "pantrychef"
	return cfg
}

// Engine builds the recommendation engine configuration.
func (c *Config) Engine() *recommend.Config {
	return &recommend.Config{
		Dataset: recommend.DatasetConfig{
			Path:               c.Dataset.Path,
			Format:             c.Dataset.Format,
			TitleColumn:        c.Dataset.TitleColumn,
			IngredientsColumn:  c.Dataset.IngredientsColumn,
			InstructionsColumn: c.Dataset.InstructionsColumn,
		},
		Limits: recommend.LimitsConfig{
			DefaultLimit:   c.Recommend.DefaultLimit,
			MaxLimit:       c.Recommend.MaxLimit,
			MaxIngredients: c.Recommend.MaxIngredients,
		},
		Cache: recommend.CacheConfig{
			Enabled:    c.Recommend.CacheEnabled,
			TTL:        c.Recommend.CacheTTL,
			MaxEntries: c.Recommend.CacheMaxEntries,
		},
	}
}
