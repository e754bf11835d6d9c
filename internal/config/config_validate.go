// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/pantrychef/internal/logging"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDataset(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	return c.validateLogging()
}

// minReloadInterval keeps the file watcher from spinning.
const minReloadInterval = time.Second

// validateDataset validates dataset location and reload polling.
func (c *Config) validateDataset() error {
	if c.Dataset.TitleColumn == "" || c.Dataset.IngredientsColumn == "" || c.Dataset.InstructionsColumn == "" {
		return fmt.Errorf("DATASET_*_COLUMN names must not be empty")
	}
	if c.Dataset.ReloadEnabled && c.Dataset.Path != "" && c.Dataset.ReloadInterval < minReloadInterval {
		return fmt.Errorf("DATASET_RELOAD_INTERVAL must be at least %v", minReloadInterval)
	}
	return nil
}

// validateRecommend delegates limit and cache checks to the engine config.
func (c *Config) validateRecommend() error {
	if err := c.Engine().Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	if c.Recommend.PageSize < 1 {
		return fmt.Errorf("RECOMMEND_PAGE_SIZE must be positive, got %d", c.Recommend.PageSize)
	}
	if c.Recommend.MaxLimit > 0 && c.Recommend.PageSize > c.Recommend.MaxLimit {
		return fmt.Errorf("RECOMMEND_PAGE_SIZE must not exceed RECOMMEND_MAX_LIMIT")
	}
	return nil
}

// validateServer validates listener, timeouts and rate limits.
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("HTTP_READ_TIMEOUT and HTTP_WRITE_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("HTTP_REQUEST_TIMEOUT must be positive")
	}
	if err := c.validateRateLimits(); err != nil {
		return err
	}
	return c.validateReloadRate()
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateRateLimits validates rate limiting bounds.
func (c *Config) validateRateLimits() error {
	if c.Server.RateLimitDisabled {
		return nil
	}

	if c.Server.RateLimitReqs < minRateLimitRequests || c.Server.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Server.RateLimitWindow < minRateLimitWindow || c.Server.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validateReloadRate validates the manual reload limiter.
func (c *Config) validateReloadRate() error {
	if c.Server.ReloadEvery <= 0 {
		return fmt.Errorf("RELOAD_RATE_EVERY must be positive")
	}
	if c.Server.ReloadBurst < 1 {
		return fmt.Errorf("RELOAD_RATE_BURST must be at least 1, got %d", c.Server.ReloadBurst)
	}
	return nil
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// HasWildcardCORS reports whether any origin is allowed.
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Server.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
