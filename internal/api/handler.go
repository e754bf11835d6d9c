// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package api

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/tomtom215/pantrychef/internal/cache"
	"github.com/tomtom215/pantrychef/internal/config"
	"github.com/tomtom215/pantrychef/internal/recommend"
)

// Engine is the part of recommend.Engine the handlers use.
type Engine interface {
	Recommend(ctx context.Context, req recommend.Request) *recommend.Response
	Snapshot() *recommend.Snapshot
	Reload(ctx context.Context) error
	GetConfig() *recommend.Config
	GetMetrics() recommend.Metrics
	CacheStats() cache.Stats
}

// Handler serves the HTTP API over a recommendation engine.
type Handler struct {
	engine   Engine
	pageSize int

	// reloads throttles POST /corpus/reload across all clients.
	reloads *rate.Limiter

	startTime time.Time
}

// NewHandler creates a handler. cfg supplies the page size and the reload
// throttle.
func NewHandler(engine Engine, cfg *config.Config) *Handler {
	every := rate.Inf
	burst := 1
	if cfg.Server.ReloadEvery > 0 {
		every = rate.Every(cfg.Server.ReloadEvery)
	}
	if cfg.Server.ReloadBurst > 0 {
		burst = cfg.Server.ReloadBurst
	}

	pageSize := cfg.Recommend.PageSize
	if pageSize < 1 {
		pageSize = 5
	}

	return &Handler{
		engine:    engine,
		pageSize:  pageSize,
		reloads:   rate.NewLimiter(every, burst),
		startTime: time.Now(),
	}
}
