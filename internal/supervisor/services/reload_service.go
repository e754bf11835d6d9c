// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/pantrychef/internal/metrics"
)

// Reloader is the part of recommend.Engine the watcher drives.
type Reloader interface {
	Reload(ctx context.Context) error
	PruneCache() int
}

// ReloadServiceConfig configures the dataset watcher.
type ReloadServiceConfig struct {
	// Path is the dataset file to watch.
	Path string

	// Interval is the polling period.
	// Default: 30s
	Interval time.Duration

	// MaxFailures is the number of consecutive failed reloads that opens
	// the breaker.
	// Default: 3
	MaxFailures uint32

	// BreakerTimeout is how long the breaker stays open before a trial reload.
	// Default: 5m
	BreakerTimeout time.Duration
}

func (c ReloadServiceConfig) withDefaults() ReloadServiceConfig {
	if c.Interval <= 0 {
		c.Interval = 30 * time.Second
	}
	if c.MaxFailures == 0 {
		c.MaxFailures = 3
	}
	if c.BreakerTimeout <= 0 {
		c.BreakerTimeout = 5 * time.Minute
	}
	return c
}

// fileStamp identifies one version of the dataset file.
type fileStamp struct {
	size    int64
	modTime time.Time
}

// ReloadService polls the dataset file and reloads the engine when the
// file's size or modification time changes.
//
// Reloads run through a circuit breaker. A file that keeps failing to
// parse, e.g. one being rewritten in place, opens the breaker and the
// engine keeps serving its current snapshot until the timeout elapses.
type ReloadService struct {
	engine Reloader
	config ReloadServiceConfig
	cb     *gobreaker.CircuitBreaker[struct{}]
	logger zerolog.Logger
	name   string

	last fileStamp
}

// NewReloadService creates a watcher for engine. The stamp of the file as
// it is now counts as already loaded.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewReloadService(engine Reloader, cfg ReloadServiceConfig, logger zerolog.Logger) *ReloadService {
	cfg = cfg.withDefaults()
	const name = "dataset-reload"

	s := &ReloadService{
		engine: engine,
		config: cfg,
		logger: logger.With().Str("service", name).Str("path", cfg.Path).Logger(),
		name:   name,
	}
	s.last, _ = stat(cfg.Path)

	s.cb = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String(), int(to))
			s.logger.Warn().
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("reload breaker state change")
		},
	})
	return s
}

// Serve implements suture.Service. It polls until ctx is canceled.
func (s *ReloadService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.config.Interval).Msg("dataset watcher starting")

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("dataset watcher stopping")
			return ctx.Err()
		case <-ticker.C:
			if _, err := s.check(ctx); err != nil && ctx.Err() == nil {
				s.logger.Warn().Err(err).Msg("dataset reload skipped")
			}
		}
	}
}

// check runs one poll. It reports whether a new snapshot was published.
func (s *ReloadService) check(ctx context.Context) (bool, error) {
	if n := s.engine.PruneCache(); n > 0 {
		s.logger.Debug().Int("pruned", n).Msg("expired cache entries removed")
	}

	current, err := stat(s.config.Path)
	if err != nil {
		return false, err
	}
	if current.same(s.last) {
		metrics.RecordReload(metrics.ReloadUnchanged)
		return false, nil
	}

	_, err = s.cb.Execute(func() (struct{}, error) {
		return struct{}{}, s.engine.Reload(ctx)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.RecordReload(metrics.ReloadRejected)
		}
		return false, fmt.Errorf("reload %s: %w", s.config.Path, err)
	}

	s.last = current
	s.logger.Info().
		Int64("size", current.size).
		Time("mod_time", current.modTime).
		Msg("dataset changed, snapshot reloaded")
	return true, nil
}

// String implements fmt.Stringer; suture names the service with it.
func (s *ReloadService) String() string {
	return s.name
}

func (f fileStamp) same(other fileStamp) bool {
	return f.size == other.size && f.modTime.Equal(other.modTime)
}

func stat(path string) (fileStamp, error) {
	info, err := os.Stat(path)
	if err != nil {
		return fileStamp{}, err
	}
	return fileStamp{size: info.Size(), modTime: info.ModTime()}, nil
}
