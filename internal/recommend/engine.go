// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package recommend

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/pantrychef/internal/cache"
	"github.com/tomtom215/pantrychef/internal/corpus"
	"github.com/tomtom215/pantrychef/internal/ingredient"
	"github.com/tomtom215/pantrychef/internal/logging"
	"github.com/tomtom215/pantrychef/internal/metrics"
)

const cacheType = "recommend"

// Engine serves recommendations from the active snapshot and swaps in new
// snapshots on reload. It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	// Active snapshot. Readers never block on reloads.
	current atomic.Pointer[Snapshot]
	version atomic.Uint64

	// Serializes reloads so versions are published in order.
	reloadMu sync.Mutex

	// Ranked results keyed by snapshot version, limit and query.
	// Nil when caching is disabled.
	cache *cache.LRU[[]Result]

	// Metrics
	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	reloadCount  atomic.Int64
	errorCount   atomic.Int64
}

// NewEngine creates an engine and performs the initial load. A failed
// initial load is not an error: the engine starts with an empty corpus
// and reports the cause through Status.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
	}
	if cfg.Cache.Enabled {
		e.cache = cache.NewLRU[[]Result](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}

	var initial *Snapshot
	if cfg.Dataset.Path == "" {
		e.logger.Warn().Msg("no dataset configured, starting with an empty corpus")
		initial = NewSnapshot(corpus.Empty())
	} else {
		initial = Load(cfg.Dataset.Path, cfg.Dataset.Options(), logger)
	}
	e.publish(initial)

	return e, nil
}

// Snapshot returns the active snapshot.
func (e *Engine) Snapshot() *Snapshot {
	return e.current.Load()
}

// Status describes the active snapshot.
func (e *Engine) Status() Status {
	return e.Snapshot().Status()
}

// swap publishes snap as the active snapshot and returns its version.
// Queries already holding the previous snapshot complete against it.
func (e *Engine) swap(snap *Snapshot) uint64 {
	e.reloadMu.Lock()
	defer e.reloadMu.Unlock()
	return e.publish(snap).Version
}

// publish assigns the next version to snap and makes it current.
func (e *Engine) publish(snap *Snapshot) *Snapshot {
	published := snap.withVersion(e.version.Add(1))
	e.current.Store(published)
	metrics.SetActiveSnapshot(published.Version, published.Len(), published.Index.VocabularySize())
	if e.cache != nil {
		e.cache.Clear()
	}
	return published
}

// Reload rebuilds the snapshot from the configured dataset and swaps it in.
// On failure the previous snapshot stays active and the cause is returned.
func (e *Engine) Reload(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := e.config.Dataset.Path
	if path == "" {
		metrics.RecordReload(metrics.ReloadFailed)
		return ErrNoDataset
	}

	e.reloadMu.Lock()
	defer e.reloadMu.Unlock()

	previous := e.Snapshot()
	snap := Load(path, e.config.Dataset.Options(), e.logger)
	if snap.Err != nil {
		e.errorCount.Add(1)
		metrics.RecordReload(metrics.ReloadFailed)
		e.logger.Warn().
			Err(snap.Err).
			Uint64("version", previous.Version).
			Msg("reload failed, keeping previous snapshot")
		return fmt.Errorf("reload corpus: %w", snap.Err)
	}

	published := e.publish(snap)
	e.reloadCount.Add(1)
	metrics.RecordReload(metrics.ReloadSwapped)

	e.logger.Info().
		Uint64("previous_version", previous.Version).
		Uint64("version", published.Version).
		Int("recipes", published.Len()).
		Msg("corpus snapshot swapped")

	return nil
}

// Recommend ranks the active snapshot against req. It never fails; empty
// or unusable input produces a response with no items.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) *Response {
	start := time.Now()
	e.requestCount.Add(1)

	snap := e.Snapshot()
	req = e.prepareRequest(ctx, req)
	keys := e.parseIngredients(req.Ingredients)
	logger := e.createRequestLogger(req, snap)

	if len(keys) == 0 {
		metrics.RecordRecommendation(metrics.OutcomeEmptyQuery, time.Since(start), 0)
		logger.Debug().Msg("empty ingredient query")
		return e.buildResponse(req, snap, keys, []Result{}, start, false)
	}

	cacheKey := e.cacheKey(snap, req.Limit, keys)
	if items, ok := e.tryGetCached(cacheKey); ok {
		logger.Debug().Msg("cache hit")
		return e.buildResponse(req, snap, keys, items, start, true)
	}

	items, outcome := e.safeRank(keys, snap, req.Limit, logger)
	if outcome == metrics.OutcomeOK && len(items) == 0 {
		outcome = metrics.OutcomeNoMatch
	}
	if outcome != metrics.OutcomePanic {
		e.cacheResults(cacheKey, items)
	}
	metrics.RecordRecommendation(outcome, time.Since(start), len(items))

	resp := e.buildResponse(req, snap, keys, items, start, false)

	logger.Debug().
		Int("ingredients", len(keys)).
		Int("returned", len(items)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp
}

// prepareRequest applies defaults and generates a request ID if needed.
// The returned Limit is effective: 0 means unlimited. MaxLimit caps only
// zero and positive limits.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(ctx context.Context, req Request) Request {
	if req.RequestID == "" {
		req.RequestID = logging.RequestIDFromContext(ctx)
	}
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}

	// A negative limit asks for every match and bypasses MaxLimit; callers
	// that page over the full ranking rely on it.
	if req.Limit < 0 {
		req.Limit = 0
		return req
	}
	if req.Limit == 0 {
		req.Limit = e.config.Limits.DefaultLimit
	}
	if maxLimit := e.config.Limits.MaxLimit; maxLimit > 0 && (req.Limit == 0 || req.Limit > maxLimit) {
		req.Limit = maxLimit
	}

	return req
}

// parseIngredients normalizes the query and bounds its size.
func (e *Engine) parseIngredients(raw string) []string {
	keys := ingredient.ParseList(raw)
	if maxKeys := e.config.Limits.MaxIngredients; len(keys) > maxKeys {
		keys = keys[:maxKeys]
	}
	return keys
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request, snap *Snapshot) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Int("limit", req.Limit).
		Uint64("corpus_version", snap.Version).
		Logger()
}

// safeRank ranks keys and converts a panic into an empty result.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func (e *Engine) safeRank(keys []string, snap *Snapshot, limit int, logger zerolog.Logger) (items []Result, outcome string) {
	defer func() {
		if r := recover(); r != nil {
			e.errorCount.Add(1)
			logger.Error().
				Err(fmt.Errorf("panic: %v", r)).
				Strs("ingredients", keys).
				Msg("ranking panicked, returning no results")
			items, outcome = []Result{}, metrics.OutcomePanic
		}
	}()
	return rank(keys, snap, limit), metrics.OutcomeOK
}

// cacheKey identifies a query against one snapshot. Key order does not
// affect ranking, so the keys are sorted.
func (e *Engine) cacheKey(snap *Snapshot, limit int, keys []string) string {
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)

	var b strings.Builder
	b.WriteString(strconv.FormatUint(snap.Version, 10))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(limit))
	b.WriteByte('|')
	b.WriteString(strings.Join(sorted, ","))
	return b.String()
}

// tryGetCached returns a copy of cached results.
func (e *Engine) tryGetCached(key string) ([]Result, bool) {
	if e.cache == nil {
		return nil, false
	}

	items, ok := e.cache.Get(key)
	if !ok {
		e.cacheMisses.Add(1)
		metrics.RecordCacheMiss(cacheType)
		return nil, false
	}

	e.cacheHits.Add(1)
	metrics.RecordCacheHit(cacheType)
	return append([]Result(nil), items...), true
}

// cacheResults stores a copy of results if caching is enabled.
func (e *Engine) cacheResults(key string, items []Result) {
	if e.cache != nil {
		e.cache.Add(key, append([]Result(nil), items...))
	}
}

// buildResponse constructs the final response.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) buildResponse(req Request, snap *Snapshot, keys []string, items []Result, start time.Time, cacheHit bool) *Response {
	if items == nil {
		items = []Result{}
	}
	return &Response{
		Items: items,
		Query: keys,
		Metadata: ResponseMetadata{
			RequestID:     req.RequestID,
			Limit:         req.Limit,
			CorpusVersion: snap.Version,
			CorpusSize:    snap.Len(),
			LatencyMS:     time.Since(start).Milliseconds(),
			CacheHit:      cacheHit,
			Timestamp:     time.Now(),
		},
	}
}

// GetMetrics returns the current engine counters.
func (e *Engine) GetMetrics() Metrics {
	return Metrics{
		RequestCount: e.requestCount.Load(),
		CacheHits:    e.cacheHits.Load(),
		CacheMisses:  e.cacheMisses.Load(),
		ReloadCount:  e.reloadCount.Load(),
		ErrorCount:   e.errorCount.Load(),
	}
}

// CacheStats returns result cache statistics. Zero when caching is disabled.
func (e *Engine) CacheStats() cache.Stats {
	if e.cache == nil {
		return cache.Stats{}
	}
	return e.cache.Stats()
}

// PruneCache drops expired cache entries and returns how many were removed.
func (e *Engine) PruneCache() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.CleanupExpired()
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}
