// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - corpus loads and reloads
// - recommendation latency and outcomes
// - result cache efficiency
// - API endpoint latency and throughput

// Recommendation outcomes.
const (
	OutcomeOK         = "ok"
	OutcomeEmptyQuery = "empty_query"
	OutcomeNoMatch    = "no_match"
	OutcomePanic      = "panic"
)

// Reload results.
const (
	ReloadSwapped   = "swapped"
	ReloadUnchanged = "unchanged"
	ReloadFailed    = "failed"
	ReloadRejected  = "rejected"
)

var (
	// Corpus Metrics
	CorpusLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pantrychef_corpus_load_duration_seconds",
			Help:    "Duration of dataset load and index build in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"result"}, // "ok", "error"
	)

	CorpusRecipes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pantrychef_corpus_recipes",
			Help: "Number of recipes in the active corpus snapshot",
		},
	)

	CorpusVocabulary = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pantrychef_corpus_vocabulary_terms",
			Help: "Number of distinct terms in the active TF-IDF index",
		},
	)

	CorpusVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pantrychef_corpus_version",
			Help: "Version of the active corpus snapshot (increments on every swap)",
		},
	)

	CorpusRowsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pantrychef_corpus_rows_dropped_total",
			Help: "Dataset rows rejected during load",
		},
		[]string{"reason"}, // "missing_field", "malformed_list", "no_ingredients"
	)

	CorpusReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pantrychef_corpus_reloads_total",
			Help: "Corpus reload attempts by result",
		},
		[]string{"result"},
	)

	CorpusLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pantrychef_corpus_last_success_timestamp",
			Help: "Unix timestamp of the last successful corpus load",
		},
	)

	// Recommendation Metrics
	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pantrychef_recommend_duration_seconds",
			Help:    "Duration of a ranking pass in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pantrychef_recommend_requests_total",
			Help: "Recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	RecommendResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pantrychef_recommend_results",
			Help:    "Number of recipes returned per recommendation",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 500},
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pantrychef_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pantrychef_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pantrychef_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pantrychef_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pantrychef_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pantrychef_api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pantrychef_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pantrychef_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)
)

// DropCounts carries per-reason rejected row counts.
type DropCounts struct {
	MissingField  int
	MalformedList int
	NoIngredients int
}

// RecordCorpusLoad records a dataset load and its rejected rows.
func RecordCorpusLoad(duration time.Duration, dropped DropCounts, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	} else {
		CorpusLastSuccess.Set(float64(time.Now().Unix()))
	}
	CorpusLoadDuration.WithLabelValues(result).Observe(duration.Seconds())

	CorpusRowsDropped.WithLabelValues("missing_field").Add(float64(dropped.MissingField))
	CorpusRowsDropped.WithLabelValues("malformed_list").Add(float64(dropped.MalformedList))
	CorpusRowsDropped.WithLabelValues("no_ingredients").Add(float64(dropped.NoIngredients))
}

// SetActiveSnapshot publishes the shape of the snapshot queries now use.
func SetActiveSnapshot(version uint64, recipes, vocabulary int) {
	CorpusVersion.Set(float64(version))
	CorpusRecipes.Set(float64(recipes))
	CorpusVocabulary.Set(float64(vocabulary))
}

// RecordReload records the result of a reload attempt.
func RecordReload(result string) {
	CorpusReloads.WithLabelValues(result).Inc()
}

// RecordRecommendation records a ranking pass.
func RecordRecommendation(outcome string, duration time.Duration, results int) {
	RecommendRequests.WithLabelValues(outcome).Inc()
	RecommendDuration.Observe(duration.Seconds())
	RecommendResults.Observe(float64(results))
}

// RecordCacheHit records a cache hit for cacheType.
func RecordCacheHit(cacheType string) {
	CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss records a cache miss for cacheType.
func RecordCacheMiss(cacheType string) {
	CacheMisses.WithLabelValues(cacheType).Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordRateLimitHit records a request rejected by a rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCircuitBreakerTransition records a breaker moving between states.
// state follows gobreaker ordering: 0 closed, 1 half-open, 2 open.
func RecordCircuitBreakerTransition(name, from, to string, state int) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
