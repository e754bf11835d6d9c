// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
are exposed at /metrics by the API router:

	curl http://localhost:8080/metrics

# Available Metrics

Corpus Metrics:
  - pantrychef_corpus_load_duration_seconds: load + index build time (histogram)
    Labels: result (ok, error)
  - pantrychef_corpus_recipes: recipes in the active snapshot (gauge)
  - pantrychef_corpus_vocabulary_terms: distinct TF-IDF terms (gauge)
  - pantrychef_corpus_version: active snapshot version (gauge)
  - pantrychef_corpus_rows_dropped_total: rejected dataset rows (counter)
    Labels: reason (missing_field, malformed_list, no_ingredients)
  - pantrychef_corpus_reloads_total: reload attempts (counter)
    Labels: result (swapped, unchanged, failed, rejected)
  - pantrychef_corpus_last_success_timestamp: last good load (gauge)

Recommendation Metrics:
  - pantrychef_recommend_duration_seconds: ranking latency (histogram)
  - pantrychef_recommend_requests_total: requests (counter)
    Labels: outcome (ok, empty_query, no_match, panic)
  - pantrychef_recommend_results: results per request (histogram)

Cache Metrics:
  - pantrychef_cache_hits_total, pantrychef_cache_misses_total (counter)
    Labels: cache_type

API Metrics:
  - pantrychef_api_requests_total (counter)
    Labels: method, endpoint, status_code
  - pantrychef_api_request_duration_seconds (histogram)
    Labels: method, endpoint
  - pantrychef_api_active_requests (gauge)
  - pantrychef_api_rate_limit_hits_total (counter)
    Labels: endpoint

Circuit Breaker Metrics:
  - pantrychef_circuit_breaker_state (gauge)
    Labels: name
    Values: 0=closed, 1=half-open, 2=open
  - pantrychef_circuit_breaker_transitions_total (counter)
    Labels: name, from, to

# Usage

	start := time.Now()
	results := engine.Recommend(ctx, req)
	metrics.RecordRecommendation(metrics.OutcomeOK, time.Since(start), len(results.Items))

# Thread Safety

Prometheus collectors are safe for concurrent use.
*/
package metrics
