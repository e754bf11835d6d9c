// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

/*
Package middleware provides the chi middleware shared by every API route.

  - RequestID: accepts or generates X-Request-ID, stores it for logging.Ctx
    and chi's middleware.GetReqID, and adds a correlation ID
  - AccessLog: one structured zerolog line per request
  - PrometheusMetrics: request counts, latency and in-flight gauge, labeled
    by chi route pattern

Order matters. RequestID runs first so later layers see the ID:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
