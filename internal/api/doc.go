// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

/*
Package api provides the HTTP REST API for Pantrychef.

Routes:

	GET  /healthz                          service and corpus health
	GET  /metrics                          Prometheus exposition
	GET  /api/v1/recommendations           ranked recipes, query parameters
	POST /api/v1/recommendations           ranked recipes, JSON body
	GET  /api/v1/recipes/{position}/text   plain-text recipe download
	GET  /api/v1/corpus                    snapshot status, engine counters, cache stats
	POST /api/v1/corpus/reload             reload the dataset now

Every JSON endpoint answers with models.APIResponse. Recommendations are
paged with offset and limit; limit defaults to the configured page size
and the metadata carries 1-based page numbers for display.

Middleware order: request ID, real IP, access log, panic recovery, CORS,
security headers. API routes add per-IP rate limiting (go-chi/httprate),
Prometheus request metrics and a handler timeout. Manual reloads are
additionally throttled service-wide with golang.org/x/time/rate.

Usage:

	handler := api.NewHandler(engine, cfg)
	router := api.NewRouter(handler, api.NewChiMiddleware(
		api.ChiMiddlewareConfigFromServer(cfg.Server)), cfg.Server.RequestTimeout)
	srv := &http.Server{Addr: cfg.Server.Address(), Handler: router.SetupChi()}
*/
package api
