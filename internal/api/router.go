// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/pantrychef/internal/middleware"
	"github.com/tomtom215/pantrychef/internal/models"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler        *Handler
	chiMiddleware  *ChiMiddleware
	requestTimeout time.Duration
}

// NewRouter creates a router. requestTimeout bounds API handlers; zero
// disables the bound.
func NewRouter(handler *Handler, chiMw *ChiMiddleware, requestTimeout time.Duration) *Router {
	if chiMw == nil {
		chiMw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:        handler,
		chiMiddleware:  chiMw,
		requestTimeout: requestTimeout,
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(APISecurityHeaders())

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Get("/healthz", router.handler.Health)
		r.Handle("/metrics", promhttp.Handler())
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)
		if router.requestTimeout > 0 {
			r.Use(chimiddleware.Timeout(router.requestTimeout))
		}

		r.Get("/recommendations", router.handler.GetRecommendations)
		r.Post("/recommendations", router.handler.PostRecommendations)
		r.Get("/recipes/{position}/text", router.handler.ExportRecipeText)
		r.Get("/corpus", router.handler.CorpusStatus)
		r.Post("/corpus/reload", router.handler.ReloadCorpus)
	})

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "Route not found", nil)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, models.ErrCodeMethodNotAllowed, "Method not allowed", nil)
}
