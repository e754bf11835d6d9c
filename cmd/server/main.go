// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

// Package main is the entry point for the Pantrychef server.
//
// Pantrychef recommends recipes from a dataset given the ingredients a user
// has on hand. It serves a JSON API over a TF-IDF and set-overlap ranking
// of the recipe corpus.
//
// # Startup
//
//  1. .env file (optional, joho/godotenv)
//  2. Configuration: defaults, config.yaml, environment (koanf v2)
//  3. Logging (zerolog)
//  4. Recommendation engine with the initial dataset load
//  5. HTTP router (chi)
//  6. Supervisor tree: HTTP server and, when enabled, the dataset watcher
//
// A dataset that fails to load does not stop the server. It starts with
// an empty corpus, reports "degraded" on /healthz and recovers on the next
// successful reload.
//
// # Example Usage
//
//	export DATASET_PATH=/data/recipes.csv
//	export HTTP_PORT=8080
//	./pantrychef
//
//	curl 'http://localhost:8080/api/v1/recommendations?ingredients=eggs,milk'
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the supervisor tree. The HTTP server stops
// accepting connections and drains in-flight requests for up to
// HTTP_SHUTDOWN_TIMEOUT.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/tomtom215/pantrychef/internal/api"
	"github.com/tomtom215/pantrychef/internal/config"
	"github.com/tomtom215/pantrychef/internal/logging"
	"github.com/tomtom215/pantrychef/internal/recommend"
	"github.com/tomtom215/pantrychef/internal/supervisor"
	"github.com/tomtom215/pantrychef/internal/supervisor/services"
)

func main() {
	// A missing .env is normal outside development.
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.Logging.Options())
	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		logging.Warn().Err(envErr).Msg("Failed to read .env file")
	}

	logging.Info().
		Str("dataset", cfg.Dataset.Path).
		Bool("reload_enabled", cfg.Dataset.ReloadEnabled).
		Str("addr", cfg.Server.Address()).
		Msg("Starting Pantrychef")

	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*); set explicit origins in production")
	}
	if cfg.Server.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	engine, err := recommend.NewEngine(cfg.Engine(), logging.WithComponent("recommend"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}
	status := engine.Status()
	logging.Info().
		Uint64("version", status.Version).
		Int("recipes", status.Recipes).
		Int("vocabulary", status.Vocabulary).
		Int64("load_ms", status.LoadMS).
		Str("error", status.Error).
		Msg("Corpus ready")

	handler := api.NewHandler(engine, cfg)
	router := api.NewRouter(handler,
		api.NewChiMiddleware(api.ChiMiddlewareConfigFromServer(cfg.Server)),
		cfg.Server.RequestTimeout)

	server := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Dataset.ReloadEnabled && cfg.Dataset.Path != "" {
		tree.AddDataService(services.NewReloadService(engine, services.ReloadServiceConfig{
			Path:     cfg.Dataset.Path,
			Interval: cfg.Dataset.ReloadInterval,
		}, logging.WithComponent("reload")))
		logging.Info().Dur("interval", cfg.Dataset.ReloadInterval).Msg("Dataset watcher added")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Pantrychef stopped")
}
