// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

/*
Package config loads and validates Pantrychef configuration.

Configuration is layered with koanf. Later layers override earlier ones:

 1. Built-in defaults (defaultConfig)
 2. A YAML file: $CONFIG_PATH, then config.yaml, config.yml,
    /etc/pantrychef/config.yaml, /etc/pantrychef/config.yml
 3. Environment variables

# Sections

  - Dataset: recipe table path, format, column names, reload polling
  - Recommend: result limits, page size, result cache
  - Server: listener, timeouts, CORS, rate limits
  - Logging: level, format, caller

# Environment Variables

Only the variables below are read; anything else in the environment is
ignored.

Dataset:
  - DATASET_PATH: CSV, TSV or JSON recipe table (default: none, empty corpus)
  - DATASET_FORMAT: csv, tsv or json (default: by extension)
  - DATASET_TITLE_COLUMN (default: Title)
  - DATASET_INGREDIENTS_COLUMN (default: Cleaned_Ingredients)
  - DATASET_INSTRUCTIONS_COLUMN (default: Instructions)
  - DATASET_RELOAD_ENABLED (default: true)
  - DATASET_RELOAD_INTERVAL (default: 30s)

Recommend:
  - RECOMMEND_DEFAULT_LIMIT (default: 10)
  - RECOMMEND_MAX_LIMIT (default: 100)
  - RECOMMEND_MAX_INGREDIENTS (default: 50)
  - RECOMMEND_PAGE_SIZE (default: 5)
  - RECOMMEND_CACHE_ENABLED (default: true)
  - RECOMMEND_CACHE_TTL (default: 5m)
  - RECOMMEND_CACHE_MAX_ENTRIES (default: 1024)

Server:
  - HTTP_HOST (default: 0.0.0.0), HTTP_PORT (default: 8080)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT
  - HTTP_SHUTDOWN_TIMEOUT, HTTP_REQUEST_TIMEOUT
  - CORS_ORIGINS: comma-separated (default: *)
  - RATE_LIMIT_REQS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - RELOAD_RATE_EVERY, RELOAD_RATE_BURST: manual reload limiter

Logging:
  - LOG_LEVEL (default: info), LOG_FORMAT (default: json), LOG_CALLER

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(cfg.Logging.Options())
	engine, err := recommend.NewEngine(cfg.Engine(), logging.WithComponent("recommend"))
*/
package config
