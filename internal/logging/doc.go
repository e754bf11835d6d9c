// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

// Package logging provides the process-wide zerolog logger for Pantrychef.
//
// JSON is the default output; console output is available for local runs.
// Components take a zerolog.Logger by value where they are constructed and
// fall back to the global logger only at boundaries that have none, such as
// the panic recovery in recommend.Rank.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:   "info",
//	    Format:  "json",
//	    Service: "pantrychef",
//	})
//
//	logging.Info().Str("path", path).Int("recipes", n).Msg("corpus loaded")
//	logging.Err(err).Msg("reload failed")
//
// # Request Context
//
// The HTTP middleware stores a request ID and a short correlation ID in the
// request context. Ctx adds both to every entry:
//
//	logging.Ctx(r.Context()).Info().Int("results", len(items)).Msg("served")
//
// # slog Bridge
//
// SlogHandler adapts zerolog to log/slog for libraries that only accept an
// *slog.Logger, such as sutureslog:
//
//	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), cfg)
//
// # Configuration
//
// Level, format and caller reporting come from the logging section of the
// application config (LOG_LEVEL, LOG_FORMAT and LOG_CALLER in the
// environment). Before Init runs, the global logger already honors
// LOG_LEVEL so configuration errors are reported at the requested level.
package logging
