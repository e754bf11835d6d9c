// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

/*
Package services provides suture.Service wrappers for the server's
long-running components.

  - HTTPServerService: runs an *http.Server and shuts it down gracefully
    when its context is canceled
  - ReloadService: polls the dataset file and calls Engine.Reload when it
    changes, through a sony/gobreaker circuit breaker

Every service returns ctx.Err() on cancellation and a wrapped error on
failure, which suture answers with a restart.
*/
package services
