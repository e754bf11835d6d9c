// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

/*
Package models defines the HTTP API data structures.

  - APIResponse, Metadata, APIError: the envelope every JSON endpoint returns
  - PaginationInfo: offset/limit page metadata over a ranked list
  - RecommendationsRequest, RecommendationsData, RecipeItem: the
    recommendations endpoint
  - ReloadData, HealthData: corpus administration and health

The recommendation core has its own types (recommend.Result and friends);
the api package converts them into these.
*/
package models
