// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

/*
Package validation validates API request structs with go-playground/validator.

A single validator instance is built on first use. It caches struct
metadata, reports fields by their json names and registers one custom tag:

  - ingredients: the string must yield at least one ingredient after
    comma splitting and normalization

Failures come back as *RequestValidationError, which converts to the
VALIDATION_ERROR body the API returns:

	type recommendationsRequest struct {
	    Ingredients string `json:"ingredients" validate:"required,max=2000,ingredients"`
	    Limit       int    `json:"limit" validate:"min=0,max=100"`
	    Offset      int    `json:"offset" validate:"min=0"`
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
	    apiErr := verr.ToAPIError()
	    ...
	}
*/
package validation
