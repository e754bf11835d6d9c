// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package corpus

import "errors"

var (
	// ErrUnsupportedFormat is returned when a dataset extension or format name is unknown.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")

	// ErrEmptyDataset is returned when a delimited file has no header row.
	ErrEmptyDataset = errors.New("dataset has no header row")

	// ErrMissingColumn is returned when a required column is absent from the header.
	ErrMissingColumn = errors.New("required column missing")

	// ErrMalformedList is returned when an ingredient cell is not a list literal.
	ErrMalformedList = errors.New("malformed ingredient list")
)
