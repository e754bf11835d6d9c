// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package models

import (
	"time"
)

// APIResponse is the envelope every JSON endpoint returns.
//
// Status is "success" or "error". Error is set only for errors.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"query": ["egg", "milk"], "items": [...]},
//	  "metadata": {
//	    "timestamp": "2026-10-18T12:00:00Z",
//	    "request_id": "1f0c...",
//	    "query_time_ms": 3,
//	    "pagination": {"offset": 0, "limit": 5, "total": 12, "has_more": true}
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "ingredients is required",
//	    "details": {"field": "ingredients"}
//	  },
//	  "metadata": {"timestamp": "2026-10-18T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata accompanies every response.
//
// QueryTimeMS is the ranking time; 0 for cache hits, which set Cached.
type Metadata struct {
	Timestamp   time.Time       `json:"timestamp"`
	RequestID   string          `json:"request_id,omitempty"`
	QueryTimeMS int64           `json:"query_time_ms,omitempty"`
	Cached      bool            `json:"cached,omitempty"`
	Version     uint64          `json:"corpus_version,omitempty"`
	Pagination  *PaginationInfo `json:"pagination,omitempty"`
}

// Error codes carried in APIError.Code.
const (
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeNoDataset        = "NO_DATASET"
	ErrCodeReloadFailed     = "RELOAD_FAILED"
	ErrCodeRateLimit        = "RATE_LIMIT_EXCEEDED"
)

// APIError is the machine-readable error body.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// PaginationInfo describes one offset/limit page of a ranked list.
//
// Page and TotalPages are 1-based for display, e.g. "Page 2 of 3".
type PaginationInfo struct {
	Offset     int  `json:"offset"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	HasMore    bool `json:"has_more"`
	NextOffset *int `json:"next_offset,omitempty"`
	Page       int  `json:"page"`
	TotalPages int  `json:"total_pages"`
}

// NewPaginationInfo computes page metadata for total items. limit must be
// positive; offset is clamped into [0, total].
func NewPaginationInfo(total, offset, limit int) PaginationInfo {
	if limit < 1 {
		limit = 1
	}
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}

	p := PaginationInfo{
		Offset:     offset,
		Limit:      limit,
		Total:      total,
		Page:       offset/limit + 1,
		TotalPages: (total + limit - 1) / limit,
	}
	if p.TotalPages == 0 {
		p.TotalPages = 1
	}
	if next := offset + limit; next < total {
		p.HasMore = true
		p.NextOffset = &next
	}
	return p
}
