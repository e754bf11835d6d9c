// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/pantrychef/internal/models"
	"github.com/tomtom215/pantrychef/internal/recommend"
)

// Health handles GET /healthz.
//
// The service always answers 200 while it can serve. Status is "degraded"
// when the active snapshot is an empty fallback from a failed load. A
// service started without a dataset is healthy and reports why it is empty.
//
// @Summary Service health
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthData}
// @Router /healthz [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	snap := h.engine.Snapshot()

	health := models.HealthData{
		Status:  "healthy",
		Version: snap.Version,
		Recipes: snap.Len(),
		Uptime:  time.Since(h.startTime).Seconds(),
	}
	if snap.Err != nil {
		health.Error = snap.Err.Error()
		if !errors.Is(snap.Err, recommend.ErrNoDataset) {
			health.Status = "degraded"
		}
	}

	respondSuccess(w, r, health, models.Metadata{})
}
