// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/pantrychef/internal/logging"
	"github.com/tomtom215/pantrychef/internal/metrics"
	"github.com/tomtom215/pantrychef/internal/models"
	"github.com/tomtom215/pantrychef/internal/recommend"
)

// CorpusStatus handles GET /api/v1/corpus.
//
// @Summary Describe the active recipe snapshot and engine counters
// @Tags Corpus
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.CorpusData}
// @Router /corpus [get]
func (h *Handler) CorpusStatus(w http.ResponseWriter, r *http.Request) {
	status := h.engine.Snapshot().Status()
	stats := h.engine.CacheStats()
	respondSuccess(w, r, models.CorpusData{
		Snapshot:     status,
		Engine:       h.engine.GetMetrics(),
		Cache:        stats,
		CacheHitRate: stats.HitRate(),
	}, models.Metadata{Version: status.Version})
}

// ReloadCorpus handles POST /api/v1/corpus/reload.
//
// Reloads are throttled globally. A failed reload leaves the previous
// snapshot serving.
//
// @Summary Reload the recipe dataset
// @Tags Corpus
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.ReloadData}
// @Failure 409 {object} models.APIResponse "No dataset configured"
// @Failure 429 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /corpus/reload [post]
func (h *Handler) ReloadCorpus(w http.ResponseWriter, r *http.Request) {
	if !h.reloads.Allow() {
		metrics.RecordReload(metrics.ReloadRejected)
		metrics.RecordRateLimitHit(r.URL.Path)
		respondError(w, r, http.StatusTooManyRequests, models.ErrCodeRateLimit, "A reload ran recently, try again later", nil)
		return
	}

	previous := h.engine.Snapshot().Version
	err := h.engine.Reload(r.Context())
	switch {
	case errors.Is(err, recommend.ErrNoDataset):
		respondError(w, r, http.StatusConflict, models.ErrCodeNoDataset, "No dataset is configured", nil)
		return
	case err != nil:
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeReloadFailed, "Dataset reload failed, previous corpus kept", err)
		return
	}

	snap := h.engine.Snapshot()
	logging.Ctx(r.Context()).Info().
		Uint64("previous_version", previous).
		Uint64("version", snap.Version).
		Msg("Corpus reloaded via API")

	respondSuccess(w, r, models.ReloadData{
		Version:  snap.Version,
		Recipes:  snap.Len(),
		Previous: previous,
	}, models.Metadata{Version: snap.Version})
}
