// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package api

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/pantrychef/internal/ingredient"
	"github.com/tomtom215/pantrychef/internal/logging"
	"github.com/tomtom215/pantrychef/internal/models"
	"github.com/tomtom215/pantrychef/internal/recommend"
)

// ExportRecipeText handles GET /api/v1/recipes/{position}/text.
//
// The optional ingredients query parameter scores the recipe the same way
// a recommendation would, so the export carries the matching score.
//
// @Summary Download a recipe as plain text
// @Tags Recipes
// @Produce plain
// @Param position path int true "Corpus position"
// @Param ingredients query string false "Comma-separated ingredients used for the match score"
// @Success 200 {string} string
// @Failure 404 {object} models.APIResponse
// @Router /recipes/{position}/text [get]
func (h *Handler) ExportRecipeText(w http.ResponseWriter, r *http.Request) {
	position, err := strconv.Atoi(chi.URLParam(r, "position"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, "position must be an integer", nil)
		return
	}

	keys := ingredient.ParseList(r.URL.Query().Get("ingredients"))
	if maxKeys := h.engine.GetConfig().Limits.MaxIngredients; maxKeys > 0 && len(keys) > maxKeys {
		keys = keys[:maxKeys]
	}

	snap := h.engine.Snapshot()
	result, ok := recommend.ResultAt(keys, snap, position)
	if !ok {
		respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound,
			"recipe "+strconv.Itoa(position)+" not found", nil)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition",
		mime.FormatMediaType("attachment", map[string]string{"filename": result.Filename()}))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(result.PlainText())); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write recipe export")
	}
}
