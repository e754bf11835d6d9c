// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package api

import (
	"net/http"

	"github.com/tomtom215/pantrychef/internal/models"
	"github.com/tomtom215/pantrychef/internal/recommend"
)

// GetRecommendations handles GET /api/v1/recommendations.
//
// @Summary Recommend recipes for a set of ingredients
// @Description Ranks the corpus against a comma-separated ingredient list and returns one page of results
// @Tags Recommendations
// @Produce json
// @Param ingredients query string true "Comma-separated ingredients"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset into the ranked list"
// @Success 200 {object} models.APIResponse{data=models.RecommendationsData}
// @Failure 400 {object} models.APIResponse
// @Router /recommendations [get]
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	limit, limitOK := getIntParam(r, "limit", 0)
	offset, offsetOK := getIntParam(r, "offset", 0)
	if !limitOK || !offsetOK {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, "limit and offset must be integers", nil)
		return
	}

	h.recommend(w, r, &models.RecommendationsRequest{
		Ingredients: r.URL.Query().Get("ingredients"),
		Limit:       limit,
		Offset:      offset,
	})
}

// PostRecommendations handles POST /api/v1/recommendations with a JSON
// RecommendationsRequest body.
//
// @Summary Recommend recipes for a set of ingredients
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body models.RecommendationsRequest true "Query"
// @Success 200 {object} models.APIResponse{data=models.RecommendationsData}
// @Failure 400 {object} models.APIResponse
// @Router /recommendations [post]
func (h *Handler) PostRecommendations(w http.ResponseWriter, r *http.Request) {
	var req models.RecommendationsRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeInvalidJSON, "Request body must be a JSON object", nil)
		return
	}
	h.recommend(w, r, &req)
}

// recommend validates req, ranks the full list and returns the requested page.
// The engine caches the full list, so paging through it does not re-rank.
func (h *Handler) recommend(w http.ResponseWriter, r *http.Request, req *models.RecommendationsRequest) {
	if apiErr := validateRequest(req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	resp := h.engine.Recommend(r.Context(), recommend.Request{
		Ingredients: req.Ingredients,
		Limit:       -1,
	})

	limit := req.Limit
	if limit == 0 {
		limit = h.pageSize
	}
	page := models.NewPaginationInfo(len(resp.Items), req.Offset, limit)
	end := page.Offset + page.Limit
	if end > len(resp.Items) {
		end = len(resp.Items)
	}

	items := make([]models.RecipeItem, 0, end-page.Offset)
	for i := range resp.Items[page.Offset:end] {
		items = append(items, recipeItem(&resp.Items[page.Offset+i]))
	}

	respondSuccess(w, r, models.RecommendationsData{
		Query: resp.Query,
		Items: items,
	}, models.Metadata{
		QueryTimeMS: resp.Metadata.LatencyMS,
		Cached:      resp.Metadata.CacheHit,
		Version:     resp.Metadata.CorpusVersion,
		Pagination:  &page,
	})
}

// recipeItem converts a ranked result to its API form.
func recipeItem(res *recommend.Result) models.RecipeItem {
	return models.RecipeItem{
		Position:     res.Position,
		Title:        res.Title,
		Score:        res.Score,
		MatchPercent: res.MatchPercent(),
		Ingredients:  res.Ingredients,
		Matched:      res.Matched,
		Instructions: res.Instructions,
	}
}
