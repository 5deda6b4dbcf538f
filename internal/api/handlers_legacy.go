// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package api

import (
	"net/http"

	"github.com/tomtom215/reelsift/internal/models"
)

// LegacyMoviesResponse is the body of POST /movies.
type LegacyMoviesResponse struct {
	Movies       []models.Item `json:"movies"`
	TotalItems   int           `json:"total_items"`
	Page         int           `json:"page"`
	ItemsPerPage int           `json:"items_per_page"`
}

// LegacyCategories serves GET /categories: the facet listing without the
// response envelope. content_type is honored when present.
func (h *Handler) LegacyCategories(w http.ResponseWriter, r *http.Request) {
	ct, err := models.ParseContentType(r.URL.Query().Get("content_type"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	cats, _, _, err := h.categories(ct)
	if err != nil {
		respondError(w, r, err)
		return
	}
	NewResponseWriter(w, r).JSON(http.StatusOK, cats)
}

// LegacyMovies serves POST /movies with the same body as /api/v1/titles and
// the flat {movies, total_items, page, items_per_page} response.
func (h *Handler) LegacyMovies(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseTitles(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	page, _, _, err := h.titles(req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	NewResponseWriter(w, r).JSON(http.StatusOK, LegacyMoviesResponse{
		Movies:       page.Items,
		TotalItems:   page.TotalMatches,
		Page:         page.Page,
		ItemsPerPage: page.PageSize,
	})
}
