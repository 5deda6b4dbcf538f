// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package api

import (
	"net/http"

	"github.com/tomtom215/reelsift/internal/filter"
	"github.com/tomtom215/reelsift/internal/logging"
	"github.com/tomtom215/reelsift/internal/models"
	"github.com/tomtom215/reelsift/internal/validation"
)

// Categories returns the genre, cast and year facets.
//
// Query parameters:
//   - content_type: movies (default), series, or both
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	ct, err := models.ParseContentType(r.URL.Query().Get("content_type"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	cats, version, cached, err := h.categories(ct)
	if err != nil {
		respondError(w, r, err)
		return
	}

	NewResponseWriter(w, r).SuccessWithMeta(cats, &APIMeta{Version: version, Cached: cached})
}

// Titles answers a filtered, paginated query.
func (h *Handler) Titles(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseTitles(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	page, version, cached, err := h.titles(req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	logging.Ctx(logging.ContextWithDatasetVersion(r.Context(), version)).Debug().
		Str("content_type", string(req.ContentType)).
		Str("logic", string(req.Logic)).
		Strs("dimensions", filter.Dimensions(req)).
		Bool("mood", req.HasMood()).
		Int("matches", page.TotalMatches).
		Bool("cached", cached).
		Msg("Titles query")

	NewResponseWriter(w, r).SuccessWithMeta(page.Items, &APIMeta{
		Version:    version,
		Cached:     cached,
		Pagination: NewPaginationMeta(page.TotalMatches, len(page.Items), page.Page, page.PageSize),
	})
}

// Moods lists the mood names known to the catalog, sorted.
func (h *Handler) Moods(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.engine.Moods().Names())
}

// parseTitles decodes, validates and normalizes a query body.
func (h *Handler) parseTitles(w http.ResponseWriter, r *http.Request) (*models.FilterRequest, error) {
	body, err := decodeTitlesRequest(w, r)
	if err != nil {
		return nil, err
	}
	if verr := validation.ValidateStruct(body); verr != nil {
		return nil, verr
	}
	return body.ToFilterRequest(h.api.DefaultPageSize, h.api.MaxPageSize)
}
