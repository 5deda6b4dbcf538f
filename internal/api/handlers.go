// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package api

import (
	"time"

	"github.com/tomtom215/reelsift/internal/cache"
	"github.com/tomtom215/reelsift/internal/config"
	"github.com/tomtom215/reelsift/internal/dataset"
	"github.com/tomtom215/reelsift/internal/models"
	"github.com/tomtom215/reelsift/internal/query"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor, cache helpers (this file)
//   - handlers_health.go: health and readiness probes
//   - handlers_titles.go: categories, titles and moods
//   - handlers_legacy.go: unversioned routes kept for old clients
type Handler struct {
	store     *dataset.Store
	engine    *query.Engine
	cache     *cache.Cache
	api       config.APIConfig
	version   string
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// A nil engine selects the built-in mood catalog and default normalizer.
// A nil cache disables response caching.
func NewHandler(store *dataset.Store, engine *query.Engine, c *cache.Cache, apiCfg config.APIConfig, version string) *Handler {
	if engine == nil {
		engine = query.NewEngine(nil, nil)
	}
	if apiCfg.DefaultPageSize <= 0 {
		apiCfg.DefaultPageSize = models.DefaultPageSize
	}
	return &Handler{
		store:     store,
		engine:    engine,
		cache:     c,
		api:       apiCfg,
		version:   version,
		startTime: time.Now(),
	}
}

// cacheKey identifies one cached response. The snapshot version is part of
// the key, so entries computed from an older dataset are never served.
type cacheKey struct {
	Version     uint64             `json:"version"`
	ContentType models.ContentType `json:"content_type"`
	Request     interface{}        `json:"request,omitempty"`
}

func (h *Handler) cacheGet(kind string, key cacheKey) (interface{}, bool, string) {
	if h.cache == nil {
		return nil, false, ""
	}
	k := cache.GenerateKey(kind, key)
	v, ok := h.cache.Get(k)
	return v, ok, k
}

func (h *Handler) cacheSet(key string, value interface{}) {
	if h.cache == nil || key == "" {
		return
	}
	h.cache.Set(key, value)
}

// categories returns the facet listings for ct, using the cache when enabled.
func (h *Handler) categories(ct models.ContentType) (models.Categories, uint64, bool, error) {
	table, version, err := h.store.Table(ct)
	if err != nil {
		return models.Categories{}, 0, false, err
	}

	v, ok, key := h.cacheGet("categories", cacheKey{Version: version, ContentType: ct})
	if ok {
		if cats, ok := v.(models.Categories); ok {
			return cats, version, true, nil
		}
	}

	cats := h.engine.Categories(table)
	h.cacheSet(key, cats)
	return cats, version, false, nil
}

// titles runs req against the current snapshot, using the cache when enabled.
func (h *Handler) titles(req *models.FilterRequest) (models.ResultPage, uint64, bool, error) {
	table, version, err := h.store.Table(req.ContentType)
	if err != nil {
		return models.ResultPage{}, 0, false, err
	}

	ck := cacheKey{Version: version, ContentType: req.ContentType, Request: req}
	v, ok, key := h.cacheGet("titles", ck)
	if ok {
		if page, ok := v.(models.ResultPage); ok {
			return page, version, true, nil
		}
	}

	page := h.engine.Query(table, req)
	h.cacheSet(key, page)
	return page, version, false, nil
}
