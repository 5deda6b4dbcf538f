// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

// Package query is the entry point for title queries and facet listings.
//
// Engine.Query picks the predicate for a request (the mood predicate when a
// mood is set, the composed dimension predicate otherwise), filters the table
// in order, and pages the matches. Engine.Categories returns the facet
// listings. Both are pure over the table passed in and safe for concurrent use.
package query

import (
	"time"

	"github.com/tomtom215/reelsift/internal/dataset"
	"github.com/tomtom215/reelsift/internal/filter"
	"github.com/tomtom215/reelsift/internal/metrics"
	"github.com/tomtom215/reelsift/internal/models"
	"github.com/tomtom215/reelsift/internal/mood"
)

// Query modes, used as metric labels.
const (
	ModeMood    = "mood"
	ModeFilters = "filters"
)

// Engine answers queries against prepared tables.
type Engine struct {
	moods    *mood.Catalog
	preparer *dataset.Preparer
}

// NewEngine creates an Engine. A nil catalog selects the built-in moods and a
// nil preparer the default normalizer.
func NewEngine(moods *mood.Catalog, preparer *dataset.Preparer) *Engine {
	if moods == nil {
		moods = mood.Default()
	}
	if preparer == nil {
		preparer = dataset.NewPreparer(nil)
	}
	return &Engine{moods: moods, preparer: preparer}
}

// Moods returns the engine's mood catalog.
func (e *Engine) Moods() *mood.Catalog {
	return e.moods
}

// Predicate returns the predicate req selects. A non-empty mood overrides
// every other dimension and the logic mode.
func (e *Engine) Predicate(req *models.FilterRequest) (filter.Predicate, string) {
	if req.HasMood() {
		return e.moods.Resolve(req.Mood), ModeMood
	}
	return filter.Compose(req), ModeFilters
}

// Query filters table with req, preserving order, and returns the requested page.
// The request is expected to be normalized; zero paging values fall back to defaults.
func (e *Engine) Query(table models.Table, req *models.FilterRequest) models.ResultPage {
	start := time.Now()

	pred, mode := e.Predicate(req)
	matches := filter.Apply(table, pred)

	page := Paginate(matches, orDefault(req.Page, models.DefaultPage), orDefault(req.PageSize, models.DefaultPageSize))

	metrics.RecordQuery(mode, len(matches), time.Since(start))
	return page
}

// Categories returns the facet listings of table.
func (e *Engine) Categories(table models.Table) models.Categories {
	return e.preparer.Categories(table)
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
