// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package filter

import (
	"github.com/tomtom215/reelsift/internal/models"
)

// Dimension names, in evaluation order.
const (
	DimensionGenres      = "genres"
	DimensionCast        = "cast"
	DimensionYears       = "years"
	DimensionDescription = "description"
	DimensionTitle       = "title"
)

// Dimensions returns the names of the active dimensions of req in evaluation order.
func Dimensions(req *models.FilterRequest) []string {
	var dims []string
	if len(req.Genres) > 0 {
		dims = append(dims, DimensionGenres)
	}
	if req.Cast != "" {
		dims = append(dims, DimensionCast)
	}
	if len(req.Years) > 0 {
		dims = append(dims, DimensionYears)
	}
	if len(req.DescriptionKeywords) > 0 {
		dims = append(dims, DimensionDescription)
	}
	if req.Title != "" {
		dims = append(dims, DimensionTitle)
	}
	return dims
}

// Compose builds the predicate for a non-mood request.
//
// One sub-predicate is built per active dimension, in the order genres, cast,
// years, description keywords, title. They are combined with And under
// LogicAll and with Or otherwise. No active dimension accepts every record.
// The Mood field is not consulted.
func Compose(req *models.FilterRequest) Predicate {
	logic := req.Logic
	if logic == "" {
		logic = models.LogicAny
	}

	preds := make([]Predicate, 0, 5)
	if len(req.Genres) > 0 {
		preds = append(preds, GenresContain(req.Genres, logic))
	}
	if req.Cast != "" {
		preds = append(preds, CastContains(req.Cast))
	}
	if len(req.Years) > 0 {
		preds = append(preds, YearIn(req.Years))
	}
	if len(req.DescriptionKeywords) > 0 {
		preds = append(preds, DescriptionContains(req.DescriptionKeywords, logic))
	}
	if req.Title != "" {
		preds = append(preds, TitleContains(req.Title))
	}

	if len(preds) == 0 {
		return Any
	}
	return Combine(logic, preds...)
}
