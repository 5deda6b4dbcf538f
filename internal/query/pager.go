// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package query

import (
	"github.com/tomtom215/reelsift/internal/models"
)

// Paginate returns page number page (1-based) of size pageSize from matches.
//
// TotalMatches is always len(matches). Pages past the end are empty, never an
// error. Items are display copies: null text fields become "". Callers pass
// page >= 1 and pageSize >= 1; smaller values are clamped to 1.
func Paginate(matches models.Table, page, pageSize int) models.ResultPage {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(matches)
	start := total
	if page-1 <= total/pageSize {
		start = min((page-1)*pageSize, total)
	}
	end := total
	if pageSize < total-start {
		end = start + pageSize
	}

	items := make([]models.Item, 0, end-start)
	for i := start; i < end; i++ {
		items = append(items, matches[i].ToItem())
	}

	return models.ResultPage{
		Items:        items,
		TotalMatches: total,
		Page:         page,
		PageSize:     pageSize,
	}
}
