// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

// Package dataset turns raw records into queryable tables and publishes them.
//
// Prepare normalizes every genre and cast token once, at load time. The facet
// extractors derive the distinct genre, cast, and year listings used by filter
// UIs. Store holds the current snapshot of both tables behind an atomic
// pointer; Reloader rebuilds a snapshot from the source files and swaps it in
// as a whole, so readers never observe a partially built table.
package dataset

import (
	"github.com/tomtom215/reelsift/internal/models"
	"github.com/tomtom215/reelsift/internal/normalize"
)

// Preparer normalizes raw records and extracts facets using one Normalizer.
type Preparer struct {
	norm *normalize.Normalizer
}

// NewPreparer returns a Preparer. A nil normalizer selects the default synonym table.
func NewPreparer(n *normalize.Normalizer) *Preparer {
	if n == nil {
		n = normalize.Default()
	}
	return &Preparer{norm: n}
}

var defaultPreparer = NewPreparer(nil)

// Prepare normalizes raw with the default synonym table.
func Prepare(raw []models.RawRecord, ct models.ContentType) models.Table {
	return defaultPreparer.Prepare(raw, ct)
}

// Prepare builds a table from raw records. Each comma-separated genre and cast
// token is normalized and the tokens are rejoined in their original order.
// Missing genre or cast fields stay nil. The raw slice is not modified.
func (p *Preparer) Prepare(raw []models.RawRecord, ct models.ContentType) models.Table {
	table := make(models.Table, len(raw))
	for i := range raw {
		src := &raw[i]
		rec := models.Record{
			Title:       src.Title,
			Year:        copyInt(src.Year),
			Description: copyString(src.Description),
			Link:        copyString(src.Link),
			ContentType: ct,
		}
		if src.Genres != nil {
			g := normalize.Field(*src.Genres, p.norm.Genre)
			rec.Genres = &g
		}
		if src.Cast != nil {
			c := normalize.Field(*src.Cast, p.norm.Cast)
			rec.Cast = &c
		}
		table[i] = rec
	}
	return table
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyInt(n *int) *int {
	if n == nil {
		return nil
	}
	v := *n
	return &v
}
