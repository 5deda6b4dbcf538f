// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package dataset

import (
	"sort"

	"github.com/tomtom215/reelsift/internal/models"
	"github.com/tomtom215/reelsift/internal/normalize"
)

// excludedGenres never appear in the genre facet.
var excludedGenres = map[string]struct{}{
	"sci-fi fantasy": {},
	"n/a":            {},
	"":               {},
}

// ExtractGenres returns the distinct genres of t, sorted, without the
// excluded placeholder values. Tokens are normalized again, which is a no-op
// for prepared tables.
func (p *Preparer) ExtractGenres(t models.Table) []string {
	seen := make(map[string]struct{})
	for i := range t {
		if t[i].Genres == nil {
			continue
		}
		for _, tok := range normalize.Tokens(*t[i].Genres) {
			g := p.norm.Genre(tok)
			if _, excluded := excludedGenres[g]; excluded {
				continue
			}
			seen[g] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// ExtractCast returns the distinct cast members of t, sorted. Unlike genres,
// no values are excluded.
func (p *Preparer) ExtractCast(t models.Table) []string {
	seen := make(map[string]struct{})
	for i := range t {
		if t[i].Cast == nil {
			continue
		}
		for _, tok := range normalize.Tokens(*t[i].Cast) {
			seen[p.norm.Cast(tok)] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// ExtractYears returns the distinct non-null years of t, newest first.
func ExtractYears(t models.Table) []int {
	seen := make(map[int]struct{})
	for i := range t {
		if t[i].Year != nil {
			seen[*t[i].Year] = struct{}{}
		}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// Categories returns all three facet listings of t.
func (p *Preparer) Categories(t models.Table) models.Categories {
	return models.Categories{
		Genres: p.ExtractGenres(t),
		Cast:   p.ExtractCast(t),
		Years:  ExtractYears(t),
	}
}

// ExtractGenres extracts genres with the default synonym table.
func ExtractGenres(t models.Table) []string {
	return defaultPreparer.ExtractGenres(t)
}

// ExtractCast extracts cast members.
func ExtractCast(t models.Table) []string {
	return defaultPreparer.ExtractCast(t)
}

// Categories extracts every facet with the default synonym table.
func Categories(t models.Table) models.Categories {
	return defaultPreparer.Categories(t)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
