// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

// Package filter builds record predicates from filter requests.
//
// A Predicate is a pure function over one prepared record. Sub-predicates are
// built per active dimension in a fixed order (genres, cast, years, description
// keywords, title) and folded left with And or Or according to the request's
// logic mode. A request with no active dimension yields Any, which accepts
// every record.
//
// Matching is substring based throughout: the genre filter "action" matches
// the stored text "action,drama" and would also match a token "actionable".
package filter

import (
	"strings"

	"github.com/tomtom215/reelsift/internal/models"
)

// Predicate reports whether a record should be kept.
type Predicate func(*models.Record) bool

// Any accepts every record.
func Any(*models.Record) bool { return true }

// And combines predicates left to right, stopping at the first rejection.
// With no predicates it accepts everything.
func And(preds ...Predicate) Predicate {
	switch len(preds) {
	case 0:
		return Any
	case 1:
		return preds[0]
	}
	return func(r *models.Record) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// Or combines predicates left to right, stopping at the first acceptance.
// With no predicates it accepts everything, matching the empty-request rule.
func Or(preds ...Predicate) Predicate {
	switch len(preds) {
	case 0:
		return Any
	case 1:
		return preds[0]
	}
	return func(r *models.Record) bool {
		for _, p := range preds {
			if p(r) {
				return true
			}
		}
		return false
	}
}

// Combine folds preds with And for LogicAll and Or otherwise.
func Combine(logic models.Logic, preds ...Predicate) Predicate {
	if logic == models.LogicAll {
		return And(preds...)
	}
	return Or(preds...)
}

// Apply returns the records accepted by p, in table order.
func Apply(t models.Table, p Predicate) models.Table {
	out := make(models.Table, 0, len(t)/4)
	for i := range t {
		if p(&t[i]) {
			out = append(out, t[i])
		}
	}
	return out
}

// containsTerms matches text against terms: every term under LogicAll,
// at least one under LogicAny.
func containsTerms(text string, terms []string, logic models.Logic) bool {
	if logic == models.LogicAll {
		for _, term := range terms {
			if !strings.Contains(text, term) {
				return false
			}
		}
		return true
	}
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// GenresContain keeps records whose genre text contains the given genres.
// Null genre text never matches.
func GenresContain(genres []string, logic models.Logic) Predicate {
	return func(r *models.Record) bool {
		return r.Genres != nil && containsTerms(*r.Genres, genres, logic)
	}
}

// DescriptionContains keeps records whose description contains the keywords.
// Matching is case-sensitive; callers lowercase keywords upstream.
func DescriptionContains(keywords []string, logic models.Logic) Predicate {
	return func(r *models.Record) bool {
		return r.Description != nil && containsTerms(*r.Description, keywords, logic)
	}
}

// CastContains keeps records whose cast text contains fragment, ignoring case.
func CastContains(fragment string) Predicate {
	needle := strings.ToLower(fragment)
	return func(r *models.Record) bool {
		return r.Cast != nil && strings.Contains(strings.ToLower(*r.Cast), needle)
	}
}

// TitleContains keeps records whose title contains fragment, ignoring case.
func TitleContains(fragment string) Predicate {
	needle := strings.ToLower(fragment)
	return func(r *models.Record) bool {
		return strings.Contains(strings.ToLower(r.Title), needle)
	}
}

// YearIn keeps records whose year is one of years. Null years never match.
func YearIn(years []int) Predicate {
	set := make(map[int]struct{}, len(years))
	for _, y := range years {
		set[y] = struct{}{}
	}
	return func(r *models.Record) bool {
		if r.Year == nil {
			return false
		}
		_, ok := set[*r.Year]
		return ok
	}
}

// YearBefore keeps records whose year is strictly less than bound.
func YearBefore(bound int) Predicate {
	return func(r *models.Record) bool {
		return r.Year != nil && *r.Year < bound
	}
}
