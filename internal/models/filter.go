// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package models

import (
	"strconv"
	"strings"
)

// Default paging values applied by FilterRequest.Normalize.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Logic selects how active filter dimensions are combined.
type Logic string

const (
	// LogicAny keeps a record when at least one dimension matches.
	LogicAny Logic = "ANY"

	// LogicAll keeps a record only when every dimension matches.
	LogicAll Logic = "ALL"
)

// ParseLogic accepts the wire spellings and/or as well as all/any.
// An empty value selects LogicAny.
func ParseLogic(s string) (Logic, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "or", "any":
		return LogicAny, nil
	case "and", "all":
		return LogicAll, nil
	default:
		return "", &InputError{Field: "filter_logic", Value: s, Reason: "must be and or or"}
	}
}

// FilterRequest is a parsed query.
//
// A zero Page or PageSize means "use the default"; Normalize fills them in.
// When Mood is set every other dimension and Logic are ignored.
type FilterRequest struct {
	Genres              []string
	Cast                string
	Years               []int
	DescriptionKeywords []string
	Title               string
	Mood                string
	Logic               Logic
	Page                int
	PageSize            int
	ContentType         ContentType
}

// Normalize applies defaults, drops empty and duplicate genres and years,
// and validates paging. It returns an error wrapping ErrMalformedInput.
func (r *FilterRequest) Normalize() error {
	if r.Page < 0 {
		return &InputError{Field: "page", Value: strconv.Itoa(r.Page), Reason: "must be at least 1"}
	}
	if r.PageSize < 0 {
		return &InputError{Field: "items_per_page", Value: strconv.Itoa(r.PageSize), Reason: "must be at least 1"}
	}
	if r.Page == 0 {
		r.Page = DefaultPage
	}
	if r.PageSize == 0 {
		r.PageSize = DefaultPageSize
	}

	switch r.Logic {
	case "":
		r.Logic = LogicAny
	case LogicAny, LogicAll:
	default:
		return &InputError{Field: "filter_logic", Value: string(r.Logic), Reason: "must be ALL or ANY"}
	}

	if r.ContentType == "" {
		r.ContentType = ContentMovies
	}

	r.Genres = uniqueStrings(r.Genres)
	r.Years = uniqueInts(r.Years)
	r.DescriptionKeywords = nonEmpty(r.DescriptionKeywords)
	return nil
}

// HasMood reports whether the request is a mood shortcut.
func (r *FilterRequest) HasMood() bool {
	return strings.TrimSpace(r.Mood) != ""
}

// ParseYears converts textual years. Any value that is not an integer is rejected.
func ParseYears(values []string) ([]int, error) {
	years := make([]int, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		y, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil, &InputError{Field: "years", Value: v, Reason: "must be an integer"}
		}
		years = append(years, y)
	}
	return years, nil
}

// SplitKeywords splits free description text on whitespace.
func SplitKeywords(text string) []string {
	return strings.Fields(text)
}

func uniqueStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func uniqueInts(in []int) []int {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(in))
	out := make([]int, 0, len(in))
	for _, n := range in {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

func nonEmpty(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
