// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package models

import (
	"fmt"
	"strings"
)

// ContentType identifies which table a record belongs to.
type ContentType string

const (
	// ContentMovies is the movies table.
	ContentMovies ContentType = "movies"

	// ContentSeries is the TV series table.
	ContentSeries ContentType = "series"

	// ContentBoth is the combined view: movies followed by series.
	ContentBoth ContentType = "both"
)

// ParseContentType converts a wire value into a ContentType.
// An empty value selects movies.
func ParseContentType(s string) (ContentType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "movies", "movie":
		return ContentMovies, nil
	case "series", "tv", "shows":
		return ContentSeries, nil
	case "both", "all":
		return ContentBoth, nil
	default:
		return "", &InputError{Field: "content_type", Value: s, Reason: "must be movies, series, or both"}
	}
}

// RawRecord is one title as handed over by a loader. Genre and cast are the
// raw comma-delimited text; nil means the source value was missing.
type RawRecord struct {
	Title       string
	Genres      *string
	Cast        *string
	Year        *int
	Description *string
	Link        *string
}

// Record is one prepared title.
//
// Genres and Cast hold normalized tokens joined with ",". Every token is
// lowercase and free of apostrophes, ampersands, and square brackets, and
// genre tokens have passed through the synonym table.
type Record struct {
	Title       string
	Genres      *string
	Cast        *string
	Year        *int
	Description *string
	Link        *string
	ContentType ContentType
}

// Table is an ordered sequence of records. Order is source order.
type Table []Record

// Concat returns a new table holding the records of every table in turn.
func Concat(tables ...Table) Table {
	n := 0
	for _, t := range tables {
		n += len(t)
	}
	out := make(Table, 0, n)
	for _, t := range tables {
		out = append(out, t...)
	}
	return out
}

// Item is the output copy of a Record. Null text fields are rendered as "".
type Item struct {
	Title       string      `json:"title"`
	Genres      string      `json:"genres"`
	Cast        string      `json:"cast"`
	Year        *int        `json:"year"`
	Description string      `json:"description"`
	Link        string      `json:"link"`
	ContentType ContentType `json:"content_type,omitempty"`
}

// ToItem builds the display copy of r.
func (r *Record) ToItem() Item {
	item := Item{
		Title:       r.Title,
		Genres:      deref(r.Genres),
		Cast:        deref(r.Cast),
		Description: deref(r.Description),
		Link:        deref(r.Link),
		ContentType: r.ContentType,
	}
	if r.Year != nil {
		y := *r.Year
		item.Year = &y
	}
	return item
}

func (r *Record) String() string {
	if r.Year != nil {
		return fmt.Sprintf("%s (%d)", r.Title, *r.Year)
	}
	return r.Title
}

// ResultPage is one page of query results.
type ResultPage struct {
	Items        []Item `json:"items"`
	TotalMatches int    `json:"total_matches"`
	Page         int    `json:"page"`
	PageSize     int    `json:"page_size"`
}

// Categories holds the facet listings for a table.
type Categories struct {
	Genres []string `json:"genres"`
	Cast   []string `json:"cast"`
	Years  []int    `json:"years"`
}

// StringPtr returns a pointer to s. Handy for building records in tests and loaders.
func StringPtr(s string) *string {
	return &s
}

// IntPtr returns a pointer to n.
func IntPtr(n int) *int {
	return &n
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
