// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

// Package mood resolves named moods into record predicates.
//
// A Catalog maps a lowercase mood name to Criteria. Criteria fields that are
// present are combined conjunctively regardless of the request's logic mode:
//
//   - genres: the record's genre text contains at least one listed genre
//   - description keywords: the description contains at least one keyword
//   - year bound "<N": the record's year is strictly less than N
//
// Resolving an unknown mood yields a predicate that accepts every record.
// Year bounds are validated when the catalog is built; anything other than
// "<N" fails with ErrUnsupportedYearBound.
package mood

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tomtom215/reelsift/internal/filter"
	"github.com/tomtom215/reelsift/internal/logging"
	"github.com/tomtom215/reelsift/internal/metrics"
	"github.com/tomtom215/reelsift/internal/models"
	"github.com/tomtom215/reelsift/internal/normalize"
)

// Entry is the declarative form of one catalog entry, as read from a file.
type Entry struct {
	Genres              []string `koanf:"genres" json:"genres,omitempty"`
	DescriptionKeywords []string `koanf:"description_keywords" json:"description_keywords,omitempty"`
	Year                string   `koanf:"year" json:"year,omitempty"`
}

// YearBound is a parsed "<N" expression.
type YearBound struct {
	Before int
}

func (b YearBound) String() string {
	return "<" + strconv.Itoa(b.Before)
}

// ParseYearBound parses "<N". Surrounding whitespace is ignored.
func ParseYearBound(expr string) (YearBound, error) {
	s := strings.TrimSpace(expr)
	if !strings.HasPrefix(s, "<") {
		return YearBound{}, fmt.Errorf("%w: %q (only \"<N\" is supported)", ErrUnsupportedYearBound, expr)
	}
	n, err := strconv.Atoi(strings.TrimSpace(s[1:]))
	if err != nil {
		return YearBound{}, fmt.Errorf("%w: %q: %v", ErrUnsupportedYearBound, expr, err)
	}
	return YearBound{Before: n}, nil
}

// Criteria is the validated form of an Entry.
type Criteria struct {
	Genres              []string
	DescriptionKeywords []string
	YearBound           *YearBound
}

// Predicate builds the conjunctive predicate for c. Empty criteria accept every record.
func (c *Criteria) Predicate() filter.Predicate {
	preds := make([]filter.Predicate, 0, 3)
	if len(c.Genres) > 0 {
		preds = append(preds, filter.GenresContain(c.Genres, models.LogicAny))
	}
	if len(c.DescriptionKeywords) > 0 {
		preds = append(preds, filter.DescriptionContains(c.DescriptionKeywords, models.LogicAny))
	}
	if c.YearBound != nil {
		preds = append(preds, filter.YearBefore(c.YearBound.Before))
	}
	return filter.And(preds...)
}

// Catalog maps lowercase mood names to criteria. It is read-only after
// construction and safe for concurrent use.
type Catalog struct {
	entries map[string]Criteria
}

// NewCatalog validates entries and builds a catalog. Mood names are trimmed
// and lowercased. Any invalid year bound fails the whole catalog.
func NewCatalog(entries map[string]Entry) (*Catalog, error) {
	c := &Catalog{entries: make(map[string]Criteria, len(entries))}
	for name, e := range entries {
		key := Key(name)
		if key == "" {
			return nil, &CatalogError{Mood: name, Err: fmt.Errorf("empty mood name")}
		}
		if _, dup := c.entries[key]; dup {
			return nil, &CatalogError{Mood: name, Err: fmt.Errorf("duplicate mood name %q", key)}
		}

		crit := Criteria{
			Genres:              genres(e.Genres),
			DescriptionKeywords: compact(e.DescriptionKeywords),
		}
		if strings.TrimSpace(e.Year) != "" {
			bound, err := ParseYearBound(e.Year)
			if err != nil {
				return nil, &CatalogError{Mood: name, Err: err}
			}
			crit.YearBound = &bound
		}
		c.entries[key] = crit
	}
	return c, nil
}

// Key is the lookup form of a mood name.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup returns the criteria for mood, ignoring case.
func (c *Catalog) Lookup(mood string) (Criteria, bool) {
	crit, ok := c.entries[Key(mood)]
	return crit, ok
}

// Resolve returns the predicate for mood. An unknown mood accepts every record.
func (c *Catalog) Resolve(mood string) filter.Predicate {
	crit, ok := c.Lookup(mood)
	if !ok {
		metrics.RecordUnknownMood()
		logging.Debug().Str("mood", mood).Msg("Unknown mood, accepting all records")
		return filter.Any
	}
	return crit.Predicate()
}

// Names returns the catalog's mood names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of moods in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// genres normalizes listed genres the way stored genre tokens are normalized,
// so a catalog entry such as "Sci-Fi" matches the stored "science fiction".
func genres(in []string) []string {
	out := make([]string, 0, len(in))
	for _, g := range in {
		if g = normalize.Genre(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
