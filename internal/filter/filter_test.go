// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package filter

import (
	"reflect"
	"testing"

	"github.com/tomtom215/reelsift/internal/models"
)

func record(title, genres, cast string, year int, description string) models.Record {
	r := models.Record{Title: title}
	if genres != "" {
		r.Genres = models.StringPtr(genres)
	}
	if cast != "" {
		r.Cast = models.StringPtr(cast)
	}
	if year != 0 {
		r.Year = models.IntPtr(year)
	}
	if description != "" {
		r.Description = models.StringPtr(description)
	}
	return r
}

func titles(t models.Table) []string {
	out := make([]string, 0, len(t))
	for _, r := range t {
		out = append(out, r.Title)
	}
	return out
}

// sampleTable holds one record with only drama, one with only action, one
// with both, and one with no metadata at all.
func sampleTable() models.Table {
	return models.Table{
		record("Only Drama", "drama", "smith", 1945, "a quiet nature film"),
		record("Only Action", "action", "jones", 2001, "explosions"),
		record("Both", "drama,action", "smith,jones", 2010, "quiet explosions"),
		{Title: "Bare"},
	}
}

func TestComposeLogicModes(t *testing.T) {
	t.Parallel()

	table := sampleTable()

	tests := []struct {
		name  string
		logic models.Logic
		want  []string
	}{
		{"all", models.LogicAll, []string{"Both"}},
		{"any", models.LogicAny, []string{"Only Drama", "Only Action", "Both"}},
		{"default is any", "", []string{"Only Drama", "Only Action", "Both"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := &models.FilterRequest{Genres: []string{"drama", "action"}, Logic: tt.logic}
			got := titles(Apply(table, Compose(req)))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Compose(%s) matched %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestComposeEmptyRequestAcceptsAll(t *testing.T) {
	t.Parallel()

	table := sampleTable()
	got := Apply(table, Compose(&models.FilterRequest{Logic: models.LogicAll}))
	if len(got) != len(table) {
		t.Errorf("empty request matched %d records, want %d", len(got), len(table))
	}
}

func TestComposeDimensions(t *testing.T) {
	t.Parallel()

	table := sampleTable()

	tests := []struct {
		name string
		req  models.FilterRequest
		want []string
	}{
		{
			name: "cast is case-insensitive",
			req:  models.FilterRequest{Cast: "SMITH"},
			want: []string{"Only Drama", "Both"},
		},
		{
			name: "years membership",
			req:  models.FilterRequest{Years: []int{1945, 2010}},
			want: []string{"Only Drama", "Both"},
		},
		{
			name: "description any",
			req:  models.FilterRequest{DescriptionKeywords: []string{"nature", "explosions"}},
			want: []string{"Only Drama", "Only Action", "Both"},
		},
		{
			name: "description all",
			req:  models.FilterRequest{DescriptionKeywords: []string{"quiet", "explosions"}, Logic: models.LogicAll},
			want: []string{"Both"},
		},
		{
			name: "description is case-sensitive",
			req:  models.FilterRequest{DescriptionKeywords: []string{"Quiet"}},
			want: []string{},
		},
		{
			name: "title is case-insensitive",
			req:  models.FilterRequest{Title: "ONLY"},
			want: []string{"Only Drama", "Only Action"},
		},
		{
			name: "all across dimensions",
			req:  models.FilterRequest{Cast: "jones", Years: []int{2001}, Logic: models.LogicAll},
			want: []string{"Only Action"},
		},
		{
			name: "any across dimensions",
			req:  models.FilterRequest{Cast: "jones", Title: "drama"},
			want: []string{"Only Drama", "Only Action", "Both"},
		},
		{
			name: "substring genre match",
			req:  models.FilterRequest{Genres: []string{"act"}},
			want: []string{"Only Action", "Both"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := tt.req
			got := titles(Apply(table, Compose(&req)))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("matched %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNullFieldsNeverMatch(t *testing.T) {
	t.Parallel()

	bare := &models.Record{Title: "Bare"}
	preds := map[string]Predicate{
		"genres":      GenresContain([]string{""}, models.LogicAny),
		"cast":        CastContains(""),
		"years":       YearIn([]int{0}),
		"description": DescriptionContains([]string{""}, models.LogicAll),
		"year before": YearBefore(3000),
	}
	for name, p := range preds {
		if p(bare) {
			t.Errorf("%s predicate matched a record with a null field", name)
		}
	}
}

func TestDimensions(t *testing.T) {
	t.Parallel()

	req := &models.FilterRequest{
		Title:               "x",
		Years:               []int{1},
		Genres:              []string{"g"},
		DescriptionKeywords: []string{"k"},
		Cast:                "c",
	}
	want := []string{DimensionGenres, DimensionCast, DimensionYears, DimensionDescription, DimensionTitle}
	if got := Dimensions(req); !reflect.DeepEqual(got, want) {
		t.Errorf("Dimensions() = %v, want %v", got, want)
	}
}

func TestAndOrShortCircuit(t *testing.T) {
	t.Parallel()

	calls := 0
	counting := func(*models.Record) bool {
		calls++
		return true
	}

	r := &models.Record{}
	reject := func(*models.Record) bool { return false }
	if And(reject, counting)(r) {
		t.Error("And(reject, ...) should reject")
	}
	if !Or(Any, counting)(r) {
		t.Error("Or(Any, ...) should accept")
	}
	if calls != 0 {
		t.Errorf("combinators evaluated %d predicates after the result was decided", calls)
	}
	if !And()(r) || !Or()(r) {
		t.Error("empty combinators should accept every record")
	}
}
