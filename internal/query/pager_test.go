// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package query

import (
	"fmt"
	"math"
	"testing"

	"github.com/tomtom215/reelsift/internal/models"
)

func numberedTable(n int) models.Table {
	t := make(models.Table, n)
	for i := range t {
		t[i] = models.Record{Title: fmt.Sprintf("T%d", i)}
	}
	return t
}

func TestPaginateCountFormula(t *testing.T) {
	t.Parallel()

	for total := 0; total <= 7; total++ {
		matches := numberedTable(total)
		for pageSize := 1; pageSize <= 4; pageSize++ {
			for page := 1; page <= 5; page++ {
				got := Paginate(matches, page, pageSize)
				want := min(pageSize, max(0, total-(page-1)*pageSize))
				if len(got.Items) != want {
					t.Errorf("Paginate(T=%d, page=%d, size=%d) returned %d items, want %d",
						total, page, pageSize, len(got.Items), want)
				}
				if got.TotalMatches != total {
					t.Errorf("Paginate(T=%d) TotalMatches = %d", total, got.TotalMatches)
				}
				if want > 0 && got.Items[0].Title != fmt.Sprintf("T%d", (page-1)*pageSize) {
					t.Errorf("Paginate(T=%d, page=%d, size=%d) first item = %s",
						total, page, pageSize, got.Items[0].Title)
				}
			}
		}
	}
}

func TestPaginateOutOfRange(t *testing.T) {
	t.Parallel()

	got := Paginate(numberedTable(3), 10, 2)
	if len(got.Items) != 0 {
		t.Errorf("out-of-range page returned %d items", len(got.Items))
	}
	if got.Items == nil {
		t.Error("out-of-range page should return an empty, non-nil item list")
	}
	if got.TotalMatches != 3 {
		t.Errorf("TotalMatches = %d, want 3", got.TotalMatches)
	}

	huge := Paginate(numberedTable(3), math.MaxInt, math.MaxInt)
	if len(huge.Items) != 0 || huge.TotalMatches != 3 {
		t.Errorf("huge paging values returned %+v", huge)
	}
}

func TestPaginateRendersNullsAsEmpty(t *testing.T) {
	t.Parallel()

	matches := models.Table{{Title: "Bare"}}
	got := Paginate(matches, 1, 10)

	item := got.Items[0]
	if item.Genres != "" || item.Cast != "" || item.Description != "" || item.Link != "" {
		t.Errorf("null text fields should be empty strings, got %+v", item)
	}
	if matches[0].Genres != nil {
		t.Error("Paginate must not modify the matched records")
	}
}
