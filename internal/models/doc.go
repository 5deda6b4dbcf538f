// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

/*
Package models defines the data structures shared by every layer of Reelsift.

Key Components:

  - RawRecord: one title as read from a CSV/JSON source, before normalization
  - Record: one prepared title; genre and cast text are normalized and comma-joined
  - Table: an ordered, read-only sequence of Records for one content type
  - FilterRequest: the typed, defaulted query built at the API or CLI boundary
  - ResultPage: one page of matches plus the total match count
  - Categories: the facet listings (genres, cast, years) for filter UIs

Records are immutable after preparation. Null text fields are represented with nil
pointers in Record and rendered as empty strings in Item, the output copy returned
in a ResultPage.

Usage Example - Building a request:

	import "github.com/tomtom215/reelsift/internal/models"

	years, err := models.ParseYears([]string{"1945", "2001"})
	if err != nil {
	    return err // errors.Is(err, models.ErrMalformedInput)
	}

	req := models.FilterRequest{
	    Genres:   []string{"drama", "action"},
	    Years:    years,
	    Logic:    models.LogicAny,
	    Page:     1,
	    PageSize: 10,
	}
	if err := req.Normalize(); err != nil {
	    return err
	}

Thread Safety:

Tables and Records are never mutated after preparation and may be shared freely
across goroutines. FilterRequest values are owned by the request that built them.
*/
package models
