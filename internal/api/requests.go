// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelsift/internal/models"
	"github.com/tomtom215/reelsift/internal/normalize"
)

// maxBodyBytes caps the size of a query body.
const maxBodyBytes = 1 << 20

// TitlesRequest is the body of POST /api/v1/titles and POST /movies.
type TitlesRequest struct {
	Genres       []string `json:"genres" validate:"omitempty,max=50,dive,max=100"`
	Cast         string   `json:"cast" validate:"max=200"`
	Title        string   `json:"title" validate:"max=200"`
	Years        YearList `json:"years" validate:"omitempty,max=200"`
	Description  string   `json:"description" validate:"max=1000"`
	FilterLogic  string   `json:"filter_logic" validate:"omitempty,filterlogic"`
	Mood         string   `json:"mood" validate:"max=100"`
	Page         *int     `json:"page" validate:"omitempty,min=1"`
	ItemsPerPage *int     `json:"items_per_page" validate:"omitempty,min=1"`
	ContentType  string   `json:"content_type" validate:"omitempty,contenttype"`
}

// YearList accepts years as JSON numbers or numeric strings, either as an
// array or a single value. Values are kept as text until ToFilterRequest
// parses them.
type YearList []string

// UnmarshalJSON implements json.Unmarshaler.
func (y *YearList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*y = nil
		return nil
	}

	var items []json.RawMessage
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return fmt.Errorf("years: %w", err)
		}
	} else {
		items = []json.RawMessage{trimmed}
	}

	out := make(YearList, 0, len(items))
	for _, item := range items {
		v, err := yearText(item)
		if err != nil {
			return err
		}
		out = append(out, v)
	}
	*y = out
	return nil
}

func yearText(item json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(item, &s); err == nil {
		return s, nil
	}
	var f float64
	if err := json.Unmarshal(item, &f); err != nil {
		return "", fmt.Errorf("years: expected a number or string, got %s", string(item))
	}
	if f != float64(int64(f)) {
		return "", fmt.Errorf("years: %s is not a whole number", string(item))
	}
	return strconv.FormatInt(int64(f), 10), nil
}

// decodeTitlesRequest reads a TitlesRequest from the request body. An empty
// body is an empty request.
func decodeTitlesRequest(w http.ResponseWriter, r *http.Request) (*TitlesRequest, error) {
	var body TitlesRequest
	if r.Body == nil {
		return &body, nil
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return &body, nil
		}
		return nil, &models.InputError{Field: "body", Reason: err.Error()}
	}
	return &body, nil
}

// ToFilterRequest converts the wire body into a normalized FilterRequest.
// Free text is trimmed and lowercased, the description is split into
// keywords, and a page size above maxPageSize is rejected.
func (b *TitlesRequest) ToFilterRequest(defaultPageSize, maxPageSize int) (*models.FilterRequest, error) {
	logic, err := models.ParseLogic(b.FilterLogic)
	if err != nil {
		return nil, err
	}
	ct, err := models.ParseContentType(b.ContentType)
	if err != nil {
		return nil, err
	}
	years, err := models.ParseYears(b.Years)
	if err != nil {
		return nil, err
	}

	genres := make([]string, 0, len(b.Genres))
	for _, g := range b.Genres {
		genres = append(genres, normalize.Fragment(g))
	}

	req := &models.FilterRequest{
		Genres:              genres,
		Cast:                normalize.Fragment(b.Cast),
		Years:               years,
		DescriptionKeywords: models.SplitKeywords(normalize.Fragment(b.Description)),
		Title:               normalize.Fragment(b.Title),
		Mood:                normalize.Fragment(b.Mood),
		Logic:               logic,
		PageSize:            defaultPageSize,
		ContentType:         ct,
	}
	if b.Page != nil {
		req.Page = *b.Page
	}
	if b.ItemsPerPage != nil {
		req.PageSize = *b.ItemsPerPage
	}
	if maxPageSize > 0 && req.PageSize > maxPageSize {
		return nil, &models.InputError{
			Field:  "items_per_page",
			Value:  strconv.Itoa(req.PageSize),
			Reason: fmt.Sprintf("must be at most %d", maxPageSize),
		}
	}

	if err := req.Normalize(); err != nil {
		return nil, err
	}
	return req, nil
}
