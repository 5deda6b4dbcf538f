// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/reelsift/internal/dataset"
	"github.com/tomtom215/reelsift/internal/logging"
	"github.com/tomtom215/reelsift/internal/models"
	"github.com/tomtom215/reelsift/internal/validation"
)

// respondError maps a handler error onto a status code and error envelope.
//
//	validation / malformed input -> 400 VALIDATION_FAILED
//	dataset not loaded           -> 503 SERVICE_UNAVAILABLE
//	anything else                -> 500 INTERNAL_ERROR
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	rw := NewResponseWriter(w, r)

	var verr *validation.RequestValidationError
	if errors.As(err, &verr) {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	var inErr *models.InputError
	if errors.As(err, &inErr) {
		rw.ValidationError(inErr.Error(), map[string]interface{}{
			"field":  inErr.Field,
			"reason": inErr.Reason,
		})
		return
	}
	if errors.Is(err, models.ErrMalformedInput) {
		rw.ValidationError(err.Error(), nil)
		return
	}

	if errors.Is(err, dataset.ErrNotLoaded) {
		rw.ServiceUnavailable("Dataset is not loaded yet")
		return
	}

	logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
	rw.InternalError("An internal error occurred")
}
