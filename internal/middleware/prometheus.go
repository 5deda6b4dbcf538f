// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tomtom215/reelsift/internal/metrics"
)

// UnmatchedEndpoint labels requests that did not resolve to a chi route.
const UnmatchedEndpoint = "unmatched"

// PrometheusMetrics records count, latency and in-flight requests per route.
// A handler that never calls WriteHeader is recorded as 200.
func PrometheusMetrics(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.RecordAPIRequest(r.Method, routePattern(r), metrics.StatusLabel(status), time.Since(start))
	}
}

// routePattern returns the matched chi pattern. It must be read after the
// router has served the request, since chi fills it in while routing.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return UnmatchedEndpoint
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return UnmatchedEndpoint
}
