// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

/*
Package middleware provides HTTP instrumentation for the query API.

PrometheusMetrics records request count, latency and in-flight requests
labeled by the chi route pattern. It uses the http.HandlerFunc signature and
is adapted to chi's func(http.Handler) http.Handler by the api package:

	r.Use(chiMiddleware(middleware.PrometheusMetrics))

Route patterns rather than raw paths keep the endpoint label bounded;
requests that match no route are recorded as "unmatched".
*/
package middleware
