// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

/*
Package api exposes the title query engine over HTTP.

The router is built on go-chi/chi with go-chi/cors, go-chi/httprate and the
Prometheus middleware from internal/middleware. Every JSON response except the
legacy aliases uses the APIResponse envelope:

	{
	  "success": true,
	  "data": { ... },
	  "meta": {"request_id": "...", "timestamp": "...", "pagination": {...}}
	}

Endpoints:

	GET  /api/v1/health         overall status, dataset version, record counts, cache hit rate
	GET  /api/v1/health/live    liveness probe
	GET  /api/v1/health/ready   readiness probe (503 until the dataset is loaded)
	GET  /api/v1/categories     genre, cast and year facets (?content_type=movies|series|both)
	POST /api/v1/titles         filtered, paginated titles
	GET  /api/v1/moods          mood names known to the catalog
	GET  /categories            legacy facet listing, bare JSON
	POST /movies                legacy query, {movies, total_items, page, items_per_page}
	GET  /metrics               Prometheus exposition

Query bodies use the wire names filter_logic and items_per_page. Free text
(cast, title, description, mood) is trimmed and lowercased on arrival and
description is split on whitespace into keywords.
*/
package api
