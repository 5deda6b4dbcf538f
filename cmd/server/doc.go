// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

/*
Package main is the entry point for the Reelsift HTTP server.

Reelsift answers filter queries over a movies table and a series table
loaded from CSV or JSON files. Queries combine genres, cast, title,
years, description keywords and a named mood under AND or OR logic and return
paginated title summaries.

# Application Architecture

	RootSupervisor ("reelsift")
	├── DataSupervisor ("data-layer")
	│   └── DatasetWatchService (optional, DATASET_WATCH=true)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment variables
 2. Logging: zerolog with JSON or console output
 3. Mood catalog: built-in or loaded from MOOD_CATALOG_PATH
 4. Dataset: DuckDB loader, normalization and the first snapshot (fatal on failure)
 5. Response cache: optional, keyed by dataset version
 6. Query engine and HTTP handlers
 7. Supervisor tree: suture v4 with the HTTP server and optional watcher

# Endpoints

	GET  /api/v1/health          Dataset status and uptime
	GET  /api/v1/health/live     Liveness probe
	GET  /api/v1/health/ready    Readiness probe (503 until loaded)
	GET  /api/v1/categories      Genre, cast and year facets
	POST /api/v1/titles          Filter query with pagination
	GET  /api/v1/moods           Known mood names
	GET  /categories             Legacy facets (bare JSON)
	POST /movies                 Legacy query (flat JSON)
	GET  /metrics                Prometheus metrics

# Graceful Shutdown

SIGINT or SIGTERM cancels the root context. The HTTP server drains in-flight
requests for up to HTTP_SHUTDOWN_TIMEOUT, the watcher stops, and the
DuckDB loader is closed.

# Build

	go build -ldflags "-X main.version=1.0.0" -o reelsift-server ./cmd/server
*/
package main
