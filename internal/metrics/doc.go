// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

/*
Package metrics provides Prometheus metrics collection and export for observability.

# Overview

The package provides metrics for:
  - HTTP request latency and throughput
  - Query engine latency and match counts, by mode (mood or filters)
  - Dataset snapshot size, version, and reload outcomes
  - DuckDB file read latency and errors
  - Response cache hit/miss rates
  - Circuit breaker state transitions

All collectors are registered with the default registry through promauto and
are safe for concurrent use.

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:5050/metrics

# Usage

	start := time.Now()
	page := engine.Query(table, req)
	metrics.RecordQuery("filters", page.TotalMatches, time.Since(start))
*/
package metrics
