// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

/*
Package cache provides thread-safe in-memory caching with TTL support.

The HTTP layer uses it to memoize facet listings and result pages. Keys are
built with GenerateKey from the request and the dataset snapshot version, so
a reload makes every older entry unreachable; those entries then age out
through the TTL.

# Overview

  - Thread-safe concurrent access (sync.RWMutex)
  - TTL expiration, checked lazily on Get and swept periodically
  - Optional entry bound; when full, the entry closest to expiry is evicted
  - Hit, miss, and eviction counters, also exported as Prometheus metrics
    labeled with the cache name

# Usage

	c := cache.New("query", 5*time.Minute, 1000)
	defer c.Close()

	key := cache.GenerateKey("titles", params)
	if page, ok := c.Get(key); ok {
	    return page.(models.ResultPage)
	}
	page := engine.Query(table, req)
	c.Set(key, page)

Cached values are shared between readers and must not be mutated.
*/
package cache
