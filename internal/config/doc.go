// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

/*
Package config provides centralized configuration management for Reelsift.

# Configuration Sources

Configuration is layered with Koanf v2, later layers overriding earlier ones:

 1. Built-in defaults (structs provider)
 2. Optional YAML file: $CONFIG_PATH, config.yaml, config.yml, /etc/reelsift/config.yaml
 3. Environment variables (explicit name mapping, see envTransformFunc)

# Environment Variables

HTTP Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 5050)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)

API:
  - API_DEFAULT_PAGE_SIZE: Page size when a request omits it (default: 10)
  - API_MAX_PAGE_SIZE: Largest accepted page size (default: 100)

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Dataset:
  - MOVIES_PATH, SERIES_PATH: CSV or JSON source files
  - DATASET_WATCH: Reload when a source file changes (default: false)
  - DATASET_RELOAD_MIN_INTERVAL: Minimum spacing between reloads (default: 2s)

Moods:
  - MOOD_CATALOG_PATH: YAML/JSON mood catalog (default: built-in catalog)

Cache:
  - CACHE_ENABLED, CACHE_TTL

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Thread Safety

Config is immutable after Load and safe for concurrent reads.
*/
package config
