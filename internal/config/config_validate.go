// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package config

import (
	"fmt"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateAPI(); err != nil {
		return err
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	if err := c.validateDataset(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// validateAPI validates pagination bounds
func (c *Config) validateAPI() error {
	if c.API.MaxPageSize < 1 {
		return fmt.Errorf("API_MAX_PAGE_SIZE must be at least 1")
	}
	if c.API.DefaultPageSize < 1 || c.API.DefaultPageSize > c.API.MaxPageSize {
		return fmt.Errorf("API_DEFAULT_PAGE_SIZE must be between 1 and API_MAX_PAGE_SIZE (%d)", c.API.MaxPageSize)
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validateDataset requires at least one source file.
func (c *Config) validateDataset() error {
	if c.Dataset.MoviesPath == "" && c.Dataset.SeriesPath == "" {
		return fmt.Errorf("at least one of MOVIES_PATH or SERIES_PATH is required")
	}
	if c.Dataset.Watch && c.Dataset.ReloadMinInterval <= 0 {
		return fmt.Errorf("DATASET_RELOAD_MIN_INTERVAL must be positive when DATASET_WATCH=true")
	}
	return nil
}

// validateCache validates the response cache TTL
func (c *Config) validateCache() error {
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive when CACHE_ENABLED=true")
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
