// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
//
// Example - Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load config")
//	}
//	server := http.Server{Addr: cfg.Server.Addr()}
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Dataset  DatasetConfig  `koanf:"dataset"`
	Moods    MoodsConfig    `koanf:"moods"`
	Cache    CacheConfig    `koanf:"cache"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// APIConfig holds API pagination settings
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// DatasetConfig names the source files and reload behavior.
type DatasetConfig struct {
	MoviesPath        string            `koanf:"movies_path"`
	SeriesPath        string            `koanf:"series_path"`
	Watch             bool              `koanf:"watch"`
	ReloadMinInterval time.Duration     `koanf:"reload_min_interval"`
	GenreSynonyms     map[string]string `koanf:"genre_synonyms"`
}

// MoodsConfig locates the mood catalog. An empty path selects the built-in catalog.
type MoodsConfig struct {
	CatalogPath string `koanf:"catalog_path"`
}

// CacheConfig controls the response cache
type CacheConfig struct {
	Enabled bool          `koanf:"enabled"`
	TTL     time.Duration `koanf:"ttl"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from, in increasing priority:
//
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
