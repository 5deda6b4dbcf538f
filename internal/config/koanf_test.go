// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 5050 {
		t.Errorf("Server.Port = %d, want 5050", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 10s", cfg.Server.ShutdownTimeout)
	}
	if cfg.API.DefaultPageSize != 10 {
		t.Errorf("API.DefaultPageSize = %d, want 10", cfg.API.DefaultPageSize)
	}
	if cfg.API.MaxPageSize != 100 {
		t.Errorf("API.MaxPageSize = %d, want 100", cfg.API.MaxPageSize)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.Dataset.Watch {
		t.Error("Dataset.Watch should be false by default")
	}
	if cfg.Moods.CatalogPath != "" {
		t.Errorf("Moods.CatalogPath = %q, want empty (built-in catalog)", cfg.Moods.CatalogPath)
	}
	if !cfg.Cache.Enabled || cfg.Cache.TTL != 5*time.Minute {
		t.Errorf("Cache = %+v, want enabled with 5m TTL", cfg.Cache)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

// TestEnvTransformFunc verifies environment variable name transformations
func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"HTTP_PORT", "server.port"},
		{"HTTP_SHUTDOWN_TIMEOUT", "server.shutdown_timeout"},
		{"API_MAX_PAGE_SIZE", "api.max_page_size"},
		{"RATE_LIMIT_REQUESTS", "security.rate_limit_reqs"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"MOVIES_PATH", "dataset.movies_path"},
		{"SERIES_PATH", "dataset.series_path"},
		{"DATASET_WATCH", "dataset.watch"},
		{"MOOD_CATALOG_PATH", "moods.catalog_path"},
		{"CACHE_TTL", "cache.ttl"},
		{"LOG_LEVEL", "logging.level"},
		{"log_format", "logging.format"},

		// Unmapped variables are dropped
		{"PATH", ""},
		{"HOME", ""},
		{"RANDOM_VAR", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := envTransformFunc(tt.input); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// chdirTemp switches into an empty temp dir so no stray config.yaml is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origDir); err != nil {
			t.Errorf("failed to restore working directory: %v", err)
		}
	})
	t.Setenv(ConfigPathEnvVar, "")
	return tmpDir
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := chdirTemp(t)

	t.Run("no config file", func(t *testing.T) {
		if got := findConfigFile(); got != "" && got[0] != '/' {
			t.Errorf("findConfigFile() = %q, want empty or system path", got)
		}
	})

	t.Run("config.yaml in cwd", func(t *testing.T) {
		if err := os.WriteFile("config.yaml", []byte("server:\n  port: 6000\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		defer os.Remove("config.yaml")
		if got := findConfigFile(); got != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", got)
		}
	})

	t.Run("CONFIG_PATH wins", func(t *testing.T) {
		customPath := filepath.Join(tmpDir, "custom.yaml")
		if err := os.WriteFile(customPath, []byte("{}\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		t.Setenv(ConfigPathEnvVar, customPath)
		if got := findConfigFile(); got != customPath {
			t.Errorf("findConfigFile() = %q, want %q", got, customPath)
		}
	})

	t.Run("CONFIG_PATH missing falls through", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
		if got := findConfigFile(); got == "/non/existent/config.yaml" {
			t.Error("findConfigFile() returned a path that does not exist")
		}
	})
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	chdirTemp(t)
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MOVIES_PATH", "/srv/movies.json")
	t.Setenv("SERIES_PATH", "")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("CACHE_TTL", "90s")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Dataset.MoviesPath != "/srv/movies.json" {
		t.Errorf("Dataset.MoviesPath = %q, want /srv/movies.json", cfg.Dataset.MoviesPath)
	}
	if cfg.Dataset.SeriesPath != "" {
		t.Errorf("Dataset.SeriesPath = %q, want empty", cfg.Dataset.SeriesPath)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if cfg.Cache.TTL != 90*time.Second {
		t.Errorf("Cache.TTL = %v, want 90s", cfg.Cache.TTL)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	tmpDir := chdirTemp(t)
	configPath := filepath.Join(tmpDir, "reelsift.yaml")
	content := `
server:
  port: 8080
  host: 127.0.0.1
dataset:
  movies_path: /data/movies.csv
  series_path: /data/series.csv
  watch: true
  genre_synonyms:
    doc: documentary
moods:
  catalog_path: /etc/reelsift/moods.yaml
logging:
  level: warn
  format: console
`
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Addr() != "127.0.0.1:8080" {
		t.Errorf("Server.Addr() = %q, want 127.0.0.1:8080", cfg.Server.Addr())
	}
	if !cfg.Dataset.Watch {
		t.Error("Dataset.Watch = false, want true")
	}
	if cfg.Dataset.GenreSynonyms["doc"] != "documentary" {
		t.Errorf("Dataset.GenreSynonyms = %v, want doc -> documentary", cfg.Dataset.GenreSynonyms)
	}
	if cfg.Moods.CatalogPath != "/etc/reelsift/moods.yaml" {
		t.Errorf("Moods.CatalogPath = %q", cfg.Moods.CatalogPath)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
	// Values absent from the file keep their defaults
	if cfg.API.DefaultPageSize != 10 {
		t.Errorf("API.DefaultPageSize = %d, want 10", cfg.API.DefaultPageSize)
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	tmpDir := chdirTemp(t)
	configPath := filepath.Join(tmpDir, "config.yaml")
	content := `
server:
  port: 8080
logging:
  level: warn
`
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999 (env override)", cfg.Server.Port)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want error (env override)", cfg.Logging.Level)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"port out of range", map[string]string{"HTTP_PORT": "70000"}},
		{"bad log level", map[string]string{"LOG_LEVEL": "verbose"}},
		{"no dataset", map[string]string{"MOVIES_PATH": "", "SERIES_PATH": ""}},
		{"default page above max", map[string]string{"API_DEFAULT_PAGE_SIZE": "500"}},
		{"rate window too long", map[string]string{"RATE_LIMIT_WINDOW": "2h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := LoadWithKoanf(); err == nil {
				t.Error("LoadWithKoanf() expected validation error, got nil")
			}
		})
	}
}
