// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("expected default level 'info', got '%s'", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("expected default format 'json', got '%s'", cfg.Format)
	}
	if cfg.Caller {
		t.Error("expected default caller to be false")
	}
	if !cfg.Timestamp {
		t.Error("expected default timestamp to be true")
	}
}

// TestInit reconfigures the global logger, so it does not run in parallel.
func TestInit(t *testing.T) {
	var buf bytes.Buffer

	Init(Config{
		Level:     "debug",
		Format:    "json",
		Timestamp: true,
		Output:    &buf,
	})
	defer Init(DefaultConfig())

	Info().Str("content_type", "movies").Msg("test message")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("expected output to contain 'test message', got: %s", output)
	}
	if !strings.Contains(output, `"level":"info"`) {
		t.Errorf("expected output to contain level, got: %s", output)
	}
	if !strings.Contains(output, `"content_type":"movies"`) {
		t.Errorf("expected structured field in output, got: %s", output)
	}
}

func TestInitConsoleFormat(t *testing.T) {
	var buf bytes.Buffer

	Init(Config{Level: "info", Format: "console", Output: &buf})
	defer Init(DefaultConfig())

	Warn().Msg("console message")

	if !strings.Contains(buf.String(), "console message") {
		t.Errorf("expected console output, got: %s", buf.String())
	}
	if strings.HasPrefix(buf.String(), "{") {
		t.Errorf("console format should not emit JSON, got: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"disabled", zerolog.Disabled},
		{"DEBUG", zerolog.DebugLevel},
		{"invalid", zerolog.InfoLevel}, // default
		{"", zerolog.InfoLevel},        // empty
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if result := parseLevel(tt.input); result != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidLevel(t *testing.T) {
	t.Parallel()

	for _, lvl := range []string{"debug", "INFO", "warning", "disabled"} {
		if !ValidLevel(lvl) {
			t.Errorf("ValidLevel(%q) = false, want true", lvl)
		}
	}
	for _, lvl := range []string{"", "verbose", "loud"} {
		if ValidLevel(lvl) {
			t.Errorf("ValidLevel(%q) = true, want false", lvl)
		}
	}
}
