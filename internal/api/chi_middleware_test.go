// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package api

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/reelsift/internal/config"
	"github.com/tomtom215/reelsift/internal/logging"
	"github.com/tomtom215/reelsift/internal/metrics"
	"github.com/tomtom215/reelsift/internal/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// =====================================================
// ChiMiddleware Configuration Tests
// =====================================================

func TestNewChiMiddleware_DefaultConfig(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(nil)
	if m.config == nil {
		t.Fatal("config is nil")
	}
	if len(m.config.CORSAllowedOrigins) != 0 {
		t.Errorf("CORSAllowedOrigins = %v, want []", m.config.CORSAllowedOrigins)
	}
	if m.config.CORSMaxAge != 86400 {
		t.Errorf("CORSMaxAge = %d, want 86400", m.config.CORSMaxAge)
	}
	if m.config.RateLimitOnLimit == nil {
		t.Error("RateLimitOnLimit should default to the JSON handler")
	}
}

func TestChiMiddlewareConfigFromSecurity(t *testing.T) {
	t.Parallel()

	cfg := ChiMiddlewareConfigFromSecurity(config.SecurityConfig{
		RateLimitReqs:     42,
		RateLimitWindow:   30 * time.Second,
		RateLimitDisabled: true,
		CORSOrigins:       []string{"https://example.com"},
	})

	if cfg.RateLimitRequests != 42 || cfg.RateLimitWindow != 30*time.Second || !cfg.RateLimitDisabled {
		t.Errorf("rate limit = %d/%v disabled=%v", cfg.RateLimitRequests, cfg.RateLimitWindow, cfg.RateLimitDisabled)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "https://example.com" {
		t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
	if len(cfg.CORSAllowedMethods) == 0 {
		t.Error("CORSAllowedMethods should keep the defaults")
	}
}

// =====================================================
// CORS
// =====================================================

func TestCORS_Preflight(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://app.example.com"}
	handler := NewChiMiddleware(cfg).CORS()(okHandler())

	tests := []struct {
		origin     string
		wantHeader string
	}{
		{"https://app.example.com", "https://app.example.com"},
		{"https://evil.example.com", ""},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/titles", nil)
		req.Header.Set("Origin", tt.origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantHeader {
			t.Errorf("origin %s: Access-Control-Allow-Origin = %q, want %q", tt.origin, got, tt.wantHeader)
		}
	}
}

// =====================================================
// Rate limiting
// =====================================================

func TestRateLimit_Exceeded(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 1
	cfg.RateLimitWindow = time.Minute
	handler := NewChiMiddleware(cfg).RateLimit()(okHandler())

	before := testutil.ToFloat64(metrics.APIRateLimitHits.WithLabelValues(middleware.UnmatchedEndpoint))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/v1/moods", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", first.Code)
	}

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/v1/moods", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", second.Code)
	}

	var response APIResponse
	if err := json.Unmarshal(second.Body.Bytes(), &response); err != nil {
		t.Fatalf("429 body is not JSON: %v", err)
	}
	if response.Error == nil || response.Error.Code != ErrCodeTooManyRequests {
		t.Errorf("error = %+v", response.Error)
	}

	after := testutil.ToFloat64(metrics.APIRateLimitHits.WithLabelValues(middleware.UnmatchedEndpoint))
	if after-before != 1 {
		t.Errorf("rate limit hits increased by %v, want 1", after-before)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 1
	cfg.RateLimitDisabled = true
	m := NewChiMiddleware(cfg)

	for name, mw := range map[string]func(http.Handler) http.Handler{
		"default": m.RateLimit(),
		"health":  m.RateLimitHealth(),
	} {
		handler := mw(okHandler())
		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("%s: request %d status = %d, want 200", name, i, w.Code)
			}
		}
	}
}

// =====================================================
// Request ID and security headers
// =====================================================

func TestRequestIDWithLogging(t *testing.T) {
	t.Parallel()

	var gotID, gotCorrelation string
	handler := RequestIDWithLogging()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = logging.RequestIDFromContext(r.Context())
		gotCorrelation = logging.CorrelationIDFromContext(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if gotID == "" {
			t.Fatal("request ID not set in context")
		}
		if gotCorrelation == "" {
			t.Error("correlation ID not set in context")
		}
		if w.Header().Get("X-Request-ID") != gotID {
			t.Errorf("X-Request-ID = %q, want %q", w.Header().Get("X-Request-ID"), gotID)
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "upstream-id")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		if gotID != "upstream-id" {
			t.Errorf("request ID = %q, want upstream-id", gotID)
		}
		if w.Header().Get("X-Request-ID") != "upstream-id" {
			t.Errorf("X-Request-ID = %q, want upstream-id", w.Header().Get("X-Request-ID"))
		}
	})
}

func TestAPISecurityHeaders(t *testing.T) {
	t.Parallel()

	handler := APISecurityHeaders()(okHandler())

	tests := []struct {
		name     string
		tls      bool
		proto    string
		wantHSTS bool
	}{
		{"plain http", false, "", false},
		{"direct tls", true, "", true},
		{"tls proxy", false, "https", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.tls {
				req.TLS = &tls.ConnectionState{}
			}
			if tt.proto != "" {
				req.Header.Set("X-Forwarded-Proto", tt.proto)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Header().Get("X-Content-Type-Options") != "nosniff" {
				t.Error("missing X-Content-Type-Options")
			}
			if w.Header().Get("X-Frame-Options") != "DENY" {
				t.Error("missing X-Frame-Options")
			}
			if got := w.Header().Get("Strict-Transport-Security") != ""; got != tt.wantHSTS {
				t.Errorf("HSTS present = %v, want %v", got, tt.wantHSTS)
			}
		})
	}
}
