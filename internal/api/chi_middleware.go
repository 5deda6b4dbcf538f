// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/reelsift/internal/config"
	"github.com/tomtom215/reelsift/internal/logging"
	"github.com/tomtom215/reelsift/internal/metrics"
	"github.com/tomtom215/reelsift/internal/middleware"
)

// ChiMiddlewareConfig holds configuration for Chi middleware factories.
type ChiMiddlewareConfig struct {
	// CORS configuration
	CORSAllowedOrigins   []string
	CORSAllowedMethods   []string
	CORSAllowedHeaders   []string
	CORSExposedHeaders   []string
	CORSAllowCredentials bool
	CORSMaxAge           int // seconds

	// Rate limiting configuration
	RateLimitRequests int
	RateLimitWindow   time.Duration
	RateLimitDisabled bool
	RateLimitKeyFunc  httprate.KeyFunc
	RateLimitOnLimit  http.HandlerFunc
}

// DefaultChiMiddlewareConfig returns the default configuration.
// CORS origins default to empty and must be configured explicitly.
func DefaultChiMiddlewareConfig() *ChiMiddlewareConfig {
	return &ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{},
		CORSAllowedMethods: []string{"GET", "POST", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		CORSExposedHeaders: []string{"X-Request-ID"},
		CORSMaxAge:         86400,

		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
	}
}

// ChiMiddlewareConfigFromSecurity maps the security section of the
// application config onto a middleware configuration.
func ChiMiddlewareConfigFromSecurity(sec config.SecurityConfig) *ChiMiddlewareConfig {
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = sec.CORSOrigins
	cfg.RateLimitRequests = sec.RateLimitReqs
	cfg.RateLimitWindow = sec.RateLimitWindow
	cfg.RateLimitDisabled = sec.RateLimitDisabled
	return cfg
}

// ChiMiddleware provides Chi-compatible middleware factories.
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
	cors   func(http.Handler) http.Handler
}

// NewChiMiddleware creates a new Chi middleware factory with the given configuration.
func NewChiMiddleware(config *ChiMiddlewareConfig) *ChiMiddleware {
	if config == nil {
		config = DefaultChiMiddlewareConfig()
	}
	if config.RateLimitOnLimit == nil {
		config.RateLimitOnLimit = rateLimitExceeded
	}

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   config.CORSAllowedOrigins,
		AllowedMethods:   config.CORSAllowedMethods,
		AllowedHeaders:   config.CORSAllowedHeaders,
		ExposedHeaders:   config.CORSExposedHeaders,
		AllowCredentials: config.CORSAllowCredentials,
		MaxAge:           config.CORSMaxAge,
	})

	return &ChiMiddleware{
		config: config,
		cors:   corsHandler,
	}
}

// CORS returns a Chi-compatible CORS middleware using go-chi/cors.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimit returns the per-IP limiter for query endpoints.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitConfig{
		Requests: m.config.RateLimitRequests,
		Window:   m.config.RateLimitWindow,
	})
}

// RateLimitConfig defines rate limit parameters for specific endpoints.
type RateLimitConfig struct {
	// Requests is the number of requests allowed in the window
	Requests int
	// Window is the time window for rate limiting
	Window time.Duration
}

// RateLimitHealth is permissive limiting for probes and monitoring (1000/min).
var RateLimitHealth = RateLimitConfig{Requests: 1000, Window: time.Minute}

// RateLimitCustom returns a rate limiter with custom configuration.
func (m *ChiMiddleware) RateLimitCustom(limit RateLimitConfig) func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	keyFunc := m.config.RateLimitKeyFunc
	if keyFunc == nil {
		keyFunc = httprate.KeyByIP
	}

	return httprate.Limit(
		limit.Requests,
		limit.Window,
		httprate.WithKeyFuncs(keyFunc),
		httprate.WithLimitHandler(m.config.RateLimitOnLimit),
	)
}

// RateLimitHealth returns the limiter for health endpoints.
func (m *ChiMiddleware) RateLimitHealth() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitHealth)
}

// rateLimitExceeded answers a throttled request with the JSON envelope and
// counts the rejection per route.
func rateLimitExceeded(w http.ResponseWriter, r *http.Request) {
	endpoint := middleware.UnmatchedEndpoint
	if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
		endpoint = rctx.RoutePattern()
	}
	metrics.RecordRateLimitHit(endpoint)
	logging.Ctx(r.Context()).Debug().Str("endpoint", endpoint).Msg("Rate limit exceeded")
	NewResponseWriter(w, r).TooManyRequests("Rate limit exceeded, retry later")
}

// RequestIDWithLogging adds the request ID to the logging context.
// It wraps chi's RequestID middleware, reusing an inbound X-Request-ID or
// generating one, and echoes it on the response.
func RequestIDWithLogging() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		chiRequestID := chimiddleware.RequestID(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(chimiddleware.RequestIDHeader)
			if requestID == "" {
				requestID = logging.GenerateRequestID()
				r.Header.Set(chimiddleware.RequestIDHeader, requestID)
			}
			w.Header().Set(chimiddleware.RequestIDHeader, requestID)

			ctx := logging.ContextWithRequestID(r.Context(), requestID)
			ctx = logging.ContextWithNewCorrelationID(ctx)

			chiRequestID.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// APISecurityHeaders adds security headers to API responses.
// HSTS is only sent when the request arrived over TLS, directly or through a
// terminating proxy.
func APISecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}
