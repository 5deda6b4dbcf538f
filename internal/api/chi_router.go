// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/reelsift/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router. A nil middleware config selects the defaults.
func NewRouter(handler *Handler, mwConfig *ChiMiddlewareConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwConfig),
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // must be global to answer OPTIONS preflight

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).MethodNotAllowed()
	})

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chimiddleware.Compress(5, "application/json"))

		r.Get("/categories", router.handler.Categories)
		r.Post("/titles", router.handler.Titles)
		r.Get("/moods", router.handler.Moods)
	})

	// Unversioned routes kept for clients of the original service
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chimiddleware.Compress(5, "application/json"))

		r.Get("/categories", router.handler.LegacyCategories)
		r.Post("/movies", router.handler.LegacyMovies)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
