// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelsift_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelsift_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelsift_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelsift_api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Query Engine Metrics
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelsift_query_duration_seconds",
			Help:    "Time spent filtering and paging one query",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"mode"}, // "mood", "filters"
	)

	QueryMatches = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelsift_query_matches",
			Help:    "Number of records matched per query",
			Buckets: []float64{0, 1, 10, 50, 100, 500, 1000, 5000, 10000},
		},
		[]string{"mode"},
	)

	UnknownMoods = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reelsift_unknown_moods_total",
			Help: "Mood lookups that missed the catalog and matched every record",
		},
	)

	// Dataset Metrics
	DatasetRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "reelsift_dataset_records",
			Help: "Number of records in the current dataset snapshot",
		},
		[]string{"content_type"},
	)

	DatasetVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelsift_dataset_version",
			Help: "Version of the current dataset snapshot (increments on every reload)",
		},
	)

	DatasetReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelsift_dataset_reloads_total",
			Help: "Dataset reload attempts by result",
		},
		[]string{"result"}, // "success", "failure", "rejected"
	)

	DatasetReloadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reelsift_dataset_reload_duration_seconds",
			Help:    "Duration of dataset reloads in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	DatasetLastReload = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelsift_dataset_last_reload_timestamp",
			Help: "Unix timestamp of the last successful dataset reload",
		},
	)

	// Loader Metrics
	LoaderQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelsift_loader_query_duration_seconds",
			Help:    "Duration of DuckDB file reads in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"format"},
	)

	LoaderErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelsift_loader_errors_total",
			Help: "Total number of dataset file read errors",
		},
		[]string{"format"},
	)

	// Cache Metrics
	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelsift_cache_requests_total",
			Help: "Response cache lookups by result",
		},
		[]string{"cache", "result"}, // result: "hit", "miss"
	)

	CacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "reelsift_cache_entries",
			Help: "Current number of cached responses",
		},
		[]string{"cache"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "reelsift_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelsift_circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// Application Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "reelsift_app_info",
			Help: "Application information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a rejected request.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordQuery records one engine query.
func RecordQuery(mode string, matches int, duration time.Duration) {
	QueryDuration.WithLabelValues(mode).Observe(duration.Seconds())
	QueryMatches.WithLabelValues(mode).Observe(float64(matches))
}

// RecordUnknownMood counts a mood lookup that fell back to accept-all.
func RecordUnknownMood() {
	UnknownMoods.Inc()
}

// RecordDatasetReload records a reload attempt.
func RecordDatasetReload(result string, duration time.Duration) {
	DatasetReloads.WithLabelValues(result).Inc()
	DatasetReloadDuration.Observe(duration.Seconds())
	if result == "success" {
		DatasetLastReload.Set(float64(time.Now().Unix()))
	}
}

// SetDatasetSnapshot publishes the size and version of the current snapshot.
func SetDatasetSnapshot(version uint64, movies, series int) {
	DatasetVersion.Set(float64(version))
	DatasetRecords.WithLabelValues("movies").Set(float64(movies))
	DatasetRecords.WithLabelValues("series").Set(float64(series))
}

// RecordLoaderQuery records one file read.
func RecordLoaderQuery(format string, duration time.Duration, err error) {
	LoaderQueryDuration.WithLabelValues(format).Observe(duration.Seconds())
	if err != nil {
		LoaderErrors.WithLabelValues(format).Inc()
	}
}

// RecordCacheLookup records a cache hit or miss.
func RecordCacheLookup(cache string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheRequests.WithLabelValues(cache, result).Inc()
}

// SetCacheEntries publishes the current size of a cache.
func SetCacheEntries(cache string, entries int) {
	CacheEntries.WithLabelValues(cache).Set(float64(entries))
}

// SetAppInfo publishes build information.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}

// StatusLabel formats an HTTP status code as a metric label.
func StatusLabel(code int) string {
	return strconv.Itoa(code)
}
