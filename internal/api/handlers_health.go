// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the body of GET /api/v1/health.
type HealthStatus struct {
	Status         string     `json:"status"`
	Version        string     `json:"version"`
	DatasetLoaded  bool       `json:"dataset_loaded"`
	DatasetVersion uint64     `json:"dataset_version,omitempty"`
	LoadedAt       *time.Time `json:"loaded_at,omitempty"`
	Movies         int        `json:"movies"`
	Series         int        `json:"series"`
	Moods          int        `json:"moods"`
	CacheHitRate   *float64   `json:"cache_hit_rate,omitempty"`
	Uptime         float64    `json:"uptime"`
}

// Health reports overall status. The service is "degraded" until the first
// dataset snapshot is published.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:  "degraded",
		Version: h.version,
		Moods:   h.engine.Moods().Len(),
		Uptime:  time.Since(h.startTime).Seconds(),
	}

	if h.cache != nil {
		rate := h.cache.HitRate()
		status.CacheHitRate = &rate
	}

	if snap := h.store.Current(); snap != nil {
		loadedAt := snap.LoadedAt
		status.Status = "healthy"
		status.DatasetLoaded = true
		status.DatasetVersion = snap.Version
		status.LoadedAt = &loadedAt
		status.Movies = len(snap.Movies)
		status.Series = len(snap.Series)
	}

	NewResponseWriter(w, r).Success(status)
}

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK if the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 503 until a dataset snapshot has been published.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !h.store.Loaded() {
		NewResponseWriter(w, r).ServiceUnavailable("Dataset is not loaded yet")
		return
	}
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"ready": true,
	})
}
