// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/reelsift/internal/metrics"
)

// instrumented mounts h under pattern on a chi router wrapped by PrometheusMetrics.
func instrumented(pattern string, h http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return PrometheusMetrics(next.ServeHTTP)
	})
	r.HandleFunc(pattern, h)
	return r
}

func TestPrometheusMetrics(t *testing.T) {
	t.Parallel()

	t.Run("labels by route pattern", func(t *testing.T) {
		t.Parallel()
		h := instrumented("/test/items/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		for _, id := range []string{"1", "2", "3"} {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test/items/"+id, nil))
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
		}

		got := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/test/items/{id}", "200"))
		if got != 3 {
			t.Errorf("requests counter = %v, want 3", got)
		}
	})

	t.Run("records error status", func(t *testing.T) {
		t.Parallel()
		h := instrumented("/test/fails", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.WriteHeader(http.StatusOK) // superfluous, ignored
		})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/test/fails", nil))

		got := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("POST", "/test/fails", "500"))
		if got != 1 {
			t.Errorf("500 counter = %v, want 1", got)
		}
	})

	t.Run("defaults to 200 when WriteHeader not called", func(t *testing.T) {
		t.Parallel()
		h := instrumented("/test/implicit", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("Hello"))
		})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test/implicit", nil))

		got := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/test/implicit", "200"))
		if got != 1 {
			t.Errorf("200 counter = %v, want 1", got)
		}
	})

	t.Run("without chi context uses unmatched", func(t *testing.T) {
		t.Parallel()
		h := PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodDelete, "/anything", nil))

		got := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("DELETE", UnmatchedEndpoint, "418"))
		if got < 1 {
			t.Errorf("unmatched counter = %v, want at least 1", got)
		}
	})
}
