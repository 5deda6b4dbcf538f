// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/reelsift/internal/logging"
)

// DefaultShutdownTimeout bounds graceful HTTP shutdown when none is configured.
const DefaultShutdownTimeout = 10 * time.Second

// HTTPServer is the lifecycle subset of *http.Server the service needs.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService runs an HTTP server under suture.
//
// Serve starts ListenAndServe in a goroutine and blocks until the context is
// canceled or the server fails. On cancellation the server gets
// shutdownTimeout to drain in-flight queries.
type HTTPServerService struct {
	server          HTTPServer
	addr            string
	shutdownTimeout time.Duration
	name            string
}

// NewHTTPServerService wraps server. addr is only used for logging.
func NewHTTPServerService(server HTTPServer, addr string, shutdownTimeout time.Duration) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}
	return &HTTPServerService{
		server:          server,
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
		name:            "http-server",
	}
}

// Serve implements suture.Service. http.ErrServerClosed is not an error.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logging.Info().Str("addr", h.addr).Msg("HTTP server listening")

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil

	case <-ctx.Done():
		// The serve context is already canceled, so shutdown gets its own deadline.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()

		logging.Info().Dur("timeout", h.shutdownTimeout).Msg("Shutting down HTTP server")
		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}

		<-errCh
		logging.Info().Msg("HTTP server stopped")
		return ctx.Err()
	}
}

// String implements fmt.Stringer; suture uses it in log messages.
func (h *HTTPServerService) String() string {
	return h.name
}
