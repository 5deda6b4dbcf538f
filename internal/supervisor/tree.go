// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"
)

// ErrNilLogger is returned when NewSupervisorTree is called without a logger.
var ErrNilLogger = errors.New("supervisor: logger is required")

// TreeConfig holds supervisor tree configuration.
type TreeConfig struct {
	// FailureThreshold is the number of failures before entering backoff.
	// Default: 5
	FailureThreshold float64

	// FailureDecay is the rate at which failures decay in seconds.
	// Default: 30
	FailureDecay float64

	// FailureBackoff is the duration to wait when threshold is exceeded.
	// Default: 15s
	FailureBackoff time.Duration

	// ShutdownTimeout is the maximum time to wait for each service to stop.
	// Default: 10s
	ShutdownTimeout time.Duration
}

// DefaultTreeConfig returns suture's documented defaults.
func DefaultTreeConfig() TreeConfig {
	return TreeConfig{
		FailureThreshold: 5.0,
		FailureDecay:     30.0,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	}
}

func (c TreeConfig) withDefaults() TreeConfig {
	def := DefaultTreeConfig()
	if c.FailureThreshold == 0 {
		c.FailureThreshold = def.FailureThreshold
	}
	if c.FailureDecay == 0 {
		c.FailureDecay = def.FailureDecay
	}
	if c.FailureBackoff == 0 {
		c.FailureBackoff = def.FailureBackoff
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = def.ShutdownTimeout
	}
	return c
}

// SupervisorTree is the root supervisor with a data layer and an API layer.
type SupervisorTree struct {
	root   *suture.Supervisor
	data   *suture.Supervisor
	api    *suture.Supervisor
	logger *slog.Logger
	config TreeConfig
}

// NewSupervisorTree creates the tree. Zero config fields take their defaults.
func NewSupervisorTree(logger *slog.Logger, config TreeConfig) (*SupervisorTree, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}
	config = config.withDefaults()

	// MustHook has a pointer receiver.
	handler := &sutureslog.Handler{Logger: logger}

	rootSpec := suture.Spec{
		EventHook:        handler.MustHook(),
		FailureThreshold: config.FailureThreshold,
		FailureDecay:     config.FailureDecay,
		FailureBackoff:   config.FailureBackoff,
		Timeout:          config.ShutdownTimeout,
	}

	// Children inherit the root's EventHook when added.
	childSpec := suture.Spec{
		FailureThreshold: config.FailureThreshold,
		FailureDecay:     config.FailureDecay,
		FailureBackoff:   config.FailureBackoff,
		Timeout:          config.ShutdownTimeout,
	}

	root := suture.New("reelsift", rootSpec)
	data := suture.New("data-layer", childSpec)
	api := suture.New("api-layer", childSpec)

	root.Add(data)
	root.Add(api)

	return &SupervisorTree{
		root:   root,
		data:   data,
		api:    api,
		logger: logger,
		config: config,
	}, nil
}

// Root returns the root supervisor.
func (t *SupervisorTree) Root() *suture.Supervisor {
	return t.root
}

// Config returns the effective configuration.
func (t *SupervisorTree) Config() TreeConfig {
	return t.config
}

// AddDataService adds a service to the data layer (dataset watcher).
func (t *SupervisorTree) AddDataService(svc suture.Service) suture.ServiceToken {
	return t.data.Add(svc)
}

// AddAPIService adds a service to the API layer (HTTP server).
func (t *SupervisorTree) AddAPIService(svc suture.Service) suture.ServiceToken {
	return t.api.Add(svc)
}

// RemoveDataService stops and removes a data layer service.
func (t *SupervisorTree) RemoveDataService(token suture.ServiceToken) error {
	return t.data.Remove(token)
}

// Serve runs the tree and blocks until ctx is canceled.
func (t *SupervisorTree) Serve(ctx context.Context) error {
	t.logger.Info("supervisor tree starting")
	err := t.root.Serve(ctx)
	t.logger.Info("supervisor tree stopped", "error", err)
	return err
}

// ServeBackground runs the tree in a goroutine. The channel receives the
// result when the tree stops.
func (t *SupervisorTree) ServeBackground(ctx context.Context) <-chan error {
	return t.root.ServeBackground(ctx)
}

// UnstoppedServiceReport lists services that did not stop within
// ShutdownTimeout.
func (t *SupervisorTree) UnstoppedServiceReport() ([]suture.UnstoppedService, error) {
	return t.root.UnstoppedServiceReport()
}
