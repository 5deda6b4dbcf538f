// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package dataset

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/knadh/koanf/providers/file"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/reelsift/internal/logging"
	"github.com/tomtom215/reelsift/internal/metrics"
	"github.com/tomtom215/reelsift/internal/models"
)

// Loader reads raw records from a source file.
type Loader interface {
	Load(ctx context.Context, path string) ([]models.RawRecord, error)
}

// Sources names the files backing each table. An empty path yields an empty table.
type Sources struct {
	MoviesPath string
	SeriesPath string
}

// ReloaderConfig tunes reload throttling.
type ReloaderConfig struct {
	// MinInterval is the minimum time between two watch-triggered reloads.
	MinInterval time.Duration
}

const breakerName = "dataset-loader"

// Reloader rebuilds snapshots from the source files and publishes them.
// Reloads are serialized; a failed reload leaves the current snapshot in place.
type Reloader struct {
	store    *Store
	loader   Loader
	preparer *Preparer
	sources  Sources
	breaker  *gobreaker.CircuitBreaker[*Snapshot]
	limiter  *rate.Limiter

	mu sync.Mutex
}

// NewReloader creates a Reloader. A nil preparer selects the default normalizer.
func NewReloader(store *Store, loader Loader, preparer *Preparer, sources Sources, cfg ReloaderConfig) *Reloader {
	if preparer == nil {
		preparer = defaultPreparer
	}
	if cfg.MinInterval <= 0 {
		cfg.MinInterval = 2 * time.Second
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[*Snapshot](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    5 * time.Minute,
		Timeout:     30 * time.Second,
		// Three failed loads in a row open the breaker.
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("Circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})

	return &Reloader{
		store:    store,
		loader:   loader,
		preparer: preparer,
		sources:  sources,
		breaker:  cb,
		limiter:  rate.NewLimiter(rate.Every(cfg.MinInterval), 1),
	}
}

// Reload loads and prepares both tables and publishes them as one snapshot.
func (r *Reloader) Reload(ctx context.Context) (*Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := time.Now()
	snap, err := r.breaker.Execute(func() (*Snapshot, error) {
		return r.build(ctx)
	})
	if err != nil {
		result := "failure"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			result = "rejected"
		}
		metrics.RecordDatasetReload(result, time.Since(start))
		return nil, fmt.Errorf("dataset reload failed: %w", err)
	}

	metrics.RecordDatasetReload("success", time.Since(start))
	metrics.SetDatasetSnapshot(snap.Version, len(snap.Movies), len(snap.Series))

	logging.Info().
		Uint64("version", snap.Version).
		Int("movies", len(snap.Movies)).
		Int("series", len(snap.Series)).
		Int("records", snap.Len()).
		Dur("duration", time.Since(start)).
		Msg("Dataset loaded")
	return snap, nil
}

func (r *Reloader) build(ctx context.Context) (*Snapshot, error) {
	movies, err := r.loadTable(ctx, r.sources.MoviesPath, models.ContentMovies)
	if err != nil {
		return nil, err
	}
	series, err := r.loadTable(ctx, r.sources.SeriesPath, models.ContentSeries)
	if err != nil {
		return nil, err
	}
	return r.store.Publish(movies, series), nil
}

func (r *Reloader) loadTable(ctx context.Context, path string, ct models.ContentType) (models.Table, error) {
	if path == "" {
		return models.Table{}, nil
	}
	raw, err := r.loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load %s from %s: %w", ct, path, err)
	}
	return r.preparer.Prepare(raw, ct), nil
}

// Watch reloads the dataset whenever a source file changes, until ctx is done.
// Bursts of file events are coalesced and reloads are spaced at least
// MinInterval apart.
func (r *Reloader) Watch(ctx context.Context) error {
	changed := make(chan string, 1)

	var providers []*file.File
	defer func() {
		for _, p := range providers {
			if err := p.Unwatch(); err != nil {
				logging.Debug().Err(err).Msg("Failed to stop file watcher")
			}
		}
	}()

	for _, path := range []string{r.sources.MoviesPath, r.sources.SeriesPath} {
		if path == "" {
			continue
		}
		p := file.Provider(path)
		watched := path
		err := p.Watch(func(_ interface{}, err error) {
			if err != nil {
				logging.Warn().Err(err).Str("path", watched).Msg("Dataset file watch error")
				return
			}
			select {
			case changed <- watched:
			default:
			}
		})
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		providers = append(providers, p)
		logging.Info().Str("path", path).Msg("Watching dataset file")
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case path := <-changed:
			if err := r.limiter.Wait(ctx); err != nil {
				return ctx.Err()
			}
			logging.Info().Str("path", path).Msg("Dataset file changed, reloading")
			if _, err := r.Reload(ctx); err != nil {
				logging.Error().Err(err).Msg("Keeping previous dataset snapshot")
			}
		}
	}
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
