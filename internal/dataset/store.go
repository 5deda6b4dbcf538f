// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package dataset

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/tomtom215/reelsift/internal/models"
)

// ErrNotLoaded is returned by Store.Table before the first snapshot is published.
var ErrNotLoaded = errors.New("dataset not loaded")

// Snapshot is one immutable generation of the dataset.
type Snapshot struct {
	Version  uint64
	LoadedAt time.Time
	Movies   models.Table
	Series   models.Table

	// both is movies followed by series, built once per snapshot.
	both models.Table
}

// Table returns the table for ct. ContentBoth is movies followed by series.
func (s *Snapshot) Table(ct models.ContentType) (models.Table, error) {
	switch ct {
	case models.ContentMovies, "":
		return s.Movies, nil
	case models.ContentSeries:
		return s.Series, nil
	case models.ContentBoth:
		return s.both, nil
	default:
		return nil, &models.InputError{Field: "content_type", Value: string(ct), Reason: "unknown content type"}
	}
}

// Len returns the total number of records in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.Movies) + len(s.Series)
}

// Store publishes dataset snapshots. Readers call Current or Table without
// locking; Publish swaps in a complete new snapshot.
type Store struct {
	current atomic.Pointer[Snapshot]
	version atomic.Uint64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Publish installs a new snapshot built from the given tables and returns it.
func (s *Store) Publish(movies, series models.Table) *Snapshot {
	snap := &Snapshot{
		Version:  s.version.Add(1),
		LoadedAt: time.Now(),
		Movies:   movies,
		Series:   series,
		both:     models.Concat(movies, series),
	}
	s.current.Store(snap)
	return snap
}

// Current returns the published snapshot, or nil before the first Publish.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Loaded reports whether a snapshot has been published.
func (s *Store) Loaded() bool {
	return s.current.Load() != nil
}

// Table returns the table for ct from the current snapshot together with
// the snapshot version.
func (s *Store) Table(ct models.ContentType) (models.Table, uint64, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, 0, ErrNotLoaded
	}
	t, err := snap.Table(ct)
	if err != nil {
		return nil, 0, fmt.Errorf("snapshot %d: %w", snap.Version, err)
	}
	return t, snap.Version, nil
}
