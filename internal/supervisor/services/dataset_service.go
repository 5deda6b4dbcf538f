// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package services

import (
	"context"
	"fmt"
)

// DatasetWatcher is satisfied by *dataset.Reloader.
type DatasetWatcher interface {
	Watch(ctx context.Context) error
}

// DatasetWatchService keeps the dataset file watcher running. When the
// watcher fails (for example a source file was removed and re-added) suture
// restarts it with backoff; the published snapshot is untouched.
type DatasetWatchService struct {
	watcher DatasetWatcher
	name    string
}

// NewDatasetWatchService wraps watcher.
func NewDatasetWatchService(watcher DatasetWatcher) *DatasetWatchService {
	return &DatasetWatchService{
		watcher: watcher,
		name:    "dataset-watcher",
	}
}

// Serve implements suture.Service.
func (s *DatasetWatchService) Serve(ctx context.Context) error {
	err := s.watcher.Watch(ctx)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("dataset watch failed: %w", err)
	}
	return nil
}

// String implements fmt.Stringer.
func (s *DatasetWatchService) String() string {
	return s.name
}
