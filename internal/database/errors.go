// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package database

import (
	"errors"
	"io"

	"github.com/tomtom215/reelsift/internal/logging"
)

var (
	// ErrUnsupportedFormat is returned for files whose extension names no known format.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")

	// ErrMissingTitleColumn is returned when a dataset has no title column.
	ErrMissingTitleColumn = errors.New("dataset has no title column")

	// ErrClosed is returned by Load after Close.
	ErrClosed = errors.New("loader is closed")
)

// closeWithLog closes a resource and logs any error
// Use this for cleanup operations where errors should be acknowledged but not fail the operation
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}
