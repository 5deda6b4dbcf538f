// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package mood

import (
	"errors"
	"fmt"
)

// ErrUnsupportedYearBound is returned when a catalog entry's year bound is not of the form "<N".
var ErrUnsupportedYearBound = errors.New("unsupported year bound")

// CatalogError reports a rejected catalog entry.
type CatalogError struct {
	Mood string
	Err  error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("mood %q: %v", e.Mood, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}
