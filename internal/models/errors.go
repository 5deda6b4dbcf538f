// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package models

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is the sentinel wrapped by every request parse failure.
var ErrMalformedInput = errors.New("malformed input")

// InputError describes one rejected request field.
type InputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InputError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: invalid %s: %s", ErrMalformedInput, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: invalid %s %q: %s", ErrMalformedInput, e.Field, e.Value, e.Reason)
}

// Unwrap makes errors.Is(err, ErrMalformedInput) hold for every InputError.
func (e *InputError) Unwrap() error {
	return ErrMalformedInput
}
