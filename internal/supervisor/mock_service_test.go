// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

// mockService implements suture.Service with controllable failures.
type mockService struct {
	name       string
	startCount atomic.Int32
	failCount  atomic.Int32
	maxFails   int32
}

func newMockService(name string, maxFails int32) *mockService {
	return &mockService{name: name, maxFails: maxFails}
}

// Serve fails maxFails times, then runs until the context is canceled.
func (m *mockService) Serve(ctx context.Context) error {
	m.startCount.Add(1)

	if m.maxFails > 0 && m.failCount.Add(1) <= m.maxFails {
		return errors.New("simulated failure")
	}

	<-ctx.Done()
	return ctx.Err()
}

func (m *mockService) StartCount() int32 {
	return m.startCount.Load()
}

func (m *mockService) String() string {
	return m.name
}
