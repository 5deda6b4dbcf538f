// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/reelsift/internal/metrics"
)

func newTestCache(t *testing.T, ttl time.Duration, maxEntries int) *Cache {
	t.Helper()
	c := New(t.Name(), ttl, maxEntries)
	t.Cleanup(c.Close)
	return c
}

func TestCacheBasicOperations(t *testing.T) {
	t.Parallel()
	c := newTestCache(t, time.Minute, 0)

	c.Set("key1", "value1")
	value, exists := c.Get("key1")
	if !exists {
		t.Fatal("Expected key1 to exist")
	}
	if value != "value1" {
		t.Errorf("Expected value1, got %v", value)
	}

	if _, exists = c.Get("key2"); exists {
		t.Error("Expected key2 to not exist")
	}
	if c.Name() != t.Name() {
		t.Errorf("Name() = %q, want %q", c.Name(), t.Name())
	}
}

func TestCacheExpiration(t *testing.T) {
	t.Parallel()
	c := newTestCache(t, 50*time.Millisecond, 0)

	c.Set("key1", "value1")
	if _, exists := c.Get("key1"); !exists {
		t.Error("Expected key1 to exist immediately after set")
	}

	time.Sleep(80 * time.Millisecond)

	if _, exists := c.Get("key1"); exists {
		t.Error("Expected key1 to be expired")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after lazy expiration", c.Len())
	}
	if got := c.GetStats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestCacheMaxEntriesEvictsSoonestExpiry(t *testing.T) {
	t.Parallel()
	c := newTestCache(t, time.Minute, 2)

	c.SetWithTTL("short", 1, time.Second)
	c.SetWithTTL("long", 2, time.Hour)
	c.Set("new", 3)

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if _, ok := c.Get("short"); ok {
		t.Error("entry closest to expiry should have been evicted")
	}
	for _, key := range []string{"long", "new"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("Expected %s to survive", key)
		}
	}

	// Overwriting an existing key never evicts.
	c.Set("long", 4)
	if c.Len() != 2 {
		t.Errorf("Len() after overwrite = %d, want 2", c.Len())
	}
}

func TestCacheStatsAndHitRate(t *testing.T) {
	t.Parallel()
	c := newTestCache(t, time.Minute, 0)

	if c.HitRate() != 0 {
		t.Errorf("HitRate() with no operations = %v, want 0", c.HitRate())
	}

	c.Set("key", "v")
	c.Get("key")
	c.Get("key")
	c.Get("key")
	c.Get("nope")

	stats := c.GetStats()
	if stats.Hits != 3 || stats.Misses != 1 {
		t.Errorf("Hits/Misses = %d/%d, want 3/1", stats.Hits, stats.Misses)
	}
	if stats.TotalKeys != 1 {
		t.Errorf("TotalKeys = %d, want 1", stats.TotalKeys)
	}
	if got := c.HitRate(); got != 75 {
		t.Errorf("HitRate() = %v, want 75", got)
	}
}

func TestCacheMetrics(t *testing.T) {
	t.Parallel()
	c := newTestCache(t, time.Minute, 0)

	c.Set("k", "v")
	c.Get("k")
	c.Get("absent")
	c.Get("absent")

	if got := testutil.ToFloat64(metrics.CacheRequests.WithLabelValues(c.Name(), "hit")); got != 1 {
		t.Errorf("hit counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.CacheRequests.WithLabelValues(c.Name(), "miss")); got != 2 {
		t.Errorf("miss counter = %v, want 2", got)
	}
	if got := testutil.ToFloat64(metrics.CacheEntries.WithLabelValues(c.Name())); got != 1 {
		t.Errorf("entries gauge = %v, want 1", got)
	}
}

func TestCacheManualCleanup(t *testing.T) {
	t.Parallel()
	c := newTestCache(t, time.Minute, 0)

	c.SetWithTTL("stale1", 1, time.Millisecond)
	c.SetWithTTL("stale2", 2, time.Millisecond)
	c.Set("fresh", 3)
	time.Sleep(10 * time.Millisecond)

	before := c.GetStats().LastCleanup
	c.cleanup()

	stats := c.GetStats()
	if stats.TotalKeys != 1 {
		t.Errorf("TotalKeys = %d, want 1", stats.TotalKeys)
	}
	if stats.Evictions != 2 {
		t.Errorf("Evictions = %d, want 2", stats.Evictions)
	}
	if !stats.LastCleanup.After(before) {
		t.Error("LastCleanup was not advanced")
	}
}

func TestCacheCleanupLoopStopsOnClose(t *testing.T) {
	t.Parallel()
	c := &Cache{
		name:    t.Name(),
		entries: make(map[string]Entry),
		ttl:     time.Minute,
		stop:    make(chan struct{}),
	}
	c.SetWithTTL("stale", 1, time.Millisecond)

	done := make(chan struct{})
	go func() {
		c.cleanupLoop(5 * time.Millisecond)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for c.Len() != 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if c.Len() != 0 {
		t.Error("cleanup loop did not remove the expired entry")
	}

	c.Close()
	c.Close()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("cleanup loop did not stop after Close")
	}
}

func TestCacheConcurrency(t *testing.T) {
	t.Parallel()
	c := newTestCache(t, time.Minute, 50)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				key := fmt.Sprintf("key-%d-%d", id, j%20)
				c.Set(key, j)
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	if c.Len() > 50 {
		t.Errorf("Len() = %d, exceeds bound of 50", c.Len())
	}
}

func TestGenerateKey(t *testing.T) {
	t.Parallel()

	type params struct {
		Version     uint64 `json:"version"`
		ContentType string `json:"content_type"`
	}

	k1 := GenerateKey("titles", params{Version: 1, ContentType: "movies"})
	k2 := GenerateKey("titles", params{Version: 1, ContentType: "movies"})
	k3 := GenerateKey("titles", params{Version: 2, ContentType: "movies"})
	k4 := GenerateKey("categories", params{Version: 1, ContentType: "movies"})

	if k1 != k2 {
		t.Error("identical params should produce identical keys")
	}
	if k1 == k3 {
		t.Error("a new dataset version must produce a new key")
	}
	if k1 == k4 {
		t.Error("different kinds must produce different keys")
	}
	// "titles:" plus 32 hex characters
	if len(k1) != len("titles:")+32 {
		t.Errorf("key %q has unexpected length", k1)
	}

	// Unmarshalable params fall back to fmt formatting.
	if got := GenerateKey("bad", make(chan int)); got[:4] != "bad:" {
		t.Errorf("fallback key = %q", got)
	}
}
