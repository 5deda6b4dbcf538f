// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelsift/internal/metrics"
)

// DefaultCleanupInterval is how often expired entries are swept.
const DefaultCleanupInterval = time.Minute

// Entry represents a cached item with expiration
type Entry struct {
	Data      interface{}
	ExpiresAt time.Time
}

// Cache provides a thread-safe in-memory cache with TTL support
type Cache struct {
	name       string
	mu         sync.RWMutex
	entries    map[string]Entry
	ttl        time.Duration
	maxEntries int
	stats      Stats

	stop      chan struct{}
	closeOnce sync.Once
}

// Stats tracks cache performance metrics
type Stats struct {
	mu          sync.RWMutex
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// New creates a cache whose entries live for ttl. A maxEntries of zero or
// less leaves the cache unbounded. The name labels the exported metrics.
//
// A background goroutine sweeps expired entries every
// DefaultCleanupInterval until Close is called.
func New(name string, ttl time.Duration, maxEntries int) *Cache {
	c := &Cache{
		name:       name,
		entries:    make(map[string]Entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		stats: Stats{
			LastCleanup: time.Now(),
		},
		stop: make(chan struct{}),
	}

	go c.cleanupLoop(DefaultCleanupInterval)

	return c
}

// Name returns the cache's metric label.
func (c *Cache) Name() string {
	return c.name
}

// Get retrieves a value from the cache by key.
//
// An expired entry is removed and reported as a miss.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.recordMiss()
		return nil, false
	}

	if time.Now().After(entry.ExpiresAt) {
		c.mu.Lock()
		// Re-check: a concurrent Set may have refreshed the key.
		if current, ok := c.entries[key]; ok && !time.Now().Before(current.ExpiresAt) {
			delete(c.entries, key)
			c.stats.mu.Lock()
			c.stats.Evictions++
			c.stats.TotalKeys = int64(len(c.entries))
			c.stats.mu.Unlock()
		}
		c.mu.Unlock()
		c.recordMiss()
		return nil, false
	}

	c.recordHit()
	return entry.Data, true
}

// Set stores a value in the cache with the default TTL configured at cache creation.
func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value in the cache with a custom TTL
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	evicted := int64(0)
	if _, exists := c.entries[key]; !exists && c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		c.evictOneLocked()
		evicted++
	}

	c.entries[key] = Entry{
		Data:      value,
		ExpiresAt: time.Now().Add(ttl),
	}

	c.updateKeysLocked(evicted)
}

// evictOneLocked drops the entry closest to expiry. Callers hold c.mu.
func (c *Cache) evictOneLocked() {
	var (
		victim  string
		soonest time.Time
		found   bool
	)
	for key, entry := range c.entries {
		if !found || entry.ExpiresAt.Before(soonest) {
			victim, soonest, found = key, entry.ExpiresAt, true
		}
	}
	if found {
		delete(c.entries, victim)
	}
}

// Len returns the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetStats returns a snapshot of current cache performance statistics.
func (c *Cache) GetStats() Stats {
	c.stats.mu.RLock()
	defer c.stats.mu.RUnlock()

	return Stats{
		Hits:        c.stats.Hits,
		Misses:      c.stats.Misses,
		Evictions:   c.stats.Evictions,
		TotalKeys:   c.stats.TotalKeys,
		LastCleanup: c.stats.LastCleanup,
	}
}

// HitRate returns the cache hit rate as a percentage
func (c *Cache) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

// Close stops the background cleanup goroutine. It is safe to call more than once.
func (c *Cache) Close() {
	c.closeOnce.Do(func() { close(c.stop) })
}

// cleanupLoop periodically removes expired entries
func (c *Cache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

// cleanup removes all expired entries
func (c *Cache) cleanup() {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()

	evictions := int64(0)
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			evictions++
		}
	}

	c.updateKeysLocked(evictions)
	c.stats.mu.Lock()
	c.stats.LastCleanup = now
	c.stats.mu.Unlock()
}

// updateKeysLocked refreshes the key count after a mutation. Callers hold c.mu.
func (c *Cache) updateKeysLocked(evictions int64) {
	n := len(c.entries)
	c.stats.mu.Lock()
	c.stats.Evictions += evictions
	c.stats.TotalKeys = int64(n)
	c.stats.mu.Unlock()
	metrics.SetCacheEntries(c.name, n)
}

// recordHit increments the hit counter
func (c *Cache) recordHit() {
	c.stats.mu.Lock()
	c.stats.Hits++
	c.stats.mu.Unlock()
	metrics.RecordCacheLookup(c.name, true)
}

// recordMiss increments the miss counter
func (c *Cache) recordMiss() {
	c.stats.mu.Lock()
	c.stats.Misses++
	c.stats.mu.Unlock()
	metrics.RecordCacheLookup(c.name, false)
}

// GenerateKey creates a cache key from a kind and its parameters
func GenerateKey(kind string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		// Fallback to simple string key
		return fmt.Sprintf("%s:%v", kind, params)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", kind, hash[:16])
}
