package store

import (
	"sync"
	"time"
)

// CacheTTL is how long a fetched bucket stays fresh.
const CacheTTL = 5 * time.Minute

// bucket names an independently cached data category.
type bucket string

const (
	bucketProducts  bucket = "products"
	bucketInsights  bucket = "insights"
	bucketMealPicks bucket = "meal_picks"
)

// cacheManager tracks last-successful-fetch timestamps per bucket.
// Freshness is advisory: forced refreshes bypass it and re-stamp.
type cacheManager struct {
	now    func() time.Time
	mu     sync.Mutex
	stamps map[bucket]time.Time
}

func newCacheManager(now func() time.Time) *cacheManager {
	return &cacheManager{now: now, stamps: make(map[bucket]time.Time)}
}

// fresh reports whether b was stamped within the TTL window, and counts
// the answer as a cache hit or miss.
func (c *cacheManager) fresh(b bucket) bool {
	c.mu.Lock()
	at, ok := c.stamps[b]
	c.mu.Unlock()
	if ok && c.now().Sub(at) < CacheTTL {
		cacheHitsTotal.WithLabelValues(string(b)).Inc()
		return true
	}
	cacheMissesTotal.WithLabelValues(string(b)).Inc()
	return false
}

// stamp records the fetch-completion time for b. Called after data has
// landed, so the TTL window measures data freshness, not request start.
func (c *cacheManager) stamp(b bucket) {
	c.mu.Lock()
	c.stamps[b] = c.now()
	c.mu.Unlock()
}

// invalidate drops every bucket's timestamp.
func (c *cacheManager) invalidate() {
	c.mu.Lock()
	c.stamps = make(map[bucket]time.Time)
	c.mu.Unlock()
}
