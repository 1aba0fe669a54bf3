// Package cache holds a small in-memory query cache for the public catalog
// read paths. Entries are keyed by (entity, filter params); concurrent
// fetches of the same key are deduplicated and mutations invalidate every
// key of the touched entity so the next read refetches.
package cache

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	value     any
	fetchedAt time.Time
}

type QueryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	group   singleflight.Group
}

func NewQueryCache(ttl time.Duration) *QueryCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &QueryCache{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

// Key builds a cache key from the entity name and filter params. The entity
// prefix is what Invalidate matches on.
func Key(entity string, params ...string) string {
	if len(params) == 0 {
		return entity
	}
	return entity + "|" + strings.Join(params, "|")
}

// Query returns the cached value when fresh, otherwise runs fetch and caches
// its result. In-flight fetches for the same key are shared, so a burst of
// identical reads issues one backend call.
func (c *QueryCache) Query(key string, fetch func() (any, error)) (any, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && time.Since(e.fetchedAt) < c.ttl {
		return e.value, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// another waiter may have refreshed the entry already
		c.mu.RLock()
		e, ok := c.entries[key]
		c.mu.RUnlock()
		if ok && time.Since(e.fetchedAt) < c.ttl {
			return e.value, nil
		}

		value, err := fetch()
		if err != nil {
			// errors are not cached; the next read retries
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = entry{value: value, fetchedAt: time.Now()}
		c.mu.Unlock()
		return value, nil
	})
	return v, err
}

// Invalidate drops every key belonging to the named entities. Called after a
// successful mutation so both admin and public list reads refetch.
func (c *QueryCache) Invalidate(entities ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		for _, entity := range entities {
			if key == entity || strings.HasPrefix(key, entity+"|") {
				delete(c.entries, key)
				break
			}
		}
	}
}
