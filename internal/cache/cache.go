package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache keeps list results in memory until they are explicitly invalidated.
// Entries never expire on their own; every mutation path is responsible for
// calling Invalidate for the keys it affects.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
	// generation is bumped on invalidation so a fetch that started before
	// the invalidation does not repopulate a stale value.
	generation map[string]uint64
	epoch      uint64
	group      singleflight.Group
}

// fetchTimeout bounds a shared fetch. It runs detached from the caller that
// started it, so other callers waiting on it are not failed by that caller
// going away.
const fetchTimeout = 30 * time.Second

func New[V any]() *Cache[V] {
	return &Cache[V]{
		entries:    make(map[string]V),
		generation: make(map[string]uint64),
	}
}

// GetOrFetch returns the cached value for key, calling fetch on a miss.
// Concurrent misses for the same key share one fetch.
func (c *Cache[V]) GetOrFetch(ctx context.Context, key string, fetch func(context.Context) (V, error)) (V, error) {
	c.mu.RLock()
	v, ok := c.entries[key]
	gen, epoch := c.generation[key], c.epoch
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	ch := c.group.DoChan(key, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()

		fetched, err := fetch(fetchCtx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		if c.generation[key] == gen && c.epoch == epoch {
			c.entries[key] = fetched
		}
		c.mu.Unlock()
		return fetched, nil
	})

	var zero V
	select {
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(V), nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

func (c *Cache[V]) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.generation[key]++
	c.mu.Unlock()
	c.group.Forget(key)
}

// InvalidateAll drops every entry. Fetches already in flight do not
// repopulate it.
func (c *Cache[V]) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]V)
	c.epoch++
	c.mu.Unlock()
}
