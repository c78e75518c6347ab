package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// QueryCache is an in-process map from query key to the last fetched result.
// Invalidation is coarse: mutation handlers drop whole key prefixes
// ("patients", "records:42") and the next read re-fetches the collection.
// There is no row-level patching and no cancellation of in-flight fetches;
// when two fetches for the same key race, the last one to finish wins.
type QueryCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*entry
}

type entry struct {
	data      interface{}
	fetchedAt time.Time
}

// FetchFunc loads the value for a key when the cache has nothing usable.
type FetchFunc func(ctx context.Context) (interface{}, error)

func New(ttl time.Duration) *QueryCache {
	return &QueryCache{
		ttl:     ttl,
		entries: make(map[string]*entry),
	}
}

// GetOrFetch returns the cached value for key when it is younger than the
// TTL, otherwise runs fetch and stores the result. An expired entry is
// evicted on the miss, so dead keys never outlive one TTL; a failed fetch
// stores nothing, and the next call retries only when the caller does.
func (c *QueryCache) GetOrFetch(ctx context.Context, key string, fetch FetchFunc) (interface{}, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		if time.Since(e.fetchedAt) < c.ttl {
			data := e.data
			c.mu.Unlock()
			return data, nil
		}
		delete(c.entries, key)
	}
	c.mu.Unlock()

	data, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = &entry{data: data, fetchedAt: time.Now()}
	c.mu.Unlock()

	return data, nil
}

// Invalidate drops every key with the given prefix. Deleting instead of
// flagging keeps the map bounded by the set of keys read within one TTL.
func (c *QueryCache) Invalidate(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// Len reports the number of entries currently held.
func (c *QueryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
