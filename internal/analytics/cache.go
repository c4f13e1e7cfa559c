package analytics

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// viewCache memoizes view results for the newest snapshot version seen.
// Entries for an older version are never returned: a lookup must match the
// version exactly, and storing a newer version drops everything else.
type viewCache struct {
	enabled bool

	mu      sync.RWMutex
	version uint64
	entries map[string]interface{}

	group singleflight.Group // Dedupe concurrent computation of the same view
}

func newViewCache(enabled bool) *viewCache {
	return &viewCache{
		enabled: enabled,
		entries: make(map[string]interface{}),
	}
}

// load returns the cached value of view at version, computing it at most once
// across concurrent callers. Errors are not cached.
func (c *viewCache) load(version uint64, view string, compute func() (interface{}, error)) (interface{}, error) {
	if !c.enabled {
		return compute()
	}

	if v, ok := c.lookup(version, view); ok {
		return v, nil
	}

	key := view + "@" + strconv.FormatUint(version, 10)
	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		// Double-check after winning the flight
		if v, ok := c.lookup(version, view); ok {
			return v, nil
		}

		v, err := compute()
		if err != nil {
			return nil, err
		}
		c.store(version, view, v)
		return v, nil
	})
	return v, err
}

func (c *viewCache) lookup(version uint64, view string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if version != c.version {
		return nil, false
	}
	v, ok := c.entries[view]
	return v, ok
}

func (c *viewCache) store(version uint64, view string, v interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if version < c.version {
		return
	}
	if version > c.version {
		c.version = version
		c.entries = make(map[string]interface{})
	}
	c.entries[view] = v
}
