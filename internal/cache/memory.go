package cache

import (
	"context"
	"strings"
	"sync"
)

// MemoryRouteCache is an in-process RouteCache for redis-less deployments and
// tests. It keeps the cached payloads in a map and records every invalidation
// so tests can assert on call order and count.
type MemoryRouteCache struct {
	mu            sync.Mutex
	entries       map[string][]byte
	invalidations []string
}

func NewMemoryRouteCache() *MemoryRouteCache {
	return &MemoryRouteCache{entries: make(map[string][]byte)}
}

// Put stores a cached payload for a route path.
func (c *MemoryRouteCache) Put(routePath string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[routePath] = payload
}

// Get returns the cached payload for a route path, if still fresh.
func (c *MemoryRouteCache) Get(routePath string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	payload, ok := c.entries[routePath]
	return payload, ok
}

func (c *MemoryRouteCache) Invalidate(_ context.Context, routePath string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if key == routePath || strings.HasPrefix(key, routePath+"/") {
			delete(c.entries, key)
		}
	}
	c.invalidations = append(c.invalidations, routePath)
	return nil
}

// Invalidations returns the route paths invalidated so far, in call order.
func (c *MemoryRouteCache) Invalidations() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.invalidations...)
}
