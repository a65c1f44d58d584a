package cache

import "context"

// RouteCache expires cached response data for a route path. The page renderers
// own the cached payloads; this layer only marks them stale so the next read
// recomputes instead of serving a stale snapshot.
type RouteCache interface {
	Invalidate(ctx context.Context, routePath string) error
}
