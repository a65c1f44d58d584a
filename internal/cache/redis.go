package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const routeKeyPrefix = "route:"

// RedisRouteCache invalidates route data cached in Redis. Cached payloads for
// a route and everything nested under it live at keys with the route:<path>
// prefix, so invalidation is a prefixed SCAN followed by DEL.
type RedisRouteCache struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisRouteCache(client *redis.Client, logger *zap.Logger) *RedisRouteCache {
	return &RedisRouteCache{client: client, logger: logger}
}

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func (c *RedisRouteCache) Invalidate(ctx context.Context, routePath string) error {
	pattern := routeKeyPrefix + routePath + "*"

	var deleted int64
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		n, err := c.client.Del(ctx, iter.Val()).Result()
		if err != nil {
			return fmt.Errorf("failed to delete cached route data: %w", err)
		}
		deleted += n
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cached route data: %w", err)
	}

	c.logger.Debug("route cache invalidated",
		zap.String("route", routePath),
		zap.Int64("keys_deleted", deleted))
	return nil
}
