package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wipetrack/erasure-api/internal/logger"
)

// Cache is a Redis-backed key/value cache with get-or-create semantics and
// lazy TTL expiry. Writes are atomic per key; a concurrent get-or-create race
// on the same key may run the producer more than once, but every caller sees
// a fully written value.
type Cache struct {
	client *redis.Client
}

// New creates a Cache around an existing Redis client.
func New(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// GetOrCreate returns the cached value for key, or runs producer and caches
// its result with the given TTL. A producer error is returned as-is and
// nothing is cached. Redis read/write failures are logged and degrade to a
// direct producer call rather than failing the request.
func (c *Cache) GetOrCreate(ctx context.Context, key string, ttl time.Duration, producer func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		logger.Log.Debugw("cache hit", "key", key)
		return val, nil
	}
	if err != redis.Nil {
		logger.Log.Errorw("cache read failed", "key", key, "error", err)
	}

	val, err = producer(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.client.Set(ctx, key, val, ttl).Err(); err != nil {
		logger.Log.Errorw("cache write failed", "key", key, "error", err)
	}
	return val, nil
}

// Remove deletes the given keys. Missing keys are not an error.
func (c *Cache) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	err := c.client.Del(ctx, keys...).Err()
	if err != nil {
		logger.Log.Errorw("cache remove failed", "keys", keys, "error", err)
	}
	return err
}
