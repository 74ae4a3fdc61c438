package viewcache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "view:"

type (
	// Cache stores rendered view payloads keyed by their canonical path.
	// Invalidate is the explicit "this view is stale" signal issued after
	// every mutation.
	Cache interface {
		Get(ctx context.Context, path string) ([]byte, error)
		Set(ctx context.Context, path string, payload []byte, ttl time.Duration) error
		Invalidate(ctx context.Context, paths ...string) error
	}

	redisCache struct {
		client *redis.Client
	}

	noopCache struct{}
)

func NewRedisCache(client *redis.Client) Cache {
	return &redisCache{client: client}
}

// NewNoop returns a cache that stores nothing. Used when no Redis
// address is configured.
func NewNoop() Cache {
	return noopCache{}
}

func (c *redisCache) Get(ctx context.Context, path string) ([]byte, error) {
	payload, err := c.client.Get(ctx, keyPrefix+path).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *redisCache) Set(ctx context.Context, path string, payload []byte, ttl time.Duration) error {
	return c.client.Set(ctx, keyPrefix+path, payload, ttl).Err()
}

func (c *redisCache) Invalidate(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	keys := make([]string, 0, len(paths))
	for _, p := range paths {
		keys = append(keys, keyPrefix+p)
	}
	return c.client.Del(ctx, keys...).Err()
}

func (noopCache) Get(ctx context.Context, path string) ([]byte, error) {
	return nil, nil
}

func (noopCache) Set(ctx context.Context, path string, payload []byte, ttl time.Duration) error {
	return nil
}

func (noopCache) Invalidate(ctx context.Context, paths ...string) error {
	return nil
}
