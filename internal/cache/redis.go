package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores summaries as plain strings with a TTL.
type RedisCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisCache wraps an existing client. A ttl of zero stores entries
// without expiry.
func NewRedisCache(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// GetSummary retrieves a cached summary.
func (c *RedisCache) GetSummary(ctx context.Context, url string) (string, bool, error) {
	summary, err := c.client.Get(ctx, Key(c.prefix, url)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return summary, true, nil
}

// SetSummary stores a summary with the configured TTL.
func (c *RedisCache) SetSummary(ctx context.Context, url, summary string) error {
	if err := c.client.Set(ctx, Key(c.prefix, url), summary, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close closes the cache connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
