// Package cache stores context summaries by source URL so that repeated
// quiz requests for the same page can skip the browsing model call.
//
// The cache is an optimization only: the generation pipeline logs and
// ignores every cache error.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/quizgen-api/internal/config"
	"github.com/redis/go-redis/v9"
)

// ContextCache is the summary cache used by the generation pipeline.
type ContextCache interface {
	// GetSummary returns the cached summary for url and whether it was found.
	GetSummary(ctx context.Context, url string) (string, bool, error)

	// SetSummary stores the summary for url.
	SetSummary(ctx context.Context, url, summary string) error

	// Close releases the cache connection.
	Close() error
}

// dialTimeout bounds the connectivity check performed by New.
const dialTimeout = 5 * time.Second

// Key returns the storage key for url. URLs are hashed so keys have a fixed
// length and never contain query strings.
func Key(prefix, url string) string {
	sum := sha256.Sum256([]byte(url))
	return prefix + hex.EncodeToString(sum[:])
}

// New returns the cache described by cfg: a no-op cache when caching is
// disabled, otherwise a Redis cache whose server has answered a ping.
func New(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (ContextCache, error) {
	if !cfg.Enabled {
		logger.InfoContext(ctx, "Context cache disabled")
		return NewNoOpCache(), nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	logger.InfoContext(ctx, "Context cache enabled",
		"redis_addr", opts.Addr,
		"ttl", cfg.TTL().String())

	return NewRedisCache(client, cfg.KeyPrefix, cfg.TTL()), nil
}
