package cache

import "context"

// NoOpCache is a cache implementation that does nothing.
// Every lookup is a miss and every store succeeds without storing.
type NoOpCache struct{}

// NewNoOpCache creates a new no-op cache instance
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// GetSummary always reports a cache miss.
func (c *NoOpCache) GetSummary(ctx context.Context, url string) (string, bool, error) {
	return "", false, nil
}

// SetSummary does nothing and always succeeds
func (c *NoOpCache) SetSummary(ctx context.Context, url, summary string) error {
	return nil
}

// Close does nothing and always succeeds
func (c *NoOpCache) Close() error {
	return nil
}
