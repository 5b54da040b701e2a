package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const idempotencyPrefix = "wallet:idem:"

// IdempotencyCache keeps the recorded response of a mutating wallet request
// (swap, transfer, escrow action) under its account-scoped Idempotency-Key,
// so a retried request replays the first outcome instead of moving funds twice.
type IdempotencyCache struct {
	client *goredis.Client
}

// NewIdempotencyCache creates the cache over client.
func NewIdempotencyCache(client *goredis.Client) *IdempotencyCache {
	return &IdempotencyCache{client: client}
}

// Get returns the recorded response for key, or nil, nil when none is stored.
func (c *IdempotencyCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, idempotencyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get recorded response %q: %w", key, err)
	}
	return val, nil
}

// Set records a response until ttl elapses.
func (c *IdempotencyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, idempotencyPrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("record response %q: %w", key, err)
	}
	return nil
}
