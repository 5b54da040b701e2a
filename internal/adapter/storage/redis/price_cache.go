package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"wallet-engine/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// PriceCache implements ports.PriceCache as one JSON document in Redis.
type PriceCache struct {
	client *goredis.Client
	key    string
}

// NewPriceCache creates a new Redis-backed price cache.
func NewPriceCache(client *goredis.Client) *PriceCache {
	return &PriceCache{
		client: client,
		key:    "prices:table",
	}
}

// Save replaces the cached price table.
func (c *PriceCache) Save(ctx context.Context, entries []domain.PriceEntry) error {
	body, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal price table: %w", err)
	}
	if err := c.client.Set(ctx, c.key, body, 0).Err(); err != nil {
		return fmt.Errorf("redis price set: %w", err)
	}
	return nil
}

// Load returns the cached price table, or nil when none was saved.
func (c *PriceCache) Load(ctx context.Context) ([]domain.PriceEntry, error) {
	body, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis price get: %w", err)
	}

	var entries []domain.PriceEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("unmarshal price table: %w", err)
	}
	return entries, nil
}
