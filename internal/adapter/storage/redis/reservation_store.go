package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ReservationStore claims idempotency keys while the first request holding
// them is still executing, using Redis SET NX.
type ReservationStore struct {
	client *goredis.Client
	prefix string
}

// NewReservationStore creates a new Redis-backed reservation store.
func NewReservationStore(client *goredis.Client) *ReservationStore {
	return &ReservationStore{
		client: client,
		prefix: "inflight:",
	}
}

// Reserve atomically claims key for ttl.
// Returns true if the key was free, false if another request holds it.
func (s *ReservationStore) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	result, err := s.client.SetArgs(ctx, s.prefix+key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("redis reserve: %w", err)
	}
	return result == "OK", nil
}

// Release drops a claim once the response has been cached.
func (s *ReservationStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis release: %w", err)
	}
	return nil
}
