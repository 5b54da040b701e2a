package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// IdempotencyRepo implements ports.IdempotencyCache on the idempotency_keys
// table. It backs the API when Redis is disabled.
type IdempotencyRepo struct {
	pool Pool
	now  func() time.Time
}

// NewIdempotencyRepo creates a new IdempotencyRepo.
func NewIdempotencyRepo(pool Pool) *IdempotencyRepo {
	return &IdempotencyRepo{pool: pool, now: time.Now}
}

// Get fetches a cached response by key. Returns nil, nil when absent or expired.
func (r *IdempotencyRepo) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT response_json FROM idempotency_keys WHERE key = $1 AND expires_at > $2`

	var body []byte
	err := r.pool.QueryRow(ctx, query, key, r.now()).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get idempotency key: %w", err)
	}
	return body, nil
}

// Set stores a response until now+ttl, replacing an expired entry for the same key.
func (r *IdempotencyRepo) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	query := `INSERT INTO idempotency_keys (key, response_json, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET response_json = EXCLUDED.response_json, expires_at = EXCLUDED.expires_at
		WHERE idempotency_keys.expires_at <= $4`

	now := r.now()
	if _, err := r.pool.Exec(ctx, query, key, value, now.Add(ttl), now); err != nil {
		return fmt.Errorf("insert idempotency key: %w", err)
	}
	return nil
}
