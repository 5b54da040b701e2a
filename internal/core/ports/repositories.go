package ports

import (
	"context"
	"time"

	"wallet-engine/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// Journal persists committed account state. The in-memory engine is
// authoritative; journal writes happen after the local commit.
type Journal interface {
	Commit(ctx context.Context, batch *domain.JournalBatch) error
	// Load returns nil, nil when the account has never been journaled.
	Load(ctx context.Context, accountID string) (*domain.AccountSnapshot, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// PriceCache stores the last refreshed price table so it survives restarts.
type PriceCache interface {
	Save(ctx context.Context, entries []domain.PriceEntry) error
	Load(ctx context.Context) ([]domain.PriceEntry, error)
}

// IdempotencyCache is the Redis-layer idempotency check for retried API calls.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// ExportSink persists an export payload and returns where it was written.
type ExportSink interface {
	Save(ctx context.Context, payload domain.ExportPayload) (string, error)
}

// AuditRepository persists audit trail entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}
