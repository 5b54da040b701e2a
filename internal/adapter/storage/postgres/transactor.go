package postgres

import (
	"context"
	"fmt"

	"wallet-engine/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// Transactor opens the database transactions journal batches are written in.
type Transactor struct {
	pool Pool
}

// NewTransactor creates a Transactor over pool.
func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool}
}

// Begin starts a transaction.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return t.pool.Begin(ctx)
}

// inTx runs fn inside one transaction and commits if it returns nil. A batch
// of wallets, transactions and escrows is visible all at once or not at all.
func inTx(ctx context.Context, t ports.DBTransactor, fn func(tx pgx.Tx) error) error {
	tx, err := t.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin journal tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit journal tx: %w", err)
	}
	return nil
}
