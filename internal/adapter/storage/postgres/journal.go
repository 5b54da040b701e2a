package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"wallet-engine/internal/core/domain"
	"wallet-engine/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Schema creates the journal tables. Safe to run repeatedly.
const Schema = `
CREATE TABLE IF NOT EXISTS wallets (
	account_id        TEXT        NOT NULL,
	symbol            TEXT        NOT NULL,
	encrypted_balance TEXT        NOT NULL,
	updated_at        TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (account_id, symbol)
);
CREATE TABLE IF NOT EXISTS transactions (
	seq            BIGSERIAL,
	id             TEXT PRIMARY KEY,
	account_id     TEXT        NOT NULL,
	type           TEXT        NOT NULL,
	amount         NUMERIC     NOT NULL,
	currency       TEXT        NOT NULL,
	recipient      TEXT        NOT NULL,
	date           TEXT        NOT NULL,
	correlation_id TEXT        NOT NULL DEFAULT '',
	metadata       JSONB,
	created_at     TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS transactions_account_seq ON transactions (account_id, seq);
CREATE TABLE IF NOT EXISTS escrows (
	id                     TEXT PRIMARY KEY,
	account_id             TEXT        NOT NULL,
	amount                 NUMERIC     NOT NULL,
	currency               TEXT        NOT NULL,
	recipient              TEXT        NOT NULL,
	recipient_address      TEXT        NOT NULL,
	note                   TEXT        NOT NULL DEFAULT '',
	expiry                 TIMESTAMPTZ NOT NULL,
	status                 TEXT        NOT NULL,
	release_transaction_id TEXT        NOT NULL DEFAULT '',
	created_at             TIMESTAMPTZ NOT NULL,
	updated_at             TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS idempotency_keys (
	key           TEXT PRIMARY KEY,
	response_json BYTEA       NOT NULL,
	expires_at    TIMESTAMPTZ NOT NULL
);
`

// Journal implements ports.Journal. Balances are stored AES-encrypted; rows
// only move forward in updated_at so a late write never overwrites a newer one.
type Journal struct {
	pool       Pool
	transactor ports.DBTransactor
	encSvc     ports.EncryptionService
}

// NewJournal creates a new Journal.
func NewJournal(pool Pool, transactor ports.DBTransactor, encSvc ports.EncryptionService) *Journal {
	return &Journal{pool: pool, transactor: transactor, encSvc: encSvc}
}

// EnsureSchema creates the journal and audit tables if they are missing.
func (j *Journal) EnsureSchema(ctx context.Context) error {
	if _, err := j.pool.Exec(ctx, Schema+AuditSchema); err != nil {
		return fmt.Errorf("create journal schema: %w", err)
	}
	return nil
}

// Commit writes one batch in a single database transaction.
func (j *Journal) Commit(ctx context.Context, batch *domain.JournalBatch) error {
	if batch == nil || batch.IsEmpty() {
		return nil
	}

	return inTx(ctx, j.transactor, func(tx pgx.Tx) error {
		for _, w := range batch.Wallets {
			if err := j.upsertWallet(ctx, tx, batch.AccountID, w); err != nil {
				return err
			}
		}
		for _, t := range batch.Transactions {
			if err := insertTransaction(ctx, tx, batch.AccountID, t); err != nil {
				return err
			}
		}
		for _, e := range batch.Escrows {
			if err := upsertEscrow(ctx, tx, batch.AccountID, e); err != nil {
				return err
			}
		}
		return nil
	})
}

func (j *Journal) upsertWallet(ctx context.Context, tx pgx.Tx, accountID string, w domain.Wallet) error {
	encrypted, err := j.encSvc.Encrypt(w.Balance.String())
	if err != nil {
		return fmt.Errorf("encrypt balance %s: %w", w.Symbol, err)
	}

	query := `INSERT INTO wallets (account_id, symbol, encrypted_balance, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (account_id, symbol) DO UPDATE
		SET encrypted_balance = EXCLUDED.encrypted_balance, updated_at = EXCLUDED.updated_at
		WHERE wallets.updated_at <= EXCLUDED.updated_at`

	if _, err := tx.Exec(ctx, query, accountID, w.Symbol, encrypted, w.UpdatedAt); err != nil {
		return fmt.Errorf("upsert wallet %s: %w", w.Symbol, err)
	}
	return nil
}

func insertTransaction(ctx context.Context, tx pgx.Tx, accountID string, t domain.Transaction) error {
	metadata, err := json.Marshal(t.Metadata)
	if err != nil {
		return fmt.Errorf("marshal transaction metadata: %w", err)
	}

	query := `INSERT INTO transactions (id, account_id, type, amount, currency, recipient, date, correlation_id, metadata, created_at)
		VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING`

	_, err = tx.Exec(ctx, query,
		t.ID, accountID, string(t.Type), t.Amount.String(), t.Currency,
		t.Recipient, t.Date, t.CorrelationID, metadata, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction %s: %w", t.ID, err)
	}
	return nil
}

func upsertEscrow(ctx context.Context, tx pgx.Tx, accountID string, e domain.Escrow) error {
	query := `INSERT INTO escrows (id, account_id, amount, currency, recipient, recipient_address, note,
		expiry, status, release_transaction_id, created_at, updated_at)
		VALUES ($1, $2, $3::numeric, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE
		SET status = EXCLUDED.status, release_transaction_id = EXCLUDED.release_transaction_id,
			updated_at = EXCLUDED.updated_at
		WHERE escrows.updated_at <= EXCLUDED.updated_at`

	_, err := tx.Exec(ctx, query,
		e.ID, accountID, e.Amount.String(), e.Currency, e.Recipient, e.RecipientAddress, e.Note,
		e.Expiry, string(e.Status), e.ReleaseTransactionID, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert escrow %s: %w", e.ID, err)
	}
	return nil
}

// Load reads the persisted state of an account. Returns nil, nil when nothing was journaled.
func (j *Journal) Load(ctx context.Context, accountID string) (*domain.AccountSnapshot, error) {
	wallets, err := j.loadWallets(ctx, accountID)
	if err != nil {
		return nil, err
	}
	txs, err := j.loadTransactions(ctx, accountID)
	if err != nil {
		return nil, err
	}
	escrows, err := j.loadEscrows(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if len(wallets) == 0 && len(txs) == 0 && len(escrows) == 0 {
		return nil, nil
	}
	return &domain.AccountSnapshot{
		AccountID:    accountID,
		Wallets:      wallets,
		Transactions: txs,
		Escrows:      escrows,
	}, nil
}

func (j *Journal) loadWallets(ctx context.Context, accountID string) ([]domain.Wallet, error) {
	query := `SELECT symbol, encrypted_balance, updated_at FROM wallets WHERE account_id = $1 ORDER BY symbol`

	rows, err := j.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("query wallets: %w", err)
	}
	defer rows.Close()

	var out []domain.Wallet
	for rows.Next() {
		var w domain.Wallet
		var encrypted string
		if err := rows.Scan(&w.Symbol, &encrypted, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan wallet: %w", err)
		}
		plain, err := j.encSvc.Decrypt(encrypted)
		if err != nil {
			return nil, fmt.Errorf("decrypt balance %s: %w", w.Symbol, err)
		}
		if w.Balance, err = decimal.NewFromString(plain); err != nil {
			return nil, fmt.Errorf("parse balance %s: %w", w.Symbol, err)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallets: %w", err)
	}
	return out, nil
}

func (j *Journal) loadTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	query := `SELECT id, type, amount::text, currency, recipient, date, correlation_id, metadata, created_at
		FROM transactions WHERE account_id = $1 ORDER BY seq`

	rows, err := j.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		var txType, amount string
		var metadata []byte
		if err := rows.Scan(&t.ID, &txType, &amount, &t.Currency, &t.Recipient, &t.Date,
			&t.CorrelationID, &metadata, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Type = domain.TransactionType(txType)
		if t.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("parse amount of %s: %w", t.ID, err)
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &t.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshal metadata of %s: %w", t.ID, err)
			}
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}

func (j *Journal) loadEscrows(ctx context.Context, accountID string) ([]domain.Escrow, error) {
	query := `SELECT id, amount::text, currency, recipient, recipient_address, note, expiry, status,
		release_transaction_id, created_at, updated_at
		FROM escrows WHERE account_id = $1 ORDER BY created_at, id`

	rows, err := j.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("query escrows: %w", err)
	}
	defer rows.Close()

	var out []domain.Escrow
	for rows.Next() {
		e := domain.Escrow{AccountID: accountID}
		var amount, status string
		if err := rows.Scan(&e.ID, &amount, &e.Currency, &e.Recipient, &e.RecipientAddress, &e.Note,
			&e.Expiry, &status, &e.ReleaseTransactionID, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan escrow: %w", err)
		}
		e.Status = domain.EscrowStatus(status)
		if e.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("parse amount of escrow %s: %w", e.ID, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate escrows: %w", err)
	}
	return out, nil
}
