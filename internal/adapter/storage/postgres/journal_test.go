package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"wallet-engine/internal/core/domain"
	"wallet-engine/internal/core/ports/mocks"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newJournalFixture(t *testing.T) (pgxmock.PgxPoolIface, *mocks.MockEncryptionService, *Journal) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	enc := mocks.NewMockEncryptionService(gomock.NewController(t))
	return mock, enc, NewJournal(mock, NewTransactor(mock), enc)
}

func TestJournal_Commit(t *testing.T) {
	mock, enc, journal := newJournalFixture(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	batch := &domain.JournalBatch{
		AccountID: "alice",
		Wallets:   []domain.Wallet{{Symbol: "USD", Balance: decimal.RequireFromString("500.25"), UpdatedAt: now}},
		Transactions: []domain.Transaction{{
			ID: "tx-1", Type: domain.TransactionTypeSent, Amount: decimal.RequireFromString("500"),
			Currency: "USD", Recipient: "Jane Cooper", Date: now.Format(time.RFC3339), CreatedAt: now,
			Metadata: map[string]string{domain.MetaEscrowID: "esc-1"},
		}},
		Escrows: []domain.Escrow{{
			ID: "esc-1", Amount: decimal.RequireFromString("500"), Currency: "USD", Recipient: "Jane Cooper",
			RecipientAddress: "0xjane", Expiry: now.Add(time.Hour), Status: domain.EscrowStatusReleased,
			ReleaseTransactionID: "tx-1", CreatedAt: now, UpdatedAt: now,
		}},
	}

	enc.EXPECT().Encrypt("500.25").Return("enc-500.25", nil)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO wallets").
		WithArgs("alice", "USD", "enc-500.25", now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO transactions").
		WithArgs("tx-1", "alice", "sent", "500", "USD", "Jane Cooper", now.Format(time.RFC3339), "",
			[]byte(`{"escrow_id":"esc-1"}`), now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO escrows").
		WithArgs("esc-1", "alice", "500", "USD", "Jane Cooper", "0xjane", "",
			now.Add(time.Hour), "released", "tx-1", now, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := journal.Commit(context.Background(), batch)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournal_Commit_RollsBackOnError(t *testing.T) {
	mock, enc, journal := newJournalFixture(t)

	enc.EXPECT().Encrypt("1").Return("enc-1", nil)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO wallets").
		WithArgs("alice", "SUI", "enc-1", pgxmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := journal.Commit(context.Background(), &domain.JournalBatch{
		AccountID: "alice",
		Wallets:   []domain.Wallet{{Symbol: "SUI", Balance: decimal.NewFromInt(1)}},
	})
	assert.ErrorContains(t, err, "upsert wallet SUI")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournal_Commit_EmptyBatch(t *testing.T) {
	mock, _, journal := newJournalFixture(t)

	assert.NoError(t, journal.Commit(context.Background(), &domain.JournalBatch{AccountID: "alice"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournal_Load(t *testing.T) {
	mock, enc, journal := newJournalFixture(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT (.+) FROM wallets WHERE account_id").
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"symbol", "encrypted_balance", "updated_at"}).
			AddRow("USD", "enc-500.25", now))
	enc.EXPECT().Decrypt("enc-500.25").Return("500.25", nil)

	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE account_id").
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "type", "amount", "currency", "recipient", "date", "correlation_id", "metadata", "created_at",
		}).AddRow("tx-1", "received", "12.5", "USDC", "Wade Warren", "yesterday", "", []byte(`{"source":"external"}`), now))

	mock.ExpectQuery("SELECT (.+) FROM escrows WHERE account_id").
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "amount", "currency", "recipient", "recipient_address", "note", "expiry", "status",
			"release_transaction_id", "created_at", "updated_at",
		}).AddRow("esc-1", "40", "USD", "Jane Cooper", "0xjane", "rent", now.Add(time.Hour), "disputed", "", now, now))

	snap, err := journal.Load(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, snap)

	require.Len(t, snap.Wallets, 1)
	assert.True(t, decimal.RequireFromString("500.25").Equal(snap.Wallets[0].Balance))

	require.Len(t, snap.Transactions, 1)
	assert.Equal(t, domain.TransactionTypeReceived, snap.Transactions[0].Type)
	assert.Equal(t, "external", snap.Transactions[0].Metadata[domain.MetaSource])

	require.Len(t, snap.Escrows, 1)
	assert.Equal(t, domain.EscrowStatusDisputed, snap.Escrows[0].Status)
	assert.Equal(t, "alice", snap.Escrows[0].AccountID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournal_Load_Empty(t *testing.T) {
	mock, _, journal := newJournalFixture(t)

	mock.ExpectQuery("SELECT (.+) FROM wallets").WithArgs("bob").
		WillReturnRows(pgxmock.NewRows([]string{"symbol", "encrypted_balance", "updated_at"}))
	mock.ExpectQuery("SELECT (.+) FROM transactions").WithArgs("bob").
		WillReturnRows(pgxmock.NewRows([]string{"id", "type", "amount", "currency", "recipient", "date", "correlation_id", "metadata", "created_at"}))
	mock.ExpectQuery("SELECT (.+) FROM escrows").WithArgs("bob").
		WillReturnRows(pgxmock.NewRows([]string{"id", "amount", "currency", "recipient", "recipient_address", "note", "expiry", "status", "release_transaction_id", "created_at", "updated_at"}))

	snap, err := journal.Load(context.Background(), "bob")
	assert.NoError(t, err)
	assert.Nil(t, snap)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournal_Load_DecryptError(t *testing.T) {
	mock, enc, journal := newJournalFixture(t)

	mock.ExpectQuery("SELECT (.+) FROM wallets").WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"symbol", "encrypted_balance", "updated_at"}).
			AddRow("USD", "garbage", time.Now()))
	enc.EXPECT().Decrypt("garbage").Return("", errors.New("cipher: message authentication failed"))

	_, err := journal.Load(context.Background(), "alice")
	assert.ErrorContains(t, err, "decrypt balance USD")
}

func TestJournal_EnsureSchema(t *testing.T) {
	mock, _, journal := newJournalFixture(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS wallets").WillReturnResult(pgxmock.NewResult("CREATE", 0))

	assert.NoError(t, journal.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
