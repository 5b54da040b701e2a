package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdempotencyFixture(t *testing.T) (pgxmock.PgxPoolIface, *IdempotencyRepo, time.Time) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	now := time.Now().UTC().Truncate(time.Microsecond)
	repo := NewIdempotencyRepo(mock)
	repo.now = func() time.Time { return now }
	return mock, repo, now
}

func TestIdempotencyRepo_Set(t *testing.T) {
	mock, repo, now := newIdempotencyFixture(t)
	body := []byte(`{"success":true}`)

	mock.ExpectExec("INSERT INTO idempotency_keys").
		WithArgs("alice:swap-001", body, now.Add(24*time.Hour), now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Set(context.Background(), "alice:swap-001", body, 24*time.Hour)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencyRepo_Get(t *testing.T) {
	mock, repo, now := newIdempotencyFixture(t)

	mock.ExpectQuery("SELECT response_json FROM idempotency_keys WHERE key").
		WithArgs("alice:swap-001", now).
		WillReturnRows(pgxmock.NewRows([]string{"response_json"}).AddRow([]byte(`{"success":true}`)))

	result, err := repo.Get(context.Background(), "alice:swap-001")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"success":true}`), result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencyRepo_Get_NotFound(t *testing.T) {
	mock, repo, now := newIdempotencyFixture(t)

	mock.ExpectQuery("SELECT response_json FROM idempotency_keys WHERE key").
		WithArgs("nonexistent", now).
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.Get(context.Background(), "nonexistent")
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestIdempotencyRepo_Get_Error(t *testing.T) {
	mock, repo, now := newIdempotencyFixture(t)

	mock.ExpectQuery("SELECT response_json FROM idempotency_keys WHERE key").
		WithArgs("k", now).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.Get(context.Background(), "k")
	assert.ErrorContains(t, err, "get idempotency key")
}
