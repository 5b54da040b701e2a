package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReservationStore(t *testing.T) (*miniredis.Miniredis, *ReservationStore) {
	t.Helper()
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	return s, NewReservationStore(client)
}

func TestReservationStore_Reserve(t *testing.T) {
	_, store := newReservationStore(t)
	ctx := context.Background()

	ok, err := store.Reserve(ctx, "alice:swap-001", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "free key should be reserved")

	ok, err = store.Reserve(ctx, "alice:swap-001", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "held key should be refused")

	ok, err = store.Reserve(ctx, "bob:swap-001", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "keys are scoped per account")
}

func TestReservationStore_Release(t *testing.T) {
	_, store := newReservationStore(t)
	ctx := context.Background()

	_, err := store.Reserve(ctx, "alice:transfer-9", time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Release(ctx, "alice:transfer-9"))

	ok, err := store.Reserve(ctx, "alice:transfer-9", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReservationStore_Expires(t *testing.T) {
	s, store := newReservationStore(t)
	ctx := context.Background()

	ok, err := store.Reserve(ctx, "alice:swap-002", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	s.FastForward(2 * time.Second)

	ok, err = store.Reserve(ctx, "alice:swap-002", time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "abandoned reservation should lapse")
}
