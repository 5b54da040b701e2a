package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"wallet-engine/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSink_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	sink := NewFileSink(dir, zerolog.Nop())

	path, err := sink.Save(context.Background(), domain.ExportPayload{
		Format:   domain.ExportFormatTabular,
		Filename: "transactions_2026-03-15.csv",
		Data:     []byte("ID,Type,Amount,Currency,Recipient,Date"),
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "transactions_2026-03-15.csv"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ID,Type,Amount,Currency,Recipient,Date", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should be renamed away")
}

func TestFileSink_Save_Overwrites(t *testing.T) {
	sink := NewFileSink(t.TempDir(), zerolog.Nop())
	payload := domain.ExportPayload{Filename: "wallet_2026-03-15.csv", Data: []byte("first")}

	_, err := sink.Save(context.Background(), payload)
	require.NoError(t, err)
	payload.Data = []byte("second")
	path, err := sink.Save(context.Background(), payload)
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(b))
}

func TestFileSink_Save_StripsDirectories(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(dir, zerolog.Nop())

	path, err := sink.Save(context.Background(), domain.ExportPayload{Filename: "../../etc/passwd", Data: []byte("x")})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "passwd"), path)
}
