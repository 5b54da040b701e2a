package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallet-engine/pkg/apperror"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(io.Discard)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestQuote_SeedRates(t *testing.T) {
	out, err := run(t, "quote", "sui", "usd", "10")
	require.NoError(t, err)
	assert.Equal(t, "10 SUI = 15.000000 USD\n", out)
}

func TestQuote_UnknownAssetWarns(t *testing.T) {
	out, err := run(t, "quote", "doge", "usd", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "4 DOGE = 4.000000 USD")
	assert.Contains(t, out, "warning: no rate")
}

func TestQuote_InvalidAmount(t *testing.T) {
	for _, amount := range []string{"abc", "1e3", "0", "1 000"} {
		_, err := run(t, "quote", "sui", "usd", amount)
		require.Error(t, err, amount)
		assert.True(t, apperror.Is(err, apperror.CodeInvalidAmount), amount)
	}
}

func TestQuote_WrongArgCount(t *testing.T) {
	_, err := run(t, "quote", "sui", "usd")
	assert.Error(t, err)
}

func TestDeeplink(t *testing.T) {
	out, err := run(t, "deeplink", "0xabc", "--amount", "2.5", "--token", "sui", "--note", "lunch money")
	require.NoError(t, err)
	assert.Equal(t, "wallet:0xabc?amount=2.5&token=SUI&note=lunch%20money\n", out)
}

func TestDeeplink_DefaultsAndScheme(t *testing.T) {
	out, err := run(t, "deeplink", "0xabc", "--scheme", "sui")
	require.NoError(t, err)
	assert.Equal(t, "sui:0xabc?amount=0&token=&note=\n", out)
}

func TestDeeplink_NegativeAmount(t *testing.T) {
	_, err := run(t, "deeplink", "0xabc", "--amount=-1")
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.CodeInvalidAmount))
}

const sampleTxs = `[
	{"id":"tx-1","type":"sent","amount":"12.5","currency":"USD","recipient":"alice","date":"2026-01-02"},
	{"id":"tx-2","type":"received","amount":"3","currency":"SUI","recipient":"bob \"b\"","date":"2026-01-03"}
]`

func writeSample(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "txs.json")
	require.NoError(t, os.WriteFile(in, []byte(sampleTxs), 0o600))
	return dir, in
}

func TestExport_CSV(t *testing.T) {
	dir, in := writeSample(t)
	outDir := filepath.Join(dir, "out")

	out, err := run(t, "export", in, "--dir", outDir, "--prefix", "acct")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 2 rows to ")

	matches, err := filepath.Glob(filepath.Join(outDir, "acct_*.csv"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID,Type,Amount,Currency,Recipient,Date", lines[0])
	assert.Equal(t, `"tx-1","sent","12.5","USD","alice","2026-01-02"`, lines[1])
	assert.Equal(t, `"tx-2","received","3","SUI","bob ""b""","2026-01-03"`, lines[2])
}

func TestExport_PNG(t *testing.T) {
	dir, in := writeSample(t)

	_, err := run(t, "export", in, "--format", "png", "--dir", dir, "--prefix", "acct")
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(dir, "acct_*.png"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestExport_BadInput(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o600))

	_, err := run(t, "export", bad, "--dir", dir)
	assert.Error(t, err)

	_, err = run(t, "export", filepath.Join(dir, "missing.json"), "--dir", dir)
	assert.Error(t, err)

	_, err = run(t, "export", bad, "--format", "pdf", "--dir", dir)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.CodeValidation))
}
