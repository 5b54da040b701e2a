package service

import (
	"errors"
	"testing"
	"time"

	"wallet-engine/internal/core/domain"
	"wallet-engine/internal/core/ports/mocks"
	"wallet-engine/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

func sampleTransactions() []domain.Transaction {
	return []domain.Transaction{
		{ID: "T1", Type: domain.TransactionTypeSent, Amount: dec("100"), Currency: "USD", Recipient: "Jane Cooper", Date: "today"},
		{ID: "T2", Type: domain.TransactionTypeReceived, Amount: dec("250.5"), Currency: "SUI", Recipient: "Wade Warren", Date: "3 days ago"},
		{ID: "T3", Type: domain.TransactionTypeSent, Amount: dec("0.25"), Currency: "ETH", Recipient: "Esther Howard", Date: "2026-02-20"},
		{ID: "T4", Type: domain.TransactionTypeReceived, Amount: dec("40"), Currency: "USDC", Recipient: "Jane Cooper", Date: "Aug 1, 2025"},
		{ID: "T5", Type: domain.TransactionTypeSent, Amount: dec("12"), Currency: "DOGE", Recipient: "Cameron", Date: "2024-01-01"},
	}
}

func ids(txs []domain.Transaction) []string {
	out := make([]string, len(txs))
	for i, tx := range txs {
		out[i] = tx.ID
	}
	return out
}

func TestTransactionLog_Append(t *testing.T) {
	l := NewTransactionLog()
	l.now = func() time.Time { return fixedNow }

	tx, err := l.Append(domain.Transaction{Type: domain.TransactionTypeSent, Amount: dec("5"), Currency: "usd", Recipient: "Jane"})
	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID, "id generated when absent")
	assert.Equal(t, "USD", tx.Currency)
	assert.Equal(t, fixedNow, tx.CreatedAt)
	assert.Equal(t, fixedNow.Format(time.RFC3339), tx.Date)
	assert.Equal(t, 1, l.Len())

	got, ok := l.Get(tx.ID)
	require.True(t, ok)
	assert.Equal(t, tx, got)
}

func TestTransactionLog_Append_Validation(t *testing.T) {
	tests := []struct {
		name string
		tx   domain.Transaction
		code string
	}{
		{"bad type", domain.Transaction{Type: "refund", Amount: dec("1"), Currency: "USD"}, apperror.CodeValidation},
		{"zero amount", domain.Transaction{Type: domain.TransactionTypeSent, Amount: dec("0"), Currency: "USD"}, apperror.CodeInvalidAmount},
		{"no currency", domain.Transaction{Type: domain.TransactionTypeSent, Amount: dec("1")}, apperror.CodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewTransactionLog()
			_, err := l.Append(tt.tx)
			assert.True(t, apperror.Is(err, tt.code), "got %v", err)
			assert.Equal(t, 0, l.Len())
		})
	}
}

func TestTransactionLog_Append_Duplicate(t *testing.T) {
	l := NewTransactionLog()
	tx := domain.Transaction{ID: "T1", Type: domain.TransactionTypeSent, Amount: dec("1"), Currency: "USD"}

	_, err := l.Append(tx)
	require.NoError(t, err)
	_, err = l.Append(tx)
	assert.True(t, apperror.Is(err, apperror.CodeDuplicateTransaction))
	assert.Equal(t, 1, l.Len())
}

func TestTransactionLog_AppendBatch_AllOrNothing(t *testing.T) {
	l := NewTransactionLog()
	_, err := l.AppendBatch(
		domain.Transaction{ID: "A", Type: domain.TransactionTypeSent, Amount: dec("1"), Currency: "USD"},
		domain.Transaction{ID: "A", Type: domain.TransactionTypeReceived, Amount: dec("1"), Currency: "SUI"},
	)
	assert.True(t, apperror.Is(err, apperror.CodeDuplicateTransaction))
	assert.Equal(t, 0, l.Len())
}

func TestTransactionLog_ReturnsCopies(t *testing.T) {
	l := NewTransactionLog()
	tx, err := l.Append(domain.Transaction{
		ID: "T1", Type: domain.TransactionTypeSent, Amount: dec("1"), Currency: "USD",
		Metadata: map[string]string{domain.MetaEscrowID: "e1"},
	})
	require.NoError(t, err)

	tx.Metadata[domain.MetaEscrowID] = "tampered"
	all := l.All()
	all[0].Recipient = "tampered"

	got, _ := l.Get("T1")
	assert.Equal(t, "e1", got.Metadata[domain.MetaEscrowID])
	assert.Empty(t, got.Recipient)
}

func TestTransactionLog_Restore_KeepsOrder(t *testing.T) {
	l := NewTransactionLog()
	l.Restore(sampleTransactions())

	assert.Equal(t, []string{"T1", "T2", "T3", "T4", "T5"}, ids(l.All()))
	_, err := l.Append(domain.Transaction{ID: "T3", Type: domain.TransactionTypeSent, Amount: dec("1"), Currency: "USD"})
	assert.True(t, apperror.Is(err, apperror.CodeDuplicateTransaction))
}

func TestParseTransactionDate(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{"today", fixedNow},
		{"Yesterday", fixedNow.AddDate(0, 0, -1)},
		{"3 days ago", fixedNow.AddDate(0, 0, -3)},
		{"1 day ago", fixedNow.AddDate(0, 0, -1)},
		{"2 hours ago", fixedNow.Add(-2 * time.Hour)},
		{"2 weeks ago", fixedNow.AddDate(0, 0, -14)},
		{"2026-02-20", time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)},
		{"2026-02-20 09:15", time.Date(2026, 2, 20, 9, 15, 0, 0, time.UTC)},
		{"2026-02-20T09:15:00Z", time.Date(2026, 2, 20, 9, 15, 0, 0, time.UTC)},
		{"Aug 1, 2025", time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)},
		{"not a date", fixedNow},
		{"", fixedNow},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.True(t, tt.want.Equal(ParseTransactionDate(tt.raw, fixedNow)), "got %v", ParseTransactionDate(tt.raw, fixedNow))
		})
	}
}

func TestFilterTransactions(t *testing.T) {
	txs := sampleTransactions()

	tests := []struct {
		name   string
		filter domain.TransactionFilter
		want   []string
	}{
		{"zero filter", domain.TransactionFilter{}, []string{"T1", "T2", "T3", "T4", "T5"}},
		{"sent", domain.TransactionFilter{Type: domain.TypeFilterSent}, []string{"T1", "T3", "T5"}},
		{"received", domain.TransactionFilter{Type: domain.TypeFilterReceived}, []string{"T2", "T4"}},
		{"today", domain.TransactionFilter{Range: domain.DateRangeToday}, []string{"T1"}},
		{"week", domain.TransactionFilter{Range: domain.DateRangeWeek}, []string{"T1", "T2"}},
		{"month", domain.TransactionFilter{Range: domain.DateRangeMonth}, []string{"T1", "T2", "T3"}},
		{"year", domain.TransactionFilter{Range: domain.DateRangeYear}, []string{"T1", "T2", "T3", "T4"}},
		{"search recipient", domain.TransactionFilter{Search: "jane"}, []string{"T1", "T4"}},
		{"search currency", domain.TransactionFilter{Search: "usd"}, []string{"T1", "T4"}},
		{"search amount", domain.TransactionFilter{Search: "250.5"}, []string{"T2"}},
		{"search id", domain.TransactionFilter{Search: "t5"}, []string{"T5"}},
		{"composed", domain.TransactionFilter{Search: "jane", Type: domain.TypeFilterReceived, Range: domain.DateRangeYear}, []string{"T4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterTransactions(txs, tt.filter, fixedNow)))
		})
	}
}

func TestFilterTransactions_SentThenReceivedIsEmpty(t *testing.T) {
	sent := FilterTransactions(sampleTransactions(), domain.TransactionFilter{Type: domain.TypeFilterSent}, fixedNow)
	both := FilterTransactions(sent, domain.TransactionFilter{Type: domain.TypeFilterReceived}, fixedNow)
	assert.Empty(t, both)
}

func TestFilterTransactions_AllDateRangeIsNoOp(t *testing.T) {
	filters := []domain.TransactionFilter{
		{Search: "jane"},
		{Type: domain.TypeFilterSent},
		{Search: "u", Type: domain.TypeFilterReceived},
	}
	for _, f := range filters {
		withAll := f
		withAll.Range = domain.DateRangeAll
		assert.Equal(t,
			ids(FilterTransactions(sampleTransactions(), f, fixedNow)),
			ids(FilterTransactions(sampleTransactions(), withAll, fixedNow)))
	}
}

func TestAggregate(t *testing.T) {
	o := testOracle()
	summary := Aggregate(sampleTransactions(), o)

	assert.Equal(t, 3, summary.SentCount)
	assert.Equal(t, 2, summary.ReceivedCount)
	// sent: 100 USD + 0.25 ETH*3200 + 12 DOGE*1 (unpriced)
	assert.True(t, dec("912").Equal(summary.SentValue), "got %s", summary.SentValue)
	// received: 250.5 SUI*1.5 + 40 USDC
	assert.True(t, dec("415.75").Equal(summary.ReceivedValue), "got %s", summary.ReceivedValue)
	assert.True(t, dec("-496.25").Equal(summary.NetFlow), "got %s", summary.NetFlow)
	assert.Equal(t, "USD", summary.PivotCurrency)
	assert.Equal(t, []string{"DOGE"}, summary.UnpricedCurrencies)
}

func TestAggregate_Empty(t *testing.T) {
	summary := Aggregate(nil, testOracle())
	assert.Zero(t, summary.SentCount)
	assert.True(t, summary.NetFlow.IsZero())
	assert.Nil(t, summary.UnpricedCurrencies)
}

func TestEncodeTabular_SingleRow(t *testing.T) {
	txs := []domain.Transaction{
		{ID: "T1", Type: domain.TransactionTypeSent, Amount: dec("100"), Currency: "USD", Recipient: "Jane", Date: "today"},
	}

	got := string(EncodeTabular(txs))
	assert.Equal(t, "ID,Type,Amount,Currency,Recipient,Date\n\"T1\",\"sent\",\"100\",\"USD\",\"Jane\",\"today\"", got)
}

func TestEncodeTabular_EscapesQuotes(t *testing.T) {
	txs := []domain.Transaction{
		{ID: "T9", Type: domain.TransactionTypeReceived, Amount: dec("1.5"), Currency: "SUI", Recipient: `Dwayne "The Rock", Jr`, Date: "2026-01-01"},
	}

	got := string(EncodeTabular(txs))
	assert.Contains(t, got, `"Dwayne ""The Rock"", Jr"`)
}

func TestEncodeTabular_HeaderOnly(t *testing.T) {
	assert.Equal(t, "ID,Type,Amount,Currency,Recipient,Date", string(EncodeTabular(nil)))
}

func TestExportTransactions_Tabular(t *testing.T) {
	payload, err := ExportTransactions(sampleTransactions()[:1], domain.ExportFormatTabular, nil, "transactions", fixedNow)
	require.NoError(t, err)

	assert.Equal(t, "transactions_2026-03-15.csv", payload.Filename)
	assert.Equal(t, "text/csv", payload.ContentType)
	assert.Equal(t, 1, payload.Rows)
	assert.Contains(t, string(payload.Data), `"T1","sent","100","USD","Jane Cooper","today"`)
}

func TestExportTransactions_Snapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockSnapshotRenderer(ctrl)
	renderer.EXPECT().Render(gomock.Len(2)).Return([]byte("png-bytes"), nil)

	payload, err := ExportTransactions(sampleTransactions()[:2], domain.ExportFormatSnapshot, renderer, "history", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "history_2026-03-15.png", payload.Filename)
	assert.Equal(t, []byte("png-bytes"), payload.Data)
}

func TestExportTransactions_Failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockSnapshotRenderer(ctrl)
	renderer.EXPECT().Render(gomock.Any()).Return(nil, errors.New("out of memory"))

	_, err := ExportTransactions(nil, domain.ExportFormatSnapshot, renderer, "p", fixedNow)
	assert.True(t, apperror.Is(err, apperror.CodeExportFailed))

	_, err = ExportTransactions(nil, domain.ExportFormatSnapshot, nil, "p", fixedNow)
	assert.True(t, apperror.Is(err, apperror.CodeExportFailed))

	_, err = ExportTransactions(nil, "pdf", nil, "p", fixedNow)
	assert.True(t, apperror.Is(err, apperror.CodeExportFailed))
}
