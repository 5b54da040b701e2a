package service

import (
	"context"
	"testing"

	"wallet-engine/internal/core/domain"
	"wallet-engine/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type swapFixture struct {
	engine  *SwapEngine
	ledger  *Ledger
	txLog   *TransactionLog
	batches []domain.JournalBatch
}

func newSwapFixture() *swapFixture {
	f := &swapFixture{ledger: NewLedger(), txLog: NewTransactionLog()}
	f.ledger.Seed(map[string]decimal.Decimal{"SUI": dec("1000"), "USDC": dec("50"), "ETH": dec("2")})
	f.engine = NewSwapEngine(f.ledger, f.txLog, testOracle(), func(b domain.JournalBatch) {
		f.batches = append(f.batches, b)
	}, zerolog.Nop())
	return f
}

func TestSwapEngine_Quote_SUIToUSDC(t *testing.T) {
	f := newSwapFixture()

	q, err := f.engine.Quote("SUI", "USDC", dec("100"))
	require.NoError(t, err)
	assert.Equal(t, "150.000000", q.Display())
	assert.True(t, q.RateKnown)
}

func TestSwapEngine_Quote(t *testing.T) {
	f := newSwapFixture()

	tests := []struct {
		name    string
		from    string
		to      string
		amount  string
		display string
		known   bool
	}{
		{"eth to sui", "ETH", "SUI", "1", "2133.333333", true},
		{"usdc to eth", "usdc", "eth", "100", "0.031250", true},
		{"unknown source falls back", "DOGE", "USDC", "10", "10.000000", false},
		{"pivot to asset", "USD", "SUI", "3", "2.000000", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := f.engine.Quote(tt.from, tt.to, dec(tt.amount))
			require.NoError(t, err)
			assert.Equal(t, tt.display, q.Display())
			assert.Equal(t, tt.known, q.RateKnown)
		})
	}
}

func TestSwapEngine_Quote_InvalidAmount(t *testing.T) {
	f := newSwapFixture()
	for _, a := range []string{"0", "-1"} {
		_, err := f.engine.Quote("SUI", "USDC", dec(a))
		assert.True(t, apperror.Is(err, apperror.CodeInvalidAmount))
	}
	_, err := f.engine.Quote("", "USDC", dec("1"))
	assert.True(t, apperror.Is(err, apperror.CodeValidation))
}

func TestSwapEngine_QuoteRoundTrip(t *testing.T) {
	f := newSwapFixture()
	pairs := [][2]string{{"SUI", "USDC"}, {"ETH", "SUI"}, {"USDC", "ETH"}, {"SUI", "ETH"}}
	amounts := []string{"0.001", "1", "7.77", "123.456", "99999"}
	tolerance := dec("0.000001")

	for _, p := range pairs {
		for _, a := range amounts {
			x := dec(a)
			there, err := f.engine.Quote(p[0], p[1], x)
			require.NoError(t, err)
			back, err := f.engine.Quote(p[1], p[0], there.Output)
			require.NoError(t, err)
			assert.True(t, back.Output.Sub(x).Abs().LessThanOrEqual(tolerance),
				"%s->%s->%s: %s became %s", p[0], p[1], p[0], x, back.Output)
		}
	}
}

func TestSwapEngine_Execute_RoundTripRestoresBalances(t *testing.T) {
	tests := []struct {
		from   string
		to     string
		amount string
	}{
		{"SUI", "USDC", "100"},
		{"ETH", "SUI", "1.5"},
		{"USDC", "ETH", "33.33"},
		{"SUI", "ETH", "0.001"},
		{"USDC", "SUI", "49.999999"},
	}
	tolerance := dec("0.000001")

	for _, tt := range tests {
		t.Run(tt.from+"-"+tt.to, func(t *testing.T) {
			f := newSwapFixture()
			ctx := context.Background()
			fromBefore := f.ledger.Balance(tt.from)
			toBefore := f.ledger.Balance(tt.to)

			there, err := f.engine.Execute(ctx, domain.SwapRequest{From: tt.from, To: tt.to, Amount: dec(tt.amount)})
			require.NoError(t, err)
			_, err = f.engine.Execute(ctx, domain.SwapRequest{From: tt.to, To: tt.from, Amount: there.Quote.Output})
			require.NoError(t, err)

			assert.True(t, f.ledger.Balance(tt.from).Sub(fromBefore).Abs().LessThanOrEqual(tolerance),
				"%s: %s became %s", tt.from, fromBefore, f.ledger.Balance(tt.from))
			assert.True(t, toBefore.Equal(f.ledger.Balance(tt.to)),
				"%s: %s became %s", tt.to, toBefore, f.ledger.Balance(tt.to))
			assert.Equal(t, 4, f.txLog.Len())
		})
	}
}

func TestSwapEngine_Execute(t *testing.T) {
	f := newSwapFixture()

	res, err := f.engine.Execute(context.Background(), domain.SwapRequest{From: "SUI", To: "USDC", Amount: dec("100"), Routing: domain.RoutingMesh})
	require.NoError(t, err)

	assert.True(t, dec("900").Equal(f.ledger.Balance("SUI")))
	assert.True(t, dec("200").Equal(f.ledger.Balance("USDC")))

	assert.Equal(t, domain.TransactionTypeSent, res.Debit.Type)
	assert.Equal(t, "SUI", res.Debit.Currency)
	assert.Equal(t, domain.TransactionTypeReceived, res.Credit.Type)
	assert.True(t, dec("150").Equal(res.Credit.Amount))
	assert.Equal(t, res.Debit.CorrelationID, res.Credit.CorrelationID)
	assert.NotEmpty(t, res.Debit.CorrelationID)
	assert.Equal(t, "mesh", res.Debit.Metadata[domain.MetaRouting])
	assert.Equal(t, "SUI/USDC", res.Credit.Metadata[domain.MetaSwapPair])
	assert.Equal(t, domain.RoutingMesh, res.Routing)
	assert.Equal(t, 2, f.txLog.Len())

	require.Len(t, f.batches, 1)
	assert.Len(t, f.batches[0].Wallets, 2)
	assert.Len(t, f.batches[0].Transactions, 2)
}

func TestSwapEngine_Execute_RoutingDoesNotChangeOutput(t *testing.T) {
	a := newSwapFixture()
	b := newSwapFixture()

	ra, err := a.engine.Execute(context.Background(), domain.SwapRequest{From: "ETH", To: "SUI", Amount: dec("1"), Routing: domain.RoutingStandard})
	require.NoError(t, err)
	rb, err := b.engine.Execute(context.Background(), domain.SwapRequest{From: "ETH", To: "SUI", Amount: dec("1"), Routing: domain.RoutingMesh})
	require.NoError(t, err)

	assert.True(t, ra.Quote.Output.Equal(rb.Quote.Output))
}

func TestSwapEngine_Execute_Errors(t *testing.T) {
	tests := []struct {
		name string
		req  domain.SwapRequest
		code string
	}{
		{"zero amount", domain.SwapRequest{From: "SUI", To: "USDC", Amount: dec("0")}, apperror.CodeInvalidAmount},
		{"same asset", domain.SwapRequest{From: "SUI", To: "sui", Amount: dec("1")}, apperror.CodeInvalidAmount},
		{"exceeds balance", domain.SwapRequest{From: "SUI", To: "USDC", Amount: dec("1000.5")}, apperror.CodeInsufficientFunds},
		{"no source wallet", domain.SwapRequest{From: "BTC", To: "USDC", Amount: dec("1")}, apperror.CodeInsufficientFunds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSwapFixture()
			_, err := f.engine.Execute(context.Background(), tt.req)
			assert.True(t, apperror.Is(err, tt.code), "got %v", err)
			assert.True(t, dec("1000").Equal(f.ledger.Balance("SUI")))
			assert.True(t, dec("50").Equal(f.ledger.Balance("USDC")))
			assert.Equal(t, 0, f.txLog.Len())
			assert.Empty(t, f.batches)
		})
	}
}

func TestSwapEngine_Execute_FlagsRateFallback(t *testing.T) {
	f := newSwapFixture()
	_, _ = f.ledger.Credit("DOGE", dec("10"))

	res, err := f.engine.Execute(context.Background(), domain.SwapRequest{From: "DOGE", To: "USDC", Amount: dec("10")})
	require.NoError(t, err)
	assert.Equal(t, "true", res.Debit.Metadata[domain.MetaRateFallback])
	assert.Equal(t, domain.RoutingStandard, res.Routing)
}
