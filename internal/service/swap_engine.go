package service

import (
	"context"

	"wallet-engine/internal/core/domain"
	"wallet-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// quotePrecision is the number of fractional digits kept when dividing rates.
const quotePrecision = 18

// SwapEngine quotes and executes conversions between assets of one account.
type SwapEngine struct {
	ledger   *Ledger
	txLog    *TransactionLog
	rates    RateSource
	onCommit CommitHook
	log      zerolog.Logger
}

// NewSwapEngine creates a swap engine over the account's ledger and log.
func NewSwapEngine(ledger *Ledger, txLog *TransactionLog, rates RateSource, onCommit CommitHook, log zerolog.Logger) *SwapEngine {
	if onCommit == nil {
		onCommit = func(domain.JournalBatch) {}
	}
	return &SwapEngine{
		ledger:   ledger,
		txLog:    txLog,
		rates:    rates,
		onCommit: onCommit,
		log:      log,
	}
}

// Quote converts amount of from into to at current rates: amount * rate(from) / rate(to).
func (e *SwapEngine) Quote(from, to string, amount decimal.Decimal) (domain.SwapQuote, error) {
	from = domain.NormalizeSymbol(from)
	to = domain.NormalizeSymbol(to)
	if from == "" || to == "" {
		return domain.SwapQuote{}, apperror.Validation("source and destination assets are required")
	}
	if !amount.IsPositive() {
		return domain.SwapQuote{}, apperror.ErrInvalidAmount()
	}

	fromRate, fromKnown := e.rates.Rate(from)
	toRate, toKnown := e.rates.Rate(to)

	return domain.SwapQuote{
		From:      from,
		To:        to,
		Amount:    amount,
		Output:    amount.Mul(fromRate).DivRound(toRate, quotePrecision),
		FromRate:  fromRate,
		ToRate:    toRate,
		RateKnown: fromKnown && toKnown,
	}, nil
}

// Execute debits from and credits to atomically, then appends a sent and a
// received entry sharing a correlation id. Routing is recorded, not acted on.
func (e *SwapEngine) Execute(ctx context.Context, req domain.SwapRequest) (domain.SwapResult, error) {
	if !req.Amount.IsPositive() {
		return domain.SwapResult{}, apperror.ErrInvalidAmount()
	}
	if domain.NormalizeSymbol(req.From) == domain.NormalizeSymbol(req.To) {
		return domain.SwapResult{}, apperror.ErrInvalidAmount()
	}
	routing := req.Routing
	if routing == "" {
		routing = domain.RoutingStandard
	}

	q, err := e.Quote(req.From, req.To, req.Amount)
	if err != nil {
		return domain.SwapResult{}, err
	}
	if !q.Output.IsPositive() {
		return domain.SwapResult{}, apperror.ErrInvalidAmount()
	}

	correlation := uuid.New().String()
	meta := map[string]string{
		domain.MetaRouting:  string(routing),
		domain.MetaSwapPair: q.From + "/" + q.To,
	}
	if !q.RateKnown {
		meta[domain.MetaRateFallback] = "true"
	}

	// The pair is appended under the ledger locks so the swap is all-or-nothing.
	var entries []domain.Transaction
	wallets, err := e.ledger.ApplyIf(func([]domain.Wallet) error {
		var err error
		entries, err = e.txLog.AppendBatch(
			domain.Transaction{
				Type:          domain.TransactionTypeSent,
				Amount:        q.Amount,
				Currency:      q.From,
				Recipient:     "Swap to " + q.To,
				CorrelationID: correlation,
				Metadata:      meta,
			},
			domain.Transaction{
				Type:          domain.TransactionTypeReceived,
				Amount:        q.Output,
				Currency:      q.To,
				Recipient:     "Swap from " + q.From,
				CorrelationID: correlation,
				Metadata:      meta,
			},
		)
		return err
	},
		Posting{Symbol: q.From, Amount: q.Amount.Neg()},
		Posting{Symbol: q.To, Amount: q.Output},
	)
	if err != nil {
		return domain.SwapResult{}, err
	}

	e.onCommit(domain.JournalBatch{Wallets: wallets, Transactions: entries})

	e.log.Info().
		Str("correlation_id", correlation).
		Str("from", q.From).
		Str("to", q.To).
		Str("amount", q.Amount.String()).
		Str("output", q.Display()).
		Str("routing", string(routing)).
		Bool("rate_known", q.RateKnown).
		Msg("swap executed")

	return domain.SwapResult{Quote: q, Debit: entries[0], Credit: entries[1], Routing: routing}, nil
}
