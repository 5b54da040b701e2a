package service

import (
	"context"
	"strings"

	"wallet-engine/internal/core/domain"
	"wallet-engine/pkg/apperror"

	"github.com/rs/zerolog"
)

// DefaultOfframpRail labels the simulated payout rail.
const DefaultOfframpRail = "simulated"

// CrossBorderResolver resolves recipients by tag or phone and sends a
// one-way conversion to them. The payout itself is an outbox task.
type CrossBorderResolver struct {
	accountID string
	directory *Directory
	swap      *SwapEngine
	ledger    *Ledger
	txLog     *TransactionLog
	outbox    SettlementEnqueuer // optional
	onCommit  CommitHook
	rail      string
	log       zerolog.Logger
}

// NewCrossBorderResolver creates a resolver for one account.
func NewCrossBorderResolver(
	accountID string,
	directory *Directory,
	swap *SwapEngine,
	ledger *Ledger,
	txLog *TransactionLog,
	outbox SettlementEnqueuer,
	onCommit CommitHook,
	log zerolog.Logger,
) *CrossBorderResolver {
	if onCommit == nil {
		onCommit = func(domain.JournalBatch) {}
	}
	return &CrossBorderResolver{
		accountID: accountID,
		directory: directory,
		swap:      swap,
		ledger:    ledger,
		txLog:     txLog,
		outbox:    outbox,
		onCommit:  onCommit,
		rail:      DefaultOfframpRail,
		log:       log,
	}
}

// Resolve looks up a tag, phone number or contact name.
func (c *CrossBorderResolver) Resolve(query string) (domain.ResolvedRecipient, error) {
	return c.directory.Resolve(query)
}

// Transfer debits the source currency, records a sent entry carrying the
// destination leg, and enqueues the off-ramp payout.
func (c *CrossBorderResolver) Transfer(ctx context.Context, req domain.CrossBorderRequest) (domain.CrossBorderResult, error) {
	if strings.TrimSpace(req.Recipient.Address) == "" {
		return domain.CrossBorderResult{}, apperror.ErrUnresolvedRecipient(req.Recipient.DisplayName)
	}
	if !req.Amount.IsPositive() {
		return domain.CrossBorderResult{}, apperror.ErrInvalidAmount()
	}

	q, err := c.swap.Quote(req.SourceCurrency, req.DestinationCurrency, req.Amount)
	if err != nil {
		return domain.CrossBorderResult{}, err
	}

	display := req.Recipient.DisplayName
	if display == "" {
		display = req.Recipient.Address
	}
	meta := map[string]string{
		domain.MetaAddress:            req.Recipient.Address,
		domain.MetaSettlementCurrency: q.To,
		domain.MetaSettlementAmount:   q.Display(),
		domain.MetaOfframpRail:        c.rail,
	}
	if !q.RateKnown {
		meta[domain.MetaRateFallback] = "true"
	}

	var tx domain.Transaction
	wallets, err := c.ledger.ApplyIf(func([]domain.Wallet) error {
		var err error
		tx, err = c.txLog.Append(domain.Transaction{
			Type:      domain.TransactionTypeSent,
			Amount:    q.Amount,
			Currency:  q.From,
			Recipient: display,
			Metadata:  meta,
		})
		return err
	}, Posting{Symbol: q.From, Amount: q.Amount.Neg()})
	if err != nil {
		return domain.CrossBorderResult{}, err
	}

	c.onCommit(domain.JournalBatch{Wallets: wallets, Transactions: []domain.Transaction{tx}})

	result := domain.CrossBorderResult{
		Transaction:       tx,
		DestinationAmount: q.Output,
		Rate:              q.FromRate.DivRound(q.ToRate, quotePrecision),
	}

	if c.outbox != nil {
		task, err := c.outbox.Enqueue(ctx, domain.SettlementTask{
			AccountID: c.accountID,
			Kind:      domain.SettlementKindOfframp,
			Reference: tx.ID,
			Amount:    q.Output,
			Currency:  q.To,
			Address:   req.Recipient.Address,
			Metadata:  map[string]string{domain.MetaOfframpRail: c.rail},
		})
		if err != nil {
			c.log.Warn().Err(err).Str("tx_id", tx.ID).Msg("failed to enqueue off-ramp settlement")
		}
		result.SettlementTaskID = task.ID
	}

	c.log.Info().
		Str("tx_id", tx.ID).
		Str("recipient", display).
		Str("amount", q.Amount.String()).
		Str("source", q.From).
		Str("destination", q.To).
		Str("destination_amount", q.Display()).
		Msg("cross-border transfer committed")

	return result, nil
}
