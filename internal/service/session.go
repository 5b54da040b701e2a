package service

import (
	"context"
	"fmt"
	"time"

	"wallet-engine/internal/core/domain"
	"wallet-engine/internal/core/ports"
	"wallet-engine/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Operation names carried by notifications.
const (
	OpDebit             = "wallet.debit"
	OpCredit            = "wallet.credit"
	OpAppendTransaction = "transaction.append"
	OpExport            = "transaction.export"
	OpEscrowCreate      = "escrow.create"
	OpEscrowSign        = "escrow.sign"
	OpEscrowDispute     = "escrow.dispute"
	OpEscrowRelease     = "escrow.release"
	OpEscrowRefund      = "escrow.refund"
	OpEscrowExpire      = "escrow.expire"
	OpSwap              = "swap.execute"
	OpResolveRecipient  = "recipient.resolve"
	OpCrossBorder       = "transfer.crossborder"
	OpRefreshPrices     = "prices.refresh"
)

const journalTimeout = 5 * time.Second

// Session is the ledger service for one account. It owns the account's
// ledger, log and escrows, and reports every operation to the notifier,
// the event bus and the journal.
type Session struct {
	accountID   string
	ledger      *Ledger
	txLog       *TransactionLog
	escrows     *EscrowRegistry
	swap        *SwapEngine
	crossBorder *CrossBorderResolver

	oracle       *PriceOracle
	outbox       *SettlementOutbox // optional
	bus          *EventBus
	journal      ports.Journal // optional
	notifier     ports.Notifier
	renderer     ports.SnapshotRenderer
	exportSink   ports.ExportSink // optional
	exportPrefix string

	log zerolog.Logger
	now func() time.Time
}

func newSession(accountID string, deps SessionDeps, log zerolog.Logger) *Session {
	s := &Session{
		accountID:    accountID,
		ledger:       NewLedger(),
		txLog:        NewTransactionLog(),
		oracle:       deps.Oracle,
		outbox:       deps.Outbox,
		bus:          deps.Bus,
		journal:      deps.Journal,
		notifier:     deps.Notifier,
		renderer:     deps.Renderer,
		exportSink:   deps.ExportSink,
		exportPrefix: deps.ExportPrefix,
		log:          log.With().Str("account_id", accountID).Logger(),
		now:          time.Now,
	}
	if s.exportPrefix == "" {
		s.exportPrefix = "transactions"
	}
	if s.bus == nil {
		s.bus = NewEventBus(nil, log)
	}

	var outbox SettlementEnqueuer
	if deps.Outbox != nil {
		outbox = deps.Outbox
	}
	s.escrows = NewEscrowRegistry(accountID, s.ledger, s.txLog, deps.Directory, outbox, s.commit, s.log)
	s.swap = NewSwapEngine(s.ledger, s.txLog, deps.Oracle, s.commit, s.log)
	s.crossBorder = NewCrossBorderResolver(accountID, deps.Directory, s.swap, s.ledger, s.txLog, outbox, s.commit, s.log)
	return s
}

// AccountID returns the owning account.
func (s *Session) AccountID() string {
	return s.accountID
}

// ---- Wallets ----

// Balances returns every wallet valued at current rates.
func (s *Session) Balances(_ context.Context) []domain.WalletView {
	wallets := s.ledger.List()
	out := make([]domain.WalletView, len(wallets))
	for i, w := range wallets {
		rate, known := s.oracle.Rate(w.Symbol)
		out[i] = domain.WalletView{
			Wallet:    w,
			Rate:      rate,
			RateKnown: known,
			FiatValue: w.Balance.Mul(rate),
		}
	}
	return out
}

// Debit decreases a balance.
func (s *Session) Debit(ctx context.Context, symbol string, amount decimal.Decimal) (*domain.Wallet, error) {
	w, err := s.ledger.Debit(symbol, amount)
	if err != nil {
		s.notifyFailure(ctx, OpDebit, domain.NormalizeSymbol(symbol), err)
		return nil, err
	}
	s.commit(domain.JournalBatch{Wallets: []domain.Wallet{w}})
	s.notifySuccess(ctx, OpDebit, w.Symbol, fmt.Sprintf("Debited %s %s", amount.String(), w.Symbol))
	return &w, nil
}

// Credit increases a balance, creating the wallet if needed.
func (s *Session) Credit(ctx context.Context, symbol string, amount decimal.Decimal) (*domain.Wallet, error) {
	w, err := s.ledger.Credit(symbol, amount)
	if err != nil {
		s.notifyFailure(ctx, OpCredit, domain.NormalizeSymbol(symbol), err)
		return nil, err
	}
	s.commit(domain.JournalBatch{Wallets: []domain.Wallet{w}})
	s.notifySuccess(ctx, OpCredit, w.Symbol, fmt.Sprintf("Credited %s %s", amount.String(), w.Symbol))
	return &w, nil
}

// ---- Transactions ----

// ListTransactions returns the filtered log in insertion order.
func (s *Session) ListTransactions(_ context.Context, filter domain.TransactionFilter) []domain.Transaction {
	return s.txLog.Query(filter, s.now())
}

// AppendTransaction records an externally originated entry. Balances are not touched.
func (s *Session) AppendTransaction(ctx context.Context, tx domain.Transaction) (*domain.Transaction, error) {
	if tx.Metadata == nil {
		tx.Metadata = map[string]string{}
	}
	if _, ok := tx.Metadata[domain.MetaSource]; !ok {
		tx.Metadata[domain.MetaSource] = "external"
	}
	stored, err := s.txLog.Append(tx)
	if err != nil {
		s.notifyFailure(ctx, OpAppendTransaction, tx.ID, err)
		return nil, err
	}
	s.commit(domain.JournalBatch{Transactions: []domain.Transaction{stored}})
	s.notifySuccess(ctx, OpAppendTransaction, stored.ID, fmt.Sprintf("Recorded %s %s %s", stored.Type, stored.Amount.String(), stored.Currency))
	return &stored, nil
}

// AggregateTransactions summarises the filtered log at current prices.
func (s *Session) AggregateTransactions(_ context.Context, filter domain.TransactionFilter) domain.TransactionSummary {
	return Aggregate(s.txLog.Query(filter, s.now()), s.oracle)
}

// ExportTransactions renders the filtered log and hands it to the export sink.
func (s *Session) ExportTransactions(ctx context.Context, filter domain.TransactionFilter, format domain.ExportFormat) (*domain.ExportResult, error) {
	now := s.now()
	payload, err := ExportTransactions(s.txLog.Query(filter, now), format, s.renderer, s.exportPrefix, now)
	if err != nil {
		s.notifyFailure(ctx, OpExport, string(format), err)
		return nil, err
	}

	result := &domain.ExportResult{Payload: payload}
	if s.exportSink != nil {
		location, err := s.exportSink.Save(ctx, payload)
		if err != nil {
			err = apperror.ErrExportFailed(err)
			s.notifyFailure(ctx, OpExport, payload.Filename, err)
			return nil, err
		}
		result.Location = location
	}

	s.notifySuccess(ctx, OpExport, payload.Filename, fmt.Sprintf("Exported %d transactions to %s", payload.Rows, payload.Filename))
	return result, nil
}

// ---- Escrows ----

// CreateEscrow debits the funds and opens a pending escrow.
func (s *Session) CreateEscrow(ctx context.Context, req domain.CreateEscrowRequest) (*domain.Escrow, error) {
	esc, err := s.escrows.Create(ctx, req)
	if err != nil {
		s.notifyFailure(ctx, OpEscrowCreate, "", err)
		return nil, err
	}
	s.notifySuccess(ctx, OpEscrowCreate, esc.ID, fmt.Sprintf("Escrow of %s %s for %s created", esc.Amount.String(), esc.Currency, esc.Recipient))
	return &esc, nil
}

// SignEscrow signs a pending escrow.
func (s *Session) SignEscrow(ctx context.Context, id string) (*domain.Escrow, error) {
	return s.escrowOp(ctx, OpEscrowSign, id, s.escrows.Sign, "Escrow signed")
}

// DisputeEscrow freezes an escrow.
func (s *Session) DisputeEscrow(ctx context.Context, id string) (*domain.Escrow, error) {
	return s.escrowOp(ctx, OpEscrowDispute, id, s.escrows.Dispute, "Escrow disputed")
}

// ReleaseEscrow pays out an escrow to its recipient.
func (s *Session) ReleaseEscrow(ctx context.Context, id string) (*domain.Escrow, error) {
	return s.escrowOp(ctx, OpEscrowRelease, id, s.escrows.Release, "Escrow released")
}

// RefundEscrow returns a disputed escrow to the creator.
func (s *Session) RefundEscrow(ctx context.Context, id string) (*domain.Escrow, error) {
	return s.escrowOp(ctx, OpEscrowRefund, id, s.escrows.Refund, "Escrow refunded")
}

// ExpireEscrow expires a due escrow.
func (s *Session) ExpireEscrow(ctx context.Context, id string) (*domain.Escrow, error) {
	return s.escrowOp(ctx, OpEscrowExpire, id, s.escrows.Expire, "Escrow expired")
}

// GetEscrow returns one escrow.
func (s *Session) GetEscrow(ctx context.Context, id string) (*domain.Escrow, error) {
	esc, err := s.escrows.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &esc, nil
}

// ListEscrows returns all escrows in creation order.
func (s *Session) ListEscrows(ctx context.Context) []domain.Escrow {
	return s.escrows.List(ctx)
}

func (s *Session) escrowOp(
	ctx context.Context,
	op, id string,
	fn func(context.Context, string) (domain.Escrow, error),
	success string,
) (*domain.Escrow, error) {
	esc, err := fn(ctx, id)
	if err != nil {
		s.notifyFailure(ctx, op, id, err)
		return nil, err
	}
	s.notifySuccess(ctx, op, id, fmt.Sprintf("%s: %s %s", success, esc.Amount.String(), esc.Currency))
	return &esc, nil
}

// sweepEscrows expires due escrows; called by the manager's sweeper.
func (s *Session) sweepEscrows(ctx context.Context) int {
	expired := s.escrows.Sweep(ctx)
	for _, esc := range expired {
		s.notifySuccess(ctx, OpEscrowExpire, esc.ID, fmt.Sprintf("Escrow expired: %s %s returned", esc.Amount.String(), esc.Currency))
	}
	return len(expired)
}

// ---- Swaps & transfers ----

// QuoteSwap prices a conversion without executing it.
func (s *Session) QuoteSwap(_ context.Context, from, to string, amount decimal.Decimal) (*domain.SwapQuote, error) {
	q, err := s.swap.Quote(from, to, amount)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// ExecuteSwap converts between two assets atomically.
func (s *Session) ExecuteSwap(ctx context.Context, req domain.SwapRequest) (*domain.SwapResult, error) {
	res, err := s.swap.Execute(ctx, req)
	if err != nil {
		s.notifyFailure(ctx, OpSwap, "", err)
		return nil, err
	}
	s.notifySuccess(ctx, OpSwap, res.Debit.CorrelationID,
		fmt.Sprintf("Swapped %s %s for %s %s", res.Quote.Amount.String(), res.Quote.From, res.Quote.Display(), res.Quote.To))
	return &res, nil
}

// ResolveRecipient looks up a tag, phone number or contact name.
func (s *Session) ResolveRecipient(ctx context.Context, query string) (*domain.ResolvedRecipient, error) {
	r, err := s.crossBorder.Resolve(query)
	if err != nil {
		s.notifyFailure(ctx, OpResolveRecipient, query, err)
		return nil, err
	}
	s.notifySuccess(ctx, OpResolveRecipient, r.Address, "Recipient found: "+r.DisplayName)
	return &r, nil
}

// TransferCrossBorder sends a converted amount to a resolved recipient.
func (s *Session) TransferCrossBorder(ctx context.Context, req domain.CrossBorderRequest) (*domain.CrossBorderResult, error) {
	res, err := s.crossBorder.Transfer(ctx, req)
	if err != nil {
		s.notifyFailure(ctx, OpCrossBorder, req.Recipient.Address, err)
		return nil, err
	}
	s.notifySuccess(ctx, OpCrossBorder, res.Transaction.ID,
		fmt.Sprintf("Sent %s %s to %s", res.Transaction.Amount.String(), res.Transaction.Currency, res.Transaction.Recipient))
	return &res, nil
}

// ---- Prices & settlement ----

// RefreshPrices replaces the shared price table.
func (s *Session) RefreshPrices(ctx context.Context, rates map[string]decimal.Decimal) ([]domain.PriceEntry, error) {
	entries, err := s.oracle.Refresh(ctx, rates)
	if err != nil {
		s.notifyFailure(ctx, OpRefreshPrices, "", err)
		return nil, err
	}
	s.bus.Publish(ctx, domain.StateEvent{Type: domain.EventPricesRefreshed, AccountID: s.accountID, At: s.now(), Payload: entries})
	s.bus.Publish(ctx, domain.StateEvent{Type: domain.EventBalancesChanged, AccountID: s.accountID, At: s.now(), Payload: s.Balances(ctx)})
	s.notifySuccess(ctx, OpRefreshPrices, "", fmt.Sprintf("Refreshed %d prices", len(entries)))
	return entries, nil
}

// Prices returns the current price table.
func (s *Session) Prices(_ context.Context) []domain.PriceEntry {
	return s.oracle.Snapshot()
}

// ListSettlementTasks returns this account's external settlement legs.
func (s *Session) ListSettlementTasks(_ context.Context) []domain.SettlementTask {
	if s.outbox == nil {
		return []domain.SettlementTask{}
	}
	return s.outbox.List(s.accountID)
}

// Subscribe streams this account's state events until the returned func is called.
func (s *Session) Subscribe() (<-chan domain.StateEvent, func()) {
	return s.bus.Subscribe(s.accountID)
}

// ---- Commit plumbing ----

// restore loads journaled state. It must run before the session is shared.
func (s *Session) restore(snap *domain.AccountSnapshot) {
	s.ledger.Restore(snap.Wallets)
	s.txLog.Restore(snap.Transactions)
	s.escrows.Restore(snap.Escrows)
}

// commit journals a committed change and publishes it. Journal failures are
// logged; the in-memory state stays authoritative.
func (s *Session) commit(batch domain.JournalBatch) {
	if batch.IsEmpty() {
		return
	}
	batch.AccountID = s.accountID

	if s.journal != nil {
		ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
		if err := s.journal.Commit(ctx, &batch); err != nil {
			s.log.Warn().Err(err).Msg("failed to journal committed change")
		}
		cancel()
	}

	ctx := context.Background()
	now := s.now()
	if len(batch.Wallets) > 0 {
		s.bus.Publish(ctx, domain.StateEvent{Type: domain.EventBalancesChanged, AccountID: s.accountID, At: now, Payload: s.Balances(ctx)})
	}
	for _, tx := range batch.Transactions {
		s.bus.Publish(ctx, domain.StateEvent{Type: domain.EventTransactionAdded, AccountID: s.accountID, At: now, Payload: tx})
	}
	for _, esc := range batch.Escrows {
		s.bus.Publish(ctx, domain.StateEvent{Type: domain.EventEscrowUpdated, AccountID: s.accountID, At: now, Payload: esc})
	}
}

func (s *Session) notifySuccess(ctx context.Context, op, ref, msg string) {
	s.notify(ctx, domain.Notification{Operation: op, Reference: ref, Success: true, Message: msg})
}

func (s *Session) notifyFailure(ctx context.Context, op, ref string, err error) {
	s.log.Debug().Err(err).Str("operation", op).Msg("operation failed")
	s.notify(ctx, domain.Notification{Operation: op, Reference: ref, Code: apperror.CodeOf(err), Message: apperror.Message(err)})
}

func (s *Session) notify(ctx context.Context, n domain.Notification) {
	n.AccountID = s.accountID
	n.At = s.now()
	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, n); err != nil {
			s.log.Warn().Err(err).Str("operation", n.Operation).Msg("failed to deliver notification")
		}
	}
	s.bus.Publish(ctx, domain.StateEvent{Type: domain.EventNotificationIssued, AccountID: s.accountID, At: n.At, Payload: n})
}
