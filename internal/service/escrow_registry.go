package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"wallet-engine/internal/core/domain"
	"wallet-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SettlementEnqueuer hands an external leg to the outbox after a local commit.
type SettlementEnqueuer interface {
	Enqueue(ctx context.Context, task domain.SettlementTask) (domain.SettlementTask, error)
}

// CommitHook receives every committed change for journaling and subscribers.
type CommitHook func(batch domain.JournalBatch)

// EscrowRegistry holds the escrows of one account and drives their lifecycle.
// Funds are debited at creation and credited back on refund or expiry.
type EscrowRegistry struct {
	accountID string
	ledger    *Ledger
	txLog     *TransactionLog
	directory *Directory
	outbox    SettlementEnqueuer // optional
	onCommit  CommitHook
	log       zerolog.Logger
	now       func() time.Time

	mu      sync.RWMutex
	records map[string]*escrowRecord
	order   []string
}

type escrowRecord struct {
	mu     sync.Mutex
	escrow domain.Escrow
}

// NewEscrowRegistry wires a registry to the account's ledger and log.
func NewEscrowRegistry(
	accountID string,
	ledger *Ledger,
	txLog *TransactionLog,
	directory *Directory,
	outbox SettlementEnqueuer,
	onCommit CommitHook,
	log zerolog.Logger,
) *EscrowRegistry {
	if onCommit == nil {
		onCommit = func(domain.JournalBatch) {}
	}
	return &EscrowRegistry{
		accountID: accountID,
		ledger:    ledger,
		txLog:     txLog,
		directory: directory,
		outbox:    outbox,
		onCommit:  onCommit,
		log:       log,
		now:       time.Now,
		records:   make(map[string]*escrowRecord),
	}
}

// Create validates req, debits the creator and stores a pending escrow.
// No transaction-log entry is written until release.
func (r *EscrowRegistry) Create(ctx context.Context, req domain.CreateEscrowRequest) (domain.Escrow, error) {
	now := r.now()
	if !req.Amount.IsPositive() {
		return domain.Escrow{}, apperror.ErrInvalidAmount()
	}
	currency := domain.NormalizeSymbol(req.Currency)
	if currency == "" {
		return domain.Escrow{}, apperror.Validation("escrow currency is required")
	}
	if strings.TrimSpace(req.Recipient) == "" {
		return domain.Escrow{}, apperror.Validation("escrow recipient is required")
	}
	if !req.Expiry.After(now) {
		return domain.Escrow{}, apperror.Validation("escrow expiry must be in the future")
	}

	address, display := r.directory.ResolveAddress(req.Recipient)

	wallet, err := r.ledger.Debit(currency, req.Amount)
	if err != nil {
		return domain.Escrow{}, err
	}

	esc := domain.Escrow{
		ID:               uuid.New().String(),
		AccountID:        r.accountID,
		Amount:           req.Amount,
		Currency:         currency,
		Recipient:        display,
		RecipientAddress: address,
		Note:             strings.TrimSpace(req.Note),
		Expiry:           req.Expiry,
		Status:           domain.EscrowStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	r.mu.Lock()
	r.records[esc.ID] = &escrowRecord{escrow: esc}
	r.order = append(r.order, esc.ID)
	r.mu.Unlock()

	r.onCommit(domain.JournalBatch{Wallets: []domain.Wallet{wallet}, Escrows: []domain.Escrow{esc}})
	r.enqueue(ctx, domain.SettlementKindEscrowLock, esc)

	r.log.Info().
		Str("escrow_id", esc.ID).
		Str("amount", esc.Amount.String()).
		Str("currency", esc.Currency).
		Str("recipient", esc.Recipient).
		Msg("escrow created")
	return esc, nil
}

// Sign moves a pending escrow to signed. Signing is advisory.
func (r *EscrowRegistry) Sign(ctx context.Context, id string) (domain.Escrow, error) {
	return r.transition(ctx, id, domain.EscrowStatusSigned, nil)
}

// Dispute freezes a pending or signed escrow until release or refund.
func (r *EscrowRegistry) Dispute(ctx context.Context, id string) (domain.Escrow, error) {
	return r.transition(ctx, id, domain.EscrowStatusDisputed, nil)
}

// Release pays the recipient and appends exactly one sent transaction.
func (r *EscrowRegistry) Release(ctx context.Context, id string) (domain.Escrow, error) {
	return r.transition(ctx, id, domain.EscrowStatusReleased, func(esc *domain.Escrow, batch *domain.JournalBatch) error {
		tx, err := r.txLog.Append(domain.Transaction{
			Type:          domain.TransactionTypeSent,
			Amount:        esc.Amount,
			Currency:      esc.Currency,
			Recipient:     esc.Recipient,
			CorrelationID: esc.ID,
			Metadata: map[string]string{
				domain.MetaEscrowID: esc.ID,
				domain.MetaAddress:  esc.RecipientAddress,
			},
		})
		if err != nil {
			return err
		}
		esc.ReleaseTransactionID = tx.ID
		batch.Transactions = append(batch.Transactions, tx)
		return nil
	})
}

// Refund returns disputed funds to the creator.
func (r *EscrowRegistry) Refund(ctx context.Context, id string) (domain.Escrow, error) {
	return r.transition(ctx, id, domain.EscrowStatusRefunded, r.creditBack)
}

// Expire expires a due escrow and credits the creator. An escrow that is not
// yet due, disputed or terminal cannot be expired.
func (r *EscrowRegistry) Expire(ctx context.Context, id string) (domain.Escrow, error) {
	rec, err := r.record(id)
	if err != nil {
		return domain.Escrow{}, err
	}

	rec.mu.Lock()
	now := r.now()
	if !rec.escrow.IsDue(now) {
		from := rec.escrow.Status
		rec.mu.Unlock()
		return domain.Escrow{}, apperror.ErrInvalidTransition(string(from), string(domain.EscrowStatusExpired))
	}
	p, err := r.expireLocked(rec, now)
	rec.mu.Unlock()
	if err != nil {
		return domain.Escrow{}, err
	}

	r.flush(ctx, p)
	return p.escrow, nil
}

// Get returns the escrow with id after applying any due expiry.
func (r *EscrowRegistry) Get(ctx context.Context, id string) (domain.Escrow, error) {
	rec, err := r.record(id)
	if err != nil {
		return domain.Escrow{}, err
	}
	rec.mu.Lock()
	pending := r.applyDueExpiry(rec, r.now())
	esc := rec.escrow
	rec.mu.Unlock()

	r.flush(ctx, pending...)
	return esc, nil
}

// List returns all escrows in creation order after applying due expiries.
func (r *EscrowRegistry) List(ctx context.Context) []domain.Escrow {
	r.mu.RLock()
	recs := make([]*escrowRecord, 0, len(r.order))
	for _, id := range r.order {
		recs = append(recs, r.records[id])
	}
	r.mu.RUnlock()

	now := r.now()
	out := make([]domain.Escrow, 0, len(recs))
	for _, rec := range recs {
		rec.mu.Lock()
		pending := r.applyDueExpiry(rec, now)
		out = append(out, rec.escrow)
		rec.mu.Unlock()
		r.flush(ctx, pending...)
	}
	return out
}

// Sweep expires every due escrow and returns the ones it expired.
func (r *EscrowRegistry) Sweep(ctx context.Context) []domain.Escrow {
	r.mu.RLock()
	recs := make([]*escrowRecord, 0, len(r.records))
	for _, rec := range r.records {
		recs = append(recs, rec)
	}
	r.mu.RUnlock()

	now := r.now()
	var expired []domain.Escrow
	for _, rec := range recs {
		rec.mu.Lock()
		pending := r.applyDueExpiry(rec, now)
		rec.mu.Unlock()
		for _, p := range pending {
			expired = append(expired, p.escrow)
		}
		r.flush(ctx, pending...)
	}
	return expired
}

// Restore replaces the registry contents with journaled escrows.
func (r *EscrowRegistry) Restore(escrows []domain.Escrow) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = make(map[string]*escrowRecord, len(escrows))
	r.order = r.order[:0]
	for _, esc := range escrows {
		if _, dup := r.records[esc.ID]; dup {
			continue
		}
		r.records[esc.ID] = &escrowRecord{escrow: esc}
		r.order = append(r.order, esc.ID)
	}
}

type transitionEffect func(esc *domain.Escrow, batch *domain.JournalBatch) error

// pendingCommit is a state change already applied in memory whose journal
// write and settlement leg still have to run. Neither may run under rec.mu.
type pendingCommit struct {
	batch  domain.JournalBatch
	escrow domain.Escrow
	settle domain.SettlementKind // empty when nothing settles externally
}

func (r *EscrowRegistry) transition(ctx context.Context, id string, to domain.EscrowStatus, effect transitionEffect) (domain.Escrow, error) {
	rec, err := r.record(id)
	if err != nil {
		return domain.Escrow{}, err
	}

	from, pending, err := r.applyTransition(rec, to, effect)
	r.flush(ctx, pending...)
	if err != nil {
		return domain.Escrow{}, err
	}

	r.log.Info().
		Str("escrow_id", id).
		Str("from", string(from)).
		Str("to", string(to)).
		Msg("escrow transitioned")
	return pending[len(pending)-1].escrow, nil
}

// applyTransition mutates rec under its lock. On error the returned pending
// slice may still hold a lazy expiry that must be flushed.
func (r *EscrowRegistry) applyTransition(rec *escrowRecord, to domain.EscrowStatus, effect transitionEffect) (domain.EscrowStatus, []pendingCommit, error) {
	rec.mu.Lock()
	defer rec.mu.Unlock()

	now := r.now()
	pending := r.applyDueExpiry(rec, now)

	from := rec.escrow.Status
	if !domain.CanTransition(from, to) {
		return from, pending, apperror.ErrInvalidTransition(string(from), string(to))
	}

	next := rec.escrow
	batch := domain.JournalBatch{}
	if effect != nil {
		if err := effect(&next, &batch); err != nil {
			return from, pending, err
		}
	}
	next.Status = to
	next.UpdatedAt = now
	rec.escrow = next
	batch.Escrows = append(batch.Escrows, next)

	p := pendingCommit{batch: batch, escrow: next}
	switch to {
	case domain.EscrowStatusReleased:
		p.settle = domain.SettlementKindEscrowRelease
	case domain.EscrowStatusRefunded:
		p.settle = domain.SettlementKindEscrowRefund
	}
	return from, append(pending, p), nil
}

// applyDueExpiry is the lazy expiry check run on every access. rec must be locked.
func (r *EscrowRegistry) applyDueExpiry(rec *escrowRecord, now time.Time) []pendingCommit {
	if !rec.escrow.IsDue(now) {
		return nil
	}
	p, err := r.expireLocked(rec, now)
	if err != nil {
		r.log.Error().Err(err).Str("escrow_id", rec.escrow.ID).Msg("failed to expire due escrow")
		return nil
	}
	return []pendingCommit{p}
}

// expireLocked moves rec to expired and credits the creator. rec must be locked.
func (r *EscrowRegistry) expireLocked(rec *escrowRecord, now time.Time) (pendingCommit, error) {
	next := rec.escrow
	batch := domain.JournalBatch{}
	if err := r.creditBack(&next, &batch); err != nil {
		return pendingCommit{}, err
	}
	next.Status = domain.EscrowStatusExpired
	next.UpdatedAt = now
	rec.escrow = next
	batch.Escrows = append(batch.Escrows, next)

	r.log.Info().Str("escrow_id", next.ID).Time("expiry", next.Expiry).Msg("escrow expired")
	return pendingCommit{batch: batch, escrow: next, settle: domain.SettlementKindEscrowRefund}, nil
}

// flush journals and settles changes once the record lock is released.
func (r *EscrowRegistry) flush(ctx context.Context, pending ...pendingCommit) {
	for _, p := range pending {
		r.onCommit(p.batch)
		if p.settle != "" {
			r.enqueue(ctx, p.settle, p.escrow)
		}
	}
}

func (r *EscrowRegistry) creditBack(esc *domain.Escrow, batch *domain.JournalBatch) error {
	wallet, err := r.ledger.Credit(esc.Currency, esc.Amount)
	if err != nil {
		return fmt.Errorf("crediting escrow %s back: %w", esc.ID, err)
	}
	batch.Wallets = append(batch.Wallets, wallet)
	return nil
}

func (r *EscrowRegistry) record(id string) (*escrowRecord, error) {
	r.mu.RLock()
	rec, ok := r.records[id]
	r.mu.RUnlock()
	if !ok {
		return nil, apperror.ErrNotFound("escrow")
	}
	return rec, nil
}

// enqueue is non-fatal: the local commit stands whatever happens externally.
func (r *EscrowRegistry) enqueue(ctx context.Context, kind domain.SettlementKind, esc domain.Escrow) {
	if r.outbox == nil {
		return
	}
	_, err := r.outbox.Enqueue(ctx, domain.SettlementTask{
		AccountID: r.accountID,
		Kind:      kind,
		Reference: esc.ID,
		Amount:    esc.Amount,
		Currency:  esc.Currency,
		Address:   esc.RecipientAddress,
	})
	if err != nil {
		r.log.Warn().Err(err).Str("escrow_id", esc.ID).Str("kind", string(kind)).Msg("failed to enqueue settlement")
	}
}
