package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"wallet-engine/internal/core/domain"
	"wallet-engine/internal/core/ports"
	"wallet-engine/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// SessionDeps are the collaborators shared by every account session.
type SessionDeps struct {
	Oracle       *PriceOracle
	Directory    *Directory
	Outbox       *SettlementOutbox
	Bus          *EventBus
	Journal      ports.Journal
	Notifier     ports.Notifier
	Renderer     ports.SnapshotRenderer
	ExportSink   ports.ExportSink
	SeedBalances map[string]decimal.Decimal
	ExportPrefix string
}

// SessionManager opens one Session per account, restoring it from the
// journal or seeding it on first use.
type SessionManager struct {
	deps SessionDeps
	log  zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionManager creates a manager. Settlement updates from the outbox
// are forwarded to the owning account's subscribers.
func NewSessionManager(deps SessionDeps, log zerolog.Logger) *SessionManager {
	if deps.Oracle == nil {
		deps.Oracle = NewPriceOracle("USD", nil, log)
	}
	if deps.Directory == nil {
		deps.Directory = NewDirectory()
	}
	if deps.Bus == nil {
		deps.Bus = NewEventBus(nil, log)
	}

	m := &SessionManager{
		deps:     deps,
		log:      log,
		sessions: make(map[string]*Session),
	}
	if deps.Outbox != nil {
		deps.Outbox.OnUpdate(m.onSettlementUpdate)
	}
	return m
}

// Session implements ports.SessionProvider.
func (m *SessionManager) Session(ctx context.Context, accountID string) (ports.WalletSession, error) {
	s, err := m.Open(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Open returns the account's session, creating it on first use.
func (m *SessionManager) Open(ctx context.Context, accountID string) (*Session, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return nil, apperror.Validation("account id is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[accountID]; ok {
		return s, nil
	}

	s := newSession(accountID, m.deps, m.log)

	var snap *domain.AccountSnapshot
	if m.deps.Journal != nil {
		var err error
		snap, err = m.deps.Journal.Load(ctx, accountID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("load journal for %s: %w", accountID, err))
		}
	}

	if snap != nil && (len(snap.Wallets) > 0 || len(snap.Transactions) > 0 || len(snap.Escrows) > 0) {
		s.restore(snap)
		m.log.Info().
			Str("account_id", accountID).
			Int("wallets", len(snap.Wallets)).
			Int("transactions", len(snap.Transactions)).
			Int("escrows", len(snap.Escrows)).
			Msg("session restored from journal")
	} else if len(m.deps.SeedBalances) > 0 {
		s.ledger.Seed(m.deps.SeedBalances)
		s.commit(domain.JournalBatch{Wallets: s.ledger.List()})
		m.log.Info().Str("account_id", accountID).Int("wallets", len(m.deps.SeedBalances)).Msg("session seeded")
	}

	m.sessions[accountID] = s
	return s, nil
}

// Len returns the number of open sessions.
func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep expires due escrows across every open session.
func (m *SessionManager) Sweep(ctx context.Context) int {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.Unlock()

	total := 0
	for _, s := range sessions {
		total += s.sweepEscrows(ctx)
	}
	return total
}

// RunSweeper sweeps on every tick until ctx is cancelled.
func (m *SessionManager) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(ctx); n > 0 {
				m.log.Info().Int("expired", n).Msg("escrow sweep completed")
			}
		}
	}
}

func (m *SessionManager) onSettlementUpdate(task domain.SettlementTask) {
	m.deps.Bus.Publish(context.Background(), domain.StateEvent{
		Type:      domain.EventSettlementUpdated,
		AccountID: task.AccountID,
		At:        time.Now(),
		Payload:   task,
	})
}
