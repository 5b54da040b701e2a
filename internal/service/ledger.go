package service

import (
	"sort"
	"sync"
	"time"

	"wallet-engine/internal/core/domain"
	"wallet-engine/pkg/apperror"

	"github.com/shopspring/decimal"
)

// Posting is one signed balance change: positive credits, negative debits.
type Posting struct {
	Symbol string
	Amount decimal.Decimal
}

// Ledger holds the per-asset balances of one account.
//
// The map is guarded by mu; each entry carries its own lock so unrelated
// assets never contend. Compound operations lock entries in symbol order.
type Ledger struct {
	mu      sync.RWMutex
	entries map[string]*ledgerEntry
	now     func() time.Time
}

type ledgerEntry struct {
	mu     sync.Mutex
	wallet domain.Wallet
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		entries: make(map[string]*ledgerEntry),
		now:     time.Now,
	}
}

// Seed sets opening balances. Negative seeds are ignored.
func (l *Ledger) Seed(balances map[string]decimal.Decimal) {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()
	for symbol, bal := range balances {
		if bal.IsNegative() {
			continue
		}
		sym := domain.NormalizeSymbol(symbol)
		l.entries[sym] = &ledgerEntry{wallet: domain.Wallet{Symbol: sym, Balance: bal, UpdatedAt: now}}
	}
}

// Restore replaces the ledger contents with journaled wallets.
func (l *Ledger) Restore(wallets []domain.Wallet) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = make(map[string]*ledgerEntry, len(wallets))
	for _, w := range wallets {
		w.Symbol = domain.NormalizeSymbol(w.Symbol)
		l.entries[w.Symbol] = &ledgerEntry{wallet: w}
	}
}

// Debit decreases symbol by amount. An absent entry has balance zero.
func (l *Ledger) Debit(symbol string, amount decimal.Decimal) (domain.Wallet, error) {
	if !amount.IsPositive() {
		return domain.Wallet{}, apperror.ErrInvalidAmount()
	}
	wallets, err := l.Apply(Posting{Symbol: symbol, Amount: amount.Neg()})
	if err != nil {
		return domain.Wallet{}, err
	}
	return wallets[0], nil
}

// Credit increases symbol by amount, creating the entry at zero if absent.
func (l *Ledger) Credit(symbol string, amount decimal.Decimal) (domain.Wallet, error) {
	if !amount.IsPositive() {
		return domain.Wallet{}, apperror.ErrInvalidAmount()
	}
	wallets, err := l.Apply(Posting{Symbol: symbol, Amount: amount})
	if err != nil {
		return domain.Wallet{}, err
	}
	return wallets[0], nil
}

// Apply commits all postings or none. Postings on the same symbol are netted.
// The returned wallets are sorted by symbol.
func (l *Ledger) Apply(postings ...Posting) ([]domain.Wallet, error) {
	return l.ApplyIf(nil, postings...)
}

// ApplyIf is Apply with a guard. guard runs while the affected entries are
// locked and sees the wallets as they would be after the postings; the
// postings take effect only if it returns nil. Nobody observes a balance
// that guard later rejects, so there is nothing to compensate.
func (l *Ledger) ApplyIf(guard func(next []domain.Wallet) error, postings ...Posting) ([]domain.Wallet, error) {
	if len(postings) == 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	net := make(map[string]decimal.Decimal, len(postings))
	for _, p := range postings {
		sym := domain.NormalizeSymbol(p.Symbol)
		if sym == "" {
			return nil, apperror.Validation("asset symbol is required")
		}
		if p.Amount.IsZero() {
			return nil, apperror.ErrInvalidAmount()
		}
		net[sym] = net[sym].Add(p.Amount)
	}

	symbols := make([]string, 0, len(net))
	for sym := range net {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	entries, err := l.entriesFor(symbols, net)
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		e.mu.Lock()
	}
	defer func() {
		for _, e := range entries {
			e.mu.Unlock()
		}
	}()

	for i, sym := range symbols {
		if entries[i].wallet.Balance.Add(net[sym]).IsNegative() {
			return nil, apperror.ErrInsufficientFunds()
		}
	}

	now := l.now()
	out := make([]domain.Wallet, len(symbols))
	for i, sym := range symbols {
		w := entries[i].wallet
		w.Balance = w.Balance.Add(net[sym])
		w.UpdatedAt = now
		out[i] = w
	}
	if guard != nil {
		if err := guard(out); err != nil {
			return nil, err
		}
	}
	for i := range entries {
		entries[i].wallet = out[i]
	}
	return out, nil
}

// entriesFor returns entries in symbols order. Entries are created only for
// symbols whose net change is a credit.
func (l *Ledger) entriesFor(symbols []string, net map[string]decimal.Decimal) ([]*ledgerEntry, error) {
	out := make([]*ledgerEntry, len(symbols))
	var missing []int

	l.mu.RLock()
	for i, sym := range symbols {
		if e, ok := l.entries[sym]; ok {
			out[i] = e
			continue
		}
		if net[sym].IsNegative() {
			l.mu.RUnlock()
			return nil, apperror.ErrInsufficientFunds()
		}
		missing = append(missing, i)
	}
	l.mu.RUnlock()

	if len(missing) == 0 {
		return out, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, i := range missing {
		sym := symbols[i]
		e, ok := l.entries[sym]
		if !ok {
			e = &ledgerEntry{wallet: domain.Wallet{Symbol: sym, Balance: decimal.Zero}}
			l.entries[sym] = e
		}
		out[i] = e
	}
	return out, nil
}

// Balance returns the current balance of symbol; absent entries read as zero.
func (l *Ledger) Balance(symbol string) decimal.Decimal {
	w, ok := l.Wallet(symbol)
	if !ok {
		return decimal.Zero
	}
	return w.Balance
}

// Wallet returns a copy of the entry for symbol.
func (l *Ledger) Wallet(symbol string) (domain.Wallet, bool) {
	l.mu.RLock()
	e, ok := l.entries[domain.NormalizeSymbol(symbol)]
	l.mu.RUnlock()
	if !ok {
		return domain.Wallet{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.wallet, true
}

// List returns all wallets sorted by symbol.
func (l *Ledger) List() []domain.Wallet {
	l.mu.RLock()
	entries := make([]*ledgerEntry, 0, len(l.entries))
	for _, e := range l.entries {
		entries = append(entries, e)
	}
	l.mu.RUnlock()

	out := make([]domain.Wallet, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		out = append(out, e.wallet)
		e.mu.Unlock()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}
