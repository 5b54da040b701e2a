package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"wallet-engine/internal/core/domain"
	"wallet-engine/internal/core/ports"
	"wallet-engine/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RateSource yields pivot-currency rates. Unknown symbols fall back to 1.
type RateSource interface {
	Rate(symbol string) (decimal.Decimal, bool)
	Pivot() string
}

// PriceOracle is the last-write-wins cache of symbol -> pivot-currency rate.
// It keeps no history; Refresh replaces the table wholesale.
type PriceOracle struct {
	mu      sync.RWMutex
	pivot   string
	entries map[string]domain.PriceEntry
	cache   ports.PriceCache // optional
	log     zerolog.Logger
	now     func() time.Time
}

// NewPriceOracle creates an oracle for the given pivot currency. cache may be nil.
func NewPriceOracle(pivot string, cache ports.PriceCache, log zerolog.Logger) *PriceOracle {
	return &PriceOracle{
		pivot:   domain.NormalizeSymbol(pivot),
		entries: make(map[string]domain.PriceEntry),
		cache:   cache,
		log:     log,
		now:     time.Now,
	}
}

// Pivot returns the currency every rate is expressed in.
func (o *PriceOracle) Pivot() string {
	return o.pivot
}

// Rate returns the rate of symbol and whether it was known.
func (o *PriceOracle) Rate(symbol string) (decimal.Decimal, bool) {
	sym := domain.NormalizeSymbol(symbol)
	if sym == o.pivot {
		return decimal.NewFromInt(1), true
	}
	o.mu.RLock()
	e, ok := o.entries[sym]
	o.mu.RUnlock()
	if !ok {
		return decimal.NewFromInt(1), false
	}
	return e.Rate, true
}

// Refresh replaces the whole table. All rates must be positive; nothing is
// changed otherwise. Persisting to the cache is best-effort.
func (o *PriceOracle) Refresh(ctx context.Context, rates map[string]decimal.Decimal) ([]domain.PriceEntry, error) {
	now := o.now()
	next := make(map[string]domain.PriceEntry, len(rates))
	for symbol, rate := range rates {
		sym := domain.NormalizeSymbol(symbol)
		if sym == "" {
			return nil, apperror.Validation("price symbol is required")
		}
		if !rate.IsPositive() {
			return nil, apperror.Validation("price for " + sym + " must be positive")
		}
		next[sym] = domain.PriceEntry{Symbol: sym, Rate: rate, RefreshedAt: now}
	}

	o.mu.Lock()
	o.entries = next
	o.mu.Unlock()

	snapshot := o.Snapshot()
	if o.cache != nil {
		if err := o.cache.Save(ctx, snapshot); err != nil {
			o.log.Warn().Err(err).Msg("failed to persist price table")
		}
	}

	o.log.Info().Int("symbols", len(snapshot)).Msg("price table refreshed")
	return snapshot, nil
}

// Load restores the last persisted table. An empty cache leaves seeds in place.
func (o *PriceOracle) Load(ctx context.Context) error {
	if o.cache == nil {
		return nil
	}
	entries, err := o.cache.Load(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	next := make(map[string]domain.PriceEntry, len(entries))
	for _, e := range entries {
		e.Symbol = domain.NormalizeSymbol(e.Symbol)
		if e.Symbol == "" || !e.Rate.IsPositive() {
			continue
		}
		next[e.Symbol] = e
	}

	o.mu.Lock()
	o.entries = next
	o.mu.Unlock()
	return nil
}

// Seed installs rates without touching the cache. Used at startup.
func (o *PriceOracle) Seed(rates map[string]decimal.Decimal) {
	now := o.now()
	o.mu.Lock()
	defer o.mu.Unlock()
	for symbol, rate := range rates {
		sym := domain.NormalizeSymbol(symbol)
		if sym == "" || !rate.IsPositive() {
			continue
		}
		o.entries[sym] = domain.PriceEntry{Symbol: sym, Rate: rate, RefreshedAt: now}
	}
}

// Snapshot returns every entry sorted by symbol.
func (o *PriceOracle) Snapshot() []domain.PriceEntry {
	o.mu.RLock()
	out := make([]domain.PriceEntry, 0, len(o.entries))
	for _, e := range o.entries {
		out = append(out, e)
	}
	o.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// Value converts amount of symbol into the pivot currency.
func Value(rates RateSource, symbol string, amount decimal.Decimal) (decimal.Decimal, bool) {
	rate, known := rates.Rate(symbol)
	return amount.Mul(rate), known
}
