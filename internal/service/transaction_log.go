package service

import (
	"strings"
	"sync"
	"time"

	"wallet-engine/internal/core/domain"
	"wallet-engine/pkg/apperror"

	"github.com/google/uuid"
)

// TransactionLog is the append-only record of transfers for one account.
// Entries are handed out as copies and keep insertion order.
type TransactionLog struct {
	mu      sync.RWMutex
	entries []domain.Transaction
	index   map[string]int
	now     func() time.Time
}

// NewTransactionLog creates an empty log.
func NewTransactionLog() *TransactionLog {
	return &TransactionLog{
		index: make(map[string]int),
		now:   time.Now,
	}
}

// Append validates and stores tx. An empty id is replaced by a generated one.
func (l *TransactionLog) Append(tx domain.Transaction) (domain.Transaction, error) {
	out, err := l.AppendBatch(tx)
	if err != nil {
		return domain.Transaction{}, err
	}
	return out[0], nil
}

// AppendBatch stores every entry or none of them.
func (l *TransactionLog) AppendBatch(txs ...domain.Transaction) ([]domain.Transaction, error) {
	now := l.now()
	prepared := make([]domain.Transaction, len(txs))
	for i, tx := range txs {
		p, err := prepareEntry(tx, now)
		if err != nil {
			return nil, err
		}
		prepared[i] = p
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	seen := make(map[string]struct{}, len(prepared))
	for _, tx := range prepared {
		if _, dup := l.index[tx.ID]; dup {
			return nil, apperror.ErrDuplicateTransaction()
		}
		if _, dup := seen[tx.ID]; dup {
			return nil, apperror.ErrDuplicateTransaction()
		}
		seen[tx.ID] = struct{}{}
	}

	out := make([]domain.Transaction, len(prepared))
	for i, tx := range prepared {
		l.index[tx.ID] = len(l.entries)
		l.entries = append(l.entries, tx)
		out[i] = tx.Clone()
	}
	return out, nil
}

func prepareEntry(tx domain.Transaction, now time.Time) (domain.Transaction, error) {
	tx = tx.Clone()
	tx.ID = strings.TrimSpace(tx.ID)
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if !tx.Type.IsValid() {
		return tx, apperror.Validation("transaction type must be sent or received")
	}
	if !tx.Amount.IsPositive() {
		return tx, apperror.ErrInvalidAmount()
	}
	tx.Currency = domain.NormalizeSymbol(tx.Currency)
	if tx.Currency == "" {
		return tx, apperror.Validation("transaction currency is required")
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = now
	}
	if strings.TrimSpace(tx.Date) == "" {
		tx.Date = tx.CreatedAt.Format(time.RFC3339)
	}
	return tx, nil
}

// Restore replaces the log with journaled entries, oldest first.
func (l *TransactionLog) Restore(txs []domain.Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = make([]domain.Transaction, 0, len(txs))
	l.index = make(map[string]int, len(txs))
	for _, tx := range txs {
		if _, dup := l.index[tx.ID]; dup || tx.ID == "" {
			continue
		}
		l.index[tx.ID] = len(l.entries)
		l.entries = append(l.entries, tx.Clone())
	}
}

// Get returns the entry with id.
func (l *TransactionLog) Get(id string) (domain.Transaction, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	i, ok := l.index[id]
	if !ok {
		return domain.Transaction{}, false
	}
	return l.entries[i].Clone(), true
}

// All returns every entry in insertion order.
func (l *TransactionLog) All() []domain.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.Transaction, len(l.entries))
	for i, tx := range l.entries {
		out[i] = tx.Clone()
	}
	return out
}

// Len returns the number of entries.
func (l *TransactionLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Query applies filter as of now.
func (l *TransactionLog) Query(filter domain.TransactionFilter, now time.Time) []domain.Transaction {
	return FilterTransactions(l.All(), filter, now)
}
