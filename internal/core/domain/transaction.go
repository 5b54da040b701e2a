package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transfer relative to the account.
type TransactionType string

const (
	TransactionTypeSent     TransactionType = "sent"
	TransactionTypeReceived TransactionType = "received"
)

// Metadata keys attached to engine-created transactions.
const (
	MetaEscrowID           = "escrow_id"
	MetaAddress            = "address"
	MetaRouting            = "routing"
	MetaSwapPair           = "swap_pair"
	MetaRateFallback       = "rate_fallback"
	MetaSettlementCurrency = "settlement_currency"
	MetaSettlementAmount   = "settlement_amount"
	MetaOfframpRail        = "offramp_rail"
	MetaSource             = "source"
)

// Transaction is an immutable transaction-log entry.
// Date is the stored date as the owner recorded it; it may be an ISO date or a
// relative marker such as "today" or "3 days ago".
type Transaction struct {
	ID            string            `json:"id"`
	Type          TransactionType   `json:"type"`
	Amount        decimal.Decimal   `json:"amount"`
	Currency      string            `json:"currency"`
	Recipient     string            `json:"recipient"`
	Date          string            `json:"date"`
	CreatedAt     time.Time         `json:"created_at"`
	CorrelationID string            `json:"correlation_id,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// Clone returns a deep copy so callers never share the log's metadata map.
func (t Transaction) Clone() Transaction {
	if t.Metadata != nil {
		md := make(map[string]string, len(t.Metadata))
		for k, v := range t.Metadata {
			md[k] = v
		}
		t.Metadata = md
	}
	return t
}

// IsValid reports whether t is sent or received.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeSent || t == TransactionTypeReceived
}

// TypeFilter selects transactions by direction.
type TypeFilter string

const (
	TypeFilterAll      TypeFilter = "all"
	TypeFilterSent     TypeFilter = "sent"
	TypeFilterReceived TypeFilter = "received"
)

// DateRange selects transactions by date. Week, month and year are rolling
// windows ending at query time; today starts at local midnight.
type DateRange string

const (
	DateRangeAll   DateRange = "all"
	DateRangeToday DateRange = "today"
	DateRangeWeek  DateRange = "week"
	DateRangeMonth DateRange = "month"
	DateRangeYear  DateRange = "year"
)

// TransactionFilter composes the three query dimensions. Zero values mean "all".
type TransactionFilter struct {
	Search string     `json:"search"`
	Type   TypeFilter `json:"type"`
	Range  DateRange  `json:"range"`
}

// ParseTypeFilter validates a type filter; empty maps to all.
func ParseTypeFilter(s string) (TypeFilter, bool) {
	switch TypeFilter(s) {
	case "", TypeFilterAll:
		return TypeFilterAll, true
	case TypeFilterSent, TypeFilterReceived:
		return TypeFilter(s), true
	}
	return "", false
}

// ParseDateRange validates a date range; empty maps to all.
func ParseDateRange(s string) (DateRange, bool) {
	switch DateRange(s) {
	case "", DateRangeAll:
		return DateRangeAll, true
	case DateRangeToday, DateRangeWeek, DateRangeMonth, DateRangeYear:
		return DateRange(s), true
	}
	return "", false
}

// TransactionSummary aggregates a filtered set at current prices.
type TransactionSummary struct {
	SentCount          int             `json:"sent_count"`
	ReceivedCount      int             `json:"received_count"`
	SentValue          decimal.Decimal `json:"sent_value"`
	ReceivedValue      decimal.Decimal `json:"received_value"`
	NetFlow            decimal.Decimal `json:"net_flow"`
	PivotCurrency      string          `json:"pivot_currency"`
	UnpricedCurrencies []string        `json:"unpriced_currencies,omitempty"`
}
