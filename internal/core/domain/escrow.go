package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EscrowStatus is the lifecycle state of an escrow contract.
type EscrowStatus string

const (
	EscrowStatusPending  EscrowStatus = "pending"
	EscrowStatusSigned   EscrowStatus = "signed"
	EscrowStatusDisputed EscrowStatus = "disputed"
	EscrowStatusReleased EscrowStatus = "released"
	EscrowStatusRefunded EscrowStatus = "refunded"
	EscrowStatusExpired  EscrowStatus = "expired"
)

// Release is allowed straight from pending: signing is advisory.
var escrowTransitions = map[EscrowStatus][]EscrowStatus{
	EscrowStatusPending:  {EscrowStatusSigned, EscrowStatusDisputed, EscrowStatusReleased, EscrowStatusExpired},
	EscrowStatusSigned:   {EscrowStatusDisputed, EscrowStatusReleased, EscrowStatusExpired},
	EscrowStatusDisputed: {EscrowStatusReleased, EscrowStatusRefunded},
}

// IsTerminal returns true for released, refunded and expired.
func (s EscrowStatus) IsTerminal() bool {
	return s == EscrowStatusReleased ||
		s == EscrowStatusRefunded ||
		s == EscrowStatusExpired
}

// CanTransition reports whether the state machine allows from -> to.
func CanTransition(from, to EscrowStatus) bool {
	for _, next := range escrowTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Escrow holds funds debited from the creator until release, refund or expiry.
type Escrow struct {
	ID                   string          `json:"id"`
	AccountID            string          `json:"account_id"`
	Amount               decimal.Decimal `json:"amount"`
	Currency             string          `json:"currency"`
	Recipient            string          `json:"recipient"`
	RecipientAddress     string          `json:"recipient_address"`
	Note                 string          `json:"note,omitempty"`
	Expiry               time.Time       `json:"expiry"`
	Status               EscrowStatus    `json:"status"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
	ReleaseTransactionID string          `json:"release_transaction_id,omitempty"`
}

// IsDue returns true when the escrow is past expiry and still expirable.
func (e *Escrow) IsDue(now time.Time) bool {
	return now.After(e.Expiry) && CanTransition(e.Status, EscrowStatusExpired)
}

// CreateEscrowRequest holds validated input for escrow creation.
type CreateEscrowRequest struct {
	Amount    decimal.Decimal
	Currency  string
	Recipient string
	Expiry    time.Time
	Note      string
}
