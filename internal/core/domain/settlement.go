package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettlementKind identifies which external leg a task drives.
type SettlementKind string

const (
	SettlementKindEscrowLock    SettlementKind = "escrow_lock"
	SettlementKindEscrowRelease SettlementKind = "escrow_release"
	SettlementKindEscrowRefund  SettlementKind = "escrow_refund"
	SettlementKindOfframp       SettlementKind = "offramp"
)

// SettlementStatus represents the delivery state of an outbox task.
type SettlementStatus string

const (
	SettlementStatusQueued         SettlementStatus = "queued"
	SettlementStatusInFlight       SettlementStatus = "in_flight"
	SettlementStatusSettled        SettlementStatus = "settled"
	SettlementStatusReportedFailed SettlementStatus = "reported_failed"
)

// SettlementTask is one external settlement leg queued after a local commit.
type SettlementTask struct {
	ID          string            `json:"id"`
	AccountID   string            `json:"account_id"`
	Kind        SettlementKind    `json:"kind"`
	Reference   string            `json:"reference"` // escrow or transaction id
	Amount      decimal.Decimal   `json:"amount"`
	Currency    string            `json:"currency"`
	Address     string            `json:"address"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	Status      SettlementStatus  `json:"status"`
	Attempts    int               `json:"attempts"`
	LastError   string            `json:"last_error,omitempty"`
	ExternalRef string            `json:"external_ref,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// IsTerminal returns true once the task is settled or reported failed.
func (t *SettlementTask) IsTerminal() bool {
	return t.Status == SettlementStatusSettled ||
		t.Status == SettlementStatusReportedFailed
}
