package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionOpenSession   AuditAction = "OPEN_SESSION"
	AuditActionCredit        AuditAction = "CREDIT"
	AuditActionDebit         AuditAction = "DEBIT"
	AuditActionAppendTx      AuditAction = "APPEND_TRANSACTION"
	AuditActionExport        AuditAction = "EXPORT"
	AuditActionEscrowCreate  AuditAction = "ESCROW_CREATE"
	AuditActionEscrowSign    AuditAction = "ESCROW_SIGN"
	AuditActionEscrowDispute AuditAction = "ESCROW_DISPUTE"
	AuditActionEscrowRelease AuditAction = "ESCROW_RELEASE"
	AuditActionEscrowRefund  AuditAction = "ESCROW_REFUND"
	AuditActionEscrowExpire  AuditAction = "ESCROW_EXPIRE"
	AuditActionSwap          AuditAction = "SWAP"
	AuditActionTransfer      AuditAction = "CROSS_BORDER_TRANSFER"
	AuditActionRefreshPrices AuditAction = "REFRESH_PRICES"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	AccountID    string      `json:"account_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
