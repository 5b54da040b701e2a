package domain

import "time"

// EventType names a state change pushed to subscribers for re-render.
type EventType string

const (
	EventBalancesChanged    EventType = "balances_changed"
	EventTransactionAdded   EventType = "transaction_appended"
	EventEscrowUpdated      EventType = "escrow_updated"
	EventPricesRefreshed    EventType = "prices_refreshed"
	EventSettlementUpdated  EventType = "settlement_updated"
	EventNotificationIssued EventType = "notification"
)

// StateEvent is a single change notification for one account session.
type StateEvent struct {
	Type      EventType   `json:"type"`
	AccountID string      `json:"account_id"`
	At        time.Time   `json:"at"`
	Payload   interface{} `json:"payload,omitempty"`
}

// Notification is the one human-readable success/failure signal per operation.
type Notification struct {
	AccountID string    `json:"account_id"`
	Operation string    `json:"operation"`
	Success   bool      `json:"success"`
	Code      string    `json:"code,omitempty"`
	Message   string    `json:"message"`
	Reference string    `json:"reference,omitempty"`
	At        time.Time `json:"at"`
}
