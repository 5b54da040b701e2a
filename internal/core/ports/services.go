package ports

import (
	"context"
	"time"

	"wallet-engine/internal/core/domain"

	"github.com/shopspring/decimal"
)

// EncryptionService handles AES-256-GCM encryption/decryption of journaled balances.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService handles HMAC-SHA256 signing and verification of outgoing notifications.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// TokenService issues and validates session tokens.
type TokenService interface {
	Generate(accountID string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	AccountID string
}

// SettlementGateway is the external settlement leg (simulated chain / off-ramp).
// Submit must honour ctx cancellation; a deadline is a retryable failure.
type SettlementGateway interface {
	Submit(ctx context.Context, task domain.SettlementTask) (externalRef string, err error)
}

// Notifier receives exactly one success/failure signal per operation.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}

// EventPublisher forwards state events outside the process (e.g. Kafka).
type EventPublisher interface {
	Publish(ctx context.Context, event domain.StateEvent) error
}

// SnapshotRenderer rasterises a transaction list.
type SnapshotRenderer interface {
	Render(txs []domain.Transaction) ([]byte, error)
}

// WalletSession is the engine surface for one account.
type WalletSession interface {
	AccountID() string

	Balances(ctx context.Context) []domain.WalletView
	Debit(ctx context.Context, symbol string, amount decimal.Decimal) (*domain.Wallet, error)
	Credit(ctx context.Context, symbol string, amount decimal.Decimal) (*domain.Wallet, error)

	ListTransactions(ctx context.Context, filter domain.TransactionFilter) []domain.Transaction
	AppendTransaction(ctx context.Context, tx domain.Transaction) (*domain.Transaction, error)
	AggregateTransactions(ctx context.Context, filter domain.TransactionFilter) domain.TransactionSummary
	ExportTransactions(ctx context.Context, filter domain.TransactionFilter, format domain.ExportFormat) (*domain.ExportResult, error)

	CreateEscrow(ctx context.Context, req domain.CreateEscrowRequest) (*domain.Escrow, error)
	SignEscrow(ctx context.Context, id string) (*domain.Escrow, error)
	DisputeEscrow(ctx context.Context, id string) (*domain.Escrow, error)
	ReleaseEscrow(ctx context.Context, id string) (*domain.Escrow, error)
	RefundEscrow(ctx context.Context, id string) (*domain.Escrow, error)
	ExpireEscrow(ctx context.Context, id string) (*domain.Escrow, error)
	GetEscrow(ctx context.Context, id string) (*domain.Escrow, error)
	ListEscrows(ctx context.Context) []domain.Escrow

	QuoteSwap(ctx context.Context, from, to string, amount decimal.Decimal) (*domain.SwapQuote, error)
	ExecuteSwap(ctx context.Context, req domain.SwapRequest) (*domain.SwapResult, error)

	ResolveRecipient(ctx context.Context, query string) (*domain.ResolvedRecipient, error)
	TransferCrossBorder(ctx context.Context, req domain.CrossBorderRequest) (*domain.CrossBorderResult, error)

	RefreshPrices(ctx context.Context, rates map[string]decimal.Decimal) ([]domain.PriceEntry, error)
	Prices(ctx context.Context) []domain.PriceEntry
	ListSettlementTasks(ctx context.Context) []domain.SettlementTask

	Subscribe() (<-chan domain.StateEvent, func())
}

// SessionProvider opens (or returns the already open) session for an account.
type SessionProvider interface {
	Session(ctx context.Context, accountID string) (WalletSession, error)
}

// AuditService records audited write operations without blocking the request.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
