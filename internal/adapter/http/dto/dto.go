package dto

import (
	"time"

	"wallet-engine/internal/core/domain"
	"wallet-engine/pkg/deeplink"
)

// OpenSessionRequest is the request body for opening an account session.
type OpenSessionRequest struct {
	AccountID string `json:"account_id" binding:"required,max=64,safe_id"`
}

// SessionResponse is the response body for a successfully opened session.
type SessionResponse struct {
	AccountID string `json:"account_id"`
	Token     string `json:"token"`
	Expiry    int64  `json:"expiry"` // Unix timestamp
}

// AmountRequest is the request body for wallet credit and debit.
type AmountRequest struct {
	Symbol string `json:"symbol" binding:"required,max=16,safe_id"`
	Amount string `json:"amount" binding:"required,decimal_amount"`
}

// AppendTransactionRequest records an externally initiated transaction.
type AppendTransactionRequest struct {
	ID            string            `json:"id" binding:"omitempty,max=64,safe_id"`
	Type          string            `json:"type" binding:"required,oneof=sent received"`
	Amount        string            `json:"amount" binding:"required,decimal_amount"`
	Currency      string            `json:"currency" binding:"required,max=16,safe_id"`
	Recipient     string            `json:"recipient" binding:"required,max=100"`
	Date          string            `json:"date" binding:"omitempty,max=32"`
	CorrelationID string            `json:"correlation_id" binding:"omitempty,max=64,safe_id"`
	Metadata      map[string]string `json:"metadata" binding:"omitempty,max=16"`
}

// TransactionQuery is the query string shared by list, summary and export.
type TransactionQuery struct {
	Search string `form:"search" json:"search" binding:"max=100"`
	Type   string `form:"type" json:"type" binding:"omitempty,oneof=all sent received"`
	Range  string `form:"range" json:"range" binding:"omitempty,oneof=all today week month year"`
}

// Filter converts the query into a domain filter. Binding has already
// rejected unknown values.
func (q TransactionQuery) Filter() domain.TransactionFilter {
	t, _ := domain.ParseTypeFilter(q.Type)
	r, _ := domain.ParseDateRange(q.Range)
	return domain.TransactionFilter{Search: q.Search, Type: t, Range: r}
}

// ExportRequest is the request body for transaction export.
type ExportRequest struct {
	TransactionQuery
	Format string `json:"format" binding:"omitempty,oneof=tabular snapshot csv png"`
}

// TransactionListResponse wraps a filtered transaction list.
type TransactionListResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
}

// CreateEscrowRequest is the request body for escrow creation.
type CreateEscrowRequest struct {
	Amount    string    `json:"amount" binding:"required,decimal_amount"`
	Currency  string    `json:"currency" binding:"required,max=16,safe_id"`
	Recipient string    `json:"recipient" binding:"required,max=100"`
	Expiry    time.Time `json:"expiry" binding:"required"`
	Note      string    `json:"note" binding:"max=280"`
}

// SwapQuoteQuery is the query string for GET /swaps/quote.
type SwapQuoteQuery struct {
	From   string `form:"from" binding:"required,max=16,safe_id"`
	To     string `form:"to" binding:"required,max=16,safe_id"`
	Amount string `form:"amount" binding:"required,decimal_amount"`
}

// SwapQuoteResponse carries the full-precision quote and its display form.
type SwapQuoteResponse struct {
	domain.SwapQuote
	Display string `json:"display"`
}

// SwapRequest is the request body for swap execution.
type SwapRequest struct {
	From    string `json:"from" binding:"required,max=16,safe_id"`
	To      string `json:"to" binding:"required,max=16,safe_id"`
	Amount  string `json:"amount" binding:"required,decimal_amount"`
	Routing string `json:"routing" binding:"omitempty,oneof=standard mesh"`
}

// ResolveQuery is the query string for recipient resolution.
type ResolveQuery struct {
	Query string `form:"q" binding:"required,max=100"`
}

// TransferRequest is the request body for a cross-border transfer.
type TransferRequest struct {
	Recipient           string `json:"recipient" binding:"required,max=100"`
	Amount              string `json:"amount" binding:"required,decimal_amount"`
	SourceCurrency      string `json:"source_currency" binding:"required,max=16,safe_id"`
	DestinationCurrency string `json:"destination_currency" binding:"required,max=16,safe_id"`
}

// RefreshPricesRequest replaces rates for the listed symbols.
type RefreshPricesRequest struct {
	Rates map[string]string `json:"rates" binding:"required,min=1,max=256,dive,keys,safe_id,endkeys,decimal_amount"`
}

// ReceiveLinkQuery is the query string for building a receive deeplink.
type ReceiveLinkQuery struct {
	Address string `form:"address" binding:"required,max=128,safe_id"`
	Amount  string `form:"amount" binding:"omitempty,decimal_amount"`
	Token   string `form:"token" binding:"omitempty,max=16,safe_id"`
	Note    string `form:"note" binding:"max=280"`
}

// ReceiveLinkResponse returns the encoded deeplink and its parts.
type ReceiveLinkResponse struct {
	Link    string           `json:"link"`
	Request deeplink.Request `json:"request"`
}
