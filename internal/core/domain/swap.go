package domain

import (
	"github.com/shopspring/decimal"
)

// QuoteDisplayPlaces is the number of fractional digits shown for quotes.
const QuoteDisplayPlaces = 6

// RoutingMode labels how a swap is routed. It does not change the quote.
type RoutingMode string

const (
	RoutingStandard RoutingMode = "standard"
	RoutingMesh     RoutingMode = "mesh"
)

// ParseRoutingMode validates a routing mode; empty maps to standard.
func ParseRoutingMode(s string) (RoutingMode, bool) {
	switch RoutingMode(s) {
	case "", RoutingStandard:
		return RoutingStandard, true
	case RoutingMesh:
		return RoutingMesh, true
	}
	return "", false
}

// SwapQuote is a full-precision conversion of Amount of From into To.
type SwapQuote struct {
	From      string          `json:"from"`
	To        string          `json:"to"`
	Amount    decimal.Decimal `json:"amount"`
	Output    decimal.Decimal `json:"output"`
	FromRate  decimal.Decimal `json:"from_rate"`
	ToRate    decimal.Decimal `json:"to_rate"`
	RateKnown bool            `json:"rate_known"`
}

// Display returns the output rounded for presentation.
func (q SwapQuote) Display() string {
	return q.Output.StringFixed(QuoteDisplayPlaces)
}

// SwapRequest holds validated input for a swap execution.
type SwapRequest struct {
	From    string
	To      string
	Amount  decimal.Decimal
	Routing RoutingMode
}

// SwapResult is returned by a committed swap.
type SwapResult struct {
	Quote   SwapQuote   `json:"quote"`
	Debit   Transaction `json:"debit"`
	Credit  Transaction `json:"credit"`
	Routing RoutingMode `json:"routing"`
}

// CrossBorderRequest holds validated input for a cross-border transfer.
type CrossBorderRequest struct {
	Recipient           ResolvedRecipient
	Amount              decimal.Decimal
	SourceCurrency      string
	DestinationCurrency string
}

// CrossBorderResult is returned by a committed cross-border transfer.
type CrossBorderResult struct {
	Transaction       Transaction     `json:"transaction"`
	DestinationAmount decimal.Decimal `json:"destination_amount"`
	Rate              decimal.Decimal `json:"rate"`
	SettlementTaskID  string          `json:"settlement_task_id"`
}
