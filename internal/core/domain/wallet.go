package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is one asset balance held by an account.
type Wallet struct {
	Symbol    string          `json:"symbol"`
	Balance   decimal.Decimal `json:"balance"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// WalletView pairs a wallet with its valuation in the pivot currency.
// RateKnown is false when the oracle had no entry and fell back to 1.
type WalletView struct {
	Wallet
	Rate      decimal.Decimal `json:"rate"`
	RateKnown bool            `json:"rate_known"`
	FiatValue decimal.Decimal `json:"fiat_value"`
}

// NormalizeSymbol canonicalises an asset symbol ("usdc " -> "USDC").
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
