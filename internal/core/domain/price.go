package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceEntry is the last known rate of a symbol against the pivot currency.
type PriceEntry struct {
	Symbol      string          `json:"symbol"`
	Rate        decimal.Decimal `json:"rate"`
	RefreshedAt time.Time       `json:"refreshed_at"`
}
