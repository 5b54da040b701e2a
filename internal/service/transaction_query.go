package service

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"wallet-engine/internal/core/domain"

	"github.com/shopspring/decimal"
)

var relativeDateRe = regexp.MustCompile(`^(\d+)\s+(minute|hour|day|week)s?\s+ago$`)

var transactionDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseTransactionDate interprets a stored date string relative to now.
// Unparseable input is treated as now.
func ParseTransactionDate(raw string, now time.Time) time.Time {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "today", "now", "just now":
		return now
	case "yesterday":
		return now.AddDate(0, 0, -1)
	}

	if m := relativeDateRe.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			switch m[2] {
			case "minute":
				return now.Add(-time.Duration(n) * time.Minute)
			case "hour":
				return now.Add(-time.Duration(n) * time.Hour)
			case "day":
				return now.AddDate(0, 0, -n)
			case "week":
				return now.AddDate(0, 0, -7*n)
			}
		}
	}

	trimmed := strings.TrimSpace(raw)
	for _, layout := range transactionDateLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, now.Location()); err == nil {
			return t
		}
	}
	return now
}

// rangeStart returns the inclusive lower bound of r, or false for all.
func rangeStart(r domain.DateRange, now time.Time) (time.Time, bool) {
	switch r {
	case domain.DateRangeToday:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), true
	case domain.DateRangeWeek:
		return now.AddDate(0, 0, -7), true
	case domain.DateRangeMonth:
		return now.AddDate(0, -1, 0), true
	case domain.DateRangeYear:
		return now.AddDate(-1, 0, 0), true
	}
	return time.Time{}, false
}

// FilterTransactions composes the search, type and date filters, keeping order.
func FilterTransactions(txs []domain.Transaction, filter domain.TransactionFilter, now time.Time) []domain.Transaction {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	start, bounded := rangeStart(filter.Range, now)

	out := make([]domain.Transaction, 0, len(txs))
	for _, tx := range txs {
		switch filter.Type {
		case domain.TypeFilterSent:
			if tx.Type != domain.TransactionTypeSent {
				continue
			}
		case domain.TypeFilterReceived:
			if tx.Type != domain.TransactionTypeReceived {
				continue
			}
		}
		if bounded && ParseTransactionDate(tx.Date, now).Before(start) {
			continue
		}
		if search != "" && !matchesSearch(tx, search) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func matchesSearch(tx domain.Transaction, needle string) bool {
	for _, field := range []string{tx.Recipient, tx.Amount.String(), tx.Currency, tx.ID} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Aggregate sums a transaction set at current rates. Currencies without a
// known rate are valued at 1 and reported in UnpricedCurrencies.
func Aggregate(txs []domain.Transaction, rates RateSource) domain.TransactionSummary {
	summary := domain.TransactionSummary{
		SentValue:     decimal.Zero,
		ReceivedValue: decimal.Zero,
		PivotCurrency: rates.Pivot(),
	}
	unpriced := make(map[string]struct{})

	for _, tx := range txs {
		value, known := Value(rates, tx.Currency, tx.Amount)
		if !known {
			unpriced[tx.Currency] = struct{}{}
		}
		switch tx.Type {
		case domain.TransactionTypeSent:
			summary.SentCount++
			summary.SentValue = summary.SentValue.Add(value)
		case domain.TransactionTypeReceived:
			summary.ReceivedCount++
			summary.ReceivedValue = summary.ReceivedValue.Add(value)
		}
	}

	summary.NetFlow = summary.ReceivedValue.Sub(summary.SentValue)
	for c := range unpriced {
		summary.UnpricedCurrencies = append(summary.UnpricedCurrencies, c)
	}
	sort.Strings(summary.UnpricedCurrencies)
	return summary
}
