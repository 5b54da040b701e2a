package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEscrowStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		name   string
		status EscrowStatus
		want   bool
	}{
		{"pending", EscrowStatusPending, false},
		{"signed", EscrowStatusSigned, false},
		{"disputed", EscrowStatusDisputed, false},
		{"released", EscrowStatusReleased, true},
		{"refunded", EscrowStatusRefunded, true},
		{"expired", EscrowStatusExpired, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsTerminal())
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from EscrowStatus
		to   EscrowStatus
		want bool
	}{
		{EscrowStatusPending, EscrowStatusSigned, true},
		{EscrowStatusPending, EscrowStatusDisputed, true},
		{EscrowStatusPending, EscrowStatusReleased, true},
		{EscrowStatusPending, EscrowStatusExpired, true},
		{EscrowStatusPending, EscrowStatusRefunded, false},
		{EscrowStatusSigned, EscrowStatusReleased, true},
		{EscrowStatusSigned, EscrowStatusDisputed, true},
		{EscrowStatusSigned, EscrowStatusSigned, false},
		{EscrowStatusDisputed, EscrowStatusRefunded, true},
		{EscrowStatusDisputed, EscrowStatusReleased, true},
		{EscrowStatusDisputed, EscrowStatusExpired, false},
		{EscrowStatusReleased, EscrowStatusRefunded, false},
		{EscrowStatusRefunded, EscrowStatusReleased, false},
		{EscrowStatusExpired, EscrowStatusSigned, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	all := []EscrowStatus{
		EscrowStatusPending, EscrowStatusSigned, EscrowStatusDisputed,
		EscrowStatusReleased, EscrowStatusRefunded, EscrowStatusExpired,
	}
	for _, from := range all {
		if !from.IsTerminal() {
			continue
		}
		for _, to := range all {
			assert.False(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestEscrow_IsDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	assert.True(t, (&Escrow{Status: EscrowStatusPending, Expiry: past}).IsDue(now))
	assert.True(t, (&Escrow{Status: EscrowStatusSigned, Expiry: past}).IsDue(now))
	assert.False(t, (&Escrow{Status: EscrowStatusDisputed, Expiry: past}).IsDue(now))
	assert.False(t, (&Escrow{Status: EscrowStatusPending, Expiry: future}).IsDue(now))
	assert.False(t, (&Escrow{Status: EscrowStatusPending, Expiry: now}).IsDue(now), "expiry is exclusive")
}

func TestTransaction_CloneIsolatesMetadata(t *testing.T) {
	orig := Transaction{ID: "T1", Metadata: map[string]string{"k": "v"}}
	cp := orig.Clone()
	cp.Metadata["k"] = "changed"

	assert.Equal(t, "v", orig.Metadata["k"])
}

func TestParseFilters(t *testing.T) {
	tf, ok := ParseTypeFilter("")
	assert.True(t, ok)
	assert.Equal(t, TypeFilterAll, tf)

	_, ok = ParseTypeFilter("pending")
	assert.False(t, ok)

	dr, ok := ParseDateRange("week")
	assert.True(t, ok)
	assert.Equal(t, DateRangeWeek, dr)

	_, ok = ParseDateRange("decade")
	assert.False(t, ok)

	rm, ok := ParseRoutingMode("mesh")
	assert.True(t, ok)
	assert.Equal(t, RoutingMesh, rm)

	ef, ok := ParseExportFormat("png")
	assert.True(t, ok)
	assert.Equal(t, ExportFormatSnapshot, ef)
}

func TestExportFilename(t *testing.T) {
	at := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "transactions_2026-10-17.csv", ExportFilename("transactions", ExportFormatTabular, at))
	assert.Equal(t, "history_2026-10-17.png", ExportFilename("history", ExportFormatSnapshot, at))
}

func TestSwapQuote_Display(t *testing.T) {
	q := SwapQuote{Output: decimal.RequireFromString("150")}
	assert.Equal(t, "150.000000", q.Display())

	q = SwapQuote{Output: decimal.RequireFromString("0.12345678")}
	assert.Equal(t, "0.123457", q.Display())
}

func TestNormalizeSymbol(t *testing.T) {
	assert.Equal(t, "USDC", NormalizeSymbol(" usdc "))
}

func TestSettlementTask_IsTerminal(t *testing.T) {
	assert.False(t, (&SettlementTask{Status: SettlementStatusQueued}).IsTerminal())
	assert.False(t, (&SettlementTask{Status: SettlementStatusInFlight}).IsTerminal())
	assert.True(t, (&SettlementTask{Status: SettlementStatusSettled}).IsTerminal())
	assert.True(t, (&SettlementTask{Status: SettlementStatusReportedFailed}).IsTerminal())
}
