package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csaassociates/ca-admin-api/internal/application/analytics"
	"github.com/csaassociates/ca-admin-api/internal/domain"
	"github.com/csaassociates/ca-admin-api/internal/domain/entity"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var statsNow = time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

func day(y int, m time.Month, dd int) time.Time {
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invoice stats
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeInvoiceStats_CountsByEffectiveStatus(t *testing.T) {
	invoices := []*entity.Invoice{
		{InvoiceNo: "A", Amount: d("1000"), Status: entity.InvoiceStatusPaid, DueDate: day(2025, 7, 1)},
		{InvoiceNo: "B", Amount: d("2500"), Status: entity.InvoiceStatusPaid, DueDate: day(2025, 7, 20)},
		{InvoiceNo: "C", Amount: d("500"), Status: entity.InvoiceStatusPending, DueDate: day(2025, 7, 31)},
		// pending past due -> counted as overdue, not pending
		{InvoiceNo: "D", Amount: d("800"), Status: entity.InvoiceStatusPending, DueDate: day(2025, 7, 1)},
		{InvoiceNo: "E", Amount: d("900"), AmountPaid: d("300"), Status: entity.InvoiceStatusPartial, DueDate: day(2025, 8, 1)},
	}

	stats, err := analytics.ComputeInvoiceStats(invoices, statsNow)
	require.NoError(t, err)

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.Paid)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Partial)
	assert.Equal(t, 1, stats.Overdue, "overdue is derived against now, not read from storage")
	assert.True(t, stats.TotalRevenue.Equal(d("3500")),
		"revenue sums paid invoices only, got %s", stats.TotalRevenue)
}

func TestComputeInvoiceStats_EmptySnapshot(t *testing.T) {
	stats, err := analytics.ComputeInvoiceStats(nil, statsNow)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
	assert.True(t, stats.TotalRevenue.IsZero())
}

func TestComputeInvoiceStats_Idempotent(t *testing.T) {
	invoices := []*entity.Invoice{
		{InvoiceNo: "A", Amount: d("100"), Status: entity.InvoiceStatusPaid, DueDate: day(2025, 7, 1)},
		{InvoiceNo: "B", Amount: d("200"), Status: entity.InvoiceStatusPending, DueDate: day(2025, 8, 1)},
	}
	first, err := analytics.ComputeInvoiceStats(invoices, statsNow)
	require.NoError(t, err)
	second, err := analytics.ComputeInvoiceStats(invoices, statsNow)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same snapshot and clock must yield the same figures")
}

func TestComputeInvoiceStats_RejectsNegativeAmount(t *testing.T) {
	invoices := []*entity.Invoice{
		{InvoiceNo: "BAD", Amount: d("-10"), Status: entity.InvoiceStatusPending, DueDate: day(2025, 8, 1)},
	}
	_, err := analytics.ComputeInvoiceStats(invoices, statsNow)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ledger stats
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeLedgerStats_Aggregates(t *testing.T) {
	entries := []*entity.LedgerEntry{
		{CustomerID: "c1", OpeningBalance: d("5000"), TotalInvoices: d("9440"), TotalPayments: d("9440"), Outstanding: d("5000")},
		{CustomerID: "c2", OpeningBalance: d("0"), TotalInvoices: d("3000"), TotalPayments: d("3000"), Outstanding: d("0")},
		{CustomerID: "c3", OpeningBalance: d("1000"), TotalInvoices: d("2000"), TotalPayments: d("500"), Outstanding: d("2500")},
	}

	stats, err := analytics.ComputeLedgerStats(entries)
	require.NoError(t, err)

	assert.True(t, stats.TotalOutstanding.Equal(d("7500")), "got %s", stats.TotalOutstanding)
	assert.True(t, stats.TotalInvoices.Equal(d("14440")), "got %s", stats.TotalInvoices)
	assert.True(t, stats.TotalPayments.Equal(d("12940")), "got %s", stats.TotalPayments)
	assert.Equal(t, 2, stats.CustomersWithBalance, "cleared accounts do not count")
}

func TestComputeLedgerStats_RejectsNegativeComponents(t *testing.T) {
	entries := []*entity.LedgerEntry{
		{CustomerID: "bad", OpeningBalance: d("-1"), Outstanding: d("0")},
	}
	_, err := analytics.ComputeLedgerStats(entries)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ledger identity (Recalculate)
// ──────────────────────────────────────────────────────────────────────────────

func TestLedgerRecalculate_Identity(t *testing.T) {
	l := &entity.LedgerEntry{
		OpeningBalance: d("5000"),
		TotalInvoices:  d("9440"),
		TotalPayments:  d("9440"),
	}
	l.Recalculate()
	assert.True(t, l.Outstanding.Equal(d("5000")), "got %s", l.Outstanding)
	assert.False(t, l.Cleared())
}

func TestLedgerRecalculate_ClampsAtZero(t *testing.T) {
	l := &entity.LedgerEntry{
		OpeningBalance: d("2000"),
		TotalInvoices:  d("8500"),
		TotalPayments:  d("10500"),
	}
	l.Recalculate()
	assert.True(t, l.Outstanding.IsZero(), "exact settlement clears the account, got %s", l.Outstanding)
	assert.True(t, l.Cleared())

	// Payments past the balance still clamp at zero.
	l.TotalPayments = d("12000")
	l.Recalculate()
	assert.True(t, l.Outstanding.IsZero(), "overpayment never drives outstanding negative")
}
