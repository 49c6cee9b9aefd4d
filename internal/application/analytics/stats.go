// Package analytics is the derivation engine: pure, read-only aggregate
// functions over store snapshots. Same snapshot in, same figures out;
// no hidden state, no I/O. All sums use decimal arithmetic.
package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/csaassociates/ca-admin-api/internal/domain"
	"github.com/csaassociates/ca-admin-api/internal/domain/entity"
	"github.com/csaassociates/ca-admin-api/internal/domain/lifecycle"
)

// InvoiceStats counters for the invoice register.
type InvoiceStats struct {
	Total        int
	Paid         int
	Pending      int
	Partial      int
	Overdue      int
	TotalRevenue decimal.Decimal // sum of amounts over paid invoices
}

// ComputeInvoiceStats derives the register counters from a snapshot.
// Overdue is computed against now via the lifecycle rules, never read from
// the stored status. Fails with domain.ErrInvalidAmount when any invoice
// carries a negative amount.
func ComputeInvoiceStats(invoices []*entity.Invoice, now time.Time) (InvoiceStats, error) {
	stats := InvoiceStats{Total: len(invoices), TotalRevenue: decimal.Zero}
	for _, inv := range invoices {
		if inv.Amount.Sign() < 0 || inv.AmountPaid.Sign() < 0 {
			return InvoiceStats{}, fmt.Errorf("%w: invoice %s", domain.ErrInvalidAmount, inv.InvoiceNo)
		}
		switch lifecycle.EffectiveStatus(inv, now) {
		case entity.InvoiceStatusPaid:
			stats.Paid++
			stats.TotalRevenue = stats.TotalRevenue.Add(inv.Amount)
		case entity.InvoiceStatusPending:
			stats.Pending++
		case entity.InvoiceStatusPartial:
			stats.Partial++
		case entity.InvoiceStatusOverdue:
			stats.Overdue++
		}
	}
	return stats, nil
}

// LedgerStats aggregate figures across every customer account.
type LedgerStats struct {
	TotalOutstanding     decimal.Decimal
	TotalInvoices        decimal.Decimal
	TotalPayments        decimal.Decimal
	CustomersWithBalance int // accounts with outstanding > 0
}

// ComputeLedgerStats derives the account aggregates from a snapshot.
// Fails with domain.ErrInvalidAmount when any component field is negative.
func ComputeLedgerStats(entries []*entity.LedgerEntry) (LedgerStats, error) {
	stats := LedgerStats{
		TotalOutstanding: decimal.Zero,
		TotalInvoices:    decimal.Zero,
		TotalPayments:    decimal.Zero,
	}
	for _, l := range entries {
		if l.OpeningBalance.Sign() < 0 || l.TotalInvoices.Sign() < 0 ||
			l.TotalPayments.Sign() < 0 || l.Outstanding.Sign() < 0 {
			return LedgerStats{}, fmt.Errorf("%w: ledger entry for customer %s", domain.ErrInvalidAmount, l.CustomerID)
		}
		stats.TotalOutstanding = stats.TotalOutstanding.Add(l.Outstanding)
		stats.TotalInvoices = stats.TotalInvoices.Add(l.TotalInvoices)
		stats.TotalPayments = stats.TotalPayments.Add(l.TotalPayments)
		if l.Outstanding.Sign() > 0 {
			stats.CustomersWithBalance++
		}
	}
	return stats, nil
}
