package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the running account of a single customer.
// Invariant: Outstanding == OpeningBalance + TotalInvoices − TotalPayments,
// clamped at zero. A zero outstanding means the account is cleared.
type LedgerEntry struct {
	ID              string
	CustomerID      string
	OpeningBalance  decimal.Decimal
	TotalInvoices   decimal.Decimal // sum of invoice amounts
	TotalPayments   decimal.Decimal // sum of recorded payments
	Outstanding     decimal.Decimal
	LastTransaction time.Time
	Version         int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Recalculate restores Outstanding from the ledger identity, clamping at zero.
// Must be called after every mutation of the component fields.
func (l *LedgerEntry) Recalculate() {
	out := l.OpeningBalance.Add(l.TotalInvoices).Sub(l.TotalPayments)
	if out.Sign() < 0 {
		out = decimal.Zero
	}
	l.Outstanding = out
}

// Cleared reports whether the customer owes nothing.
func (l *LedgerEntry) Cleared() bool {
	return l.Outstanding.Sign() <= 0
}
