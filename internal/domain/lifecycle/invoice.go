package lifecycle

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/csaassociates/ca-admin-api/internal/domain"
	"github.com/csaassociates/ca-admin-api/internal/domain/entity"
)

// ApplyPayment returns the stored status an invoice should carry after
// crediting amount on top of what was already paid.
//   - total paid >= invoice amount  -> paid
//   - 0 < total paid < amount       -> partial
//
// Fails with domain.ErrInvalidAmount for non-positive amounts and with
// domain.ErrInvalidTransition when the invoice is already settled.
func ApplyPayment(inv *entity.Invoice, amount decimal.Decimal) (string, error) {
	if amount.Sign() <= 0 {
		return "", fmt.Errorf("%w: payment of %s", domain.ErrInvalidAmount, amount)
	}
	if inv.Status == entity.InvoiceStatusPaid {
		return "", fmt.Errorf("%w: invoice %s is already paid", domain.ErrInvalidTransition, inv.InvoiceNo)
	}
	paid := inv.AmountPaid.Add(amount)
	if paid.GreaterThanOrEqual(inv.Amount) {
		return entity.InvoiceStatusPaid, nil
	}
	return entity.InvoiceStatusPartial, nil
}

// EffectiveStatus derives the externally visible invoice status.
// Overdue is never stored: an unpaid invoice whose due date has passed
// reports overdue at read time, everything else reports its stored status.
func EffectiveStatus(inv *entity.Invoice, now time.Time) string {
	if inv.Status != entity.InvoiceStatusPaid && beforeDay(inv.DueDate, now) {
		return entity.InvoiceStatusOverdue
	}
	return inv.Status
}

// beforeDay compares calendar days, ignoring the time of day: an invoice
// due today is not yet overdue.
func beforeDay(due, now time.Time) bool {
	dy, dm, dd := due.Date()
	ny, nm, nd := now.Date()
	if dy != ny {
		return dy < ny
	}
	if dm != nm {
		return dm < nm
	}
	return dd < nd
}
