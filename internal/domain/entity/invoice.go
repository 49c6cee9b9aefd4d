package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice statuses. Only pending, partial and paid are ever stored;
// overdue is derived from the due date at read time (see lifecycle.EffectiveStatus).
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPartial = "partial"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// Invoice is a billing document issued to a customer.
// QuotationID is set when the invoice was produced by converting an
// accepted quotation.
type Invoice struct {
	ID          string
	InvoiceNo   string // human-readable, unique (INV-2025-001)
	CustomerID  string
	QuotationID string
	Date        time.Time
	DueDate     time.Time
	Amount      decimal.Decimal
	AmountPaid  decimal.Decimal
	Status      string // pending | partial | paid
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
