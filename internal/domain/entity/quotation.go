package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quotation lifecycle statuses. Accepted and rejected are terminal.
const (
	QuotationStatusDraft    = "draft"
	QuotationStatusSent     = "sent"
	QuotationStatusAccepted = "accepted"
	QuotationStatusRejected = "rejected"
)

// Quotation is a priced proposal of services for a customer.
// Total = SubTotal × (1 + TaxRate/100), rounded to 2 decimal places.
type Quotation struct {
	ID          string
	QuotationNo string // human-readable, unique (QT-2025-001)
	CustomerID  string
	Date        time.Time
	Services    []string // service names, order preserved
	SubTotal    decimal.Decimal
	TaxRate     decimal.Decimal // percentage, e.g. 18 for GST
	Total       decimal.Decimal
	Status      string
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
