package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment records money received against an invoice.
type Payment struct {
	ID         string
	InvoiceID  string
	CustomerID string
	Amount     decimal.Decimal
	Date       time.Time
	Reference  string // cheque no, UTR, etc. Free text.
	CreatedAt  time.Time
}
