package billing

import "github.com/shopspring/decimal"

// NumberSequencer reserves human-readable document numbers and exposes the
// firm's billing defaults. Implemented by the settings use case.
type NumberSequencer interface {
	NextInvoiceNo() (string, error)
	NextQuotationNo() (string, error)
	DefaultTaxRate() (decimal.Decimal, error)
}
