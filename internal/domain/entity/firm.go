package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FirmSettings is the singleton configuration of the practice: letterhead
// details plus the document numbering sequences. Quotation and invoice
// numbers are formatted PREFIX-YEAR-SEQ (INV-2025-005); the sequences reset
// when SequenceYear rolls over.
type FirmSettings struct {
	FirmName string
	Email    string
	Phone    string
	Address  string
	GSTIN    string
	PAN      string

	InvoicePrefix    string
	QuotationPrefix  string
	SequenceYear     int
	NextInvoiceSeq   int
	NextQuotationSeq int
	DefaultTaxRate   decimal.Decimal // percentage, e.g. 18

	Terms       string
	BankDetails string
	Version     int
	UpdatedAt   time.Time
}
