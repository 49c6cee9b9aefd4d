package dto

import "github.com/shopspring/decimal"

// CreateQuotationRequest body for POST /api/quotations.
// Services are catalogue service names; the subtotal is priced from the
// catalogue and the tax rate defaults to the firm's configured GST rate.
type CreateQuotationRequest struct {
	CustomerID string          `json:"customer_id"`
	Date       string          `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	Services   []string        `json:"services"`
	TaxRate    decimal.Decimal `json:"tax_rate,omitempty"` // percentage
}

// UpdateQuotationRequest body for PUT /api/quotations/:id.
type UpdateQuotationRequest struct {
	Services []string        `json:"services"`
	TaxRate  decimal.Decimal `json:"tax_rate,omitempty"`
	Version  int             `json:"version,omitempty"`
}

// QuotationResponse quotation in responses.
type QuotationResponse struct {
	ID           string          `json:"id"`
	QuotationNo  string          `json:"quotation_no"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name,omitempty"`
	Date         string          `json:"date"`
	Services     []string        `json:"services"`
	SubTotal     decimal.Decimal `json:"sub_total"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
	Version      int             `json:"version"`
}

// CreateInvoiceRequest body for POST /api/invoices.
// DueDate defaults to the invoice date plus the payment window in the
// firm's terms (15 days).
type CreateInvoiceRequest struct {
	CustomerID string          `json:"customer_id"`
	Date       string          `json:"date,omitempty"`     // YYYY-MM-DD, defaults to today
	DueDate    string          `json:"due_date,omitempty"` // YYYY-MM-DD
	Amount     decimal.Decimal `json:"amount"`
}

// InvoiceResponse invoice in responses. Status is the derived value:
// an unpaid invoice past its due date reports "overdue".
type InvoiceResponse struct {
	ID           string          `json:"id"`
	InvoiceNo    string          `json:"invoice_no"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name,omitempty"`
	QuotationID  string          `json:"quotation_id,omitempty"`
	Date         string          `json:"date"`
	DueDate      string          `json:"due_date"`
	Amount       decimal.Decimal `json:"amount"`
	AmountPaid   decimal.Decimal `json:"amount_paid"`
	Status       string          `json:"status"`
	Version      int             `json:"version"`
}

// InvoiceStatsResponse dashboard counters for the invoice register.
type InvoiceStatsResponse struct {
	Total        int             `json:"total"`
	Paid         int             `json:"paid"`
	Pending      int             `json:"pending"`
	Partial      int             `json:"partial"`
	Overdue      int             `json:"overdue"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// RecordPaymentRequest body for POST /api/invoices/:id/payments.
type RecordPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	Reference string          `json:"reference,omitempty"`
	Version   int             `json:"version,omitempty"` // expected invoice version
}

// PaymentResponse payment in responses.
type PaymentResponse struct {
	ID        string          `json:"id"`
	InvoiceID string          `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	Reference string          `json:"reference,omitempty"`
}
