package dto

import "github.com/shopspring/decimal"

// UpdateFirmRequest body for PUT /api/settings/firm.
type UpdateFirmRequest struct {
	FirmName string `json:"firm_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address,omitempty"`
	GSTIN    string `json:"gstin,omitempty"`
	PAN      string `json:"pan,omitempty"`
	Version  int    `json:"version,omitempty"`
}

// UpdateInvoiceSettingsRequest body for PUT /api/settings/invoice.
type UpdateInvoiceSettingsRequest struct {
	InvoicePrefix   string          `json:"invoice_prefix"`
	QuotationPrefix string          `json:"quotation_prefix"`
	DefaultTaxRate  decimal.Decimal `json:"default_tax_rate"`
	Terms           string          `json:"terms,omitempty"`
	BankDetails     string          `json:"bank_details,omitempty"`
	Version         int             `json:"version,omitempty"`
}

// SettingsResponse firm settings in responses.
type SettingsResponse struct {
	FirmName string `json:"firm_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address,omitempty"`
	GSTIN    string `json:"gstin,omitempty"`
	PAN      string `json:"pan,omitempty"`

	InvoicePrefix   string          `json:"invoice_prefix"`
	QuotationPrefix string          `json:"quotation_prefix"`
	NextInvoiceNo   string          `json:"next_invoice_no"`
	NextQuotationNo string          `json:"next_quotation_no"`
	DefaultTaxRate  decimal.Decimal `json:"default_tax_rate"`
	Terms           string          `json:"terms,omitempty"`
	BankDetails     string          `json:"bank_details,omitempty"`
	Version         int             `json:"version"`
}
