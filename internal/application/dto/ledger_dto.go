package dto

import "github.com/shopspring/decimal"

// LedgerEntryResponse one customer account row.
type LedgerEntryResponse struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customer_id"`
	CustomerName    string          `json:"customer_name"`
	OpeningBalance  decimal.Decimal `json:"opening_balance"`
	TotalInvoices   decimal.Decimal `json:"total_invoices"`
	TotalPayments   decimal.Decimal `json:"total_payments"`
	Outstanding     decimal.Decimal `json:"outstanding"`
	Cleared         bool            `json:"cleared"`
	LastTransaction string          `json:"last_transaction"`
}

// LedgerStatsResponse aggregate figures across every account.
type LedgerStatsResponse struct {
	TotalOutstanding     decimal.Decimal `json:"total_outstanding"`
	TotalInvoices        decimal.Decimal `json:"total_invoices"`
	TotalPayments        decimal.Decimal `json:"total_payments"`
	CustomersWithBalance int             `json:"customers_with_balance"`
}

// StatementRow one line of a customer statement export (CSV).
type StatementRow struct {
	Date      string `csv:"date"`
	Type      string `csv:"type"` // INVOICE | PAYMENT
	Reference string `csv:"reference"`
	Debit     string `csv:"debit"`
	Credit    string `csv:"credit"`
}
