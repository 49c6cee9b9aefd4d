package dto

import "github.com/shopspring/decimal"

// DashboardResponse is the landing-page summary.
type DashboardResponse struct {
	TotalCustomers  int                  `json:"total_customers"`
	PendingInvoices int                  `json:"pending_invoices"`
	TotalRevenue    decimal.Decimal      `json:"total_revenue"`
	Outstanding     decimal.Decimal      `json:"outstanding"`
	InvoiceStats    InvoiceStatsResponse `json:"invoice_stats"`
	RecentInvoices  []InvoiceResponse    `json:"recent_invoices"`
}
