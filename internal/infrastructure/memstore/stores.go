package memstore

import "time"

// Stores bundles every in-memory collection of the engine. A single Stores
// value is the whole record store for one logical session.
type Stores struct {
	Customers  *CustomerStore
	Services   *ServiceStore
	Quotations *QuotationStore
	Invoices   *InvoiceStore
	Payments   *PaymentStore
	Ledgers    *LedgerStore
	Users      *UserStore
	Settings   *SettingsStore
}

// NewStores builds an empty record store with default firm settings.
func NewStores(now time.Time) *Stores {
	return &Stores{
		Customers:  NewCustomerStore(),
		Services:   NewServiceStore(),
		Quotations: NewQuotationStore(),
		Invoices:   NewInvoiceStore(),
		Payments:   NewPaymentStore(),
		Ledgers:    NewLedgerStore(),
		Users:      NewUserStore(),
		Settings:   NewSettingsStore(now),
	}
}
