package usecase

import (
	"fmt"
	"sort"

	"github.com/csaassociates/ca-admin-api/internal/application/analytics"
	"github.com/csaassociates/ca-admin-api/internal/application/dto"
	"github.com/csaassociates/ca-admin-api/internal/domain/entity"
	"github.com/csaassociates/ca-admin-api/internal/domain/repository"
	"github.com/csaassociates/ca-admin-api/pkg/search"
)

// LedgerExporter renders account data for download. Implemented by the
// export infrastructure (xlsx workbook, CSV statement).
type LedgerExporter interface {
	Workbook(rows []*dto.LedgerEntryResponse) ([]byte, error)
	Statement(rows []dto.StatementRow) ([]byte, error)
}

// LedgerUseCase read-side of the customer accounts: listing, aggregate
// figures and downloads. Ledger entries are mutated only by the billing
// use cases.
type LedgerUseCase struct {
	ledgerRepo   repository.LedgerRepository
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
	paymentRepo  repository.PaymentRepository
	exporter     LedgerExporter
}

// NewLedgerUseCase builds the use case.
func NewLedgerUseCase(
	ledgerRepo repository.LedgerRepository,
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	exporter LedgerExporter,
) *LedgerUseCase {
	return &LedgerUseCase{
		ledgerRepo:   ledgerRepo,
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		paymentRepo:  paymentRepo,
		exporter:     exporter,
	}
}

// List returns the accounts matching the query (customer name substring).
func (uc *LedgerUseCase) List(query string) ([]*dto.LedgerEntryResponse, error) {
	rows, err := uc.rows()
	if err != nil {
		return nil, err
	}
	return search.Filter(rows, query, func(r *dto.LedgerEntryResponse) []string {
		return []string{r.CustomerName}
	}), nil
}

// Stats aggregates every account via the derivation engine.
func (uc *LedgerUseCase) Stats() (*dto.LedgerStatsResponse, error) {
	entries, err := uc.ledgerRepo.List()
	if err != nil {
		return nil, err
	}
	stats, err := analytics.ComputeLedgerStats(entries)
	if err != nil {
		return nil, err
	}
	return &dto.LedgerStatsResponse{
		TotalOutstanding:     stats.TotalOutstanding,
		TotalInvoices:        stats.TotalInvoices,
		TotalPayments:        stats.TotalPayments,
		CustomersWithBalance: stats.CustomersWithBalance,
	}, nil
}

// ExportAll renders every account into an xlsx workbook.
func (uc *LedgerUseCase) ExportAll() ([]byte, string, error) {
	rows, err := uc.rows()
	if err != nil {
		return nil, "", err
	}
	data, err := uc.exporter.Workbook(rows)
	if err != nil {
		return nil, "", fmt.Errorf("ledger export: %w", err)
	}
	return data, "ledgers.xlsx", nil
}

// Statement renders one customer's transactions (invoices as debits,
// payments as credits, date order) into a CSV download.
func (uc *LedgerUseCase) Statement(customerID string) ([]byte, string, error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, "", err
	}
	if _, err := uc.ledgerRepo.GetByCustomerID(customerID); err != nil {
		return nil, "", err
	}
	invoices, err := uc.invoiceRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, "", err
	}
	payments, err := uc.paymentRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, "", err
	}

	rows := make([]dto.StatementRow, 0, len(invoices)+len(payments))
	for _, inv := range invoices {
		rows = append(rows, dto.StatementRow{
			Date:      inv.Date.Format("2006-01-02"),
			Type:      "INVOICE",
			Reference: inv.InvoiceNo,
			Debit:     inv.Amount.StringFixed(2),
		})
	}
	for _, p := range payments {
		rows = append(rows, dto.StatementRow{
			Date:      p.Date.Format("2006-01-02"),
			Type:      "PAYMENT",
			Reference: p.Reference,
			Credit:    p.Amount.StringFixed(2),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })

	data, err := uc.exporter.Statement(rows)
	if err != nil {
		return nil, "", fmt.Errorf("statement export: %w", err)
	}
	return data, fmt.Sprintf("ledger-%s.csv", customer.Name), nil
}

// rows joins ledger entries with customer names, preserving store order.
func (uc *LedgerUseCase) rows() ([]*dto.LedgerEntryResponse, error) {
	entries, err := uc.ledgerRepo.List()
	if err != nil {
		return nil, err
	}
	customers, err := uc.customerRepo.List()
	if err != nil {
		return nil, err
	}
	nameByID := make(map[string]string, len(customers))
	for _, c := range customers {
		nameByID[c.ID] = c.Name
	}
	out := make([]*dto.LedgerEntryResponse, 0, len(entries))
	for _, l := range entries {
		out = append(out, toLedgerResponse(l, nameByID[l.CustomerID]))
	}
	return out, nil
}

func toLedgerResponse(l *entity.LedgerEntry, customerName string) *dto.LedgerEntryResponse {
	return &dto.LedgerEntryResponse{
		ID:              l.ID,
		CustomerID:      l.CustomerID,
		CustomerName:    customerName,
		OpeningBalance:  l.OpeningBalance,
		TotalInvoices:   l.TotalInvoices,
		TotalPayments:   l.TotalPayments,
		Outstanding:     l.Outstanding,
		Cleared:         l.Cleared(),
		LastTransaction: l.LastTransaction.Format("2006-01-02"),
	}
}
