package analytics

import (
	"sort"
	"time"

	"github.com/csaassociates/ca-admin-api/internal/application/dto"
	"github.com/csaassociates/ca-admin-api/internal/domain/lifecycle"
	"github.com/csaassociates/ca-admin-api/internal/domain/repository"
)

// recentInvoiceLimit rows shown on the landing page.
const recentInvoiceLimit = 5

// DashboardUseCase composes the landing-page summary from the derivation
// engine: customer count, register counters, outstanding and the most
// recent invoices.
type DashboardUseCase struct {
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
	ledgerRepo   repository.LedgerRepository
	now          func() time.Time
}

// NewDashboardUseCase builds the use case. now may be nil (wall clock).
func NewDashboardUseCase(
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
	ledgerRepo repository.LedgerRepository,
	now func() time.Time,
) *DashboardUseCase {
	if now == nil {
		now = time.Now
	}
	return &DashboardUseCase{
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		ledgerRepo:   ledgerRepo,
		now:          now,
	}
}

// Summary computes the dashboard figures from fresh snapshots.
func (uc *DashboardUseCase) Summary() (*dto.DashboardResponse, error) {
	customers, err := uc.customerRepo.List()
	if err != nil {
		return nil, err
	}
	invoices, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	ledgers, err := uc.ledgerRepo.List()
	if err != nil {
		return nil, err
	}

	now := uc.now()
	invStats, err := ComputeInvoiceStats(invoices, now)
	if err != nil {
		return nil, err
	}
	ledStats, err := ComputeLedgerStats(ledgers)
	if err != nil {
		return nil, err
	}

	nameByID := make(map[string]string, len(customers))
	for _, c := range customers {
		nameByID[c.ID] = c.Name
	}

	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].Date.After(invoices[j].Date)
	})
	recent := make([]dto.InvoiceResponse, 0, recentInvoiceLimit)
	for _, inv := range invoices {
		if len(recent) == recentInvoiceLimit {
			break
		}
		recent = append(recent, dto.InvoiceResponse{
			ID:           inv.ID,
			InvoiceNo:    inv.InvoiceNo,
			CustomerID:   inv.CustomerID,
			CustomerName: nameByID[inv.CustomerID],
			QuotationID:  inv.QuotationID,
			Date:         inv.Date.Format("2006-01-02"),
			DueDate:      inv.DueDate.Format("2006-01-02"),
			Amount:       inv.Amount,
			AmountPaid:   inv.AmountPaid,
			Status:       lifecycle.EffectiveStatus(inv, now),
			Version:      inv.Version,
		})
	}

	return &dto.DashboardResponse{
		TotalCustomers:  len(customers),
		PendingInvoices: invStats.Pending + invStats.Partial + invStats.Overdue,
		TotalRevenue:    invStats.TotalRevenue,
		Outstanding:     ledStats.TotalOutstanding,
		InvoiceStats: dto.InvoiceStatsResponse{
			Total:        invStats.Total,
			Paid:         invStats.Paid,
			Pending:      invStats.Pending,
			Partial:      invStats.Partial,
			Overdue:      invStats.Overdue,
			TotalRevenue: invStats.TotalRevenue,
		},
		RecentInvoices: recent,
	}, nil
}
