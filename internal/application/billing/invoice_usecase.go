package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/csaassociates/ca-admin-api/internal/application/analytics"
	"github.com/csaassociates/ca-admin-api/internal/application/dto"
	"github.com/csaassociates/ca-admin-api/internal/domain"
	"github.com/csaassociates/ca-admin-api/internal/domain/entity"
	"github.com/csaassociates/ca-admin-api/internal/domain/lifecycle"
	"github.com/csaassociates/ca-admin-api/internal/domain/repository"
	"github.com/csaassociates/ca-admin-api/pkg/search"
)

// InvoiceUseCase creates invoices, records payments against them and keeps
// the customer ledgers in step. Every mutation maintains the ledger
// identity: outstanding = opening + invoices − payments.
type InvoiceUseCase struct {
	repo         repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	paymentRepo  repository.PaymentRepository
	ledgerRepo   repository.LedgerRepository
	sequencer    NumberSequencer
	now          func() time.Time
}

// NewInvoiceUseCase builds the use case. now may be nil (wall clock).
func NewInvoiceUseCase(
	repo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	paymentRepo repository.PaymentRepository,
	ledgerRepo repository.LedgerRepository,
	sequencer NumberSequencer,
	now func() time.Time,
) *InvoiceUseCase {
	if now == nil {
		now = time.Now
	}
	return &InvoiceUseCase{
		repo:         repo,
		customerRepo: customerRepo,
		paymentRepo:  paymentRepo,
		ledgerRepo:   ledgerRepo,
		sequencer:    sequencer,
		now:          now,
	}
}

// Create stores a new pending invoice and debits the customer's ledger.
func (uc *InvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.CustomerID == "" {
		return nil, fmt.Errorf("%w: customer_id is required", domain.ErrInvalidInput)
	}
	if in.Amount.Sign() < 0 {
		return nil, fmt.Errorf("%w: amount %s", domain.ErrInvalidAmount, in.Amount)
	}
	if in.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount is required", domain.ErrInvalidInput)
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	date := now
	if in.Date != "" {
		if date, err = time.Parse("2006-01-02", in.Date); err != nil {
			return nil, fmt.Errorf("%w: date %q", domain.ErrInvalidInput, in.Date)
		}
	}
	dueDate := date.AddDate(0, 0, paymentWindowDays)
	if in.DueDate != "" {
		if dueDate, err = time.Parse("2006-01-02", in.DueDate); err != nil {
			return nil, fmt.Errorf("%w: due_date %q", domain.ErrInvalidInput, in.DueDate)
		}
	}
	if dueDate.Before(date) {
		return nil, fmt.Errorf("%w: due date precedes invoice date", domain.ErrInvalidInput)
	}

	no, err := uc.sequencer.NextInvoiceNo()
	if err != nil {
		return nil, err
	}
	inv := &entity.Invoice{
		ID:         uuid.New().String(),
		InvoiceNo:  no,
		CustomerID: customer.ID,
		Date:       date,
		DueDate:    dueDate,
		Amount:     in.Amount,
		AmountPaid: decimal.Zero,
		Status:     entity.InvoiceStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(inv); err != nil {
		return nil, err
	}
	if err := debitLedger(uc.ledgerRepo, inv.CustomerID, inv.Amount, date); err != nil {
		return nil, err
	}
	return uc.toResponse(inv, customer.Name), nil
}

// RecordPayment credits a payment against the invoice, moving it to
// partial or paid, and updates the customer's ledger.
func (uc *InvoiceUseCase) RecordPayment(invoiceID string, in dto.RecordPaymentRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.repo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	newStatus, err := lifecycle.ApplyPayment(inv, in.Amount)
	if err != nil {
		return nil, err
	}

	date := uc.now()
	if in.Date != "" {
		if date, err = time.Parse("2006-01-02", in.Date); err != nil {
			return nil, fmt.Errorf("%w: date %q", domain.ErrInvalidInput, in.Date)
		}
	}

	inv.AmountPaid = inv.AmountPaid.Add(in.Amount)
	inv.Status = newStatus
	if in.Version != 0 {
		inv.Version = in.Version
	}
	if err := uc.repo.Update(inv); err != nil {
		return nil, err
	}

	payment := &entity.Payment{
		ID:         uuid.New().String(),
		InvoiceID:  inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     in.Amount,
		Date:       date,
		Reference:  in.Reference,
		CreatedAt:  uc.now(),
	}
	if err := uc.paymentRepo.Create(payment); err != nil {
		return nil, err
	}

	entry, err := uc.ledgerRepo.GetByCustomerID(inv.CustomerID)
	if err != nil {
		return nil, err
	}
	entry.TotalPayments = entry.TotalPayments.Add(in.Amount)
	entry.LastTransaction = date
	entry.Recalculate()
	if err := uc.ledgerRepo.Update(entry); err != nil {
		return nil, err
	}

	return uc.toResponse(inv, uc.customerName(inv.CustomerID)), nil
}

// Delete removes an invoice and reverses its ledger debit. Invoices with
// recorded payments cannot be deleted.
func (uc *InvoiceUseCase) Delete(id string, version int) error {
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if inv.AmountPaid.Sign() > 0 {
		return fmt.Errorf("%w: invoice %s has recorded payments", domain.ErrConflict, inv.InvoiceNo)
	}
	if err := uc.repo.Delete(id, version); err != nil {
		return err
	}
	entry, err := uc.ledgerRepo.GetByCustomerID(inv.CustomerID)
	if err != nil {
		return err
	}
	entry.TotalInvoices = entry.TotalInvoices.Sub(inv.Amount)
	entry.Recalculate()
	return uc.ledgerRepo.Update(entry)
}

// GetByID returns one invoice with its derived status.
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(inv, uc.customerName(inv.CustomerID)), nil
}

// Payments lists the payments recorded against an invoice.
func (uc *InvoiceUseCase) Payments(invoiceID string) ([]*dto.PaymentResponse, error) {
	if _, err := uc.repo.GetByID(invoiceID); err != nil {
		return nil, err
	}
	payments, err := uc.paymentRepo.ListByInvoice(invoiceID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, &dto.PaymentResponse{
			ID:        p.ID,
			InvoiceID: p.InvoiceID,
			Amount:    p.Amount,
			Date:      p.Date.Format("2006-01-02"),
			Reference: p.Reference,
		})
	}
	return out, nil
}

// List returns invoices matching the query (invoice number or customer
// name substring), with derived statuses.
func (uc *InvoiceUseCase) List(query string) ([]*dto.InvoiceResponse, error) {
	list, err := uc.repo.List()
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
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, uc.toResponse(inv, nameByID[inv.CustomerID]))
	}
	return search.Filter(out, query, func(r *dto.InvoiceResponse) []string {
		return []string{r.InvoiceNo, r.CustomerName}
	}), nil
}

// Stats aggregates the register via the derivation engine.
func (uc *InvoiceUseCase) Stats() (*dto.InvoiceStatsResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	stats, err := analytics.ComputeInvoiceStats(list, uc.now())
	if err != nil {
		return nil, err
	}
	return &dto.InvoiceStatsResponse{
		Total:        stats.Total,
		Paid:         stats.Paid,
		Pending:      stats.Pending,
		Partial:      stats.Partial,
		Overdue:      stats.Overdue,
		TotalRevenue: stats.TotalRevenue,
	}, nil
}

func (uc *InvoiceUseCase) customerName(id string) string {
	c, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return ""
	}
	return c.Name
}

func (uc *InvoiceUseCase) toResponse(inv *entity.Invoice, customerName string) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:           inv.ID,
		InvoiceNo:    inv.InvoiceNo,
		CustomerID:   inv.CustomerID,
		CustomerName: customerName,
		QuotationID:  inv.QuotationID,
		Date:         inv.Date.Format("2006-01-02"),
		DueDate:      inv.DueDate.Format("2006-01-02"),
		Amount:       inv.Amount,
		AmountPaid:   inv.AmountPaid,
		Status:       lifecycle.EffectiveStatus(inv, uc.now()),
		Version:      inv.Version,
	}
}

// debitLedger adds an invoice amount to the customer's account and
// restores the outstanding identity.
func debitLedger(repo repository.LedgerRepository, customerID string, amount decimal.Decimal, when time.Time) error {
	entry, err := repo.GetByCustomerID(customerID)
	if err != nil {
		return err
	}
	entry.TotalInvoices = entry.TotalInvoices.Add(amount)
	entry.LastTransaction = when
	entry.Recalculate()
	return repo.Update(entry)
}
