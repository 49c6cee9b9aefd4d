package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/csaassociates/ca-admin-api/internal/application/dto"
	"github.com/csaassociates/ca-admin-api/internal/domain"
	"github.com/csaassociates/ca-admin-api/internal/domain/entity"
	"github.com/csaassociates/ca-admin-api/internal/domain/lifecycle"
	"github.com/csaassociates/ca-admin-api/internal/domain/repository"
	"github.com/csaassociates/ca-admin-api/pkg/search"
)

// paymentWindowDays due-date offset for invoices produced by conversion,
// matching the firm's payment terms.
const paymentWindowDays = 15

// QuotationUseCase drives the quotation lifecycle: create/update while
// draft or sent, send/accept/reject transitions, and the one-way
// conversion of an accepted quotation into a pending invoice.
type QuotationUseCase struct {
	repo         repository.QuotationRepository
	customerRepo repository.CustomerRepository
	serviceRepo  repository.ServiceRepository
	invoiceRepo  repository.InvoiceRepository
	ledgerRepo   repository.LedgerRepository
	sequencer    NumberSequencer
	now          func() time.Time
}

// NewQuotationUseCase builds the use case. now may be nil (wall clock).
func NewQuotationUseCase(
	repo repository.QuotationRepository,
	customerRepo repository.CustomerRepository,
	serviceRepo repository.ServiceRepository,
	invoiceRepo repository.InvoiceRepository,
	ledgerRepo repository.LedgerRepository,
	sequencer NumberSequencer,
	now func() time.Time,
) *QuotationUseCase {
	if now == nil {
		now = time.Now
	}
	return &QuotationUseCase{
		repo:         repo,
		customerRepo: customerRepo,
		serviceRepo:  serviceRepo,
		invoiceRepo:  invoiceRepo,
		ledgerRepo:   ledgerRepo,
		sequencer:    sequencer,
		now:          now,
	}
}

// Create prices the requested services from the catalogue and stores a new
// draft quotation. Inactive or unknown services are rejected.
func (uc *QuotationUseCase) Create(in dto.CreateQuotationRequest) (*dto.QuotationResponse, error) {
	if in.CustomerID == "" || len(in.Services) == 0 {
		return nil, fmt.Errorf("%w: customer_id and services are required", domain.ErrInvalidInput)
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	subTotal, err := uc.priceServices(in.Services)
	if err != nil {
		return nil, err
	}
	rate := in.TaxRate
	if rate.IsZero() {
		if rate, err = uc.sequencer.DefaultTaxRate(); err != nil {
			return nil, err
		}
	}
	if rate.Sign() < 0 {
		return nil, fmt.Errorf("%w: tax rate %s", domain.ErrInvalidAmount, rate)
	}

	date := uc.now()
	if in.Date != "" {
		if date, err = time.Parse("2006-01-02", in.Date); err != nil {
			return nil, fmt.Errorf("%w: date %q", domain.ErrInvalidInput, in.Date)
		}
	}
	no, err := uc.sequencer.NextQuotationNo()
	if err != nil {
		return nil, err
	}

	q := &entity.Quotation{
		ID:          uuid.New().String(),
		QuotationNo: no,
		CustomerID:  customer.ID,
		Date:        date,
		Services:    in.Services,
		SubTotal:    subTotal,
		TaxRate:     rate,
		Total:       grossTotal(subTotal, rate),
		Status:      entity.QuotationStatusDraft,
		CreatedAt:   uc.now(),
		UpdatedAt:   uc.now(),
	}
	if err := uc.repo.Create(q); err != nil {
		return nil, err
	}
	return uc.toResponse(q, customer.Name), nil
}

// Update reprices an existing quotation. Terminal quotations are frozen.
func (uc *QuotationUseCase) Update(id string, in dto.UpdateQuotationRequest) (*dto.QuotationResponse, error) {
	if len(in.Services) == 0 {
		return nil, fmt.Errorf("%w: services are required", domain.ErrInvalidInput)
	}
	q, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !lifecycle.QuotationEditable(q.Status) {
		return nil, fmt.Errorf("%w: %s quotation %s cannot be edited",
			domain.ErrInvalidTransition, q.Status, q.QuotationNo)
	}
	subTotal, err := uc.priceServices(in.Services)
	if err != nil {
		return nil, err
	}
	if !in.TaxRate.IsZero() {
		if in.TaxRate.Sign() < 0 {
			return nil, fmt.Errorf("%w: tax rate %s", domain.ErrInvalidAmount, in.TaxRate)
		}
		q.TaxRate = in.TaxRate
	}
	q.Services = in.Services
	q.SubTotal = subTotal
	q.Total = grossTotal(subTotal, q.TaxRate)
	if in.Version != 0 {
		q.Version = in.Version
	}
	if err := uc.repo.Update(q); err != nil {
		return nil, err
	}
	return uc.toResponse(q, uc.customerName(q.CustomerID)), nil
}

// Send, Accept and Reject move the quotation through its lifecycle.
func (uc *QuotationUseCase) Send(id string) (*dto.QuotationResponse, error) {
	return uc.transition(id, entity.QuotationStatusSent)
}

func (uc *QuotationUseCase) Accept(id string) (*dto.QuotationResponse, error) {
	return uc.transition(id, entity.QuotationStatusAccepted)
}

func (uc *QuotationUseCase) Reject(id string) (*dto.QuotationResponse, error) {
	return uc.transition(id, entity.QuotationStatusRejected)
}

func (uc *QuotationUseCase) transition(id, to string) (*dto.QuotationResponse, error) {
	q, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.TransitionQuotation(q.Status, to); err != nil {
		return nil, err
	}
	q.Status = to
	if err := uc.repo.Update(q); err != nil {
		return nil, err
	}
	return uc.toResponse(q, uc.customerName(q.CustomerID)), nil
}

// ConvertToInvoice produces a pending invoice from an accepted quotation:
// amount = quotation total, due in the standard payment window. The source
// quotation is left untouched. The customer's ledger is debited.
func (uc *QuotationUseCase) ConvertToInvoice(id string) (*dto.InvoiceResponse, error) {
	q, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.CanConvert(q); err != nil {
		return nil, err
	}

	no, err := uc.sequencer.NextInvoiceNo()
	if err != nil {
		return nil, err
	}
	now := uc.now()
	inv := &entity.Invoice{
		ID:          uuid.New().String(),
		InvoiceNo:   no,
		CustomerID:  q.CustomerID,
		QuotationID: q.ID,
		Date:        now,
		DueDate:     now.AddDate(0, 0, paymentWindowDays),
		Amount:      q.Total,
		AmountPaid:  decimal.Zero,
		Status:      entity.InvoiceStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.invoiceRepo.Create(inv); err != nil {
		return nil, err
	}
	if err := debitLedger(uc.ledgerRepo, inv.CustomerID, inv.Amount, now); err != nil {
		return nil, err
	}

	return &dto.InvoiceResponse{
		ID:           inv.ID,
		InvoiceNo:    inv.InvoiceNo,
		CustomerID:   inv.CustomerID,
		CustomerName: uc.customerName(inv.CustomerID),
		QuotationID:  inv.QuotationID,
		Date:         inv.Date.Format("2006-01-02"),
		DueDate:      inv.DueDate.Format("2006-01-02"),
		Amount:       inv.Amount,
		AmountPaid:   inv.AmountPaid,
		Status:       inv.Status,
		Version:      inv.Version,
	}, nil
}

// Delete removes a quotation.
func (uc *QuotationUseCase) Delete(id string, version int) error {
	return uc.repo.Delete(id, version)
}

// GetByID returns one quotation.
func (uc *QuotationUseCase) GetByID(id string) (*dto.QuotationResponse, error) {
	q, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(q, uc.customerName(q.CustomerID)), nil
}

// List returns quotations matching the query (quotation number or customer
// name substring).
func (uc *QuotationUseCase) List(query string) ([]*dto.QuotationResponse, error) {
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
	out := make([]*dto.QuotationResponse, 0, len(list))
	for _, q := range list {
		out = append(out, uc.toResponse(q, nameByID[q.CustomerID]))
	}
	return search.Filter(out, query, func(r *dto.QuotationResponse) []string {
		return []string{r.QuotationNo, r.CustomerName}
	}), nil
}

// priceServices sums catalogue prices for the named services. Unknown
// names fail with ErrNotFound, inactive services with ErrInvalidInput.
func (uc *QuotationUseCase) priceServices(names []string) (decimal.Decimal, error) {
	subTotal := decimal.Zero
	for _, name := range names {
		svc, err := uc.serviceRepo.GetByName(name)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: service %q", domain.ErrNotFound, name)
		}
		if svc.Status != entity.ServiceStatusActive {
			return decimal.Zero, fmt.Errorf("%w: service %q is inactive", domain.ErrInvalidInput, name)
		}
		subTotal = subTotal.Add(svc.Price)
	}
	return subTotal, nil
}

func (uc *QuotationUseCase) customerName(id string) string {
	c, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return ""
	}
	return c.Name
}

func (uc *QuotationUseCase) toResponse(q *entity.Quotation, customerName string) *dto.QuotationResponse {
	return &dto.QuotationResponse{
		ID:           q.ID,
		QuotationNo:  q.QuotationNo,
		CustomerID:   q.CustomerID,
		CustomerName: customerName,
		Date:         q.Date.Format("2006-01-02"),
		Services:     q.Services,
		SubTotal:     q.SubTotal,
		TaxRate:      q.TaxRate,
		Total:        q.Total,
		Status:       q.Status,
		Version:      q.Version,
	}
}

// grossTotal applies the percentage tax and rounds to 2 decimal places,
// half away from zero. Rounding happens once, on the final figure.
func grossTotal(subTotal, ratePct decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	return subTotal.Mul(hundred.Add(ratePct)).Div(hundred).Round(2)
}
