package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/csaassociates/ca-admin-api/internal/application/dto"
	"github.com/csaassociates/ca-admin-api/internal/domain"
	"github.com/csaassociates/ca-admin-api/internal/domain/entity"
	"github.com/csaassociates/ca-admin-api/internal/domain/repository"
	"github.com/csaassociates/ca-admin-api/pkg/search"
)

// CustomerUseCase CRUD over customers. Creating a customer also opens the
// ledger entry that carries the account balance; removing one is refused
// while quotations or invoices still reference it.
type CustomerUseCase struct {
	repo          repository.CustomerRepository
	ledgerRepo    repository.LedgerRepository
	quotationRepo repository.QuotationRepository
	invoiceRepo   repository.InvoiceRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(
	repo repository.CustomerRepository,
	ledgerRepo repository.LedgerRepository,
	quotationRepo repository.QuotationRepository,
	invoiceRepo repository.InvoiceRepository,
) *CustomerUseCase {
	return &CustomerUseCase{
		repo:          repo,
		ledgerRepo:    ledgerRepo,
		quotationRepo: quotationRepo,
		invoiceRepo:   invoiceRepo,
	}
}

// Create validates and stores a new customer plus its ledger entry.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.Email == "" || in.Phone == "" {
		return nil, fmt.Errorf("%w: name, email and phone are required", domain.ErrInvalidInput)
	}
	if in.Type != entity.CustomerTypeIndividual && in.Type != entity.CustomerTypeBusiness {
		return nil, fmt.Errorf("%w: type must be Individual or Business", domain.ErrInvalidInput)
	}
	if in.OpeningBalance.Sign() < 0 {
		return nil, fmt.Errorf("%w: opening balance %s", domain.ErrInvalidAmount, in.OpeningBalance)
	}
	if existing, _ := uc.repo.GetByEmail(in.Email); existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	customer := &entity.Customer{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		BusinessName: in.BusinessName,
		Type:         in.Type,
		PAN:          in.PAN,
		GSTIN:        in.GSTIN,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}

	entry := &entity.LedgerEntry{
		ID:              uuid.New().String(),
		CustomerID:      customer.ID,
		OpeningBalance:  in.OpeningBalance,
		LastTransaction: now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	entry.Recalculate()
	if err := uc.ledgerRepo.Create(entry); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Update patches an existing customer. Fails with ErrNotFound for unknown
// ids and ErrConflict on a stale version.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.Email == "" || in.Phone == "" {
		return nil, fmt.Errorf("%w: name, email and phone are required", domain.ErrInvalidInput)
	}
	cur, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing, _ := uc.repo.GetByEmail(in.Email); existing != nil && existing.ID != id {
		return nil, domain.ErrDuplicate
	}

	cur.Name = in.Name
	cur.Email = in.Email
	cur.Phone = in.Phone
	cur.BusinessName = in.BusinessName
	if in.Type != "" {
		if in.Type != entity.CustomerTypeIndividual && in.Type != entity.CustomerTypeBusiness {
			return nil, fmt.Errorf("%w: type must be Individual or Business", domain.ErrInvalidInput)
		}
		cur.Type = in.Type
	}
	cur.PAN = in.PAN
	cur.GSTIN = in.GSTIN
	if in.Version != 0 {
		cur.Version = in.Version
	}
	if err := uc.repo.Update(cur); err != nil {
		return nil, err
	}
	return toCustomerResponse(cur), nil
}

// Delete removes a customer and its ledger entry. Refused with ErrConflict
// while any quotation or invoice still references the customer, so the
// store never holds dangling references.
func (uc *CustomerUseCase) Delete(id string, version int) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		return err
	}
	if qs, _ := uc.quotationRepo.ListByCustomer(id); len(qs) > 0 {
		return fmt.Errorf("%w: customer has %d quotation(s)", domain.ErrConflict, len(qs))
	}
	if invs, _ := uc.invoiceRepo.ListByCustomer(id); len(invs) > 0 {
		return fmt.Errorf("%w: customer has %d invoice(s)", domain.ErrConflict, len(invs))
	}
	if err := uc.repo.Delete(id, version); err != nil {
		return err
	}
	// The ledger entry belongs to the customer; it goes with it.
	if err := uc.ledgerRepo.DeleteByCustomerID(id); err != nil && err != domain.ErrNotFound {
		return err
	}
	return nil
}

// GetByID returns one customer.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// List returns customers matching the query (name, email or phone
// substring, case-insensitive). Empty query returns everyone.
func (uc *CustomerUseCase) List(query string) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	list = search.Filter(list, query, func(c *entity.Customer) []string {
		return []string{c.Name, c.Email, c.Phone}
	})
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		BusinessName: c.BusinessName,
		Type:         c.Type,
		PAN:          c.PAN,
		GSTIN:        c.GSTIN,
		Version:      c.Version,
	}
}
