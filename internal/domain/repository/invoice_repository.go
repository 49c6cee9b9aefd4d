package repository

import "github.com/csaassociates/ca-admin-api/internal/domain/entity"

// InvoiceRepository is the store port for Invoice records.
type InvoiceRepository interface {
	Create(inv *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	List() ([]*entity.Invoice, error)
	ListByCustomer(customerID string) ([]*entity.Invoice, error)
	Update(inv *entity.Invoice) error
	Delete(id string, version int) error
}
