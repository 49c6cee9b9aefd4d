package repository

import "github.com/csaassociates/ca-admin-api/internal/domain/entity"

// QuotationRepository is the store port for Quotation records.
type QuotationRepository interface {
	Create(q *entity.Quotation) error
	GetByID(id string) (*entity.Quotation, error)
	List() ([]*entity.Quotation, error)
	ListByCustomer(customerID string) ([]*entity.Quotation, error)
	Update(q *entity.Quotation) error
	Delete(id string, version int) error
}
