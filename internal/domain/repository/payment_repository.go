package repository

import "github.com/csaassociates/ca-admin-api/internal/domain/entity"

// PaymentRepository is the store port for Payment records.
// Payments are append-only: there is no update or delete.
type PaymentRepository interface {
	Create(p *entity.Payment) error
	ListByInvoice(invoiceID string) ([]*entity.Payment, error)
	ListByCustomer(customerID string) ([]*entity.Payment, error)
}
