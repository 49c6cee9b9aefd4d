package repository

import "github.com/csaassociates/ca-admin-api/internal/domain/entity"

// LedgerRepository is the store port for per-customer ledger entries.
// Each customer owns exactly one entry, created alongside the customer.
type LedgerRepository interface {
	Create(l *entity.LedgerEntry) error
	GetByCustomerID(customerID string) (*entity.LedgerEntry, error)
	List() ([]*entity.LedgerEntry, error)
	Update(l *entity.LedgerEntry) error
	DeleteByCustomerID(customerID string) error
}
