package repository

import "github.com/csaassociates/ca-admin-api/internal/domain/entity"

// CustomerRepository is the store port for Customer records.
// List returns a defensive-copy snapshot in insertion order.
// Update compares the entity Version and fails with domain.ErrConflict on
// mismatch (0 skips the check); Delete takes the expected version the same way.
type CustomerRepository interface {
	Create(c *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByEmail(email string) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
	Update(c *entity.Customer) error
	Delete(id string, version int) error
}
