package repository

import "github.com/csaassociates/ca-admin-api/internal/domain/entity"

// UserRepository is the store port for console users.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	Update(u *entity.User) error
	FindByEmail(email string) (*entity.User, error)
}
