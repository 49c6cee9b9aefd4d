package repository

import "github.com/csaassociates/ca-admin-api/internal/domain/entity"

// ServiceRepository is the store port for the service catalogue.
type ServiceRepository interface {
	Create(s *entity.Service) error
	GetByID(id string) (*entity.Service, error)
	GetByName(name string) (*entity.Service, error)
	List() ([]*entity.Service, error)
	Update(s *entity.Service) error
	Delete(id string, version int) error
}
