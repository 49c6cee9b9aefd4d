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

// ServiceUseCase CRUD over the service catalogue.
type ServiceUseCase struct {
	repo repository.ServiceRepository
}

// NewServiceUseCase builds the use case.
func NewServiceUseCase(repo repository.ServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

// Create validates and stores a new catalogue service (active by default).
func (uc *ServiceUseCase) Create(in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if !entity.ValidServiceCategory(in.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, in.Category)
	}
	if in.Price.Sign() < 0 {
		return nil, fmt.Errorf("%w: price %s", domain.ErrInvalidAmount, in.Price)
	}
	if existing, _ := uc.repo.GetByName(in.Name); existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	svc := &entity.Service{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Status:      entity.ServiceStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(svc); err != nil {
		return nil, err
	}
	return toServiceResponse(svc), nil
}

// Update patches an existing service.
func (uc *ServiceUseCase) Update(id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if !entity.ValidServiceCategory(in.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, in.Category)
	}
	if in.Price.Sign() < 0 {
		return nil, fmt.Errorf("%w: price %s", domain.ErrInvalidAmount, in.Price)
	}
	cur, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	cur.Name = in.Name
	cur.Description = in.Description
	cur.Category = in.Category
	cur.Price = in.Price
	if in.Version != 0 {
		cur.Version = in.Version
	}
	if err := uc.repo.Update(cur); err != nil {
		return nil, err
	}
	return toServiceResponse(cur), nil
}

// ToggleStatus flips a service between active and inactive. Inactive
// services stay listed but cannot be placed on new quotations.
func (uc *ServiceUseCase) ToggleStatus(id string) (*dto.ServiceResponse, error) {
	cur, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cur.Status == entity.ServiceStatusActive {
		cur.Status = entity.ServiceStatusInactive
	} else {
		cur.Status = entity.ServiceStatusActive
	}
	if err := uc.repo.Update(cur); err != nil {
		return nil, err
	}
	return toServiceResponse(cur), nil
}

// Delete removes a service from the catalogue.
func (uc *ServiceUseCase) Delete(id string, version int) error {
	return uc.repo.Delete(id, version)
}

// List returns services matching the query (name or category substring).
func (uc *ServiceUseCase) List(query string) ([]*dto.ServiceResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	list = search.Filter(list, query, func(s *entity.Service) []string {
		return []string{s.Name, s.Category}
	})
	out := make([]*dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toServiceResponse(s))
	}
	return out, nil
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Category:    s.Category,
		Price:       s.Price,
		Status:      s.Status,
		Version:     s.Version,
	}
}
