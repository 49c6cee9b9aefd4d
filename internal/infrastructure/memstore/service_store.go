package memstore

import (
	"strings"
	"sync"
	"time"

	"github.com/csaassociates/ca-admin-api/internal/domain"
	"github.com/csaassociates/ca-admin-api/internal/domain/entity"
)

// ServiceStore keeps the service catalogue in memory.
type ServiceStore struct {
	mu    sync.RWMutex
	items []entity.Service
	index map[string]int
}

// NewServiceStore builds an empty store.
func NewServiceStore() *ServiceStore {
	return &ServiceStore{index: make(map[string]int)}
}

// Create appends the service. Fails with ErrDuplicate on id collision.
func (s *ServiceStore) Create(svc *entity.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[svc.ID]; ok {
		return domain.ErrDuplicate
	}
	svc.Version = 1
	s.index[svc.ID] = len(s.items)
	s.items = append(s.items, *svc)
	return nil
}

// GetByID returns a copy of the service or ErrNotFound.
func (s *ServiceStore) GetByID(id string) (*entity.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	svc := s.items[i]
	return &svc, nil
}

// GetByName returns the first service with the given name
// (case-insensitive) or ErrNotFound. Quotation lines reference services
// by name, matching the console forms.
func (s *ServiceStore) GetByName(name string) (*entity.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if strings.EqualFold(s.items[i].Name, name) {
			svc := s.items[i]
			return &svc, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List returns a snapshot of the catalogue in insertion order.
func (s *ServiceStore) List() ([]*entity.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Service, 0, len(s.items))
	for i := range s.items {
		svc := s.items[i]
		out = append(out, &svc)
	}
	return out, nil
}

// Update replaces the stored record, bumping its version.
func (s *ServiceStore) Update(svc *entity.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[svc.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur := s.items[i]
	if svc.Version != 0 && svc.Version != cur.Version {
		return domain.ErrConflict
	}
	svc.Version = cur.Version + 1
	svc.CreatedAt = cur.CreatedAt
	svc.UpdatedAt = time.Now()
	s.items[i] = *svc
	return nil
}

// Delete removes the service, checking the expected version (0 skips).
func (s *ServiceStore) Delete(id string, version int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return domain.ErrNotFound
	}
	if version != 0 && version != s.items[i].Version {
		return domain.ErrConflict
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j].ID] = j
	}
	return nil
}
