// Package memstore implements the repository ports against in-memory
// collections. Records are stored by value and copied on every read and
// write, so callers never share mutable state with the store. Iteration
// order is insertion order. Updates and deletes are guarded by a per-record
// version counter (optimistic concurrency); a zero expected version skips
// the check.
package memstore

import (
	"strings"
	"sync"
	"time"

	"github.com/csaassociates/ca-admin-api/internal/domain"
	"github.com/csaassociates/ca-admin-api/internal/domain/entity"
)

// CustomerStore keeps customers in memory.
type CustomerStore struct {
	mu    sync.RWMutex
	items []entity.Customer
	index map[string]int
}

// NewCustomerStore builds an empty store.
func NewCustomerStore() *CustomerStore {
	return &CustomerStore{index: make(map[string]int)}
}

// Create appends the customer. Fails with ErrDuplicate on id collision.
func (s *CustomerStore) Create(c *entity.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[c.ID]; ok {
		return domain.ErrDuplicate
	}
	c.Version = 1
	s.index[c.ID] = len(s.items)
	s.items = append(s.items, *c)
	return nil
}

// GetByID returns a copy of the customer or ErrNotFound.
func (s *CustomerStore) GetByID(id string) (*entity.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := s.items[i]
	return &c, nil
}

// GetByEmail returns the first customer with the given email
// (case-insensitive) or ErrNotFound.
func (s *CustomerStore) GetByEmail(email string) (*entity.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if strings.EqualFold(s.items[i].Email, email) {
			c := s.items[i]
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List returns a snapshot of all customers in insertion order.
func (s *CustomerStore) List() ([]*entity.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Customer, 0, len(s.items))
	for i := range s.items {
		c := s.items[i]
		out = append(out, &c)
	}
	return out, nil
}

// Update replaces the stored record, bumping its version. The incoming
// Version must match the stored one (0 skips the check).
func (s *CustomerStore) Update(c *entity.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[c.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur := s.items[i]
	if c.Version != 0 && c.Version != cur.Version {
		return domain.ErrConflict
	}
	c.Version = cur.Version + 1
	c.CreatedAt = cur.CreatedAt
	c.UpdatedAt = time.Now()
	s.items[i] = *c
	return nil
}

// Delete removes the customer, checking the expected version (0 skips).
func (s *CustomerStore) Delete(id string, version int) error {
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
