package memstore

import (
	"sync"
	"time"

	"github.com/csaassociates/ca-admin-api/internal/domain"
	"github.com/csaassociates/ca-admin-api/internal/domain/entity"
)

// InvoiceStore keeps invoices in memory.
type InvoiceStore struct {
	mu    sync.RWMutex
	items []entity.Invoice
	index map[string]int
}

// NewInvoiceStore builds an empty store.
func NewInvoiceStore() *InvoiceStore {
	return &InvoiceStore{index: make(map[string]int)}
}

// Create appends the invoice. Fails with ErrDuplicate on id collision.
func (s *InvoiceStore) Create(inv *entity.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[inv.ID]; ok {
		return domain.ErrDuplicate
	}
	inv.Version = 1
	s.index[inv.ID] = len(s.items)
	s.items = append(s.items, *inv)
	return nil
}

// GetByID returns a copy of the invoice or ErrNotFound.
func (s *InvoiceStore) GetByID(id string) (*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	inv := s.items[i]
	return &inv, nil
}

// List returns a snapshot of all invoices in insertion order.
func (s *InvoiceStore) List() ([]*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Invoice, 0, len(s.items))
	for i := range s.items {
		inv := s.items[i]
		out = append(out, &inv)
	}
	return out, nil
}

// ListByCustomer returns the customer's invoices in insertion order.
func (s *InvoiceStore) ListByCustomer(customerID string) ([]*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*entity.Invoice
	for i := range s.items {
		if s.items[i].CustomerID == customerID {
			inv := s.items[i]
			out = append(out, &inv)
		}
	}
	return out, nil
}

// Update replaces the stored record, bumping its version.
func (s *InvoiceStore) Update(inv *entity.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[inv.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur := s.items[i]
	if inv.Version != 0 && inv.Version != cur.Version {
		return domain.ErrConflict
	}
	inv.Version = cur.Version + 1
	inv.CreatedAt = cur.CreatedAt
	inv.UpdatedAt = time.Now()
	s.items[i] = *inv
	return nil
}

// Delete removes the invoice, checking the expected version (0 skips).
func (s *InvoiceStore) Delete(id string, version int) error {
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
