package memstore

import (
	"sync"
	"time"

	"github.com/csaassociates/ca-admin-api/internal/domain"
	"github.com/csaassociates/ca-admin-api/internal/domain/entity"
)

// QuotationStore keeps quotations in memory.
type QuotationStore struct {
	mu    sync.RWMutex
	items []entity.Quotation
	index map[string]int
}

// NewQuotationStore builds an empty store.
func NewQuotationStore() *QuotationStore {
	return &QuotationStore{index: make(map[string]int)}
}

// cloneQuotation copies the record including its service-name slice, so a
// snapshot cannot be mutated through the shared backing array.
func cloneQuotation(q entity.Quotation) entity.Quotation {
	q.Services = append([]string(nil), q.Services...)
	return q
}

// Create appends the quotation. Fails with ErrDuplicate on id collision.
func (s *QuotationStore) Create(q *entity.Quotation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[q.ID]; ok {
		return domain.ErrDuplicate
	}
	q.Version = 1
	s.index[q.ID] = len(s.items)
	s.items = append(s.items, cloneQuotation(*q))
	return nil
}

// GetByID returns a copy of the quotation or ErrNotFound.
func (s *QuotationStore) GetByID(id string) (*entity.Quotation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	q := cloneQuotation(s.items[i])
	return &q, nil
}

// List returns a snapshot of all quotations in insertion order.
func (s *QuotationStore) List() ([]*entity.Quotation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Quotation, 0, len(s.items))
	for i := range s.items {
		q := cloneQuotation(s.items[i])
		out = append(out, &q)
	}
	return out, nil
}

// ListByCustomer returns the customer's quotations in insertion order.
func (s *QuotationStore) ListByCustomer(customerID string) ([]*entity.Quotation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*entity.Quotation
	for i := range s.items {
		if s.items[i].CustomerID == customerID {
			q := cloneQuotation(s.items[i])
			out = append(out, &q)
		}
	}
	return out, nil
}

// Update replaces the stored record, bumping its version.
func (s *QuotationStore) Update(q *entity.Quotation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[q.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur := s.items[i]
	if q.Version != 0 && q.Version != cur.Version {
		return domain.ErrConflict
	}
	q.Version = cur.Version + 1
	q.CreatedAt = cur.CreatedAt
	q.UpdatedAt = time.Now()
	s.items[i] = cloneQuotation(*q)
	return nil
}

// Delete removes the quotation, checking the expected version (0 skips).
func (s *QuotationStore) Delete(id string, version int) error {
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
