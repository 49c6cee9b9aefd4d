package memstore

import (
	"sync"
	"time"

	"github.com/csaassociates/ca-admin-api/internal/domain"
	"github.com/csaassociates/ca-admin-api/internal/domain/entity"
)

// LedgerStore keeps per-customer ledger entries in memory, keyed by
// customer id (one entry per customer).
type LedgerStore struct {
	mu    sync.RWMutex
	items []entity.LedgerEntry
	index map[string]int // customer id -> position
}

// NewLedgerStore builds an empty store.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{index: make(map[string]int)}
}

// Create appends the entry. Fails with ErrDuplicate when the customer
// already has a ledger entry.
func (s *LedgerStore) Create(l *entity.LedgerEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[l.CustomerID]; ok {
		return domain.ErrDuplicate
	}
	l.Version = 1
	s.index[l.CustomerID] = len(s.items)
	s.items = append(s.items, *l)
	return nil
}

// GetByCustomerID returns a copy of the customer's entry or ErrNotFound.
func (s *LedgerStore) GetByCustomerID(customerID string) (*entity.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[customerID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	l := s.items[i]
	return &l, nil
}

// List returns a snapshot of all entries in insertion order.
func (s *LedgerStore) List() ([]*entity.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.LedgerEntry, 0, len(s.items))
	for i := range s.items {
		l := s.items[i]
		out = append(out, &l)
	}
	return out, nil
}

// Update replaces the stored entry, bumping its version.
func (s *LedgerStore) Update(l *entity.LedgerEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[l.CustomerID]
	if !ok {
		return domain.ErrNotFound
	}
	cur := s.items[i]
	if l.Version != 0 && l.Version != cur.Version {
		return domain.ErrConflict
	}
	l.Version = cur.Version + 1
	l.CreatedAt = cur.CreatedAt
	l.UpdatedAt = time.Now()
	s.items[i] = *l
	return nil
}

// DeleteByCustomerID removes the customer's entry. Used only when the
// customer itself is removed.
func (s *LedgerStore) DeleteByCustomerID(customerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[customerID]
	if !ok {
		return domain.ErrNotFound
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, customerID)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j].CustomerID] = j
	}
	return nil
}
