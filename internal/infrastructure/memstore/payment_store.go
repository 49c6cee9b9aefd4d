package memstore

import (
	"sync"

	"github.com/csaassociates/ca-admin-api/internal/domain"
	"github.com/csaassociates/ca-admin-api/internal/domain/entity"
)

// PaymentStore keeps payment records in memory. Payments are append-only.
type PaymentStore struct {
	mu    sync.RWMutex
	items []entity.Payment
	index map[string]struct{}
}

// NewPaymentStore builds an empty store.
func NewPaymentStore() *PaymentStore {
	return &PaymentStore{index: make(map[string]struct{})}
}

// Create appends the payment. Fails with ErrDuplicate on id collision.
func (s *PaymentStore) Create(p *entity.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[p.ID]; ok {
		return domain.ErrDuplicate
	}
	s.index[p.ID] = struct{}{}
	s.items = append(s.items, *p)
	return nil
}

// ListByInvoice returns the payments recorded against an invoice, in
// insertion order.
func (s *PaymentStore) ListByInvoice(invoiceID string) ([]*entity.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*entity.Payment
	for i := range s.items {
		if s.items[i].InvoiceID == invoiceID {
			p := s.items[i]
			out = append(out, &p)
		}
	}
	return out, nil
}

// ListByCustomer returns the customer's payments in insertion order.
func (s *PaymentStore) ListByCustomer(customerID string) ([]*entity.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*entity.Payment
	for i := range s.items {
		if s.items[i].CustomerID == customerID {
			p := s.items[i]
			out = append(out, &p)
		}
	}
	return out, nil
}
