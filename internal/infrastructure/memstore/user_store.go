package memstore

import (
	"strings"
	"sync"
	"time"

	"github.com/csaassociates/ca-admin-api/internal/domain"
	"github.com/csaassociates/ca-admin-api/internal/domain/entity"
)

// UserStore keeps console users in memory.
type UserStore struct {
	mu    sync.RWMutex
	items []entity.User
	index map[string]int
}

// NewUserStore builds an empty store.
func NewUserStore() *UserStore {
	return &UserStore{index: make(map[string]int)}
}

// Create appends the user. Fails with ErrDuplicate on id collision.
func (s *UserStore) Create(u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[u.ID]; ok {
		return domain.ErrDuplicate
	}
	s.index[u.ID] = len(s.items)
	s.items = append(s.items, *u)
	return nil
}

// GetByID returns a copy of the user or ErrNotFound.
func (s *UserStore) GetByID(id string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u := s.items[i]
	return &u, nil
}

// Update replaces the stored user.
func (s *UserStore) Update(u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[u.ID]
	if !ok {
		return domain.ErrNotFound
	}
	u.CreatedAt = s.items[i].CreatedAt
	u.UpdatedAt = time.Now()
	s.items[i] = *u
	return nil
}

// FindByEmail returns the user with the given email (case-insensitive)
// or ErrUserNotFound.
func (s *UserStore) FindByEmail(email string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if strings.EqualFold(s.items[i].Email, email) {
			u := s.items[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
