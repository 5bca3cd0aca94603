// Package memory provides a mutex-guarded in-memory AccountRepository,
// used by tests and dependency-free runs.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/userhub/account-service/internal/core/domain"
)

type AccountRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Account
	byEmail map[string]string // email -> id
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		byID:    make(map[string]*domain.Account),
		byEmail: make(map[string]string),
	}
}

func cloneAccount(a *domain.Account) *domain.Account {
	clone := *a
	if a.LastFailAt != nil {
		ms := *a.LastFailAt
		clone.LastFailAt = &ms
	}
	return &clone
}

func (r *AccountRepository) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[account.Email]; exists {
		return nil, domain.ErrUserExists
	}

	stored := cloneAccount(account)
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	r.byID[stored.ID] = stored
	r.byEmail[stored.Email] = stored.ID
	return cloneAccount(stored), nil
}

func (r *AccountRepository) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneAccount(r.byID[id]), nil
}

func (r *AccountRepository) FindByID(_ context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneAccount(account), nil
}

func (r *AccountRepository) Update(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[account.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.byID[account.ID] = cloneAccount(account)
	return nil
}
