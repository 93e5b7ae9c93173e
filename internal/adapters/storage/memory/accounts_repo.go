package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"people-directory/internal/domain/accounts"
	"people-directory/internal/ports/storage"
)

var errIDRequired = errors.New("id required")

// AccountsRepo indexa por email; el email es único.
type AccountsRepo struct {
	mu      sync.RWMutex
	byEmail map[string]accounts.Account
	ids     map[string]struct{}
}

func NewAccountsRepo() *AccountsRepo {
	return &AccountsRepo{
		byEmail: make(map[string]accounts.Account),
		ids:     make(map[string]struct{}),
	}
}

func (r *AccountsRepo) AddAccount(ctx context.Context, a accounts.Account) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return "", storage.Failure("memory.AddAccount", errIDRequired)
	}
	if _, exists := r.byEmail[a.Email]; exists {
		return "", storage.Duplicate("memory.AddAccount", errors.New("email already exists"))
	}
	if _, exists := r.ids[a.ID]; exists {
		return "", storage.Duplicate("memory.AddAccount", errors.New("id already exists"))
	}

	r.byEmail[a.Email] = a
	r.ids[a.ID] = struct{}{}
	return a.ID, nil
}

func (r *AccountsRepo) GetAccount(ctx context.Context, email string) (accounts.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byEmail[email]
	if !ok {
		return accounts.Account{}, storage.NotFound("memory.GetAccount")
	}
	return a, nil
}

var _ accounts.Storer = (*AccountsRepo)(nil)
