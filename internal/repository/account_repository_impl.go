package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/jnst/core-banking/internal/model"
)

// AccountRepositoryImpl implements AccountRepository with an in-memory
// map keyed by account number. The mutex guards the map itself, not the
// accounts: the domain model assumes sequential access to each account.
type AccountRepositoryImpl struct {
	mu       sync.RWMutex
	accounts map[string]*model.Account
}

// NewAccountRepositoryImpl creates a new in-memory AccountRepository.
func NewAccountRepositoryImpl() AccountRepository {
	return &AccountRepositoryImpl{
		accounts: make(map[string]*model.Account),
	}
}

// Save registers an account under its account number.
func (r *AccountRepositoryImpl) Save(_ context.Context, account *model.Account) error {
	if account == nil {
		return model.NewInvalidArgument("Account cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.AccountNumber()]; ok {
		return model.ErrAccountExists
	}

	r.accounts[account.AccountNumber()] = account

	return nil
}

// GetByNumber retrieves the live account for the given number.
func (r *AccountRepositoryImpl) GetByNumber(_ context.Context, accountNumber string) (*model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[accountNumber]
	if !ok {
		return nil, model.ErrAccountNotFound
	}

	return account, nil
}

// List returns all registered accounts ordered by account number.
func (r *AccountRepositoryImpl) List(_ context.Context) ([]*model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		out = append(out, account)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].AccountNumber() < out[j].AccountNumber()
	})

	return out, nil
}
