package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/api-sage/personal-banking-ledger/internal/domain"
)

// AccountRepository keeps the account-number to account mapping in memory.
// Read-mostly: writes happen only on registration, so lookups take the read
// lock. A registered account number is never remapped to another account.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]*domain.Account)}
}

func (r *AccountRepository) Create(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	accountNumber := account.AccountNumber()
	if _, exists := r.accounts[accountNumber]; exists {
		return fmt.Errorf("account number %s is already registered", accountNumber)
	}

	r.accounts[accountNumber] = account
	return nil
}

func (r *AccountRepository) GetByAccountNumber(_ context.Context, accountNumber string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[accountNumber]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return account, nil
}
