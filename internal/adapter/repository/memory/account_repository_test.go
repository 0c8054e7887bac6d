package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/api-sage/personal-banking-ledger/internal/adapter/repository/memory"
	"github.com/api-sage/personal-banking-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

func newAccount(t *testing.T, accountNumber string) *domain.Account {
	t.Helper()

	account, err := domain.NewAccount(accountNumber, "Holder", "", "", "hash", decimal.NewFromInt(10))
	if err != nil {
		t.Fatalf("new account: %v", err)
	}
	return account
}

func TestCreateAndGet(t *testing.T) {
	repo := memory.NewAccountRepository()
	account := newAccount(t, "acc-1")

	if err := repo.Create(context.Background(), account); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByAccountNumber(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != account {
		t.Fatal("repository must return the registered account, not a copy")
	}
}

func TestCreateDuplicateAccountNumber(t *testing.T) {
	repo := memory.NewAccountRepository()

	if err := repo.Create(context.Background(), newAccount(t, "acc-1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(context.Background(), newAccount(t, "acc-1")); err == nil {
		t.Fatal("expected error on duplicate account number")
	}

	// the first registration must still win
	got, err := repo.GetByAccountNumber(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.AccountNumber() != "acc-1" {
		t.Fatalf("accountNumber=%q", got.AccountNumber())
	}
}

func TestGetUnknownAccountNumber(t *testing.T) {
	repo := memory.NewAccountRepository()

	_, err := repo.GetByAccountNumber(context.Background(), "missing")
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
}
