package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/api-sage/personal-banking-ledger/internal/adapter/cli"
	"github.com/api-sage/personal-banking-ledger/internal/adapter/cli/models"
	"github.com/api-sage/personal-banking-ledger/internal/adapter/repository/memory"
	"github.com/api-sage/personal-banking-ledger/internal/usecase/services"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func registerAlice(t *testing.T, svc *services.LedgerService) string {
	t.Helper()

	resp, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:           "Alice",
		Address:        "1 Main St",
		ContactInfo:    "alice@example.com",
		Password:       "hunter2",
		InitialDeposit: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return resp.Data.AccountNumber
}

func runMenu(t *testing.T, svc *services.LedgerService, script string) string {
	t.Helper()

	var out bytes.Buffer
	menu := cli.NewMenu(svc, "USD", strings.NewReader(script), &out)
	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("run menu: %v", err)
	}
	return out.String()
}

func TestMenuLoginDepositStatement(t *testing.T) {
	svc := services.NewLedgerService(memory.NewAccountRepository(), bcrypt.MinCost)
	accountNumber := registerAlice(t, svc)

	script := strings.Join([]string{
		"2", accountNumber, "hunter2",
		"3", "40",
		"6",
		"8",
	}, "\n") + "\n"

	out := runMenu(t, svc, script)

	if !strings.Contains(out, "Login successful. Welcome, Alice.") {
		t.Fatalf("missing login confirmation in output:\n%s", out)
	}
	if !strings.Contains(out, "Deposit of 40 USD was successful. New Balance: 140") {
		t.Fatalf("missing deposit confirmation in output:\n%s", out)
	}
	if !strings.Contains(out, "Deposit: 40, New Balance: 140") {
		t.Fatalf("missing history entry in statement output:\n%s", out)
	}
	if !strings.Contains(out, "Goodbye!") {
		t.Fatalf("missing exit message in output:\n%s", out)
	}
}

func TestMenuRequiresLogin(t *testing.T) {
	svc := services.NewLedgerService(memory.NewAccountRepository(), bcrypt.MinCost)

	out := runMenu(t, svc, "3\n8\n")

	if !strings.Contains(out, "Please login first.") {
		t.Fatalf("missing login prompt in output:\n%s", out)
	}
}

func TestMenuLogoutClearsSession(t *testing.T) {
	svc := services.NewLedgerService(memory.NewAccountRepository(), bcrypt.MinCost)
	accountNumber := registerAlice(t, svc)

	script := strings.Join([]string{
		"2", accountNumber, "hunter2",
		"7",
		"6",
		"8",
	}, "\n") + "\n"

	out := runMenu(t, svc, script)

	if !strings.Contains(out, "Logged out successfully.") {
		t.Fatalf("missing logout confirmation in output:\n%s", out)
	}
	if !strings.Contains(out, "Please login first.") {
		t.Fatalf("statement after logout must require login:\n%s", out)
	}
}

func TestMenuRejectsUnparsableAmount(t *testing.T) {
	svc := services.NewLedgerService(memory.NewAccountRepository(), bcrypt.MinCost)
	accountNumber := registerAlice(t, svc)

	script := strings.Join([]string{
		"2", accountNumber, "hunter2",
		"3", "not-a-number",
		"8",
	}, "\n") + "\n"

	out := runMenu(t, svc, script)

	if !strings.Contains(out, "Invalid amount.") {
		t.Fatalf("missing invalid amount message in output:\n%s", out)
	}
}
