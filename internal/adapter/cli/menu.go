package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/api-sage/personal-banking-ledger/internal/adapter/cli/models"
	"github.com/api-sage/personal-banking-ledger/internal/domain"
	"github.com/api-sage/personal-banking-ledger/internal/usecase/service_interfaces"
	"github.com/shopspring/decimal"
)

// session is the driver's view of who is logged in. The zero value is
// anonymous; the core holds no session state of its own.
type session struct {
	accountNumber string
}

func (s session) authenticated() bool {
	return s.accountNumber != ""
}

// Menu is the interactive text driver. It parses raw input, converts it to
// ledger operation arguments and renders results; amounts reach the core
// only as decimals, never as strings.
type Menu struct {
	ledger   service_interfaces.LedgerService
	currency string
	in       *bufio.Scanner
	out      io.Writer
}

func NewMenu(ledger service_interfaces.LedgerService, currency string, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		ledger:   ledger,
		currency: currency,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run loops until Exit is chosen or input ends.
func (m *Menu) Run(ctx context.Context) error {
	sess := session{}

	for {
		m.printf("\n--- Banking Information System ---\n")
		m.printf("1. Register\n2. Login\n3. Deposit\n4. Withdraw\n5. Transfer Funds\n6. View Account Statement\n7. Logout\n8. Exit\n")

		choice, ok := m.prompt("Select an option: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			m.register(ctx)
		case "2":
			sess = m.login(ctx)
		case "3":
			m.deposit(ctx, sess)
		case "4":
			m.withdraw(ctx, sess)
		case "5":
			m.transfer(ctx, sess)
		case "6":
			m.statement(ctx, sess)
		case "7":
			sess = session{}
			m.printf("Logged out successfully.\n")
		case "8":
			m.printf("Thank you for using the Banking Information System. Goodbye!\n")
			return nil
		default:
			m.printf("Invalid choice. Please try again.\n")
		}
	}
}

func (m *Menu) register(ctx context.Context) {
	name, ok := m.prompt("Enter your name: ")
	if !ok {
		return
	}
	address, ok := m.prompt("Enter your address: ")
	if !ok {
		return
	}
	contactInfo, ok := m.prompt("Enter your contact information: ")
	if !ok {
		return
	}
	password, ok := m.prompt("Enter a password: ")
	if !ok {
		return
	}
	initialDeposit, ok := m.promptAmount("Enter initial deposit amount: ")
	if !ok {
		return
	}

	resp, err := m.ledger.Register(ctx, models.RegisterRequest{
		Name:           name,
		Address:        address,
		ContactInfo:    contactInfo,
		Password:       password,
		InitialDeposit: initialDeposit,
	})
	if err != nil {
		m.renderError(err, resp.ErrorText())
		return
	}

	m.printf("User registered successfully. Your Account Number is: %s\n", resp.Data.AccountNumber)
}

func (m *Menu) login(ctx context.Context) session {
	accountNumber, ok := m.prompt("Enter your account number: ")
	if !ok {
		return session{}
	}
	password, ok := m.prompt("Enter your password: ")
	if !ok {
		return session{}
	}

	resp, err := m.ledger.Login(ctx, models.LoginRequest{
		AccountNumber: accountNumber,
		Password:      password,
	})
	if err != nil {
		m.renderError(err, resp.ErrorText())
		return session{}
	}

	m.printf("Login successful. Welcome, %s.\n", resp.Data.Name)
	return session{accountNumber: resp.Data.AccountNumber}
}

func (m *Menu) deposit(ctx context.Context, sess session) {
	if !m.requireLogin(sess) {
		return
	}

	amount, ok := m.promptAmount("Enter amount to deposit: ")
	if !ok {
		return
	}

	resp, err := m.ledger.Deposit(ctx, models.TransactionRequest{
		AccountNumber: sess.accountNumber,
		Amount:        amount,
	})
	if err != nil {
		m.renderError(err, resp.ErrorText())
		return
	}

	m.printf("Deposit of %s %s was successful. New Balance: %s\n", amount, m.currency, resp.Data.NewBalance)
}

func (m *Menu) withdraw(ctx context.Context, sess session) {
	if !m.requireLogin(sess) {
		return
	}

	amount, ok := m.promptAmount("Enter amount to withdraw: ")
	if !ok {
		return
	}

	resp, err := m.ledger.Withdraw(ctx, models.TransactionRequest{
		AccountNumber: sess.accountNumber,
		Amount:        amount,
	})
	if err != nil {
		m.renderError(err, resp.ErrorText())
		return
	}

	m.printf("Withdrawal of %s %s was successful. New Balance: %s\n", amount, m.currency, resp.Data.NewBalance)
}

func (m *Menu) transfer(ctx context.Context, sess session) {
	if !m.requireLogin(sess) {
		return
	}

	destination, ok := m.prompt("Enter recipient's account number: ")
	if !ok {
		return
	}
	amount, ok := m.promptAmount("Enter amount to transfer: ")
	if !ok {
		return
	}

	resp, err := m.ledger.Transfer(ctx, models.TransferRequest{
		SourceAccountNumber:      sess.accountNumber,
		DestinationAccountNumber: destination,
		Amount:                   amount,
	})
	if err != nil {
		m.renderError(err, resp.ErrorText())
		return
	}

	m.printf("Transfer of %s %s to %s was successful.\n", amount, m.currency, resp.Data.DestinationAccountNumber)
}

func (m *Menu) statement(ctx context.Context, sess session) {
	if !m.requireLogin(sess) {
		return
	}

	resp, err := m.ledger.GetStatement(ctx, sess.accountNumber)
	if err != nil {
		m.renderError(err, resp.ErrorText())
		return
	}

	st := resp.Data
	m.printf("Account Statement for %s:\n", st.AccountNumber)
	m.printf("Name: %s\n", st.Name)
	m.printf("Address: %s\n", st.Address)
	m.printf("Contact Information: %s\n", st.ContactInfo)
	m.printf("Balance: %s %s\n", st.Balance, m.currency)
	for _, entry := range st.History {
		m.printf("%s\n", entry)
	}
}

func (m *Menu) requireLogin(sess session) bool {
	if !sess.authenticated() {
		m.printf("Please login first.\n")
		return false
	}
	return true
}

func (m *Menu) renderError(err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		m.printf("Invalid amount.\n")
	case errors.Is(err, domain.ErrInsufficientFunds):
		m.printf("Insufficient funds.\n")
	case errors.Is(err, domain.ErrRecordNotFound):
		m.printf("Account not found.\n")
	case errors.Is(err, domain.ErrAuthenticationFailed):
		m.printf("Login failed. Invalid account number or password.\n")
	case errors.Is(err, domain.ErrSameAccount):
		m.printf("Source and destination accounts must differ.\n")
	default:
		m.printf("%s\n", fallback)
	}
}

func (m *Menu) prompt(label string) (string, bool) {
	m.printf("%s", label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) promptAmount(label string) (decimal.Decimal, bool) {
	raw, ok := m.prompt(label)
	if !ok {
		return decimal.Decimal{}, false
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		m.printf("Invalid amount.\n")
		return decimal.Decimal{}, false
	}

	return amount, true
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}
