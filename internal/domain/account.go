package domain

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Account is a single customer's identity, credential, balance and
// transaction history. All balance mutations go through Deposit, Withdraw
// or TransferFunds; each mutation appends exactly one history record per
// affected account. The mutex serializes mutations so no caller can observe
// a balance read interleaved with another caller's write.
type Account struct {
	mu             sync.Mutex
	accountNumber  string
	name           string
	address        string
	contactInfo    string
	credentialHash string
	balance        decimal.Decimal
	history        []string
}

// NewAccount creates an account seeded with its initial deposit, which
// becomes the first history record. The credential hash is stored as
// produced by bcrypt; the plaintext credential never reaches this package.
func NewAccount(accountNumber, name, address, contactInfo, credentialHash string, initialDeposit decimal.Decimal) (*Account, error) {
	if initialDeposit.IsNegative() {
		return nil, ErrInvalidAmount
	}

	account := &Account{
		accountNumber:  accountNumber,
		name:           name,
		address:        address,
		contactInfo:    contactInfo,
		credentialHash: credentialHash,
		balance:        initialDeposit,
	}
	account.history = append(account.history, fmt.Sprintf("Initial Deposit: %s", initialDeposit))

	return account, nil
}

func (a *Account) AccountNumber() string {
	return a.accountNumber
}

func (a *Account) Name() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.name
}

func (a *Account) Address() string {
	return a.address
}

func (a *Account) ContactInfo() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.contactInfo
}

func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

func (a *Account) SetName(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.name = name
}

func (a *Account) SetContactInfo(contactInfo string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.contactInfo = contactInfo
}

// Deposit credits the account and returns the new balance.
func (a *Account) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Decimal{}, ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.applyCredit(amount)
	a.record(fmt.Sprintf("Deposit: %s, New Balance: %s", amount, a.balance))

	return a.balance, nil
}

// Withdraw debits the account and returns the new balance. The balance
// never goes negative; all validation happens before any mutation.
func (a *Account) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Decimal{}, ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if amount.GreaterThan(a.balance) {
		return decimal.Decimal{}, ErrInsufficientFunds
	}

	a.applyDebit(amount)
	a.record(fmt.Sprintf("Withdrawal: %s, New Balance: %s", amount, a.balance))

	return a.balance, nil
}

// Authenticate reports whether the candidate credential matches the one the
// account was registered with. Pure; no lockout or backoff.
func (a *Account) Authenticate(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.credentialHash), []byte(candidate)) == nil
}

// Statement is a read-only snapshot of an account's profile, balance and
// full transaction history in insertion order.
type Statement struct {
	AccountNumber string
	Name          string
	Address       string
	ContactInfo   string
	Balance       decimal.Decimal
	History       []string
}

// Statement returns a snapshot copy; the history slice is detached from the
// account's internal log.
func (a *Account) Statement() Statement {
	a.mu.Lock()
	defer a.mu.Unlock()

	history := make([]string, len(a.history))
	copy(history, a.history)

	return Statement{
		AccountNumber: a.accountNumber,
		Name:          a.name,
		Address:       a.address,
		ContactInfo:   a.contactInfo,
		Balance:       a.balance,
		History:       history,
	}
}

// TransferFunds debits src and credits dst as one atomic unit. Both account
// locks are taken in account-number order so concurrent transfers between
// the same pair cannot deadlock, and no reader of either account can observe
// the debit without the credit. On error neither balance nor history changes.
func TransferFunds(src, dst *Account, amount decimal.Decimal) (srcBalance, dstBalance decimal.Decimal, err error) {
	if src.accountNumber == dst.accountNumber {
		return decimal.Decimal{}, decimal.Decimal{}, ErrSameAccount
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, decimal.Decimal{}, ErrInvalidAmount
	}

	first, second := src, dst
	if dst.accountNumber < src.accountNumber {
		first, second = dst, src
	}

	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if amount.GreaterThan(src.balance) {
		return decimal.Decimal{}, decimal.Decimal{}, ErrInsufficientFunds
	}

	src.applyDebit(amount)
	dst.applyCredit(amount)
	src.record(fmt.Sprintf("Transfer to %s: %s, New Balance: %s", dst.accountNumber, amount, src.balance))
	dst.record(fmt.Sprintf("Transfer from %s: %s, New Balance: %s", src.accountNumber, amount, dst.balance))

	return src.balance, dst.balance, nil
}

// applyCredit and applyDebit assume the caller holds the account lock and
// has already validated the amount.
func (a *Account) applyCredit(amount decimal.Decimal) {
	a.balance = a.balance.Add(amount)
}

func (a *Account) applyDebit(amount decimal.Decimal) {
	a.balance = a.balance.Sub(amount)
}

func (a *Account) record(entry string) {
	a.history = append(a.history, entry)
}
