package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionRequest covers deposits and withdrawals on one account.
// Amount sign and sufficiency are the domain's concern, not validated here.
type TransactionRequest struct {
	AccountNumber string          `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
}

func (r TransactionRequest) Validate() error {
	if strings.TrimSpace(r.AccountNumber) == "" {
		return errors.New("accountNumber is required")
	}
	return nil
}

type TransactionResponse struct {
	AccountNumber string          `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
	NewBalance    decimal.Decimal `json:"newBalance"`
}
