package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type TransferRequest struct {
	SourceAccountNumber      string          `json:"sourceAccountNumber"`
	DestinationAccountNumber string          `json:"destinationAccountNumber"`
	Amount                   decimal.Decimal `json:"amount"`
}

func (r TransferRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.SourceAccountNumber) == "" {
		errs = append(errs, "sourceAccountNumber is required")
	}
	if strings.TrimSpace(r.DestinationAccountNumber) == "" {
		errs = append(errs, "destinationAccountNumber is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type TransferResponse struct {
	SourceAccountNumber      string          `json:"sourceAccountNumber"`
	DestinationAccountNumber string          `json:"destinationAccountNumber"`
	Amount                   decimal.Decimal `json:"amount"`
	SourceBalance            decimal.Decimal `json:"sourceBalance"`
	DestinationBalance       decimal.Decimal `json:"destinationBalance"`
}
