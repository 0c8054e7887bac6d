package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type LoginRequest struct {
	AccountNumber string `json:"accountNumber"`
	Password      string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountNumber) == "" {
		errs = append(errs, "accountNumber is required")
	}
	if strings.TrimSpace(r.Password) == "" {
		errs = append(errs, "password is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type LoginResponse struct {
	AccountNumber string          `json:"accountNumber"`
	Name          string          `json:"name"`
	Balance       decimal.Decimal `json:"balance"`
}
