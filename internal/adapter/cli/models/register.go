package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type RegisterRequest struct {
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	ContactInfo    string          `json:"contactInfo"`
	Password       string          `json:"password"`
	InitialDeposit decimal.Decimal `json:"initialDeposit"`
}

func (r RegisterRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(r.Password) == "" {
		errs = append(errs, "password is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type RegisterResponse struct {
	AccountNumber string `json:"accountNumber"`
	Name          string `json:"name"`
}
