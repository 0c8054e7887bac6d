package models

import (
	"errors"
	"strings"
)

type UpdateNameRequest struct {
	AccountNumber string `json:"accountNumber"`
	Name          string `json:"name"`
}

func (r UpdateNameRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountNumber) == "" {
		errs = append(errs, "accountNumber is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type UpdateContactInfoRequest struct {
	AccountNumber string `json:"accountNumber"`
	ContactInfo   string `json:"contactInfo"`
}

func (r UpdateContactInfoRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountNumber) == "" {
		errs = append(errs, "accountNumber is required")
	}
	if strings.TrimSpace(r.ContactInfo) == "" {
		errs = append(errs, "contactInfo is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type UpdateProfileResponse struct {
	AccountNumber string `json:"accountNumber"`
}
