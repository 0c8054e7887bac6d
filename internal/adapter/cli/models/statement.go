package models

import "github.com/shopspring/decimal"

type StatementResponse struct {
	AccountNumber string          `json:"accountNumber"`
	Name          string          `json:"name"`
	Address       string          `json:"address"`
	ContactInfo   string          `json:"contactInfo"`
	Balance       decimal.Decimal `json:"balance"`
	History       []string        `json:"history"`
}
