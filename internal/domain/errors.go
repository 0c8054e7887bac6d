package domain

import "errors"

var ErrInvalidAmount = errors.New("Amount must be greater than zero")
var ErrInsufficientFunds = errors.New("Insufficient funds")
var ErrRecordNotFound = errors.New("Account not found")
var ErrAuthenticationFailed = errors.New("Invalid account number or password")
var ErrSameAccount = errors.New("Source and destination accounts are the same")
