package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const defaultCurrency = "USD"

type Config struct {
	BcryptCost int
	Currency   string
}

func Load() (Config, error) {
	cost := bcrypt.DefaultCost
	if raw := strings.TrimSpace(os.Getenv("BANK_BCRYPT_COST")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse BANK_BCRYPT_COST: %w", err)
		}
		cost = parsed
	}
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}

	currency := strings.TrimSpace(os.Getenv("BANK_CURRENCY"))
	if currency == "" {
		currency = defaultCurrency
	}

	return Config{
		BcryptCost: cost,
		Currency:   strings.ToUpper(currency),
	}, nil
}
