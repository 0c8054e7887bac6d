package main

import (
	"context"
	"log"
	"os"

	"github.com/api-sage/personal-banking-ledger/internal/adapter/cli"
	"github.com/api-sage/personal-banking-ledger/internal/adapter/repository/memory"
	"github.com/api-sage/personal-banking-ledger/internal/config"
	"github.com/api-sage/personal-banking-ledger/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	accountRepo := memory.NewAccountRepository()
	ledger := services.NewLedgerService(accountRepo, cfg.BcryptCost)
	menu := cli.NewMenu(ledger, cfg.Currency, os.Stdin, os.Stdout)

	if err := menu.Run(context.Background()); err != nil {
		log.Fatalf("run menu: %v", err)
	}
}
