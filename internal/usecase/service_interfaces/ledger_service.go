package service_interfaces

import (
	"context"

	"github.com/api-sage/personal-banking-ledger/internal/adapter/cli/models"
	"github.com/api-sage/personal-banking-ledger/internal/commons"
)

type LedgerService interface {
	Register(ctx context.Context, req models.RegisterRequest) (commons.Response[models.RegisterResponse], error)
	Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.LoginResponse], error)
	Deposit(ctx context.Context, req models.TransactionRequest) (commons.Response[models.TransactionResponse], error)
	Withdraw(ctx context.Context, req models.TransactionRequest) (commons.Response[models.TransactionResponse], error)
	Transfer(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error)
	GetStatement(ctx context.Context, accountNumber string) (commons.Response[models.StatementResponse], error)
	UpdateName(ctx context.Context, req models.UpdateNameRequest) (commons.Response[models.UpdateProfileResponse], error)
	UpdateContactInfo(ctx context.Context, req models.UpdateContactInfoRequest) (commons.Response[models.UpdateProfileResponse], error)
}
