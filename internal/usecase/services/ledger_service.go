package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/api-sage/personal-banking-ledger/internal/adapter/cli/models"
	"github.com/api-sage/personal-banking-ledger/internal/commons"
	"github.com/api-sage/personal-banking-ledger/internal/domain"
	"github.com/api-sage/personal-banking-ledger/internal/logger"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type LedgerService struct {
	accountRepo domain.AccountRepository
	bcryptCost  int
}

func NewLedgerService(accountRepo domain.AccountRepository, bcryptCost int) *LedgerService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}

	return &LedgerService{
		accountRepo: accountRepo,
		bcryptCost:  bcryptCost,
	}
}

func (s *LedgerService) Register(ctx context.Context, req models.RegisterRequest) (commons.Response[models.RegisterResponse], error) {
	logger.Info("ledger service register request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service register validation failed", err, nil)
		return commons.ErrorResponse[models.RegisterResponse]("validation failed", err.Error()), err
	}

	if req.InitialDeposit.IsNegative() {
		err := domain.ErrInvalidAmount
		logger.Error("ledger service register negative initial deposit", err, nil)
		return commons.ErrorResponse[models.RegisterResponse]("validation failed", "initialDeposit cannot be negative"), err
	}

	credentialHash, err := hashPassword(strings.TrimSpace(req.Password), s.bcryptCost)
	if err != nil {
		logger.Error("ledger service register hash password failed", err, nil)
		return commons.ErrorResponse[models.RegisterResponse]("failed to register", "Unable to register right now"), err
	}

	account, err := domain.NewAccount(
		generateAccountNumber(),
		strings.TrimSpace(req.Name),
		strings.TrimSpace(req.Address),
		strings.TrimSpace(req.ContactInfo),
		credentialHash,
		req.InitialDeposit,
	)
	if err != nil {
		logger.Error("ledger service register create account failed", err, nil)
		return commons.ErrorResponse[models.RegisterResponse]("validation failed", err.Error()), err
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		logger.Error("ledger service register repository failed", err, logger.Fields{
			"accountNumber": account.AccountNumber(),
		})
		return commons.ErrorResponse[models.RegisterResponse]("failed to register", "Unable to register right now"), err
	}

	response := models.RegisterResponse{
		AccountNumber: account.AccountNumber(),
		Name:          account.Name(),
	}

	logger.Info("ledger service register success", logger.Fields{
		"accountNumber": response.AccountNumber,
	})

	return commons.SuccessResponse("account registered successfully", response), nil
}

func (s *LedgerService) Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.LoginResponse], error) {
	logger.Info("ledger service login request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service login validation failed", err, nil)
		return commons.ErrorResponse[models.LoginResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByAccountNumber(ctx, strings.TrimSpace(req.AccountNumber))
	if err != nil {
		logger.Error("ledger service login lookup failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.LoginResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.LoginResponse]("failed to login", "Unable to login right now"), err
	}

	if !account.Authenticate(req.Password) {
		err := domain.ErrAuthenticationFailed
		logger.Error("ledger service login authentication failed", err, logger.Fields{
			"accountNumber": account.AccountNumber(),
		})
		return commons.ErrorResponse[models.LoginResponse]("Login failed", err.Error()), err
	}

	response := models.LoginResponse{
		AccountNumber: account.AccountNumber(),
		Name:          account.Name(),
		Balance:       account.Balance(),
	}

	logger.Info("ledger service login success", logger.Fields{
		"accountNumber": response.AccountNumber,
	})

	return commons.SuccessResponse("login successful", response), nil
}

func (s *LedgerService) Deposit(ctx context.Context, req models.TransactionRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("ledger service deposit request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	account, resp, err := resolveAccount[models.TransactionResponse](ctx, s.accountRepo, req.AccountNumber, req.Validate)
	if err != nil {
		return resp, err
	}

	newBalance, err := account.Deposit(req.Amount)
	if err != nil {
		logger.Error("ledger service deposit failed", err, logger.Fields{
			"accountNumber": account.AccountNumber(),
		})
		return commons.ErrorResponse[models.TransactionResponse]("failed to deposit", err.Error()), err
	}

	response := models.TransactionResponse{
		AccountNumber: account.AccountNumber(),
		Amount:        req.Amount,
		NewBalance:    newBalance,
	}

	logger.Info("ledger service deposit success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"newBalance":    response.NewBalance,
	})

	return commons.SuccessResponse("deposit successful", response), nil
}

func (s *LedgerService) Withdraw(ctx context.Context, req models.TransactionRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("ledger service withdraw request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	account, resp, err := resolveAccount[models.TransactionResponse](ctx, s.accountRepo, req.AccountNumber, req.Validate)
	if err != nil {
		return resp, err
	}

	newBalance, err := account.Withdraw(req.Amount)
	if err != nil {
		logger.Error("ledger service withdraw failed", err, logger.Fields{
			"accountNumber": account.AccountNumber(),
		})
		return commons.ErrorResponse[models.TransactionResponse]("failed to withdraw", err.Error()), err
	}

	response := models.TransactionResponse{
		AccountNumber: account.AccountNumber(),
		Amount:        req.Amount,
		NewBalance:    newBalance,
	}

	logger.Info("ledger service withdraw success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"newBalance":    response.NewBalance,
	})

	return commons.SuccessResponse("withdrawal successful", response), nil
}

func (s *LedgerService) Transfer(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error) {
	logger.Info("ledger service transfer request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service transfer validation failed", err, nil)
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	sourceAccountNumber := strings.TrimSpace(req.SourceAccountNumber)
	destinationAccountNumber := strings.TrimSpace(req.DestinationAccountNumber)
	if sourceAccountNumber == destinationAccountNumber {
		err := domain.ErrSameAccount
		logger.Error("ledger service transfer same account", err, nil)
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	source, err := s.accountRepo.GetByAccountNumber(ctx, sourceAccountNumber)
	if err != nil {
		logger.Error("ledger service transfer source lookup failed", err, logger.Fields{
			"accountNumber": sourceAccountNumber,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransferResponse]("Source account not found"), err
		}
		return commons.ErrorResponse[models.TransferResponse]("failed to transfer", "Unable to transfer right now"), err
	}

	destination, err := s.accountRepo.GetByAccountNumber(ctx, destinationAccountNumber)
	if err != nil {
		logger.Error("ledger service transfer destination lookup failed", err, logger.Fields{
			"accountNumber": destinationAccountNumber,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransferResponse]("Destination account not found"), err
		}
		return commons.ErrorResponse[models.TransferResponse]("failed to transfer", "Unable to transfer right now"), err
	}

	sourceBalance, destinationBalance, err := domain.TransferFunds(source, destination, req.Amount)
	if err != nil {
		logger.Error("ledger service transfer failed", err, logger.Fields{
			"sourceAccountNumber":      sourceAccountNumber,
			"destinationAccountNumber": destinationAccountNumber,
		})
		return commons.ErrorResponse[models.TransferResponse]("failed to transfer", err.Error()), err
	}

	response := models.TransferResponse{
		SourceAccountNumber:      source.AccountNumber(),
		DestinationAccountNumber: destination.AccountNumber(),
		Amount:                   req.Amount,
		SourceBalance:            sourceBalance,
		DestinationBalance:       destinationBalance,
	}

	logger.Info("ledger service transfer success", logger.Fields{
		"sourceAccountNumber":      response.SourceAccountNumber,
		"destinationAccountNumber": response.DestinationAccountNumber,
		"amount":                   response.Amount,
	})

	return commons.SuccessResponse("transfer successful", response), nil
}

func (s *LedgerService) GetStatement(ctx context.Context, accountNumber string) (commons.Response[models.StatementResponse], error) {
	logger.Info("ledger service get statement request", logger.Fields{
		"accountNumber": accountNumber,
	})

	if strings.TrimSpace(accountNumber) == "" {
		err := fmt.Errorf("accountNumber is required")
		return commons.ErrorResponse[models.StatementResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByAccountNumber(ctx, strings.TrimSpace(accountNumber))
	if err != nil {
		logger.Error("ledger service get statement lookup failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.StatementResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.StatementResponse]("failed to get statement", "Unable to fetch statement right now"), err
	}

	statement := account.Statement()
	response := models.StatementResponse{
		AccountNumber: statement.AccountNumber,
		Name:          statement.Name,
		Address:       statement.Address,
		ContactInfo:   statement.ContactInfo,
		Balance:       statement.Balance,
		History:       statement.History,
	}

	logger.Info("ledger service get statement success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"entries":       len(response.History),
	})

	return commons.SuccessResponse("statement retrieved successfully", response), nil
}

func (s *LedgerService) UpdateName(ctx context.Context, req models.UpdateNameRequest) (commons.Response[models.UpdateProfileResponse], error) {
	logger.Info("ledger service update name request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	account, resp, err := resolveAccount[models.UpdateProfileResponse](ctx, s.accountRepo, req.AccountNumber, req.Validate)
	if err != nil {
		return resp, err
	}

	account.SetName(strings.TrimSpace(req.Name))

	response := models.UpdateProfileResponse{AccountNumber: account.AccountNumber()}

	logger.Info("ledger service update name success", logger.Fields{
		"accountNumber": response.AccountNumber,
	})

	return commons.SuccessResponse("name updated successfully", response), nil
}

func (s *LedgerService) UpdateContactInfo(ctx context.Context, req models.UpdateContactInfoRequest) (commons.Response[models.UpdateProfileResponse], error) {
	logger.Info("ledger service update contact info request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	account, resp, err := resolveAccount[models.UpdateProfileResponse](ctx, s.accountRepo, req.AccountNumber, req.Validate)
	if err != nil {
		return resp, err
	}

	account.SetContactInfo(strings.TrimSpace(req.ContactInfo))

	response := models.UpdateProfileResponse{AccountNumber: account.AccountNumber()}

	logger.Info("ledger service update contact info success", logger.Fields{
		"accountNumber": response.AccountNumber,
	})

	return commons.SuccessResponse("contact info updated successfully", response), nil
}

// resolveAccount runs the request validation and the repository lookup shared
// by every single-account operation.
func resolveAccount[T any](ctx context.Context, repo domain.AccountRepository, accountNumber string, validate func() error) (*domain.Account, commons.Response[T], error) {
	if err := validate(); err != nil {
		return nil, commons.ErrorResponse[T]("validation failed", err.Error()), err
	}

	account, err := repo.GetByAccountNumber(ctx, strings.TrimSpace(accountNumber))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, commons.ErrorResponse[T]("Account not found"), err
		}
		return nil, commons.ErrorResponse[T]("failed to process request", "Unable to process request right now"), err
	}

	return account, commons.Response[T]{}, nil
}

func generateAccountNumber() string {
	return uuid.NewString()
}

func hashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hashed), nil
}
