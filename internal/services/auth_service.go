package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dinesh3456/essential-workers-booking/internal/models/db_models"
	"github.com/dinesh3456/essential-workers-booking/internal/models/request_models"
	"github.com/dinesh3456/essential-workers-booking/internal/models/response_models"
	"github.com/dinesh3456/essential-workers-booking/internal/repositories"
	"github.com/dinesh3456/essential-workers-booking/pkg/utils"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error)
	GetCurrentAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Account, error)
	ChangePassword(ctx context.Context, accountID uuid.UUID, req request_models.ChangePasswordRequest) error
}

type AuthService struct {
	accounts repositories.AccountRepository
	tokens   *utils.TokenManager
	logger   *zap.Logger
}

func NewAuthService(accounts repositories.AccountRepository, tokens *utils.TokenManager, logger *zap.Logger) AuthServiceInterface {
	return &AuthService{
		accounts: accounts,
		tokens:   tokens,
		logger:   logger,
	}
}

func (s *AuthService) Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.AuthResponse, error) {
	existing, err := s.accounts.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ConflictError("User with this email already exists")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &db_models.Account{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PhoneNumber:  req.PhoneNumber,
		Role:         db_models.RoleCustomer,
		IsActive:     true,
	}

	if err := s.accounts.Insert(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	token, err := s.tokens.CreateToken(account.ID, string(account.Role))
	if err != nil {
		return nil, err
	}

	s.logger.Info("account registered", zap.String("account_id", account.ID.String()))
	return &response_models.AuthResponse{Token: token, Account: account}, nil
}

func (s *AuthService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error) {
	account, err := s.accounts.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.UnauthorizedError("Invalid credentials")
	}
	if !account.IsActive {
		return nil, utils.UnauthorizedError("Account is deactivated")
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return nil, utils.UnauthorizedError("Invalid credentials")
	}

	now := time.Now()
	if err := s.accounts.UpdateLastLogin(ctx, account.ID, now); err != nil {
		s.logger.Warn("failed to stamp last login", zap.Error(err))
	}
	account.LastLoginAt = &now

	token, err := s.tokens.CreateToken(account.ID, string(account.Role))
	if err != nil {
		return nil, err
	}

	return &response_models.AuthResponse{Token: token, Account: account}, nil
}

func (s *AuthService) GetCurrentAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Account, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil || !account.IsActive {
		return nil, utils.UnauthorizedError("User not found")
	}
	return account, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, accountID uuid.UUID, req request_models.ChangePasswordRequest) error {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.UnauthorizedError("User not found")
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.CurrentPassword); err != nil {
		return utils.BadRequestError("Current password is incorrect")
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.accounts.UpdatePassword(ctx, accountID, hash); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
