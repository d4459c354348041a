package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	mem "tripmate/pkg/memcache"
	"tripmate/pkg/utils"
)

type AccountServiceInterface interface {
	Login(request request_models.LoginRequest, ctx context.Context) (*response_models.AccountLoginResponse, error)
	CreateAccount(request request_models.SignUpRequest, ctx context.Context) error
	Logout(tokenID string, expiresAt time.Time) error
	GetProfile(accountID string, ctx context.Context) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenIssuer
	revoked     mem.RevokedTokenStore
}

func NewAccountService(accountRepo repositories.AccountRepository, tokens *utils.TokenIssuer, revoked mem.RevokedTokenStore) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		revoked:     revoked,
	}
}

func (a *AccountService) Login(request request_models.LoginRequest, ctx context.Context) (*response_models.AccountLoginResponse, error) {

	startTime := time.Now()

	account, err := a.accountRepo.FindByEmail(ctx, strings.TrimSpace(request.Email))
	if err != nil {
		zap.L().Error("find account by email", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(account.ID, account.Role)
	if err != nil {
		zap.L().Error("sign token", zap.String("account_id", account.ID.String()), zap.Error(err))
		return nil, err
	}

	zap.L().Debug("login", zap.String("account_id", account.ID.String()), zap.Duration("elapsed", time.Since(startTime)))

	return &response_models.AccountLoginResponse{
		Token:     token,
		ExpiresAt: utils.FormatRFC3339KST(time.Now().Add(a.tokens.TTL())),
	}, nil
}

func (a *AccountService) CreateAccount(request request_models.SignUpRequest, ctx context.Context) error {

	email := strings.ToLower(strings.TrimSpace(request.Email))

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("find account by email", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return err
	}

	newAccount := &db_models.Account{
		Name:         strings.TrimSpace(request.DisplayName),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleUser,
	}

	if err := a.accountRepo.InsertTx(newAccount, ctx); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrEmailAlreadyExists
		}
		zap.L().Error("insert account", zap.Error(err))
		return utils.ErrDatabaseError
	}

	return nil
}

// Logout revokes the presented token until it would have expired anyway.
func (a *AccountService) Logout(tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return utils.ErrUnauthorized
	}
	a.revoked.Revoke(tokenID, expiresAt)
	return nil
}

func (a *AccountService) GetProfile(accountID string, ctx context.Context) (*response_models.AccountResponse, error) {
	if _, err := uuid.Parse(accountID); err != nil {
		return nil, utils.ErrUnauthorized
	}

	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		zap.L().Error("find account by id", zap.String("account_id", accountID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	return &response_models.AccountResponse{
		ID:    account.ID.String(),
		Name:  account.Name,
		Email: account.Email,
		Role:  account.Role,
	}, nil
}
