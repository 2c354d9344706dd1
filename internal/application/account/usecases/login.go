package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/gazette-press/gazette/internal/application/account/dto"
	"github.com/gazette-press/gazette/internal/domain/account"
	"github.com/gazette-press/gazette/internal/shared/errors"
	"github.com/gazette-press/gazette/internal/shared/logger"
)

// LoginUseCase authenticates an account and issues a token pair.
type LoginUseCase struct {
	accountRepo account.Repository
	hasher      account.PasswordHasher
	tokens      TokenService
	logger      logger.Interface
}

func NewLoginUseCase(
	accountRepo account.Repository,
	hasher account.PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		accountRepo: accountRepo,
		hasher:      hasher,
		tokens:      tokens,
		logger:      logger,
	}
}

// Execute verifies the credentials and returns fresh tokens. Wrong email and
// wrong password produce the same error so the response does not reveal which
// accounts exist.
func (uc *LoginUseCase) Execute(ctx context.Context, request dto.LoginRequest) (*dto.TokenResponse, error) {
	acc, err := uc.accountRepo.GetByEmail(ctx, request.Email)
	if err != nil {
		if stderrors.Is(err, account.ErrNotFound) {
			return nil, errors.NewUnauthorizedError("invalid email or password")
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if err := acc.VerifyPassword(request.Password, uc.hasher); err != nil {
		uc.logger.Warnw("failed login attempt", "email", request.Email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	pair, err := uc.tokens.Generate(acc.UUID(), acc.Role())
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	uc.logger.Infow("account logged in", "id", acc.UUID(), "role", acc.Role().String())
	return &dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		Account:      dto.ToAccountResponse(acc),
	}, nil
}
