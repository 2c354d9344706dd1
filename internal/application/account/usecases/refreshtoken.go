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

// RefreshTokenUseCase rotates a token pair from a valid refresh token.
type RefreshTokenUseCase struct {
	accountRepo account.Repository
	tokens      TokenService
	logger      logger.Interface
}

func NewRefreshTokenUseCase(
	accountRepo account.Repository,
	tokens TokenService,
	logger logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		accountRepo: accountRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

// Execute rotates the pair. The account is re-read so the new access token
// carries the current role rather than the one recorded at issue time.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, request dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	accountUUID, err := uc.tokens.VerifyRefresh(request.RefreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	acc, err := uc.accountRepo.GetByUUID(ctx, accountUUID)
	if err != nil {
		if stderrors.Is(err, account.ErrNotFound) {
			return nil, errors.NewUnauthorizedError("account no longer exists")
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	pair, err := uc.tokens.Generate(acc.UUID(), acc.Role())
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	uc.logger.Infow("token pair rotated", "id", acc.UUID())
	return &dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		Account:      dto.ToAccountResponse(acc),
	}, nil
}
