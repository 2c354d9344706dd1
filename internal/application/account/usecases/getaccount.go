package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/gazette-press/gazette/internal/application/access"
	"github.com/gazette-press/gazette/internal/application/account/dto"
	"github.com/gazette-press/gazette/internal/domain/account"
	"github.com/gazette-press/gazette/internal/shared/errors"
	"github.com/gazette-press/gazette/internal/shared/logger"
)

// GetAccountUseCase returns a single account by UUID.
type GetAccountUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewGetAccountUseCase(accountRepo account.Repository, logger logger.Interface) *GetAccountUseCase {
	return &GetAccountUseCase{accountRepo: accountRepo, logger: logger}
}

// Execute loads the account if the caller may see it. Admins can read any
// account, everyone else only their own.
func (uc *GetAccountUseCase) Execute(ctx context.Context, caller access.Caller, accountUUID string) (*dto.AccountResponse, error) {
	acc, err := uc.accountRepo.GetByUUID(ctx, accountUUID)
	if err != nil {
		if stderrors.Is(err, account.ErrNotFound) {
			return nil, errors.NewNotFoundError("account not found")
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if !caller.CanManageAccount(acc.ID()) {
		return nil, errors.NewForbiddenError("you can only view your own account")
	}

	response := dto.ToAccountResponse(acc)
	return &response, nil
}
