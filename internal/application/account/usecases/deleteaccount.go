package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/gazette-press/gazette/internal/application/access"
	"github.com/gazette-press/gazette/internal/domain/account"
	"github.com/gazette-press/gazette/internal/shared/errors"
	"github.com/gazette-press/gazette/internal/shared/logger"
)

// DeleteAccountUseCase removes an account. The plan and owned articles go
// with it through the referential cascade.
type DeleteAccountUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewDeleteAccountUseCase(accountRepo account.Repository, logger logger.Interface) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{accountRepo: accountRepo, logger: logger}
}

// Execute deletes the account. Admin only, and admins cannot delete
// themselves so the system always keeps at least one admin reachable.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, caller access.Caller, accountUUID string) error {
	if !caller.IsAdmin() {
		return errors.NewForbiddenError("only admins can delete accounts")
	}

	acc, err := uc.accountRepo.GetByUUID(ctx, accountUUID)
	if err != nil {
		if stderrors.Is(err, account.ErrNotFound) {
			return errors.NewNotFoundError("account not found")
		}
		return fmt.Errorf("failed to load account: %w", err)
	}

	if acc.ID() == caller.AccountID {
		return errors.NewConflictError("you cannot delete your own account")
	}

	if err := uc.accountRepo.Delete(ctx, acc.ID()); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	uc.logger.Infow("account deleted", "id", acc.UUID(), "role", acc.Role().String())
	return nil
}
