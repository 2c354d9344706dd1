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

// UpdateAccountUseCase applies partial changes to an account. Accounts can
// edit themselves; only admins can edit others or change roles.
type UpdateAccountUseCase struct {
	accountRepo account.Repository
	hasher      account.PasswordHasher
	logger      logger.Interface
}

func NewUpdateAccountUseCase(
	accountRepo account.Repository,
	hasher account.PasswordHasher,
	logger logger.Interface,
) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		accountRepo: accountRepo,
		hasher:      hasher,
		logger:      logger,
	}
}

// Execute applies the non-nil fields of the request.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, caller access.Caller, accountUUID string, request dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	acc, err := uc.accountRepo.GetByUUID(ctx, accountUUID)
	if err != nil {
		if stderrors.Is(err, account.ErrNotFound) {
			return nil, errors.NewNotFoundError("account not found")
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if !caller.CanManageAccount(acc.ID()) {
		return nil, errors.NewForbiddenError("you can only update your own account")
	}

	if request.Username != nil && *request.Username != acc.Username() {
		taken, err := uc.accountRepo.ExistsByUsername(ctx, *request.Username)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing username: %w", err)
		}
		if taken {
			return nil, errors.NewConflictError("an account with this username already exists")
		}
		if err := acc.Rename(*request.Username); err != nil {
			return nil, errors.NewValidationError("invalid username", err.Error())
		}
	}

	if request.Email != nil && *request.Email != acc.Email() {
		taken, err := uc.accountRepo.ExistsByEmail(ctx, *request.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing email: %w", err)
		}
		if taken {
			return nil, errors.NewConflictError("an account with this email already exists")
		}
		if err := acc.ChangeEmail(*request.Email); err != nil {
			return nil, errors.NewValidationError("invalid email", err.Error())
		}
	}

	if request.Password != nil {
		if err := acc.ChangePassword(*request.Password, uc.hasher); err != nil {
			return nil, errors.NewValidationError("invalid password", err.Error())
		}
	}

	if request.Role != nil {
		if !caller.IsAdmin() {
			return nil, errors.NewForbiddenError("only admins can change roles")
		}
		role, err := account.ParseRole(*request.Role)
		if err != nil {
			return nil, errors.NewValidationError("invalid role", err.Error())
		}
		if err := acc.ChangeRole(role); err != nil {
			return nil, errors.NewValidationError("invalid role change", err.Error())
		}
	}

	if err := uc.accountRepo.Update(ctx, acc); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	uc.logger.Infow("account updated", "id", acc.UUID())
	response := dto.ToAccountResponse(acc)
	return &response, nil
}
