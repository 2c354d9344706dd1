package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gazette-press/gazette/internal/application/access"
	"github.com/gazette-press/gazette/internal/application/account/dto"
	"github.com/gazette-press/gazette/internal/application/notification"
	"github.com/gazette-press/gazette/internal/domain/account"
	"github.com/gazette-press/gazette/internal/domain/plan"
	"github.com/gazette-press/gazette/internal/shared/errors"
	"github.com/gazette-press/gazette/internal/shared/logger"
)

// CreateAccountUseCase handles admin-driven account creation for any role.
// A created reader still gets its Info plan in the same transaction.
type CreateAccountUseCase struct {
	accountRepo account.Repository
	planRepo    plan.Repository
	hasher      account.PasswordHasher
	txManager   TransactionManager
	notifier    NotificationEnqueuer
	logger      logger.Interface
}

func NewCreateAccountUseCase(
	accountRepo account.Repository,
	planRepo plan.Repository,
	hasher account.PasswordHasher,
	txManager TransactionManager,
	notifier NotificationEnqueuer,
	logger logger.Interface,
) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
		planRepo:    planRepo,
		hasher:      hasher,
		txManager:   txManager,
		notifier:    notifier,
		logger:      logger,
	}
}

// Execute creates a new account with the requested role.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, caller access.Caller, request dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if !caller.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can create accounts")
	}

	role, err := account.ParseRole(request.Role)
	if err != nil {
		return nil, errors.NewValidationError("invalid role", err.Error())
	}

	if err := account.ValidatePassword(request.Password); err != nil {
		return nil, errors.NewValidationError("invalid password", err.Error())
	}

	emailTaken, err := uc.accountRepo.ExistsByEmail(ctx, request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if emailTaken {
		return nil, errors.NewConflictError("an account with this email already exists")
	}

	usernameTaken, err := uc.accountRepo.ExistsByUsername(ctx, request.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing username: %w", err)
	}
	if usernameTaken {
		return nil, errors.NewConflictError("an account with this username already exists")
	}

	hash, err := uc.hasher.Hash(request.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	acc, err := account.NewAccount(request.Username, request.Email, hash, role)
	if err != nil {
		return nil, errors.NewValidationError("invalid account data", err.Error())
	}
	acc.SetUUID(uuid.NewString())

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.accountRepo.Create(txCtx, acc); err != nil {
			return fmt.Errorf("failed to save account: %w", err)
		}

		if role == account.RoleReader {
			readerPlan, err := plan.NewPlan(acc.ID())
			if err != nil {
				return fmt.Errorf("failed to create plan: %w", err)
			}
			readerPlan.SetUUID(uuid.NewString())
			if err := uc.planRepo.Create(txCtx, readerPlan); err != nil {
				return fmt.Errorf("failed to save plan: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create account", "email", request.Email, "error", err)
		return nil, err
	}

	if err := uc.notifier.EnqueueNotification(ctx, notification.Notice{
		Event:     notification.EventAccountWelcome,
		AccountID: acc.ID(),
	}); err != nil {
		uc.logger.Warnw("failed to enqueue welcome notification", "account_id", acc.ID(), "error", err)
	}

	response := dto.ToAccountResponse(acc)
	uc.logger.Infow("account created", "id", response.ID, "role", response.Role)
	return &response, nil
}
