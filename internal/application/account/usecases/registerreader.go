package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gazette-press/gazette/internal/application/account/dto"
	"github.com/gazette-press/gazette/internal/application/notification"
	"github.com/gazette-press/gazette/internal/domain/account"
	"github.com/gazette-press/gazette/internal/domain/plan"
	"github.com/gazette-press/gazette/internal/shared/errors"
	"github.com/gazette-press/gazette/internal/shared/logger"
)

// RegisterReaderUseCase handles public reader self-registration. The reader
// account and its Info plan are created in one transaction so a reader can
// never exist without a plan.
type RegisterReaderUseCase struct {
	accountRepo account.Repository
	planRepo    plan.Repository
	hasher      account.PasswordHasher
	txManager   TransactionManager
	notifier    NotificationEnqueuer
	logger      logger.Interface
}

func NewRegisterReaderUseCase(
	accountRepo account.Repository,
	planRepo plan.Repository,
	hasher account.PasswordHasher,
	txManager TransactionManager,
	notifier NotificationEnqueuer,
	logger logger.Interface,
) *RegisterReaderUseCase {
	return &RegisterReaderUseCase{
		accountRepo: accountRepo,
		planRepo:    planRepo,
		hasher:      hasher,
		txManager:   txManager,
		notifier:    notifier,
		logger:      logger,
	}
}

// Execute registers a new reader account.
func (uc *RegisterReaderUseCase) Execute(ctx context.Context, request dto.RegisterReaderRequest) (*dto.AccountResponse, error) {
	uc.logger.Infow("executing register reader use case", "email", request.Email)

	if err := uc.checkAvailability(ctx, request.Email, request.Username); err != nil {
		return nil, err
	}

	if err := account.ValidatePassword(request.Password); err != nil {
		return nil, errors.NewValidationError("invalid password", err.Error())
	}

	hash, err := uc.hasher.Hash(request.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	acc, err := account.NewAccount(request.Username, request.Email, hash, account.RoleReader)
	if err != nil {
		uc.logger.Warnw("invalid registration data", "error", err)
		return nil, errors.NewValidationError("invalid registration data", err.Error())
	}
	acc.SetUUID(uuid.NewString())

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.accountRepo.Create(txCtx, acc); err != nil {
			return fmt.Errorf("failed to save account: %w", err)
		}

		readerPlan, err := plan.NewPlan(acc.ID())
		if err != nil {
			return fmt.Errorf("failed to create plan: %w", err)
		}
		readerPlan.SetUUID(uuid.NewString())

		if err := uc.planRepo.Create(txCtx, readerPlan); err != nil {
			return fmt.Errorf("failed to save plan: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to register reader", "email", request.Email, "error", err)
		return nil, err
	}

	// Welcome email goes through the queue after the transaction commits.
	if err := uc.notifier.EnqueueNotification(ctx, notification.Notice{
		Event:     notification.EventAccountWelcome,
		AccountID: acc.ID(),
	}); err != nil {
		uc.logger.Warnw("failed to enqueue welcome notification", "account_id", acc.ID(), "error", err)
	}

	response := dto.ToAccountResponse(acc)
	uc.logger.Infow("reader registered", "id", response.ID, "email", response.Email)
	return &response, nil
}

func (uc *RegisterReaderUseCase) checkAvailability(ctx context.Context, email, username string) error {
	emailTaken, err := uc.accountRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check existing email: %w", err)
	}
	if emailTaken {
		return errors.NewConflictError("an account with this email already exists")
	}

	usernameTaken, err := uc.accountRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check existing username: %w", err)
	}
	if usernameTaken {
		return errors.NewConflictError("an account with this username already exists")
	}
	return nil
}
