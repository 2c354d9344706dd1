package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gazette-press/gazette/internal/application/account/dto"
	"github.com/gazette-press/gazette/internal/application/notification"
	"github.com/gazette-press/gazette/internal/domain/account"
	"github.com/gazette-press/gazette/internal/domain/plan"
	"github.com/gazette-press/gazette/internal/shared/errors"
)

func validRegisterRequest() dto.RegisterReaderRequest {
	return dto.RegisterReaderRequest{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "secret-pass",
	}
}

func TestRegisterReader_Success(t *testing.T) {
	var createdAccount *account.Account
	var createdPlan *plan.Plan

	accountRepo := &mockAccountRepository{
		CreateFunc: func(ctx context.Context, acc *account.Account) error {
			require.NoError(t, acc.SetID(42))
			createdAccount = acc
			return nil
		},
	}
	planRepo := &mockPlanRepository{
		CreateFunc: func(ctx context.Context, p *plan.Plan) error {
			createdPlan = p
			return nil
		},
	}
	notifier := &mockNotifier{}

	uc := NewRegisterReaderUseCase(accountRepo, planRepo, &fakeHasher{}, &mockTxManager{}, notifier, &mockLogger{})
	resp, err := uc.Execute(context.Background(), validRegisterRequest())

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "jdoe", resp.Username)
	assert.Equal(t, account.RoleReader.String(), resp.Role)

	require.NotNil(t, createdAccount)
	assert.Equal(t, account.RoleReader, createdAccount.Role())
	assert.Equal(t, "hashed:secret-pass", createdAccount.PasswordHash())
	assert.NotEmpty(t, createdAccount.UUID())

	require.NotNil(t, createdPlan, "registration creates the default plan in the same transaction")
	assert.Equal(t, uint(42), createdPlan.AccountID())
	assert.Equal(t, plan.TierInfo, createdPlan.Tier())
	assert.Empty(t, createdPlan.Verticals())

	require.Len(t, notifier.Notices, 1)
	assert.Equal(t, notification.EventAccountWelcome, notifier.Notices[0].Event)
	assert.Equal(t, uint(42), notifier.Notices[0].AccountID)
}

func TestRegisterReader_EmailTaken(t *testing.T) {
	accountRepo := &mockAccountRepository{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
	}

	uc := NewRegisterReaderUseCase(accountRepo, &mockPlanRepository{}, &fakeHasher{}, &mockTxManager{}, &mockNotifier{}, &mockLogger{})
	resp, err := uc.Execute(context.Background(), validRegisterRequest())

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, errors.IsConflictError(err))
}

func TestRegisterReader_UsernameTaken(t *testing.T) {
	accountRepo := &mockAccountRepository{
		ExistsByUsernameFunc: func(ctx context.Context, username string) (bool, error) {
			return true, nil
		},
	}

	uc := NewRegisterReaderUseCase(accountRepo, &mockPlanRepository{}, &fakeHasher{}, &mockTxManager{}, &mockNotifier{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), validRegisterRequest())

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestRegisterReader_ShortPassword(t *testing.T) {
	uc := NewRegisterReaderUseCase(&mockAccountRepository{}, &mockPlanRepository{}, &fakeHasher{}, &mockTxManager{}, &mockNotifier{}, &mockLogger{})

	request := validRegisterRequest()
	request.Password = "short"
	_, err := uc.Execute(context.Background(), request)

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestRegisterReader_TransactionFailureSkipsNotification(t *testing.T) {
	notifier := &mockNotifier{}
	uc := NewRegisterReaderUseCase(&mockAccountRepository{}, &mockPlanRepository{}, &fakeHasher{},
		&mockTxManager{RunErr: assert.AnError}, notifier, &mockLogger{})

	_, err := uc.Execute(context.Background(), validRegisterRequest())

	require.Error(t, err)
	assert.Empty(t, notifier.Notices, "no welcome mail without a committed account")
}
