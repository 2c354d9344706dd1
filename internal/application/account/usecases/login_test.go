package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gazette-press/gazette/internal/application/account/dto"
	"github.com/gazette-press/gazette/internal/domain/account"
	"github.com/gazette-press/gazette/internal/shared/errors"
)

func storedAccount(t *testing.T, role account.Role) *account.Account {
	t.Helper()
	now := time.Now().UTC()
	acc, err := account.Reconstruct(5, "acc-uuid", "jdoe", "jdoe@example.com", "hashed:secret-pass", role, now, now)
	require.NoError(t, err)
	return acc
}

func TestLogin_Success(t *testing.T) {
	accountRepo := &mockAccountRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
			assert.Equal(t, "jdoe@example.com", email)
			return storedAccount(t, account.RoleEditor), nil
		},
	}
	tokens := &mockTokenService{
		GenerateFunc: func(accountUUID string, role account.Role) (*TokenPair, error) {
			assert.Equal(t, "acc-uuid", accountUUID)
			assert.Equal(t, account.RoleEditor, role)
			return &TokenPair{AccessToken: "acc-token", RefreshToken: "ref-token", ExpiresIn: 900}, nil
		},
	}

	uc := NewLoginUseCase(accountRepo, &fakeHasher{}, tokens, &mockLogger{})
	resp, err := uc.Execute(context.Background(), dto.LoginRequest{Email: "jdoe@example.com", Password: "secret-pass"})

	require.NoError(t, err)
	assert.Equal(t, "acc-token", resp.AccessToken)
	assert.Equal(t, "ref-token", resp.RefreshToken)
	assert.Equal(t, int64(900), resp.ExpiresIn)
	assert.Equal(t, "acc-uuid", resp.Account.ID)
}

func TestLogin_UniformErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	unknownEmail := &mockAccountRepository{}
	wrongPassword := &mockAccountRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
			return storedAccount(t, account.RoleReader), nil
		},
	}

	tests := []struct {
		name string
		repo *mockAccountRepository
	}{
		{name: "unknown email", repo: unknownEmail},
		{name: "wrong password", repo: wrongPassword},
	}

	var messages []string
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewLoginUseCase(tc.repo, &fakeHasher{}, &mockTokenService{}, &mockLogger{})
			_, err := uc.Execute(context.Background(), dto.LoginRequest{Email: "jdoe@example.com", Password: "not-the-password"})

			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
			messages = append(messages, appErr.Message)
		})
	}

	// Both failures read identically so responses do not reveal which
	// accounts exist.
	require.Len(t, messages, 2)
	assert.Equal(t, messages[0], messages[1])
}
