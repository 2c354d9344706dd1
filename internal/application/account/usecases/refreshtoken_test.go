package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gazette-press/gazette/internal/application/account/dto"
	"github.com/gazette-press/gazette/internal/domain/account"
	"github.com/gazette-press/gazette/internal/shared/errors"
)

func TestRefreshToken_RotationPicksUpRoleChange(t *testing.T) {
	// The stored account was promoted to editor after the refresh token
	// was issued; the rotated pair must carry the new role.
	accountRepo := &mockAccountRepository{
		GetByUUIDFunc: func(ctx context.Context, uuid string) (*account.Account, error) {
			assert.Equal(t, "acc-uuid", uuid)
			return storedAccount(t, account.RoleEditor), nil
		},
	}
	tokens := &mockTokenService{
		VerifyRefreshFunc: func(refreshToken string) (string, error) {
			assert.Equal(t, "old-refresh", refreshToken)
			return "acc-uuid", nil
		},
		GenerateFunc: func(accountUUID string, role account.Role) (*TokenPair, error) {
			assert.Equal(t, account.RoleEditor, role)
			return &TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresIn: 900}, nil
		},
	}

	uc := NewRefreshTokenUseCase(accountRepo, tokens, &mockLogger{})
	resp, err := uc.Execute(context.Background(), dto.RefreshTokenRequest{RefreshToken: "old-refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", resp.AccessToken)
	assert.Equal(t, "new-refresh", resp.RefreshToken)
}

func TestRefreshToken_InvalidToken(t *testing.T) {
	uc := NewRefreshTokenUseCase(&mockAccountRepository{}, &mockTokenService{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), dto.RefreshTokenRequest{RefreshToken: "garbage"})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestRefreshToken_DeletedAccount(t *testing.T) {
	tokens := &mockTokenService{
		VerifyRefreshFunc: func(refreshToken string) (string, error) {
			return "acc-uuid", nil
		},
	}

	uc := NewRefreshTokenUseCase(&mockAccountRepository{}, tokens, &mockLogger{})
	_, err := uc.Execute(context.Background(), dto.RefreshTokenRequest{RefreshToken: "valid-but-orphaned"})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	assert.Contains(t, appErr.Message, "no longer exists")
}

func TestDeleteAccount_AdminOnly(t *testing.T) {
	uc := NewDeleteAccountUseCase(&mockAccountRepository{}, &mockLogger{})

	err := uc.Execute(context.Background(), editorCaller(5), "acc-uuid")

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestDeleteAccount_SelfDeletionRejected(t *testing.T) {
	accountRepo := &mockAccountRepository{
		GetByUUIDFunc: func(ctx context.Context, uuid string) (*account.Account, error) {
			acc := storedAccount(t, account.RoleAdmin)
			return acc, nil
		},
	}
	uc := NewDeleteAccountUseCase(accountRepo, &mockLogger{})

	// storedAccount carries ID 5; the caller is the same admin.
	err := uc.Execute(context.Background(), adminCaller(5), "acc-uuid")

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestDeleteAccount_Success(t *testing.T) {
	var deletedID uint
	accountRepo := &mockAccountRepository{
		GetByUUIDFunc: func(ctx context.Context, uuid string) (*account.Account, error) {
			return storedAccount(t, account.RoleReader), nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deletedID = id
			return nil
		},
	}
	uc := NewDeleteAccountUseCase(accountRepo, &mockLogger{})

	err := uc.Execute(context.Background(), adminCaller(1), "acc-uuid")

	require.NoError(t, err)
	assert.Equal(t, uint(5), deletedID)
}
