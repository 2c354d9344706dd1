package usecases

import (
	"context"

	"github.com/gazette-press/gazette/internal/application/notification"
	"github.com/gazette-press/gazette/internal/domain/account"
)

// TokenPair carries the issued token set back to the caller.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenService issues JWT token pairs and validates refresh tokens.
// VerifyRefresh returns the account UUID the refresh token was issued for.
type TokenService interface {
	Generate(accountUUID string, role account.Role) (*TokenPair, error)
	VerifyRefresh(refreshToken string) (string, error)
}

// NotificationEnqueuer queues a notification for asynchronous delivery.
type NotificationEnqueuer interface {
	EnqueueNotification(ctx context.Context, n notification.Notice) error
}

// TransactionManager runs a function within a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
