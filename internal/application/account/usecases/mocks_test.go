package usecases

import (
	"context"
	"fmt"

	"github.com/gazette-press/gazette/internal/application/access"
	"github.com/gazette-press/gazette/internal/application/notification"
	"github.com/gazette-press/gazette/internal/domain/account"
	"github.com/gazette-press/gazette/internal/domain/plan"
	"github.com/gazette-press/gazette/internal/domain/vertical"
	"github.com/gazette-press/gazette/internal/shared/logger"
)

func adminCaller(id uint) access.Caller {
	return access.Caller{AccountID: id, Role: account.RoleAdmin}
}

func editorCaller(id uint) access.Caller {
	return access.Caller{AccountID: id, Role: account.RoleEditor}
}

func readerCaller(id uint) access.Caller {
	return access.Caller{AccountID: id, Role: account.RoleReader}
}

type mockAccountRepository struct {
	CreateFunc           func(ctx context.Context, acc *account.Account) error
	GetByIDFunc          func(ctx context.Context, id uint) (*account.Account, error)
	GetByUUIDFunc        func(ctx context.Context, uuid string) (*account.Account, error)
	GetByEmailFunc       func(ctx context.Context, email string) (*account.Account, error)
	ExistsByEmailFunc    func(ctx context.Context, email string) (bool, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
	UpdateFunc           func(ctx context.Context, acc *account.Account) error
	DeleteFunc           func(ctx context.Context, id uint) error
	ListFunc             func(ctx context.Context, filter account.ListFilter, offset, limit int) ([]*account.Account, int64, error)
}

func (m *mockAccountRepository) Create(ctx context.Context, acc *account.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, acc)
	}
	return nil
}

func (m *mockAccountRepository) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, account.ErrNotFound
}

func (m *mockAccountRepository) GetByUUID(ctx context.Context, uuid string) (*account.Account, error) {
	if m.GetByUUIDFunc != nil {
		return m.GetByUUIDFunc(ctx, uuid)
	}
	return nil, account.ErrNotFound
}

func (m *mockAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, account.ErrNotFound
}

func (m *mockAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockAccountRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

func (m *mockAccountRepository) Update(ctx context.Context, acc *account.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, acc)
	}
	return nil
}

func (m *mockAccountRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockAccountRepository) List(ctx context.Context, filter account.ListFilter, offset, limit int) ([]*account.Account, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockAccountRepository) ReaderEmails(ctx context.Context, verticals []vertical.Code) ([]string, error) {
	return nil, nil
}

type mockPlanRepository struct {
	CreateFunc         func(ctx context.Context, p *plan.Plan) error
	GetByAccountIDFunc func(ctx context.Context, accountID uint) (*plan.Plan, error)
}

func (m *mockPlanRepository) Create(ctx context.Context, p *plan.Plan) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockPlanRepository) GetByID(ctx context.Context, id uint) (*plan.Plan, error) {
	return nil, plan.ErrNotFound
}

func (m *mockPlanRepository) GetByUUID(ctx context.Context, uuid string) (*plan.Plan, error) {
	return nil, plan.ErrNotFound
}

func (m *mockPlanRepository) GetByAccountID(ctx context.Context, accountID uint) (*plan.Plan, error) {
	if m.GetByAccountIDFunc != nil {
		return m.GetByAccountIDFunc(ctx, accountID)
	}
	return nil, plan.ErrNotFound
}

func (m *mockPlanRepository) Update(ctx context.Context, p *plan.Plan) error { return nil }

func (m *mockPlanRepository) List(ctx context.Context, filter plan.ListFilter, offset, limit int) ([]*plan.Plan, int64, error) {
	return nil, 0, nil
}

type fakeHasher struct {
	failHash bool
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.failHash {
		return "", fmt.Errorf("hash failure")
	}
	return "hashed:" + password, nil
}

func (f *fakeHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

// mockTxManager runs the function directly; transactional behavior itself is
// covered by the repository integration setup, not unit tests.
type mockTxManager struct {
	RunErr error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunErr != nil {
		return m.RunErr
	}
	return fn(ctx)
}

type mockNotifier struct {
	EnqueueFunc func(ctx context.Context, n notification.Notice) error
	Notices     []notification.Notice
}

func (m *mockNotifier) EnqueueNotification(ctx context.Context, n notification.Notice) error {
	if m.EnqueueFunc != nil {
		if err := m.EnqueueFunc(ctx, n); err != nil {
			return err
		}
	}
	m.Notices = append(m.Notices, n)
	return nil
}

type mockTokenService struct {
	GenerateFunc      func(accountUUID string, role account.Role) (*TokenPair, error)
	VerifyRefreshFunc func(refreshToken string) (string, error)
}

func (m *mockTokenService) Generate(accountUUID string, role account.Role) (*TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(accountUUID, role)
	}
	return &TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
}

func (m *mockTokenService) VerifyRefresh(refreshToken string) (string, error) {
	if m.VerifyRefreshFunc != nil {
		return m.VerifyRefreshFunc(refreshToken)
	}
	return "", fmt.Errorf("invalid refresh token")
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
