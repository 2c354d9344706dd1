package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/gazette-press/gazette/internal/application/access"
	"github.com/gazette-press/gazette/internal/domain/account"
	"github.com/gazette-press/gazette/internal/domain/plan"
	"github.com/gazette-press/gazette/internal/domain/vertical"
	"github.com/gazette-press/gazette/internal/shared/logger"
)

func adminCaller(id uint) access.Caller {
	return access.Caller{AccountID: id, Role: account.RoleAdmin}
}

func readerCaller(id uint) access.Caller {
	return access.Caller{AccountID: id, Role: account.RoleReader}
}

type mockPlanRepository struct {
	GetByUUIDFunc func(ctx context.Context, uuid string) (*plan.Plan, error)
	UpdateFunc    func(ctx context.Context, p *plan.Plan) error
	ListFunc      func(ctx context.Context, filter plan.ListFilter, offset, limit int) ([]*plan.Plan, int64, error)
}

func (m *mockPlanRepository) Create(ctx context.Context, p *plan.Plan) error { return nil }

func (m *mockPlanRepository) GetByID(ctx context.Context, id uint) (*plan.Plan, error) {
	return nil, plan.ErrNotFound
}

func (m *mockPlanRepository) GetByUUID(ctx context.Context, uuid string) (*plan.Plan, error) {
	if m.GetByUUIDFunc != nil {
		return m.GetByUUIDFunc(ctx, uuid)
	}
	return nil, plan.ErrNotFound
}

func (m *mockPlanRepository) GetByAccountID(ctx context.Context, accountID uint) (*plan.Plan, error) {
	return nil, plan.ErrNotFound
}

func (m *mockPlanRepository) Update(ctx context.Context, p *plan.Plan) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockPlanRepository) List(ctx context.Context, filter plan.ListFilter, offset, limit int) ([]*plan.Plan, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

type mockAccountRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*account.Account, error)
}

func (m *mockAccountRepository) Create(ctx context.Context, acc *account.Account) error { return nil }

func (m *mockAccountRepository) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	now := time.Now().UTC()
	return account.Reconstruct(id, fmt.Sprintf("owner-%d", id), "owner", "owner@example.com", "hash", account.RoleReader, now, now)
}

func (m *mockAccountRepository) GetByUUID(ctx context.Context, uuid string) (*account.Account, error) {
	return nil, account.ErrNotFound
}

func (m *mockAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	return nil, account.ErrNotFound
}

func (m *mockAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (m *mockAccountRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func (m *mockAccountRepository) Update(ctx context.Context, acc *account.Account) error { return nil }

func (m *mockAccountRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockAccountRepository) List(ctx context.Context, filter account.ListFilter, offset, limit int) ([]*account.Account, int64, error) {
	return nil, 0, nil
}

func (m *mockAccountRepository) ReaderEmails(ctx context.Context, verticals []vertical.Code) ([]string, error) {
	return nil, nil
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
