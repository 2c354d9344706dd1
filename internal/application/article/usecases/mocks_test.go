package usecases

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gazette-press/gazette/internal/application/access"
	"github.com/gazette-press/gazette/internal/application/notification"
	"github.com/gazette-press/gazette/internal/domain/account"
	"github.com/gazette-press/gazette/internal/domain/article"
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

type mockArticleRepository struct {
	CreateFunc       func(ctx context.Context, a *article.Article) error
	GetByIDFunc      func(ctx context.Context, id uint) (*article.Article, error)
	GetByUUIDFunc    func(ctx context.Context, uuid string) (*article.Article, error)
	UpdateFunc       func(ctx context.Context, a *article.Article) error
	UpdateStatusFunc func(ctx context.Context, id uint, status article.Status) error
	UpdateImageFunc  func(ctx context.Context, id uint, key string, status article.ImageStatus) error
	DeleteFunc       func(ctx context.Context, id uint) error
	ListFunc         func(ctx context.Context, filter article.ListFilter, offset, limit int) ([]*article.Article, int64, error)
	ListDueFunc      func(ctx context.Context, now time.Time) ([]*article.Article, error)
}

func (m *mockArticleRepository) Create(ctx context.Context, a *article.Article) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return a.SetID(1)
}

func (m *mockArticleRepository) GetByID(ctx context.Context, id uint) (*article.Article, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, article.ErrNotFound
}

func (m *mockArticleRepository) GetByUUID(ctx context.Context, uuid string) (*article.Article, error) {
	if m.GetByUUIDFunc != nil {
		return m.GetByUUIDFunc(ctx, uuid)
	}
	return nil, article.ErrNotFound
}

func (m *mockArticleRepository) Update(ctx context.Context, a *article.Article) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockArticleRepository) UpdateStatus(ctx context.Context, id uint, status article.Status) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockArticleRepository) UpdateImage(ctx context.Context, id uint, key string, status article.ImageStatus) error {
	if m.UpdateImageFunc != nil {
		return m.UpdateImageFunc(ctx, id, key, status)
	}
	return nil
}

func (m *mockArticleRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockArticleRepository) List(ctx context.Context, filter article.ListFilter, offset, limit int) ([]*article.Article, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockArticleRepository) ListDue(ctx context.Context, now time.Time) ([]*article.Article, error) {
	if m.ListDueFunc != nil {
		return m.ListDueFunc(ctx, now)
	}
	return nil, nil
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
	return account.Reconstruct(id, fmt.Sprintf("author-%d", id), "author", "author@example.com", "hash", account.RoleEditor, now, now)
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

type mockPlanRepository struct {
	GetByAccountIDFunc func(ctx context.Context, accountID uint) (*plan.Plan, error)
}

func (m *mockPlanRepository) Create(ctx context.Context, p *plan.Plan) error { return nil }

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

type mockTaskEnqueuer struct {
	ConvertErr  error
	Conversions []uint
	Notices     []notification.Notice
}

func (m *mockTaskEnqueuer) EnqueueConvertImage(ctx context.Context, articleID uint) error {
	if m.ConvertErr != nil {
		return m.ConvertErr
	}
	m.Conversions = append(m.Conversions, articleID)
	return nil
}

func (m *mockTaskEnqueuer) EnqueueNotification(ctx context.Context, n notification.Notice) error {
	m.Notices = append(m.Notices, n)
	return nil
}

// mockImageStore keeps assets in memory keyed by their storage key.
type mockImageStore struct {
	Objects map[string][]byte
	SaveErr error
	OpenErr error
	Deleted []string
}

func newMockImageStore() *mockImageStore {
	return &mockImageStore{Objects: map[string][]byte{}}
}

func (m *mockImageStore) Save(key string, r io.Reader) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.Objects[key] = data
	return nil
}

func (m *mockImageStore) Open(key string) (io.ReadCloser, error) {
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	data, ok := m.Objects[key]
	if !ok {
		return nil, fmt.Errorf("no object under key %q", key)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *mockImageStore) Delete(key string) error {
	delete(m.Objects, key)
	m.Deleted = append(m.Deleted, key)
	return nil
}

func (m *mockImageStore) URL(key string) string {
	return "http://assets.test/" + key
}

type mockConverter struct {
	ConvertErr error
}

func (m *mockConverter) Convert(r io.Reader) (io.Reader, error) {
	if m.ConvertErr != nil {
		return nil, m.ConvertErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(append([]byte("webp:"), data...)), nil
}

type mockRenderer struct {
	RenderErr error
}

func (m *mockRenderer) Render(content string) (string, error) {
	if m.RenderErr != nil {
		return "", m.RenderErr
	}
	return "<p>" + content + "</p>", nil
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
