package notification

import (
	"context"
	"time"

	"github.com/gazette-press/gazette/internal/domain/account"
	"github.com/gazette-press/gazette/internal/domain/article"
	"github.com/gazette-press/gazette/internal/domain/vertical"
	"github.com/gazette-press/gazette/internal/shared/logger"
)

type mockAccountRepository struct {
	GetByIDFunc      func(ctx context.Context, id uint) (*account.Account, error)
	ReaderEmailsFunc func(ctx context.Context, verticals []vertical.Code) ([]string, error)
}

func (m *mockAccountRepository) Create(ctx context.Context, acc *account.Account) error { return nil }

func (m *mockAccountRepository) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, account.ErrNotFound
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
	if m.ReaderEmailsFunc != nil {
		return m.ReaderEmailsFunc(ctx, verticals)
	}
	return nil, nil
}

type mockArticleRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*article.Article, error)
}

func (m *mockArticleRepository) Create(ctx context.Context, a *article.Article) error { return nil }

func (m *mockArticleRepository) GetByID(ctx context.Context, id uint) (*article.Article, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, article.ErrNotFound
}

func (m *mockArticleRepository) GetByUUID(ctx context.Context, uuid string) (*article.Article, error) {
	return nil, article.ErrNotFound
}

func (m *mockArticleRepository) Update(ctx context.Context, a *article.Article) error { return nil }

func (m *mockArticleRepository) UpdateStatus(ctx context.Context, id uint, status article.Status) error {
	return nil
}

func (m *mockArticleRepository) UpdateImage(ctx context.Context, id uint, key string, status article.ImageStatus) error {
	return nil
}

func (m *mockArticleRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockArticleRepository) List(ctx context.Context, filter article.ListFilter, offset, limit int) ([]*article.Article, int64, error) {
	return nil, 0, nil
}

func (m *mockArticleRepository) ListDue(ctx context.Context, now time.Time) ([]*article.Article, error) {
	return nil, nil
}

type sentMail struct {
	To      string
	Subject string
}

type mockMailer struct {
	SendFunc func(to, subject, htmlBody, plainBody string) error
	Sent     []sentMail
}

func (m *mockMailer) Send(to, subject, htmlBody, plainBody string) error {
	if m.SendFunc != nil {
		if err := m.SendFunc(to, subject, htmlBody, plainBody); err != nil {
			return err
		}
	}
	m.Sent = append(m.Sent, sentMail{To: to, Subject: subject})
	return nil
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
