package notification

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gazette-press/gazette/internal/domain/account"
	"github.com/gazette-press/gazette/internal/domain/article"
	"github.com/gazette-press/gazette/internal/domain/vertical"
)

func testAccount(t *testing.T, id uint, email string) *account.Account {
	t.Helper()
	now := time.Now().UTC()
	acc, err := account.Reconstruct(id, fmt.Sprintf("uuid-%d", id), "author", email, "hash", account.RoleEditor, now, now)
	require.NoError(t, err)
	return acc
}

func testArticle(t *testing.T, id, authorID uint, restricted bool, verticals ...vertical.Code) *article.Article {
	t.Helper()
	if len(verticals) == 0 {
		verticals = []vertical.Code{vertical.CodePolitics}
	}
	now := time.Now().UTC()
	a, err := article.Reconstruct(id, "art-uuid", "Big story", "Sub", "Content",
		now, article.StatusPublished, "", article.ImagePending, restricted, authorID, verticals, now, now)
	require.NoError(t, err)
	return a
}

func TestDispatch_UnknownEventIsDropped(t *testing.T) {
	mailer := &mockMailer{}
	d := NewDispatcher(&mockAccountRepository{}, &mockArticleRepository{}, mailer, &mockLogger{})

	err := d.Dispatch(context.Background(), Notice{Event: Event("password_reset")})

	require.NoError(t, err, "unknown events are dropped, not retried")
	assert.Empty(t, mailer.Sent)
}

func TestDispatch_AccountWelcome(t *testing.T) {
	accounts := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
			require.Equal(t, uint(7), id)
			return testAccount(t, 7, "reader@example.com"), nil
		},
	}
	mailer := &mockMailer{}
	d := NewDispatcher(accounts, &mockArticleRepository{}, mailer, &mockLogger{})

	err := d.Dispatch(context.Background(), Notice{Event: EventAccountWelcome, AccountID: 7})

	require.NoError(t, err)
	require.Len(t, mailer.Sent, 1)
	assert.Equal(t, "reader@example.com", mailer.Sent[0].To)
	assert.Equal(t, "Welcome to Gazette", mailer.Sent[0].Subject)
}

func TestDispatch_ArticlePublished_OpenArticleReachesAllReaders(t *testing.T) {
	var requestedAudience []vertical.Code
	audienceCalled := false
	accounts := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
			return testAccount(t, id, "author@example.com"), nil
		},
		ReaderEmailsFunc: func(ctx context.Context, verticals []vertical.Code) ([]string, error) {
			audienceCalled = true
			requestedAudience = verticals
			return []string{"r1@example.com", "r2@example.com"}, nil
		},
	}
	articles := &mockArticleRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*article.Article, error) {
			return testArticle(t, id, 3, false), nil
		},
	}
	mailer := &mockMailer{}
	d := NewDispatcher(accounts, articles, mailer, &mockLogger{})

	err := d.Dispatch(context.Background(), Notice{Event: EventArticlePublished, ArticleID: 1})

	require.NoError(t, err)
	assert.True(t, audienceCalled)
	assert.Nil(t, requestedAudience, "open articles address every reader")
	require.Len(t, mailer.Sent, 3)
	assert.Equal(t, "author@example.com", mailer.Sent[0].To, "the author is always notified first")
}

func TestDispatch_ArticlePublished_RestrictedArticleScopesAudience(t *testing.T) {
	var requestedAudience []vertical.Code
	accounts := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
			return testAccount(t, id, "author@example.com"), nil
		},
		ReaderEmailsFunc: func(ctx context.Context, verticals []vertical.Code) ([]string, error) {
			requestedAudience = verticals
			return []string{"pro@example.com"}, nil
		},
	}
	articles := &mockArticleRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*article.Article, error) {
			return testArticle(t, id, 3, true, vertical.CodeTaxes, vertical.CodeEnergy), nil
		},
	}
	mailer := &mockMailer{}
	d := NewDispatcher(accounts, articles, mailer, &mockLogger{})

	err := d.Dispatch(context.Background(), Notice{Event: EventArticlePublished, ArticleID: 1})

	require.NoError(t, err)
	assert.Equal(t, []vertical.Code{vertical.CodeTaxes, vertical.CodeEnergy}, requestedAudience)
	require.Len(t, mailer.Sent, 2)
}

func TestDispatch_AuthorNoticeEvents(t *testing.T) {
	for _, event := range []Event{EventArticleUnpublished, EventImageProcessed, EventImageProcessingFailed} {
		t.Run(event.String(), func(t *testing.T) {
			accounts := &mockAccountRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
					return testAccount(t, id, "author@example.com"), nil
				},
			}
			articles := &mockArticleRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*article.Article, error) {
					return testArticle(t, id, 3, false), nil
				},
			}
			mailer := &mockMailer{}
			d := NewDispatcher(accounts, articles, mailer, &mockLogger{})

			err := d.Dispatch(context.Background(), Notice{Event: event, ArticleID: 1})

			require.NoError(t, err)
			require.Len(t, mailer.Sent, 1)
			assert.Equal(t, "author@example.com", mailer.Sent[0].To)
		})
	}
}

func TestDispatch_MissingArticleFails(t *testing.T) {
	d := NewDispatcher(&mockAccountRepository{}, &mockArticleRepository{}, &mockMailer{}, &mockLogger{})

	err := d.Dispatch(context.Background(), Notice{Event: EventArticlePublished, ArticleID: 42})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load article")
}

func TestDispatch_PartialDeliveryFailureIsReported(t *testing.T) {
	accounts := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
			return testAccount(t, id, "author@example.com"), nil
		},
		ReaderEmailsFunc: func(ctx context.Context, verticals []vertical.Code) ([]string, error) {
			return []string{"bounce@example.com", "ok@example.com"}, nil
		},
	}
	articles := &mockArticleRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*article.Article, error) {
			return testArticle(t, id, 3, false), nil
		},
	}
	mailer := &mockMailer{
		SendFunc: func(to, subject, htmlBody, plainBody string) error {
			if to == "bounce@example.com" {
				return fmt.Errorf("mailbox unavailable")
			}
			return nil
		},
	}
	d := NewDispatcher(accounts, articles, mailer, &mockLogger{})

	err := d.Dispatch(context.Background(), Notice{Event: EventArticlePublished, ArticleID: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to deliver 1 of 3")
	assert.Len(t, mailer.Sent, 2, "remaining recipients still get their mail")
}
