package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gazette-press/gazette/internal/application/notification"
	"github.com/gazette-press/gazette/internal/domain/article"
	"github.com/gazette-press/gazette/internal/domain/vertical"
)

func dueDraft(t *testing.T, id uint, publishAt time.Time) *article.Article {
	t.Helper()
	now := time.Now().UTC()
	a, err := article.Reconstruct(id, "art-uuid", "Title", "Subtitle", "Content",
		publishAt, article.StatusDraft, "", article.ImagePending, false, 1,
		[]vertical.Code{vertical.CodePolitics}, now, now)
	require.NoError(t, err)
	return a
}

func TestPublishDueArticles_PromotesAllDueDrafts(t *testing.T) {
	past := time.Now().UTC().Add(-time.Hour)
	var promoted []uint
	articleRepo := &mockArticleRepository{
		ListDueFunc: func(ctx context.Context, now time.Time) ([]*article.Article, error) {
			return []*article.Article{dueDraft(t, 1, past), dueDraft(t, 2, past)}, nil
		},
		UpdateStatusFunc: func(ctx context.Context, id uint, status article.Status) error {
			assert.Equal(t, article.StatusPublished, status)
			promoted = append(promoted, id)
			return nil
		},
	}
	tasks := &mockTaskEnqueuer{}

	uc := NewPublishDueArticlesUseCase(articleRepo, tasks, &mockLogger{})
	count, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, []uint{1, 2}, promoted)

	require.Len(t, tasks.Notices, 2)
	for _, n := range tasks.Notices {
		assert.Equal(t, notification.EventArticlePublished, n.Event)
	}
}

func TestPublishDueArticles_EmptyBatch(t *testing.T) {
	uc := NewPublishDueArticlesUseCase(&mockArticleRepository{}, &mockTaskEnqueuer{}, &mockLogger{})

	count, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPublishDueArticles_SkipsFailingArticle(t *testing.T) {
	past := time.Now().UTC().Add(-time.Hour)
	articleRepo := &mockArticleRepository{
		ListDueFunc: func(ctx context.Context, now time.Time) ([]*article.Article, error) {
			return []*article.Article{dueDraft(t, 1, past), dueDraft(t, 2, past), dueDraft(t, 3, past)}, nil
		},
		UpdateStatusFunc: func(ctx context.Context, id uint, status article.Status) error {
			if id == 2 {
				return assert.AnError
			}
			return nil
		},
	}
	tasks := &mockTaskEnqueuer{}

	uc := NewPublishDueArticlesUseCase(articleRepo, tasks, &mockLogger{})
	count, err := uc.Execute(context.Background())

	require.NoError(t, err, "one bad article does not fail the batch")
	assert.Equal(t, 2, count)
	assert.Len(t, tasks.Notices, 2, "no notification for the article that failed to promote")
}

func TestPublishDueArticles_ListFailure(t *testing.T) {
	articleRepo := &mockArticleRepository{
		ListDueFunc: func(ctx context.Context, now time.Time) ([]*article.Article, error) {
			return nil, assert.AnError
		},
	}

	uc := NewPublishDueArticlesUseCase(articleRepo, &mockTaskEnqueuer{}, &mockLogger{})
	_, err := uc.Execute(context.Background())

	require.Error(t, err)
}
