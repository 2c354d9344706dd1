package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gazette-press/gazette/internal/application/article/dto"
	"github.com/gazette-press/gazette/internal/domain/article"
	"github.com/gazette-press/gazette/internal/domain/plan"
	"github.com/gazette-press/gazette/internal/domain/vertical"
	"github.com/gazette-press/gazette/internal/shared/errors"
)

func listedArticle(t *testing.T, id, authorID uint) *article.Article {
	t.Helper()
	now := time.Now().UTC()
	a, err := article.Reconstruct(id, "art-uuid", "Title", "Subtitle", "Content",
		now.Add(-time.Hour), article.StatusPublished, "", article.ImagePending, false, authorID,
		[]vertical.Code{vertical.CodePolitics}, now, now)
	require.NoError(t, err)
	return a
}

func TestListArticles_EditorScopedToOwn(t *testing.T) {
	var seenFilter article.ListFilter
	articleRepo := &mockArticleRepository{
		ListFunc: func(ctx context.Context, filter article.ListFilter, offset, limit int) ([]*article.Article, int64, error) {
			seenFilter = filter
			return []*article.Article{listedArticle(t, 1, 5), listedArticle(t, 2, 5)}, 2, nil
		},
	}

	uc := NewListArticlesUseCase(articleRepo, &mockAccountRepository{}, &mockPlanRepository{}, newMockImageStore(), &mockLogger{})
	resp, err := uc.Execute(context.Background(), editorCaller(5), dto.ListArticlesRequest{})

	require.NoError(t, err)
	require.NotNil(t, seenFilter.AuthorID)
	assert.Equal(t, uint(5), *seenFilter.AuthorID)
	assert.Len(t, resp.Articles, 2)
	assert.Equal(t, int64(2), resp.Total)
	assert.Equal(t, "author", resp.Articles[0].AuthorName)
}

func TestListArticles_ProReaderAudience(t *testing.T) {
	var seenFilter article.ListFilter
	articleRepo := &mockArticleRepository{
		ListFunc: func(ctx context.Context, filter article.ListFilter, offset, limit int) ([]*article.Article, int64, error) {
			seenFilter = filter
			return nil, 0, nil
		},
	}
	planRepo := &mockPlanRepository{
		GetByAccountIDFunc: func(ctx context.Context, accountID uint) (*plan.Plan, error) {
			return readerPlan(t, accountID, plan.TierPro, vertical.CodeTaxes), nil
		},
	}

	uc := NewListArticlesUseCase(articleRepo, &mockAccountRepository{}, planRepo, newMockImageStore(), &mockLogger{})
	_, err := uc.Execute(context.Background(), readerCaller(5), dto.ListArticlesRequest{})

	require.NoError(t, err)
	require.NotNil(t, seenFilter.Status)
	assert.Equal(t, article.StatusPublished, *seenFilter.Status)
	require.NotNil(t, seenFilter.Audience)
	assert.True(t, seenFilter.Audience.IncludeRestricted)
	assert.Equal(t, []vertical.Code{vertical.CodeTaxes}, seenFilter.Audience.Verticals)
}

func TestListArticles_StatusFilter(t *testing.T) {
	t.Run("admin filters drafts", func(t *testing.T) {
		var seenFilter article.ListFilter
		articleRepo := &mockArticleRepository{
			ListFunc: func(ctx context.Context, filter article.ListFilter, offset, limit int) ([]*article.Article, int64, error) {
				seenFilter = filter
				return nil, 0, nil
			},
		}

		uc := NewListArticlesUseCase(articleRepo, &mockAccountRepository{}, &mockPlanRepository{}, newMockImageStore(), &mockLogger{})
		_, err := uc.Execute(context.Background(), adminCaller(1), dto.ListArticlesRequest{Status: "draft"})

		require.NoError(t, err)
		require.NotNil(t, seenFilter.Status)
		assert.Equal(t, article.StatusDraft, *seenFilter.Status)
	})

	t.Run("reader cannot widen to drafts", func(t *testing.T) {
		uc := NewListArticlesUseCase(&mockArticleRepository{}, &mockAccountRepository{}, &mockPlanRepository{}, newMockImageStore(), &mockLogger{})
		_, err := uc.Execute(context.Background(), readerCaller(5), dto.ListArticlesRequest{Status: "draft"})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		uc := NewListArticlesUseCase(&mockArticleRepository{}, &mockAccountRepository{}, &mockPlanRepository{}, newMockImageStore(), &mockLogger{})
		_, err := uc.Execute(context.Background(), adminCaller(1), dto.ListArticlesRequest{Status: "archived"})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestListArticles_PaginationDefaults(t *testing.T) {
	var seenOffset, seenLimit int
	articleRepo := &mockArticleRepository{
		ListFunc: func(ctx context.Context, filter article.ListFilter, offset, limit int) ([]*article.Article, int64, error) {
			seenOffset, seenLimit = offset, limit
			return nil, 0, nil
		},
	}

	uc := NewListArticlesUseCase(articleRepo, &mockAccountRepository{}, &mockPlanRepository{}, newMockImageStore(), &mockLogger{})
	resp, err := uc.Execute(context.Background(), adminCaller(1), dto.ListArticlesRequest{Page: 3, PageSize: 10})

	require.NoError(t, err)
	assert.Equal(t, 20, seenOffset)
	assert.Equal(t, 10, seenLimit)
	assert.Equal(t, 3, resp.Page)
	assert.Equal(t, 10, resp.PageSize)
}

func TestDeleteArticle(t *testing.T) {
	t.Run("editor deletes own article with image", func(t *testing.T) {
		var deletedID uint
		articleRepo := &mockArticleRepository{
			GetByUUIDFunc: func(ctx context.Context, uuid string) (*article.Article, error) {
				return storedArticle(t, 5, article.StatusDraft, time.Now().UTC(), "articles/art-uuid/cover.webp", article.ImageOk), nil
			},
			DeleteFunc: func(ctx context.Context, id uint) error {
				deletedID = id
				return nil
			},
		}
		store := newMockImageStore()
		store.Objects["articles/art-uuid/cover.webp"] = []byte("webp")

		uc := NewDeleteArticleUseCase(articleRepo, store, &mockLogger{})
		err := uc.Execute(context.Background(), editorCaller(5), "art-uuid")

		require.NoError(t, err)
		assert.Equal(t, uint(10), deletedID)
		assert.Contains(t, store.Deleted, "articles/art-uuid/cover.webp")
	})

	t.Run("editor cannot delete foreign article", func(t *testing.T) {
		articleRepo := &mockArticleRepository{
			GetByUUIDFunc: func(ctx context.Context, uuid string) (*article.Article, error) {
				return storedArticle(t, 9, article.StatusDraft, time.Now().UTC(), "", article.ImagePending), nil
			},
		}

		uc := NewDeleteArticleUseCase(articleRepo, newMockImageStore(), &mockLogger{})
		err := uc.Execute(context.Background(), editorCaller(5), "art-uuid")

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("missing article", func(t *testing.T) {
		uc := NewDeleteArticleUseCase(&mockArticleRepository{}, newMockImageStore(), &mockLogger{})
		err := uc.Execute(context.Background(), adminCaller(1), "missing")

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
