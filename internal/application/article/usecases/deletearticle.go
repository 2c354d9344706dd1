package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/gazette-press/gazette/internal/application/access"
	"github.com/gazette-press/gazette/internal/domain/article"
	"github.com/gazette-press/gazette/internal/shared/errors"
	"github.com/gazette-press/gazette/internal/shared/logger"
)

// DeleteArticleUseCase removes an article and its stored image.
type DeleteArticleUseCase struct {
	articleRepo article.Repository
	store       ImageStore
	logger      logger.Interface
}

func NewDeleteArticleUseCase(articleRepo article.Repository, store ImageStore, logger logger.Interface) *DeleteArticleUseCase {
	return &DeleteArticleUseCase{articleRepo: articleRepo, store: store, logger: logger}
}

// Execute deletes the article. Admins can delete any article, editors only
// their own.
func (uc *DeleteArticleUseCase) Execute(ctx context.Context, caller access.Caller, articleUUID string) error {
	art, err := uc.articleRepo.GetByUUID(ctx, articleUUID)
	if err != nil {
		if stderrors.Is(err, article.ErrNotFound) {
			return errors.NewNotFoundError("article not found")
		}
		return fmt.Errorf("failed to load article: %w", err)
	}

	if !caller.CanManageArticle(art) {
		return errors.NewForbiddenError("you can only delete your own articles")
	}

	if err := uc.articleRepo.Delete(ctx, art.ID()); err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}

	if art.HasImage() {
		if err := uc.store.Delete(art.ImageKey()); err != nil {
			uc.logger.Warnw("failed to delete article image", "key", art.ImageKey(), "error", err)
		}
	}

	uc.logger.Infow("article deleted", "id", art.UUID())
	return nil
}
