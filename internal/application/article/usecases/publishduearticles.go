package usecases

import (
	"context"
	"fmt"

	"github.com/gazette-press/gazette/internal/application/notification"
	"github.com/gazette-press/gazette/internal/domain/article"
	"github.com/gazette-press/gazette/internal/shared/biztime"
	"github.com/gazette-press/gazette/internal/shared/logger"
)

// PublishDueArticlesUseCase promotes every draft whose publish date has
// arrived. The scheduler drives it as a batch job; one failing article is
// logged and skipped so the rest of the batch still publishes.
type PublishDueArticlesUseCase struct {
	articleRepo article.Repository
	tasks       TaskEnqueuer
	logger      logger.Interface
}

func NewPublishDueArticlesUseCase(
	articleRepo article.Repository,
	tasks TaskEnqueuer,
	logger logger.Interface,
) *PublishDueArticlesUseCase {
	return &PublishDueArticlesUseCase{
		articleRepo: articleRepo,
		tasks:       tasks,
		logger:      logger,
	}
}

// Execute promotes all due drafts and returns how many were published.
func (uc *PublishDueArticlesUseCase) Execute(ctx context.Context) (int, error) {
	now := biztime.NowUTC()

	due, err := uc.articleRepo.ListDue(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to list due articles: %w", err)
	}

	published := 0
	for _, art := range due {
		if err := art.Publish(now); err != nil {
			uc.logger.Warnw("skipping article that cannot publish", "id", art.UUID(), "error", err)
			continue
		}
		if err := uc.articleRepo.UpdateStatus(ctx, art.ID(), article.StatusPublished); err != nil {
			uc.logger.Errorw("failed to promote article", "id", art.UUID(), "error", err)
			continue
		}
		published++

		if err := uc.tasks.EnqueueNotification(ctx, notification.Notice{
			Event:     notification.EventArticlePublished,
			ArticleID: art.ID(),
		}); err != nil {
			uc.logger.Warnw("failed to enqueue publish notification", "article_id", art.ID(), "error", err)
		}
	}

	return published, nil
}
