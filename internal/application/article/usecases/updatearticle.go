package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/gazette-press/gazette/internal/application/access"
	"github.com/gazette-press/gazette/internal/application/article/dto"
	"github.com/gazette-press/gazette/internal/application/notification"
	"github.com/gazette-press/gazette/internal/domain/account"
	"github.com/gazette-press/gazette/internal/domain/article"
	"github.com/gazette-press/gazette/internal/shared/biztime"
	"github.com/gazette-press/gazette/internal/shared/errors"
	"github.com/gazette-press/gazette/internal/shared/logger"
)

// UpdateArticleUseCase applies partial edits to an article. Rescheduling a
// published article to a future date demotes it back to draft; the scheduler
// promotes it again when the new date arrives.
type UpdateArticleUseCase struct {
	articleRepo article.Repository
	accountRepo account.Repository
	store       ImageStore
	tasks       TaskEnqueuer
	logger      logger.Interface
}

func NewUpdateArticleUseCase(
	articleRepo article.Repository,
	accountRepo account.Repository,
	store ImageStore,
	tasks TaskEnqueuer,
	logger logger.Interface,
) *UpdateArticleUseCase {
	return &UpdateArticleUseCase{
		articleRepo: articleRepo,
		accountRepo: accountRepo,
		store:       store,
		tasks:       tasks,
		logger:      logger,
	}
}

// Execute applies the non-nil fields of the request. Status and author are
// never taken from the request.
func (uc *UpdateArticleUseCase) Execute(ctx context.Context, caller access.Caller, articleUUID string, request dto.UpdateArticleRequest) (*dto.ArticleResponse, error) {
	art, err := uc.articleRepo.GetByUUID(ctx, articleUUID)
	if err != nil {
		if stderrors.Is(err, article.ErrNotFound) {
			return nil, errors.NewNotFoundError("article not found")
		}
		return nil, fmt.Errorf("failed to load article: %w", err)
	}

	if !caller.CanManageArticle(art) {
		return nil, errors.NewForbiddenError("you can only edit your own articles")
	}

	if request.Title != nil {
		if err := art.SetTitle(*request.Title); err != nil {
			return nil, errors.NewValidationError("invalid title", err.Error())
		}
	}
	if request.Subtitle != nil {
		if err := art.SetSubtitle(*request.Subtitle); err != nil {
			return nil, errors.NewValidationError("invalid subtitle", err.Error())
		}
	}
	if request.Content != nil {
		if err := art.SetContent(*request.Content); err != nil {
			return nil, errors.NewValidationError("invalid content", err.Error())
		}
	}
	if request.Restricted != nil {
		art.SetRestricted(*request.Restricted)
	}
	if request.Verticals != nil {
		codes, err := parseVerticals(request.Verticals)
		if err != nil {
			return nil, errors.NewValidationError("invalid verticals", err.Error())
		}
		if err := art.SetVerticals(codes); err != nil {
			return nil, errors.NewValidationError("invalid verticals", err.Error())
		}
	}

	demoted := false
	if request.PublishAt != nil {
		if err := art.Reschedule(*request.PublishAt); err != nil {
			return nil, errors.NewValidationError("invalid publish date", err.Error())
		}
		if art.ShouldDemote(biztime.NowUTC()) {
			if err := art.RevertToDraft(); err != nil {
				return nil, fmt.Errorf("failed to demote article: %w", err)
			}
			demoted = true
		}
	}

	previousKey := ""
	if request.Image != nil {
		if err := article.ValidateImageExtension(request.Image.Filename); err != nil {
			return nil, errors.NewValidationError("invalid image", err.Error())
		}
		previousKey = art.ImageKey()
		key := imageKey(art.UUID(), request.Image.Filename)
		if err := art.AttachImage(key); err != nil {
			return nil, errors.NewValidationError("invalid image", err.Error())
		}
		if err := uc.store.Save(key, request.Image.Data); err != nil {
			return nil, fmt.Errorf("failed to store image: %w", err)
		}
	}

	if err := uc.articleRepo.Update(ctx, art); err != nil {
		return nil, fmt.Errorf("failed to save article: %w", err)
	}

	if demoted {
		if err := uc.articleRepo.UpdateStatus(ctx, art.ID(), article.StatusDraft); err != nil {
			return nil, fmt.Errorf("failed to demote article: %w", err)
		}
		if err := uc.tasks.EnqueueNotification(ctx, notification.Notice{
			Event:     notification.EventArticleUnpublished,
			ArticleID: art.ID(),
		}); err != nil {
			uc.logger.Warnw("failed to enqueue unpublish notification", "article_id", art.ID(), "error", err)
		}
	}

	if request.Image != nil {
		if previousKey != "" && previousKey != art.ImageKey() {
			if err := uc.store.Delete(previousKey); err != nil {
				uc.logger.Warnw("failed to delete replaced image", "key", previousKey, "error", err)
			}
		}
		if err := uc.tasks.EnqueueConvertImage(ctx, art.ID()); err != nil {
			uc.logger.Warnw("failed to enqueue image conversion", "article_id", art.ID(), "error", err)
		}
	}

	author, err := uc.accountRepo.GetByID(ctx, art.AuthorID())
	if err != nil {
		return nil, fmt.Errorf("failed to load author: %w", err)
	}

	uc.logger.Infow("article updated", "id", art.UUID(), "demoted", demoted)
	response := dto.ToArticleResponse(art, author.UUID(), author.Username(), uc.store)
	return &response, nil
}
