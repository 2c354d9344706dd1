package usecases

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/gazette-press/gazette/internal/application/access"
	"github.com/gazette-press/gazette/internal/application/article/dto"
	"github.com/gazette-press/gazette/internal/domain/account"
	"github.com/gazette-press/gazette/internal/domain/article"
	"github.com/gazette-press/gazette/internal/domain/vertical"
	"github.com/gazette-press/gazette/internal/shared/errors"
	"github.com/gazette-press/gazette/internal/shared/logger"
)

// CreateArticleUseCase creates a draft article, optionally with an image.
// The uploaded original is stored synchronously; conversion to the canonical
// format happens on the worker after this use case has returned.
type CreateArticleUseCase struct {
	articleRepo article.Repository
	accountRepo account.Repository
	store       ImageStore
	tasks       TaskEnqueuer
	logger      logger.Interface
}

func NewCreateArticleUseCase(
	articleRepo article.Repository,
	accountRepo account.Repository,
	store ImageStore,
	tasks TaskEnqueuer,
	logger logger.Interface,
) *CreateArticleUseCase {
	return &CreateArticleUseCase{
		articleRepo: articleRepo,
		accountRepo: accountRepo,
		store:       store,
		tasks:       tasks,
		logger:      logger,
	}
}

// Execute creates the article as a draft scheduled for the requested date.
func (uc *CreateArticleUseCase) Execute(ctx context.Context, caller access.Caller, request dto.CreateArticleRequest) (*dto.ArticleResponse, error) {
	if !caller.CanAuthorArticles() {
		return nil, errors.NewForbiddenError("only admins and editors can create articles")
	}

	codes, err := parseVerticals(request.Verticals)
	if err != nil {
		return nil, errors.NewValidationError("invalid verticals", err.Error())
	}

	if request.Image != nil {
		if err := article.ValidateImageExtension(request.Image.Filename); err != nil {
			return nil, errors.NewValidationError("invalid image", err.Error())
		}
	}

	art, err := article.NewArticle(request.Title, request.Subtitle, request.Content,
		request.PublishAt, request.Restricted, caller.AccountID, codes)
	if err != nil {
		return nil, errors.NewValidationError("invalid article data", err.Error())
	}
	art.SetUUID(uuid.NewString())

	if request.Image != nil {
		key := imageKey(art.UUID(), request.Image.Filename)
		if err := art.AttachImage(key); err != nil {
			return nil, errors.NewValidationError("invalid image", err.Error())
		}
		if err := uc.store.Save(key, request.Image.Data); err != nil {
			return nil, fmt.Errorf("failed to store image: %w", err)
		}
	}

	if err := uc.articleRepo.Create(ctx, art); err != nil {
		if art.HasImage() {
			if delErr := uc.store.Delete(art.ImageKey()); delErr != nil {
				uc.logger.Warnw("failed to clean up stored image", "key", art.ImageKey(), "error", delErr)
			}
		}
		return nil, fmt.Errorf("failed to save article: %w", err)
	}

	if art.HasImage() {
		if err := uc.tasks.EnqueueConvertImage(ctx, art.ID()); err != nil {
			uc.logger.Warnw("failed to enqueue image conversion", "article_id", art.ID(), "error", err)
		}
	}

	author, err := uc.accountRepo.GetByID(ctx, caller.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load author: %w", err)
	}

	uc.logger.Infow("article created", "id", art.UUID(), "author", author.Username())
	response := dto.ToArticleResponse(art, author.UUID(), author.Username(), uc.store)
	return &response, nil
}

// parseVerticals maps raw vertical codes onto the closed catalog.
func parseVerticals(raw []string) ([]vertical.Code, error) {
	codes := make([]vertical.Code, 0, len(raw))
	for _, r := range raw {
		code, err := vertical.ParseCode(r)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}

// imageKey places uploads under a per-article prefix so replacements and
// conversions never collide across articles.
func imageKey(articleUUID, filename string) string {
	return fmt.Sprintf("articles/%s/%s", articleUUID, filepath.Base(filename))
}
