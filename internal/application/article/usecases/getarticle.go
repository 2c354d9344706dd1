package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/gazette-press/gazette/internal/application/access"
	"github.com/gazette-press/gazette/internal/application/article/dto"
	"github.com/gazette-press/gazette/internal/domain/account"
	"github.com/gazette-press/gazette/internal/domain/article"
	"github.com/gazette-press/gazette/internal/domain/plan"
	"github.com/gazette-press/gazette/internal/domain/vertical"
	"github.com/gazette-press/gazette/internal/shared/errors"
	"github.com/gazette-press/gazette/internal/shared/logger"
)

// GetArticleUseCase returns a single article with rendered content.
type GetArticleUseCase struct {
	articleRepo article.Repository
	accountRepo account.Repository
	planRepo    plan.Repository
	renderer    ContentRenderer
	store       ImageStore
	logger      logger.Interface
}

func NewGetArticleUseCase(
	articleRepo article.Repository,
	accountRepo account.Repository,
	planRepo plan.Repository,
	renderer ContentRenderer,
	store ImageStore,
	logger logger.Interface,
) *GetArticleUseCase {
	return &GetArticleUseCase{
		articleRepo: articleRepo,
		accountRepo: accountRepo,
		planRepo:    planRepo,
		renderer:    renderer,
		store:       store,
		logger:      logger,
	}
}

// Execute loads the article if the caller is entitled to it. For readers the
// denial explains which verticals their plan covers versus which the article
// belongs to, so the upsell path is actionable.
func (uc *GetArticleUseCase) Execute(ctx context.Context, caller access.Caller, articleUUID string) (*dto.ArticleResponse, error) {
	art, err := uc.articleRepo.GetByUUID(ctx, articleUUID)
	if err != nil {
		if stderrors.Is(err, article.ErrNotFound) {
			return nil, errors.NewNotFoundError("article not found")
		}
		return nil, fmt.Errorf("failed to load article: %w", err)
	}

	caller, err = loadReaderPlan(ctx, uc.planRepo, caller)
	if err != nil {
		return nil, err
	}

	if !caller.CanReadArticle(art) {
		if caller.Role.IsReader() && art.Status() == article.StatusPublished {
			var planVerticals []string
			if caller.Plan != nil {
				planVerticals = vertical.NamesOf(caller.Plan.Verticals())
			}
			return nil, errors.NewForbiddenError("your plan does not cover this article").
				WithFields(map[string]any{
					"plan_verticals":    planVerticals,
					"article_verticals": vertical.NamesOf(art.Verticals()),
				})
		}
		return nil, errors.NewForbiddenError("you cannot view this article")
	}

	author, err := uc.accountRepo.GetByID(ctx, art.AuthorID())
	if err != nil {
		return nil, fmt.Errorf("failed to load author: %w", err)
	}

	response := dto.ToArticleResponse(art, author.UUID(), author.Username(), uc.store)

	html, err := uc.renderer.Render(art.Content())
	if err != nil {
		uc.logger.Warnw("failed to render article content", "id", art.UUID(), "error", err)
	} else {
		response.ContentHTML = html
	}

	return &response, nil
}

// loadReaderPlan attaches the reader's plan to the caller. A missing plan is
// tolerated and leaves the caller on free-content access.
func loadReaderPlan(ctx context.Context, planRepo plan.Repository, caller access.Caller) (access.Caller, error) {
	if !caller.Role.IsReader() || caller.Plan != nil {
		return caller, nil
	}
	p, err := planRepo.GetByAccountID(ctx, caller.AccountID)
	if err != nil {
		if stderrors.Is(err, plan.ErrNotFound) {
			return caller, nil
		}
		return caller, fmt.Errorf("failed to load plan: %w", err)
	}
	caller.Plan = p
	return caller, nil
}
