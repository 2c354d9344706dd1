package usecases

import (
	"context"
	"fmt"

	"github.com/gazette-press/gazette/internal/application/access"
	"github.com/gazette-press/gazette/internal/application/article/dto"
	"github.com/gazette-press/gazette/internal/domain/account"
	"github.com/gazette-press/gazette/internal/domain/article"
	"github.com/gazette-press/gazette/internal/domain/plan"
	"github.com/gazette-press/gazette/internal/shared/errors"
	"github.com/gazette-press/gazette/internal/shared/logger"
	"github.com/gazette-press/gazette/internal/shared/utils"
)

// ListArticlesUseCase returns the article listing the caller is entitled to.
// Admins see everything, editors their own articles, readers the published
// set their plan covers.
type ListArticlesUseCase struct {
	articleRepo article.Repository
	accountRepo account.Repository
	planRepo    plan.Repository
	store       ImageStore
	logger      logger.Interface
}

func NewListArticlesUseCase(
	articleRepo article.Repository,
	accountRepo account.Repository,
	planRepo plan.Repository,
	store ImageStore,
	logger logger.Interface,
) *ListArticlesUseCase {
	return &ListArticlesUseCase{
		articleRepo: articleRepo,
		accountRepo: accountRepo,
		planRepo:    planRepo,
		store:       store,
		logger:      logger,
	}
}

// Execute lists articles scoped to the caller's entitlement.
func (uc *ListArticlesUseCase) Execute(ctx context.Context, caller access.Caller, request dto.ListArticlesRequest) (*dto.ArticleListResponse, error) {
	caller, err := loadReaderPlan(ctx, uc.planRepo, caller)
	if err != nil {
		return nil, err
	}

	filter := caller.ArticleListFilter()
	if request.Status != "" {
		status, err := article.ParseStatus(request.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status filter", err.Error())
		}
		// Readers cannot widen their scope past published articles.
		if filter.Status == nil || *filter.Status == status {
			filter.Status = &status
		} else {
			return nil, errors.NewForbiddenError("you can only list published articles")
		}
	}

	pagination := utils.ValidatePagination(request.Page, request.PageSize)

	articles, total, err := uc.articleRepo.List(ctx, filter, pagination.Offset(), pagination.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	authors, err := uc.authorIndex(ctx, articles)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ArticleResponse, 0, len(articles))
	for _, art := range articles {
		authorUUID, authorName := "", ""
		if author, ok := authors[art.AuthorID()]; ok {
			authorUUID, authorName = author.UUID(), author.Username()
		}
		items = append(items, dto.ToArticleResponse(art, authorUUID, authorName, uc.store))
	}

	return &dto.ArticleListResponse{
		Articles: items,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}

// authorIndex loads each distinct author once per listing.
func (uc *ListArticlesUseCase) authorIndex(ctx context.Context, articles []*article.Article) (map[uint]*account.Account, error) {
	index := make(map[uint]*account.Account)
	for _, art := range articles {
		if _, ok := index[art.AuthorID()]; ok {
			continue
		}
		author, err := uc.accountRepo.GetByID(ctx, art.AuthorID())
		if err != nil {
			return nil, fmt.Errorf("failed to load author %d: %w", art.AuthorID(), err)
		}
		index[art.AuthorID()] = author
	}
	return index, nil
}
