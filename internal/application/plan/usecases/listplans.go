package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/gazette-press/gazette/internal/application/access"
	"github.com/gazette-press/gazette/internal/application/plan/dto"
	"github.com/gazette-press/gazette/internal/domain/account"
	"github.com/gazette-press/gazette/internal/domain/plan"
	"github.com/gazette-press/gazette/internal/shared/logger"
	"github.com/gazette-press/gazette/internal/shared/utils"
)

// ListPlansUseCase returns plans. Admins see all plans, everyone else a
// listing reduced to their own.
type ListPlansUseCase struct {
	planRepo    plan.Repository
	accountRepo account.Repository
	logger      logger.Interface
}

func NewListPlansUseCase(planRepo plan.Repository, accountRepo account.Repository, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{planRepo: planRepo, accountRepo: accountRepo, logger: logger}
}

// Execute lists plans scoped to the caller.
func (uc *ListPlansUseCase) Execute(ctx context.Context, caller access.Caller, request dto.ListPlansRequest) (*dto.PlanListResponse, error) {
	filter := plan.ListFilter{}
	if !caller.IsAdmin() {
		accountID := caller.AccountID
		filter.AccountID = &accountID
	}

	pagination := utils.ValidatePagination(request.Page, request.PageSize)

	plans, total, err := uc.planRepo.List(ctx, filter, pagination.Offset(), pagination.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	items := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		owner, err := uc.accountRepo.GetByID(ctx, p.AccountID())
		if err != nil {
			if stderrors.Is(err, account.ErrNotFound) {
				// Soft-deleted owner; its plan disappears from listings.
				continue
			}
			return nil, fmt.Errorf("failed to load plan owner: %w", err)
		}
		items = append(items, dto.ToPlanResponse(p, owner.UUID()))
	}

	return &dto.PlanListResponse{
		Plans:    items,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}
