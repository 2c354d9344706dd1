// Package usecases implements the plan context operations. Plans exist one
// per reader account; they are created by registration and removed by the
// account cascade, so only reads and tier changes live here.
package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/gazette-press/gazette/internal/application/access"
	"github.com/gazette-press/gazette/internal/application/plan/dto"
	"github.com/gazette-press/gazette/internal/domain/account"
	"github.com/gazette-press/gazette/internal/domain/plan"
	"github.com/gazette-press/gazette/internal/shared/errors"
	"github.com/gazette-press/gazette/internal/shared/logger"
)

// GetPlanUseCase returns a single plan by UUID.
type GetPlanUseCase struct {
	planRepo    plan.Repository
	accountRepo account.Repository
	logger      logger.Interface
}

func NewGetPlanUseCase(planRepo plan.Repository, accountRepo account.Repository, logger logger.Interface) *GetPlanUseCase {
	return &GetPlanUseCase{planRepo: planRepo, accountRepo: accountRepo, logger: logger}
}

// Execute loads the plan if the caller may see it. Admins can view any plan,
// everyone else only their own.
func (uc *GetPlanUseCase) Execute(ctx context.Context, caller access.Caller, planUUID string) (*dto.PlanResponse, error) {
	p, err := uc.planRepo.GetByUUID(ctx, planUUID)
	if err != nil {
		if stderrors.Is(err, plan.ErrNotFound) {
			return nil, errors.NewNotFoundError("plan not found")
		}
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}

	if !caller.CanViewPlan(p) {
		return nil, errors.NewForbiddenError("you can only view your own plan")
	}

	owner, err := uc.accountRepo.GetByID(ctx, p.AccountID())
	if err != nil {
		return nil, fmt.Errorf("failed to load plan owner: %w", err)
	}

	response := dto.ToPlanResponse(p, owner.UUID())
	return &response, nil
}
