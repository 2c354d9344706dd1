package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/gazette-press/gazette/internal/application/access"
	"github.com/gazette-press/gazette/internal/application/plan/dto"
	"github.com/gazette-press/gazette/internal/domain/account"
	"github.com/gazette-press/gazette/internal/domain/plan"
	"github.com/gazette-press/gazette/internal/domain/vertical"
	"github.com/gazette-press/gazette/internal/shared/errors"
	"github.com/gazette-press/gazette/internal/shared/logger"
)

// UpdatePlanUseCase changes a plan's tier and vertical set. Tier changes are
// an admin operation because billing happens outside this system.
type UpdatePlanUseCase struct {
	planRepo    plan.Repository
	accountRepo account.Repository
	logger      logger.Interface
}

func NewUpdatePlanUseCase(planRepo plan.Repository, accountRepo account.Repository, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{planRepo: planRepo, accountRepo: accountRepo, logger: logger}
}

// Execute changes the plan. Moving to the starter tier clears the vertical
// set; the full tier requires at least one vertical.
func (uc *UpdatePlanUseCase) Execute(ctx context.Context, caller access.Caller, planUUID string, request dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	if !caller.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can change plans")
	}

	p, err := uc.planRepo.GetByUUID(ctx, planUUID)
	if err != nil {
		if stderrors.Is(err, plan.ErrNotFound) {
			return nil, errors.NewNotFoundError("plan not found")
		}
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}

	tier, err := plan.ParseTier(request.Tier)
	if err != nil {
		return nil, errors.NewValidationError("invalid tier", err.Error())
	}

	codes := make([]vertical.Code, 0, len(request.Verticals))
	for _, raw := range request.Verticals {
		code, err := vertical.ParseCode(raw)
		if err != nil {
			return nil, errors.NewValidationError("invalid verticals", err.Error())
		}
		codes = append(codes, code)
	}

	if err := p.Change(tier, codes); err != nil {
		return nil, errors.NewValidationError("invalid plan change", err.Error())
	}

	if err := uc.planRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	owner, err := uc.accountRepo.GetByID(ctx, p.AccountID())
	if err != nil {
		return nil, fmt.Errorf("failed to load plan owner: %w", err)
	}

	uc.logger.Infow("plan updated", "id", p.UUID(), "tier", p.Tier().String())
	response := dto.ToPlanResponse(p, owner.UUID())
	return &response, nil
}
