package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gazette-press/gazette/internal/application/plan/dto"
	"github.com/gazette-press/gazette/internal/domain/plan"
	"github.com/gazette-press/gazette/internal/domain/vertical"
	"github.com/gazette-press/gazette/internal/shared/errors"
)

func storedPlan(t *testing.T, accountID uint, tier plan.Tier, verticals ...vertical.Code) *plan.Plan {
	t.Helper()
	now := time.Now().UTC()
	p, err := plan.Reconstruct(1, "plan-uuid", accountID, tier, verticals, now, now)
	require.NoError(t, err)
	return p
}

func TestUpdatePlan_AdminUpgradesToPro(t *testing.T) {
	var saved *plan.Plan
	planRepo := &mockPlanRepository{
		GetByUUIDFunc: func(ctx context.Context, uuid string) (*plan.Plan, error) {
			return storedPlan(t, 5, plan.TierInfo), nil
		},
		UpdateFunc: func(ctx context.Context, p *plan.Plan) error {
			saved = p
			return nil
		},
	}

	uc := NewUpdatePlanUseCase(planRepo, &mockAccountRepository{}, &mockLogger{})
	resp, err := uc.Execute(context.Background(), adminCaller(1), "plan-uuid", dto.UpdatePlanRequest{
		Tier:      "pro",
		Verticals: []string{"P", "H"},
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, plan.TierPro, saved.Tier())
	assert.Equal(t, []vertical.Code{vertical.CodePolitics, vertical.CodeHealth}, saved.Verticals())

	assert.Equal(t, "pro", resp.Tier)
	assert.Equal(t, []string{"Politics", "Health"}, resp.VerticalNames)
	assert.Equal(t, "owner-5", resp.AccountID)
}

func TestUpdatePlan_DowngradeClearsVerticals(t *testing.T) {
	var saved *plan.Plan
	planRepo := &mockPlanRepository{
		GetByUUIDFunc: func(ctx context.Context, uuid string) (*plan.Plan, error) {
			return storedPlan(t, 5, plan.TierPro, vertical.CodePolitics), nil
		},
		UpdateFunc: func(ctx context.Context, p *plan.Plan) error {
			saved = p
			return nil
		},
	}

	uc := NewUpdatePlanUseCase(planRepo, &mockAccountRepository{}, &mockLogger{})
	resp, err := uc.Execute(context.Background(), adminCaller(1), "plan-uuid", dto.UpdatePlanRequest{Tier: "info"})

	require.NoError(t, err)
	assert.Equal(t, plan.TierInfo, saved.Tier())
	assert.Empty(t, saved.Verticals())
	assert.Empty(t, resp.Verticals)
}

func TestUpdatePlan_NonAdminForbidden(t *testing.T) {
	uc := NewUpdatePlanUseCase(&mockPlanRepository{}, &mockAccountRepository{}, &mockLogger{})

	// Even the plan's own reader cannot change tiers; billing is external.
	_, err := uc.Execute(context.Background(), readerCaller(5), "plan-uuid", dto.UpdatePlanRequest{Tier: "pro"})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestUpdatePlan_ValidationErrors(t *testing.T) {
	planRepo := &mockPlanRepository{
		GetByUUIDFunc: func(ctx context.Context, uuid string) (*plan.Plan, error) {
			return storedPlan(t, 5, plan.TierInfo), nil
		},
	}
	uc := NewUpdatePlanUseCase(planRepo, &mockAccountRepository{}, &mockLogger{})

	tests := []struct {
		name    string
		request dto.UpdatePlanRequest
	}{
		{name: "unknown tier", request: dto.UpdatePlanRequest{Tier: "gold"}},
		{name: "unknown vertical", request: dto.UpdatePlanRequest{Tier: "pro", Verticals: []string{"X"}}},
		{name: "pro without verticals", request: dto.UpdatePlanRequest{Tier: "pro"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), adminCaller(1), "plan-uuid", tc.request)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestGetPlan_OwnerAndAdminOnly(t *testing.T) {
	planRepo := &mockPlanRepository{
		GetByUUIDFunc: func(ctx context.Context, uuid string) (*plan.Plan, error) {
			return storedPlan(t, 5, plan.TierInfo), nil
		},
	}
	uc := NewGetPlanUseCase(planRepo, &mockAccountRepository{}, &mockLogger{})

	resp, err := uc.Execute(context.Background(), readerCaller(5), "plan-uuid")
	require.NoError(t, err)
	assert.Equal(t, "plan-uuid", resp.ID)

	_, err = uc.Execute(context.Background(), readerCaller(9), "plan-uuid")
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))

	_, err = uc.Execute(context.Background(), adminCaller(1), "plan-uuid")
	require.NoError(t, err)
}

func TestGetPlan_NotFound(t *testing.T) {
	uc := NewGetPlanUseCase(&mockPlanRepository{}, &mockAccountRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), adminCaller(1), "missing")

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
