// Package dto defines the request and response shapes of the plan context.
package dto

import (
	"time"

	"github.com/gazette-press/gazette/internal/domain/plan"
	"github.com/gazette-press/gazette/internal/domain/vertical"
	"github.com/gazette-press/gazette/internal/shared/mapper"
)

type UpdatePlanRequest struct {
	Tier      string   `json:"tier" binding:"required"`
	Verticals []string `json:"verticals"`
}

type ListPlansRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

type PlanResponse struct {
	ID            string    `json:"id"`
	AccountID     string    `json:"account_id"`
	Tier          string    `json:"tier"`
	TierLabel     string    `json:"tier_label"`
	Verticals     []string  `json:"verticals"`
	VerticalNames []string  `json:"vertical_names"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type PlanListResponse struct {
	Plans    []PlanResponse `json:"plans"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// ToPlanResponse maps a plan entity to its response shape.
func ToPlanResponse(p *plan.Plan, accountUUID string) PlanResponse {
	return PlanResponse{
		ID:            p.UUID(),
		AccountID:     accountUUID,
		Tier:          p.Tier().String(),
		TierLabel:     p.Tier().Label(),
		Verticals:     mapper.MapSlice(p.Verticals(), func(c vertical.Code) string { return c.String() }),
		VerticalNames: vertical.NamesOf(p.Verticals()),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}
