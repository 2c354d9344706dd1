package mappers

import (
	"fmt"

	"github.com/gazette-press/gazette/internal/domain/plan"
	"github.com/gazette-press/gazette/internal/infrastructure/persistence/models"
	"github.com/gazette-press/gazette/internal/shared/mapper"
)

// PlanMapper handles the conversion between domain entities and persistence models.
// Vertical associations on the model side are managed by the repository; ToModel
// only maps scalar columns.
type PlanMapper interface {
	ToEntity(model *models.PlanModel) (*plan.Plan, error)
	ToModel(entity *plan.Plan) (*models.PlanModel, error)
	ToEntities(models []*models.PlanModel) ([]*plan.Plan, error)
}

type PlanMapperImpl struct{}

func NewPlanMapper() PlanMapper {
	return &PlanMapperImpl{}
}

func (m *PlanMapperImpl) ToEntity(model *models.PlanModel) (*plan.Plan, error) {
	if model == nil {
		return nil, nil
	}

	tier, err := plan.ParseTier(model.Tier)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tier: %w", err)
	}

	verticals, err := ToVerticalCodes(model.Verticals)
	if err != nil {
		return nil, err
	}

	entity, err := plan.Reconstruct(
		model.ID,
		model.UUID,
		model.AccountID,
		tier,
		verticals,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plan entity: %w", err)
	}

	return entity, nil
}

func (m *PlanMapperImpl) ToModel(entity *plan.Plan) (*models.PlanModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.PlanModel{
		ID:        entity.ID(),
		UUID:      entity.UUID(),
		AccountID: entity.AccountID(),
		Tier:      entity.Tier().String(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *PlanMapperImpl) ToEntities(modelList []*models.PlanModel) ([]*plan.Plan, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.PlanModel) uint { return model.ID })
}
