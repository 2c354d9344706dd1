package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gazette-press/gazette/internal/domain/plan"
	"github.com/gazette-press/gazette/internal/domain/vertical"
	"github.com/gazette-press/gazette/internal/infrastructure/persistence/mappers"
	"github.com/gazette-press/gazette/internal/infrastructure/persistence/models"
	"github.com/gazette-press/gazette/internal/shared/db"
	"github.com/gazette-press/gazette/internal/shared/logger"
	"github.com/gazette-press/gazette/internal/shared/mapper"
)

// PlanRepository implements the plan repository interface.
type PlanRepository struct {
	db        *gorm.DB
	mapper    mappers.PlanMapper
	verticals vertical.Repository
	logger    logger.Interface
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(database *gorm.DB, verticals vertical.Repository, logger logger.Interface) plan.Repository {
	return &PlanRepository{
		db:        database,
		mapper:    mappers.NewPlanMapper(),
		verticals: verticals,
		logger:    logger,
	}
}

// Create creates a new plan
func (r *PlanRepository) Create(ctx context.Context, p *plan.Plan) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to map plan entity: %w", err)
	}

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create plan in database", "account_id", model.AccountID, "error", err)
		return fmt.Errorf("failed to create plan: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set plan ID: %w", err)
	}

	if err := r.replaceVerticals(ctx, model, p.Verticals()); err != nil {
		return err
	}

	r.logger.Infow("plan created", "id", model.ID, "account_id", model.AccountID)
	return nil
}

// GetByID retrieves a plan by ID
func (r *PlanRepository) GetByID(ctx context.Context, id uint) (*plan.Plan, error) {
	return r.getOne(ctx, "id = ?", id)
}

// GetByUUID retrieves a plan by its public identifier
func (r *PlanRepository) GetByUUID(ctx context.Context, uuid string) (*plan.Plan, error) {
	return r.getOne(ctx, "uuid = ?", uuid)
}

// GetByAccountID retrieves the plan owned by an account
func (r *PlanRepository) GetByAccountID(ctx context.Context, accountID uint) (*plan.Plan, error) {
	return r.getOne(ctx, "account_id = ?", accountID)
}

func (r *PlanRepository) getOne(ctx context.Context, query string, arg any) (*plan.Plan, error) {
	var model models.PlanModel

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Preload("Verticals").Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, plan.ErrNotFound
		}
		r.logger.Errorw("failed to get plan", "query", query, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map plan: %w", err)
	}
	return entity, nil
}

// Update updates a plan's tier and vertical associations
func (r *PlanRepository) Update(ctx context.Context, p *plan.Plan) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to map plan entity: %w", err)
	}

	conn := db.GetTxFromContext(ctx, r.db)
	result := conn.Model(&models.PlanModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"tier":       model.Tier,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update plan", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update plan: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return plan.ErrNotFound
	}

	if err := r.replaceVerticals(ctx, model, p.Verticals()); err != nil {
		return err
	}

	r.logger.Infow("plan updated", "id", model.ID, "tier", model.Tier)
	return nil
}

// List retrieves a paginated list of plans
func (r *PlanRepository) List(ctx context.Context, filter plan.ListFilter, offset, limit int) ([]*plan.Plan, int64, error) {
	var planModels []*models.PlanModel
	var total int64

	conn := db.GetTxFromContext(ctx, r.db)
	query := conn.Model(&models.PlanModel{})

	if filter.AccountID != nil {
		query = query.Where("account_id = ?", *filter.AccountID)
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count plans", "error", err)
		return nil, 0, fmt.Errorf("failed to count plans: %w", err)
	}

	if err := query.Preload("Verticals").Order("id").Offset(offset).Limit(limit).Find(&planModels).Error; err != nil {
		r.logger.Errorw("failed to list plans", "error", err)
		return nil, 0, fmt.Errorf("failed to list plans: %w", err)
	}

	entities, err := r.mapper.ToEntities(planModels)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map plans: %w", err)
	}

	return entities, total, nil
}

func (r *PlanRepository) replaceVerticals(ctx context.Context, model *models.PlanModel, codes []vertical.Code) error {
	ids, err := r.verticals.IDsByCodes(ctx, codes)
	if err != nil {
		return err
	}

	conn := db.GetTxFromContext(ctx, r.db)
	assoc := conn.Model(model).Association("Verticals")

	if len(ids) == 0 {
		if err := assoc.Clear(); err != nil {
			r.logger.Errorw("failed to clear plan verticals", "id", model.ID, "error", err)
			return fmt.Errorf("failed to clear plan verticals: %w", err)
		}
		return nil
	}

	refs := mapper.MapSlice(ids, func(id uint) models.VerticalModel {
		return models.VerticalModel{ID: id}
	})
	if err := assoc.Replace(&refs); err != nil {
		r.logger.Errorw("failed to replace plan verticals", "id", model.ID, "error", err)
		return fmt.Errorf("failed to replace plan verticals: %w", err)
	}
	return nil
}
