package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gazette-press/gazette/internal/domain/vertical"
	"github.com/gazette-press/gazette/internal/infrastructure/persistence/models"
	"github.com/gazette-press/gazette/internal/shared/db"
	"github.com/gazette-press/gazette/internal/shared/logger"
	"github.com/gazette-press/gazette/internal/shared/mapper"
)

// VerticalRepository implements the vertical catalog repository.
type VerticalRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewVerticalRepository creates a new vertical repository
func NewVerticalRepository(database *gorm.DB, logger logger.Interface) vertical.Repository {
	return &VerticalRepository{
		db:     database,
		logger: logger,
	}
}

// IDsByCodes resolves catalog codes to their row IDs, preserving input order.
func (r *VerticalRepository) IDsByCodes(ctx context.Context, codes []vertical.Code) ([]uint, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	raw := mapper.MapSlice(codes, func(c vertical.Code) string { return c.String() })

	var rows []models.VerticalModel
	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Where("code IN ?", raw).Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to query verticals by code", "codes", raw, "error", err)
		return nil, fmt.Errorf("failed to query verticals: %w", err)
	}

	byCode := make(map[string]uint, len(rows))
	for _, row := range rows {
		byCode[row.Code] = row.ID
	}

	ids := make([]uint, 0, len(codes))
	for _, c := range codes {
		id, ok := byCode[c.String()]
		if !ok {
			return nil, fmt.Errorf("vertical %q is not in the catalog", c)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Seed inserts the vertical catalog, skipping rows that already exist.
func (r *VerticalRepository) Seed(ctx context.Context) error {
	rows := mapper.MapSlice(vertical.Catalog(), func(c vertical.Code) models.VerticalModel {
		return models.VerticalModel{Code: c.String(), Name: c.Name()}
	})

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		r.logger.Errorw("failed to seed vertical catalog", "error", err)
		return fmt.Errorf("failed to seed verticals: %w", err)
	}

	r.logger.Infow("vertical catalog seeded", "count", len(rows))
	return nil
}
