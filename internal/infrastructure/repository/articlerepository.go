package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/gazette-press/gazette/internal/domain/article"
	"github.com/gazette-press/gazette/internal/domain/vertical"
	"github.com/gazette-press/gazette/internal/infrastructure/persistence/mappers"
	"github.com/gazette-press/gazette/internal/infrastructure/persistence/models"
	"github.com/gazette-press/gazette/internal/shared/constants"
	"github.com/gazette-press/gazette/internal/shared/db"
	"github.com/gazette-press/gazette/internal/shared/logger"
	"github.com/gazette-press/gazette/internal/shared/mapper"
)

// ArticleRepository implements the article repository interface.
type ArticleRepository struct {
	db        *gorm.DB
	mapper    mappers.ArticleMapper
	verticals vertical.Repository
	logger    logger.Interface
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(database *gorm.DB, verticals vertical.Repository, logger logger.Interface) article.Repository {
	return &ArticleRepository{
		db:        database,
		mapper:    mappers.NewArticleMapper(),
		verticals: verticals,
		logger:    logger,
	}
}

// Create creates a new article
func (r *ArticleRepository) Create(ctx context.Context, a *article.Article) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		return fmt.Errorf("failed to map article entity: %w", err)
	}

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create article in database", "error", err)
		return fmt.Errorf("failed to create article: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set article ID: %w", err)
	}

	if err := r.replaceVerticals(ctx, model, a.Verticals()); err != nil {
		return err
	}

	r.logger.Infow("article created", "id", model.ID, "title", model.Title)
	return nil
}

// GetByID retrieves an article by ID
func (r *ArticleRepository) GetByID(ctx context.Context, id uint) (*article.Article, error) {
	return r.getOne(ctx, "id = ?", id)
}

// GetByUUID retrieves an article by its public identifier
func (r *ArticleRepository) GetByUUID(ctx context.Context, uuid string) (*article.Article, error) {
	return r.getOne(ctx, "uuid = ?", uuid)
}

func (r *ArticleRepository) getOne(ctx context.Context, query string, arg any) (*article.Article, error) {
	var model models.ArticleModel

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Preload("Verticals").Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, article.ErrNotFound
		}
		r.logger.Errorw("failed to get article", "query", query, "error", err)
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map article: %w", err)
	}
	return entity, nil
}

// Update updates an article's editable columns and vertical associations.
// Status is deliberately excluded; promotion and demotion go through
// UpdateStatus so concurrent edits cannot resurrect a stale status.
func (r *ArticleRepository) Update(ctx context.Context, a *article.Article) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		return fmt.Errorf("failed to map article entity: %w", err)
	}

	conn := db.GetTxFromContext(ctx, r.db)
	result := conn.Model(&models.ArticleModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":      model.Title,
			"subtitle":   model.Subtitle,
			"content":    model.Content,
			"publish_at": model.PublishAt,
			"restricted": model.Restricted,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update article", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update article: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return article.ErrNotFound
	}

	if err := r.replaceVerticals(ctx, model, a.Verticals()); err != nil {
		return err
	}

	r.logger.Infow("article updated", "id", model.ID)
	return nil
}

// UpdateStatus writes the status column only
func (r *ArticleRepository) UpdateStatus(ctx context.Context, id uint, status article.Status) error {
	conn := db.GetTxFromContext(ctx, r.db)
	result := conn.Model(&models.ArticleModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		r.logger.Errorw("failed to update article status", "id", id, "error", result.Error)
		return fmt.Errorf("failed to update article status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return article.ErrNotFound
	}

	r.logger.Infow("article status updated", "id", id, "status", status)
	return nil
}

// UpdateImage writes the image key and processing status columns only
func (r *ArticleRepository) UpdateImage(ctx context.Context, id uint, key string, status article.ImageStatus) error {
	conn := db.GetTxFromContext(ctx, r.db)
	result := conn.Model(&models.ArticleModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"image_key":    key,
			"image_status": status.String(),
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update article image", "id", id, "error", result.Error)
		return fmt.Errorf("failed to update article image: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return article.ErrNotFound
	}

	return nil
}

// Delete soft deletes an article
func (r *ArticleRepository) Delete(ctx context.Context, id uint) error {
	conn := db.GetTxFromContext(ctx, r.db)
	result := conn.Delete(&models.ArticleModel{}, id)

	if result.Error != nil {
		r.logger.Errorw("failed to delete article", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete article: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return article.ErrNotFound
	}

	r.logger.Infow("article deleted", "id", id)
	return nil
}

// List retrieves a paginated list of articles
func (r *ArticleRepository) List(ctx context.Context, filter article.ListFilter, offset, limit int) ([]*article.Article, int64, error) {
	var articleModels []*models.ArticleModel
	var total int64

	conn := db.GetTxFromContext(ctx, r.db)
	query := conn.Model(&models.ArticleModel{})

	if filter.AuthorID != nil {
		query = query.Where("author_id = ?", *filter.AuthorID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Audience != nil {
		query = r.applyAudience(query, filter.Audience)
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count articles", "error", err)
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	if err := query.Preload("Verticals").Order("publish_at DESC").Offset(offset).Limit(limit).Find(&articleModels).Error; err != nil {
		r.logger.Errorw("failed to list articles", "error", err)
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}

	entities, err := r.mapper.ToEntities(articleModels)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map articles: %w", err)
	}

	return entities, total, nil
}

// ListDue returns drafts whose publish timestamp is at or before now.
func (r *ArticleRepository) ListDue(ctx context.Context, now time.Time) ([]*article.Article, error) {
	var articleModels []*models.ArticleModel

	conn := db.GetTxFromContext(ctx, r.db)
	err := conn.Preload("Verticals").
		Where("status = ?", article.StatusDraft.String()).
		Where("publish_at <= ?", now).
		Order("publish_at").
		Find(&articleModels).Error
	if err != nil {
		r.logger.Errorw("failed to list due articles", "error", err)
		return nil, fmt.Errorf("failed to list due articles: %w", err)
	}

	entities, err := r.mapper.ToEntities(articleModels)
	if err != nil {
		return nil, fmt.Errorf("failed to map due articles: %w", err)
	}
	return entities, nil
}

// applyAudience narrows the listing to what a reader's plan covers:
// non-restricted articles always, restricted ones only for a Pro plan
// with at least one matching vertical.
func (r *ArticleRepository) applyAudience(query *gorm.DB, audience *article.Audience) *gorm.DB {
	if !audience.IncludeRestricted || len(audience.Verticals) == 0 {
		return query.Where("restricted = ?", false)
	}

	codes := mapper.MapSlice(audience.Verticals, func(c vertical.Code) string { return c.String() })

	matching := fmt.Sprintf(
		"SELECT av.article_id FROM %s av JOIN %s v ON v.id = av.vertical_id WHERE v.code IN ?",
		constants.TableArticleVerticals, constants.TableVerticals,
	)
	return query.Where("restricted = ? OR id IN ("+matching+")", false, codes)
}

func (r *ArticleRepository) replaceVerticals(ctx context.Context, model *models.ArticleModel, codes []vertical.Code) error {
	ids, err := r.verticals.IDsByCodes(ctx, codes)
	if err != nil {
		return err
	}

	conn := db.GetTxFromContext(ctx, r.db)
	assoc := conn.Model(model).Association("Verticals")

	if len(ids) == 0 {
		if err := assoc.Clear(); err != nil {
			r.logger.Errorw("failed to clear article verticals", "id", model.ID, "error", err)
			return fmt.Errorf("failed to clear article verticals: %w", err)
		}
		return nil
	}

	refs := mapper.MapSlice(ids, func(id uint) models.VerticalModel {
		return models.VerticalModel{ID: id}
	})
	if err := assoc.Replace(&refs); err != nil {
		r.logger.Errorw("failed to replace article verticals", "id", model.ID, "error", err)
		return fmt.Errorf("failed to replace article verticals: %w", err)
	}
	return nil
}
