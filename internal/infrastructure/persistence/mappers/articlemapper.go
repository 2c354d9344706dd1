package mappers

import (
	"fmt"

	"github.com/gazette-press/gazette/internal/domain/article"
	"github.com/gazette-press/gazette/internal/infrastructure/persistence/models"
	"github.com/gazette-press/gazette/internal/shared/mapper"
)

// ArticleMapper handles the conversion between domain entities and persistence models.
// Vertical associations on the model side are managed by the repository; ToModel
// only maps scalar columns.
type ArticleMapper interface {
	ToEntity(model *models.ArticleModel) (*article.Article, error)
	ToModel(entity *article.Article) (*models.ArticleModel, error)
	ToEntities(models []*models.ArticleModel) ([]*article.Article, error)
}

type ArticleMapperImpl struct{}

func NewArticleMapper() ArticleMapper {
	return &ArticleMapperImpl{}
}

func (m *ArticleMapperImpl) ToEntity(model *models.ArticleModel) (*article.Article, error) {
	if model == nil {
		return nil, nil
	}

	status, err := article.ParseStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to parse status: %w", err)
	}

	imageStatus, err := article.ParseImageStatus(model.ImageStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to parse image status: %w", err)
	}

	verticals, err := ToVerticalCodes(model.Verticals)
	if err != nil {
		return nil, err
	}

	entity, err := article.Reconstruct(
		model.ID,
		model.UUID,
		model.Title,
		model.Subtitle,
		model.Content,
		model.PublishAt,
		status,
		model.ImageKey,
		imageStatus,
		model.Restricted,
		model.AuthorID,
		verticals,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct article entity: %w", err)
	}

	return entity, nil
}

func (m *ArticleMapperImpl) ToModel(entity *article.Article) (*models.ArticleModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ArticleModel{
		ID:          entity.ID(),
		UUID:        entity.UUID(),
		Title:       entity.Title(),
		Subtitle:    entity.Subtitle(),
		Content:     entity.Content(),
		PublishAt:   entity.PublishAt(),
		Status:      entity.Status().String(),
		ImageKey:    entity.ImageKey(),
		ImageStatus: entity.ImageStatus().String(),
		Restricted:  entity.Restricted(),
		AuthorID:    entity.AuthorID(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *ArticleMapperImpl) ToEntities(modelList []*models.ArticleModel) ([]*article.Article, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.ArticleModel) uint { return model.ID })
}
