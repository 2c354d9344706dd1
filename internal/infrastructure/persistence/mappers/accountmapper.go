package mappers

import (
	"fmt"

	"github.com/gazette-press/gazette/internal/domain/account"
	"github.com/gazette-press/gazette/internal/infrastructure/persistence/models"
	"github.com/gazette-press/gazette/internal/shared/mapper"
)

// AccountMapper handles the conversion between domain entities and persistence models
type AccountMapper interface {
	ToEntity(model *models.AccountModel) (*account.Account, error)
	ToModel(entity *account.Account) (*models.AccountModel, error)
	ToEntities(models []*models.AccountModel) ([]*account.Account, error)
}

type AccountMapperImpl struct{}

func NewAccountMapper() AccountMapper {
	return &AccountMapperImpl{}
}

func (m *AccountMapperImpl) ToEntity(model *models.AccountModel) (*account.Account, error) {
	if model == nil {
		return nil, nil
	}

	role, err := account.ParseRole(model.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to parse role: %w", err)
	}

	entity, err := account.Reconstruct(
		model.ID,
		model.UUID,
		model.Username,
		model.Email,
		model.PasswordHash,
		role,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct account entity: %w", err)
	}

	return entity, nil
}

func (m *AccountMapperImpl) ToModel(entity *account.Account) (*models.AccountModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.AccountModel{
		ID:           entity.ID(),
		UUID:         entity.UUID(),
		Username:     entity.Username(),
		Email:        entity.Email(),
		PasswordHash: entity.PasswordHash(),
		Role:         entity.Role().String(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}

func (m *AccountMapperImpl) ToEntities(modelList []*models.AccountModel) ([]*account.Account, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.AccountModel) uint { return model.ID })
}
