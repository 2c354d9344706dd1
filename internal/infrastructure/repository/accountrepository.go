package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gazette-press/gazette/internal/domain/account"
	"github.com/gazette-press/gazette/internal/domain/plan"
	"github.com/gazette-press/gazette/internal/domain/vertical"
	"github.com/gazette-press/gazette/internal/infrastructure/persistence/mappers"
	"github.com/gazette-press/gazette/internal/infrastructure/persistence/models"
	"github.com/gazette-press/gazette/internal/shared/constants"
	"github.com/gazette-press/gazette/internal/shared/db"
	"github.com/gazette-press/gazette/internal/shared/logger"
	"github.com/gazette-press/gazette/internal/shared/mapper"
)

// AccountRepository implements the account repository interface.
type AccountRepository struct {
	db     *gorm.DB
	mapper mappers.AccountMapper
	logger logger.Interface
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(database *gorm.DB, logger logger.Interface) account.Repository {
	return &AccountRepository{
		db:     database,
		mapper: mappers.NewAccountMapper(),
		logger: logger,
	}
}

// Create creates a new account
func (r *AccountRepository) Create(ctx context.Context, acc *account.Account) error {
	model, err := r.mapper.ToModel(acc)
	if err != nil {
		return fmt.Errorf("failed to map account entity: %w", err)
	}

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create account in database", "error", err)
		return fmt.Errorf("failed to create account: %w", err)
	}

	if err := acc.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set account ID: %w", err)
	}

	r.logger.Infow("account created", "id", model.ID, "email", model.Email)
	return nil
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	return r.getOne(ctx, "id = ?", id)
}

// GetByUUID retrieves an account by its public identifier
func (r *AccountRepository) GetByUUID(ctx context.Context, uuid string) (*account.Account, error) {
	return r.getOne(ctx, "uuid = ?", uuid)
}

// GetByEmail retrieves an account by email
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	return r.getOne(ctx, "email = ?", email)
}

func (r *AccountRepository) getOne(ctx context.Context, query string, arg any) (*account.Account, error) {
	var model models.AccountModel

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, account.ErrNotFound
		}
		r.logger.Errorw("failed to get account", "query", query, "error", err)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map account: %w", err)
	}
	return entity, nil
}

// ExistsByEmail checks whether an account with the given email exists
func (r *AccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

// ExistsByUsername checks whether an account with the given username exists
func (r *AccountRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

func (r *AccountRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var count int64
	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Model(&models.AccountModel{}).Where(query, arg).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check account existence", "query", query, "error", err)
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return count > 0, nil
}

// Update updates an existing account
func (r *AccountRepository) Update(ctx context.Context, acc *account.Account) error {
	model, err := r.mapper.ToModel(acc)
	if err != nil {
		return fmt.Errorf("failed to map account entity: %w", err)
	}

	conn := db.GetTxFromContext(ctx, r.db)
	result := conn.Model(&models.AccountModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"username":      model.Username,
			"email":         model.Email,
			"password_hash": model.PasswordHash,
			"role":          model.Role,
			"updated_at":    model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update account", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update account: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return account.ErrNotFound
	}

	r.logger.Infow("account updated", "id", model.ID)
	return nil
}

// Delete soft deletes an account
func (r *AccountRepository) Delete(ctx context.Context, id uint) error {
	conn := db.GetTxFromContext(ctx, r.db)
	result := conn.Delete(&models.AccountModel{}, id)

	if result.Error != nil {
		r.logger.Errorw("failed to delete account", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete account: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return account.ErrNotFound
	}

	r.logger.Infow("account deleted", "id", id)
	return nil
}

// List retrieves a paginated list of accounts
func (r *AccountRepository) List(ctx context.Context, filter account.ListFilter, offset, limit int) ([]*account.Account, int64, error) {
	var accountModels []*models.AccountModel
	var total int64

	conn := db.GetTxFromContext(ctx, r.db)
	query := conn.Model(&models.AccountModel{})

	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Role != nil {
		query = query.Where("role = ?", filter.Role.String())
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count accounts", "error", err)
		return nil, 0, fmt.Errorf("failed to count accounts: %w", err)
	}

	if err := query.Order("id").Offset(offset).Limit(limit).Find(&accountModels).Error; err != nil {
		r.logger.Errorw("failed to list accounts", "error", err)
		return nil, 0, fmt.Errorf("failed to list accounts: %w", err)
	}

	entities, err := r.mapper.ToEntities(accountModels)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map accounts: %w", err)
	}

	return entities, total, nil
}

// ReaderEmails resolves the reader audience for article notifications.
func (r *AccountRepository) ReaderEmails(ctx context.Context, verticals []vertical.Code) ([]string, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	var emails []string

	if len(verticals) == 0 {
		if err := conn.Model(&models.AccountModel{}).
			Where("role = ?", account.RoleReader.String()).
			Pluck("email", &emails).Error; err != nil {
			r.logger.Errorw("failed to list reader emails", "error", err)
			return nil, fmt.Errorf("failed to list reader emails: %w", err)
		}
		return emails, nil
	}

	codes := mapper.MapSlice(verticals, func(c vertical.Code) string { return c.String() })

	err := conn.Model(&models.AccountModel{}).
		Distinct("accounts.email").
		Joins(fmt.Sprintf("JOIN %s p ON p.account_id = accounts.id", constants.TablePlans)).
		Joins(fmt.Sprintf("JOIN %s pv ON pv.plan_id = p.id", constants.TablePlanVerticals)).
		Joins(fmt.Sprintf("JOIN %s v ON v.id = pv.vertical_id", constants.TableVerticals)).
		Where("accounts.role = ?", account.RoleReader.String()).
		Where("p.tier = ?", plan.TierPro.String()).
		Where("v.code IN ?", codes).
		Pluck("accounts.email", &emails).Error
	if err != nil {
		r.logger.Errorw("failed to resolve qualified reader emails", "error", err)
		return nil, fmt.Errorf("failed to resolve reader emails: %w", err)
	}

	return emails, nil
}
