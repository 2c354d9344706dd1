// Package seeds populates reference data after migration.
package seeds

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gazette-press/gazette/internal/domain/account"
	"github.com/gazette-press/gazette/internal/domain/vertical"
	"github.com/gazette-press/gazette/internal/infrastructure/persistence/models"
	"github.com/gazette-press/gazette/internal/shared/logger"
)

// Default admin credentials for a fresh install. The password must be
// changed after first login.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminEmail    = "admin@gazette.local"
	DefaultAdminPassword = "changeme123"
)

// SeedVerticals inserts the vertical catalog, skipping existing rows.
func SeedVerticals(db *gorm.DB) error {
	for _, code := range vertical.Catalog() {
		row := models.VerticalModel{Code: code.String(), Name: code.Name()}
		if err := db.Where(models.VerticalModel{Code: row.Code}).
			FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("failed to seed vertical %s: %w", row.Code, err)
		}
	}

	logger.Info("vertical catalog seeded", "count", len(vertical.Catalog()))
	return nil
}

// SeedDefaultAdmin creates the bootstrap admin account if no admin exists.
func SeedDefaultAdmin(db *gorm.DB, hasher account.PasswordHasher) error {
	var count int64
	if err := db.Model(&models.AccountModel{}).
		Where("role = ?", account.RoleAdmin.String()).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count admin accounts: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := hasher.Hash(DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	admin := models.AccountModel{
		UUID:         uuid.NewString(),
		Username:     DefaultAdminUsername,
		Email:        DefaultAdminEmail,
		PasswordHash: hash,
		Role:         account.RoleAdmin.String(),
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	logger.Warn("default admin account created, change its password",
		"email", DefaultAdminEmail)
	return nil
}

// Run applies all seeds in order.
func Run(db *gorm.DB, hasher account.PasswordHasher) error {
	if err := SeedVerticals(db); err != nil {
		return err
	}
	return SeedDefaultAdmin(db, hasher)
}
