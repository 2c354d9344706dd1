package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/gazette-press/gazette/internal/shared/constants"
)

// AccountModel represents the database persistence model for accounts.
// This is the anti-corruption layer between domain and database.
type AccountModel struct {
	ID           uint   `gorm:"primarykey"`
	UUID         string `gorm:"uniqueIndex;not null;size:36"`
	Username     string `gorm:"uniqueIndex;not null;size:100"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string `gorm:"not null;size:255"`
	Role         string `gorm:"not null;default:reader;size:20;index:idx_accounts_role"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (AccountModel) TableName() string {
	return constants.TableAccounts
}
