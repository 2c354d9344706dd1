package models

import (
	"time"

	"github.com/gazette-press/gazette/internal/shared/constants"
)

// VerticalModel represents the database persistence model for the vertical catalog.
type VerticalModel struct {
	ID        uint   `gorm:"primarykey"`
	Code      string `gorm:"uniqueIndex;not null;size:1"`
	Name      string `gorm:"uniqueIndex;not null;size:50"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (VerticalModel) TableName() string {
	return constants.TableVerticals
}
