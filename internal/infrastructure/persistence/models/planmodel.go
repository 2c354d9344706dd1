package models

import (
	"time"

	"github.com/gazette-press/gazette/internal/shared/constants"
)

// PlanModel represents the database persistence model for subscription plans.
// Each account owns exactly one plan row.
type PlanModel struct {
	ID        uint            `gorm:"primarykey"`
	UUID      string          `gorm:"uniqueIndex;not null;size:36"`
	AccountID uint            `gorm:"uniqueIndex;not null"`
	Tier      string          `gorm:"not null;default:info;size:20"`
	Verticals []VerticalModel `gorm:"many2many:plan_verticals;joinForeignKey:PlanID;joinReferences:VerticalID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return constants.TablePlans
}
