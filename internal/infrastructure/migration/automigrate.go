package migration

import (
	"github.com/gazette-press/gazette/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model the automigrate strategy
// manages. Join tables are created through the declared associations.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.AccountModel{},
		&models.VerticalModel{},
		&models.PlanModel{},
		&models.ArticleModel{},
	}
}
