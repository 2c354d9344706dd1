package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/gazette-press/gazette/internal/shared/constants"
)

// ArticleModel represents the database persistence model for articles.
type ArticleModel struct {
	ID          uint            `gorm:"primarykey"`
	UUID        string          `gorm:"uniqueIndex;not null;size:36"`
	Title       string          `gorm:"not null;size:50"`
	Subtitle    string          `gorm:"not null;size:100"`
	Content     string          `gorm:"not null;type:longtext"`
	PublishAt   time.Time       `gorm:"not null;index:idx_articles_status_publish_at,priority:2"`
	Status      string          `gorm:"not null;default:draft;size:20;index:idx_articles_status_publish_at,priority:1"`
	ImageKey    string          `gorm:"size:500"`
	ImageStatus string          `gorm:"not null;default:pending;size:20"`
	Restricted  bool            `gorm:"not null;default:false"`
	AuthorID    uint            `gorm:"not null;index:idx_articles_author"`
	Verticals   []VerticalModel `gorm:"many2many:article_verticals;joinForeignKey:ArticleID;joinReferences:VerticalID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ArticleModel) TableName() string {
	return constants.TableArticles
}
