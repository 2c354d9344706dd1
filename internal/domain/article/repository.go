package article

import (
	"context"
	"time"

	"github.com/gazette-press/gazette/internal/domain/vertical"
)

// Audience narrows listings to what a reader's plan entitles them to see.
// A nil Audience means no plan-based narrowing (staff access).
type Audience struct {
	// IncludeRestricted admits restricted articles matching Verticals.
	IncludeRestricted bool
	// Verticals are the reader's plan verticals, used to match restricted
	// articles when IncludeRestricted is set.
	Verticals []vertical.Code
}

// ListFilter describes optional filtering criteria for article queries.
type ListFilter struct {
	AuthorID *uint
	Status   *Status
	Audience *Audience
}

// Repository defines the persistence port for articles.
type Repository interface {
	Create(ctx context.Context, a *Article) error
	GetByID(ctx context.Context, id uint) (*Article, error)
	GetByUUID(ctx context.Context, uuid string) (*Article, error)
	Update(ctx context.Context, a *Article) error
	// UpdateStatus writes the status column only, leaving other fields
	// untouched. Used for promotion and demotion.
	UpdateStatus(ctx context.Context, id uint, status Status) error
	// UpdateImage writes the image key and processing status columns only.
	UpdateImage(ctx context.Context, id uint, key string, status ImageStatus) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter, offset, limit int) ([]*Article, int64, error)
	// ListDue returns drafts whose publish timestamp is at or before now.
	ListDue(ctx context.Context, now time.Time) ([]*Article, error)
}
