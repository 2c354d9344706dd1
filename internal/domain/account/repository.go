package account

import (
	"context"

	"github.com/gazette-press/gazette/internal/domain/vertical"
)

// ListFilter scopes account listings.
type ListFilter struct {
	// ID restricts the listing to a single account (non-admin callers).
	ID *uint
	// Role restricts the listing to one role.
	Role *Role
}

// Repository is the persistence port for accounts.
type Repository interface {
	Create(ctx context.Context, acc *Account) error
	GetByID(ctx context.Context, id uint) (*Account, error)
	GetByUUID(ctx context.Context, uuid string) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, acc *Account) error
	// Delete removes the account; owned articles and plan are removed by
	// referential cascade.
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter, offset, limit int) ([]*Account, int64, error)

	// ReaderEmails resolves the reader audience for article notifications.
	// With no verticals every reader qualifies; with verticals only Pro-tier
	// readers whose plan verticals intersect the given set qualify.
	ReaderEmails(ctx context.Context, verticals []vertical.Code) ([]string, error)
}
