package plan

import "context"

// ListFilter scopes plan listings.
type ListFilter struct {
	// AccountID restricts the listing to one account's plan (non-admin callers).
	AccountID *uint
}

// Repository is the persistence port for plans. Plans are never created or
// deleted through an API operation: creation happens inside the reader
// registration transaction and deletion rides the account cascade.
type Repository interface {
	Create(ctx context.Context, p *Plan) error
	GetByID(ctx context.Context, id uint) (*Plan, error)
	GetByUUID(ctx context.Context, uuid string) (*Plan, error)
	GetByAccountID(ctx context.Context, accountID uint) (*Plan, error)
	Update(ctx context.Context, p *Plan) error
	List(ctx context.Context, filter ListFilter, offset, limit int) ([]*Plan, int64, error)
}
