package vertical

import "context"

// Repository provides access to the persisted vertical catalog.
// The catalog is written only by the migration seed; normal operation is read-only.
type Repository interface {
	// IDsByCodes resolves catalog codes to their row IDs.
	IDsByCodes(ctx context.Context, codes []Code) ([]uint, error)

	// Seed inserts any catalog entries missing from the store. Idempotent.
	Seed(ctx context.Context) error
}
