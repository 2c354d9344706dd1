package article

import "errors"

var (
	// ErrNotFound indicates the article does not exist.
	ErrNotFound = errors.New("article not found")
)
