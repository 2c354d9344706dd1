package plan

import "errors"

// ErrNotFound is returned when a plan does not exist.
var ErrNotFound = errors.New("plan not found")
