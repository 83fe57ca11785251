package treasurydb

import "errors"

// ErrNotFound indicates the requested fee does not exist.
var ErrNotFound = errors.New("treasury record not found")
