package suggestiondb

import "errors"

var (
	// ErrNotFound indicates the requested suggestion or vote does not exist.
	ErrNotFound = errors.New("suggestion record not found")

	// ErrNoRowsAffected indicates an UPDATE matched no rows.
	ErrNoRowsAffected = errors.New("no rows affected")
)
