package guidedb

import "errors"

var (
	// ErrNotFound indicates the requested guide does not exist.
	ErrNotFound = errors.New("guide not found")

	// ErrNoRowsAffected indicates an UPDATE matched no rows.
	ErrNoRowsAffected = errors.New("no rows affected")
)
