package recruitmentdb

import "errors"

var (
	// ErrNotFound indicates the requested application does not exist.
	ErrNotFound = errors.New("recruitment application not found")

	// ErrNoRowsAffected indicates an UPDATE matched no rows.
	ErrNoRowsAffected = errors.New("no rows affected")
)
