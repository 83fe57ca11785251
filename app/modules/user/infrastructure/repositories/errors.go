package userdb

import "errors"

// Sentinel errors for the user repository layer.
// They describe row presence only; the service layer decides what the caller sees.
var (
	// ErrNotFound indicates the requested user or character does not exist.
	ErrNotFound = errors.New("user record not found")

	// ErrNoRowsAffected indicates an UPDATE matched no rows.
	ErrNoRowsAffected = errors.New("no rows affected")
)
