// Package domainerr defines the kinds of business failure an operation can report.
//
// Every failure carries a user-facing message and unwraps to exactly one kind, so
// callers can branch with errors.Is and render Error() directly.
package domainerr

import (
	"errors"
	"fmt"
)

// Kinds.
var (
	// ErrNotFound indicates a referenced entity does not exist, or does not belong
	// to the claimed owner.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the request would violate a state invariant.
	ErrConflict = errors.New("conflict")

	// ErrInvalid indicates the request is malformed.
	ErrInvalid = errors.New("invalid input")
)

// Error is a business failure with a user-facing message.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NotFound builds an ErrNotFound failure.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict builds an ErrConflict failure.
func Conflict(format string, args ...any) *Error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

// Invalid builds an ErrInvalid failure.
func Invalid(format string, args ...any) *Error {
	return &Error{Kind: ErrInvalid, Message: fmt.Sprintf(format, args...)}
}

// IsDomain reports whether err is, or wraps, a business failure.
func IsDomain(err error) bool {
	var de *Error
	return errors.As(err, &de)
}
