package eventdb

import "errors"

// ErrNotFound indicates the requested event does not exist.
var ErrNotFound = errors.New("event not found")
