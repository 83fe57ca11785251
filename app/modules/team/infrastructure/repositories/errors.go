package teamdb

import "errors"

// ErrNotFound indicates the requested team does not exist.
var ErrNotFound = errors.New("team not found")
