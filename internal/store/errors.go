package store

import "errors"

// ErrNotFound is returned when no team has the requested id.
var ErrNotFound = errors.New("team not found")
