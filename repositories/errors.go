package repositories

import "errors"

// ErrNotFound is returned by every repository lookup miss. Services translate
// it into their own not-found errors at the boundary.
var ErrNotFound = errors.New("record not found")
