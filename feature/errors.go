package feature

import "errors"

// ErrNotFound indicates a catalog or id lookup missed.
var ErrNotFound = errors.New("feature: not found")
