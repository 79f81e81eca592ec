package hexmap

import "errors"

// Sentinel errors returned by the hexmap package, matching the spec's error
// kinds for C4/C5 append and lookup operations.
var (
	// ErrNoSuchHex indicates an append or lookup was made against a hex not
	// present in the map.
	ErrNoSuchHex = errors.New("hexmap: no such hex")

	// ErrDuplicateTerrain indicates an attempt to add a second Terrain
	// feature to a hex or edge that already has one.
	ErrDuplicateTerrain = errors.New("hexmap: hex or edge already has a terrain feature")

	// ErrNotFound indicates FindByID missed.
	ErrNotFound = errors.New("hexmap: feature id not found")
)
