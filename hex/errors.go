package hex

import "errors"

// Sentinel errors returned by the hex package.
var (
	// ErrBadCoordinateSyntax indicates Parse received a string that does not
	// match the "q,r" grammar.
	ErrBadCoordinateSyntax = errors.New("hex: coordinate string does not match q,r syntax")

	// ErrNotNeighbour indicates DirectionOf was called on two hexes that are
	// not direct neighbours.
	ErrNotNeighbour = errors.New("hex: hexes are not neighbours")

	// ErrBadDirection indicates a direction outside 0..5 was supplied.
	ErrBadDirection = errors.New("hex: direction out of range 0..5")
)
