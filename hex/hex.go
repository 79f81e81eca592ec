// Package hex implements the cube/axial coordinate algebra for a pointy-top
// hexagonal grid: neighbour lookup, direction algebra, canonical ordering,
// parsing, and pixel-projection helpers used by a renderer collaborator.
//
// Hex is a small immutable value object keyed only by (Q, R); it is safe to
// use as a map key and to pass by value, matching the source's cyclic-
// reference note: edges and other structures should hold hexes by value, not
// by pointer.
package hex

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Hex identifies a single cell of the board via axial coordinates (Q, R).
// The cube coordinate S is derived, never stored, preserving Q+R+S=0.
type Hex struct {
	Q, R int
}

// New constructs a Hex from axial coordinates.
func New(q, r int) Hex {
	return Hex{Q: q, R: r}
}

// S returns the derived cube coordinate -Q-R.
func (h Hex) S() int {
	return -h.Q - h.R
}

// String renders the hex in "q,r" form, the same grammar Parse accepts.
func (h Hex) String() string {
	return fmt.Sprintf("%d,%d", h.Q, h.R)
}

var coordSyntax = regexp.MustCompile(`^-?\d+,-?\d+$`)

// Parse parses a "q,r" string into a Hex. It fails with
// ErrBadCoordinateSyntax if the string does not match the grammar
// ^-?\d+,-?\d+$.
func Parse(s string) (Hex, error) {
	if !coordSyntax.MatchString(s) {
		return Hex{}, fmt.Errorf("%w: %q", ErrBadCoordinateSyntax, s)
	}
	comma := -1
	for i, c := range s {
		if c == ',' {
			comma = i
			break
		}
	}
	// coordSyntax guarantees exactly one comma and that both halves parse.
	q, err := strconv.Atoi(s[:comma])
	if err != nil {
		return Hex{}, fmt.Errorf("%w: %q", ErrBadCoordinateSyntax, s)
	}
	r, err := strconv.Atoi(s[comma+1:])
	if err != nil {
		return Hex{}, fmt.Errorf("%w: %q", ErrBadCoordinateSyntax, s)
	}
	return Hex{Q: q, R: r}, nil
}

// Direction names one of the six neighbours of a hex, clockwise starting at
// north-east for a pointy-top layout.
type Direction int

// The six directions, in the order the axial delta table below indexes them.
const (
	NE Direction = iota
	E
	SE
	SW
	W
	NW
)

// NumDirections is the number of distinct directions (6).
const NumDirections = 6

// deltas holds the axial (Δq, Δr) step for each Direction, indexed by
// Direction. Order and values are fixed by the spec: 0=(+1,-1), 1=(+1,0),
// 2=(0,+1), 3=(-1,+1), 4=(-1,0), 5=(0,-1).
var deltas = [NumDirections]Hex{
	{Q: 1, R: -1}, // NE
	{Q: 1, R: 0},  // E
	{Q: 0, R: 1},  // SE
	{Q: -1, R: 1}, // SW
	{Q: -1, R: 0}, // W
	{Q: 0, R: -1}, // NW
}

// Valid reports whether d is one of the six defined directions.
func (d Direction) Valid() bool {
	return d >= 0 && d < NumDirections
}

var directionNames = [NumDirections]string{"NE", "E", "SE", "SW", "W", "NW"}

// String renders d using its compass abbreviation, or a numeric fallback for
// an out-of-range value.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection parses either a compass abbreviation ("NE", case
// insensitive) or a decimal digit 0..5 into a Direction. It fails with
// ErrBadDirection otherwise.
func ParseDirection(s string) (Direction, error) {
	upper := strings.ToUpper(s)
	for d, name := range directionNames {
		if name == upper {
			return Direction(d), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && Direction(n).Valid() {
		return Direction(n), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDirection, s)
}

// Neighbour returns the hex adjacent to h in direction d. It panics if d is
// out of range; callers that accept untrusted direction values should check
// Direction.Valid first, or obtain the direction from ParseDirection, which
// reports an out-of-range value as ErrBadDirection.
func Neighbour(h Hex, d Direction) Hex {
	if !d.Valid() {
		panic(fmt.Sprintf("hex: invalid direction %d", int(d)))
	}
	delta := deltas[d]
	return Hex{Q: h.Q + delta.Q, R: h.R + delta.R}
}

// DirectionOf returns the direction from h1 to h2. It fails with
// ErrNotNeighbour if h2 is not a direct neighbour of h1.
func DirectionOf(h1, h2 Hex) (Direction, error) {
	dq, dr := h2.Q-h1.Q, h2.R-h1.R
	for d, delta := range deltas {
		if delta.Q == dq && delta.R == dr {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("%w: %v -> %v", ErrNotNeighbour, h1, h2)
}

// OrderedPair returns (h1, h2) sorted lexicographically by (Q, R), stable
// under permutation of the arguments.
func OrderedPair(h1, h2 Hex) (low, high Hex) {
	if less(h1, h2) {
		return h1, h2
	}
	return h2, h1
}

func less(a, b Hex) bool {
	if a.Q != b.Q {
		return a.Q < b.Q
	}
	return a.R < b.R
}

// Distance returns the hex-grid distance between two hexes (number of single
// steps on the shortest path between them).
func Distance(a, b Hex) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	return max3(dq, dr, ds) // equals (dq+dr+ds)/2 for valid cube coords
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func max3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

// Point is a 2-D pixel coordinate produced by the projection helpers below.
// These exist only so a renderer collaborator can place assets consistently
// with the edge indexing the core uses; nothing in this module draws a pixel.
type Point struct {
	X, Y float64
}

// PixelCenter returns the pixel-space centre of hex h for a pointy-top layout
// with the given hex size (centre-to-corner radius).
func PixelCenter(h Hex, size float64) Point {
	x := size * math.Sqrt(3) * (float64(h.Q) + float64(h.R)/2)
	y := size * 1.5 * float64(h.R)
	return Point{X: x, Y: y}
}

// Corners returns the six corners of hex h for a pointy-top layout, starting
// at angle -90+60*0 degrees and proceeding clockwise by 60 degrees per
// corner, matching the indexing EdgeCenters relies on.
func Corners(h Hex, size float64) [6]Point {
	center := PixelCenter(h, size)
	var pts [6]Point
	for k := 0; k < 6; k++ {
		angle := math.Pi / 180 * float64(60*k-90)
		pts[k] = Point{
			X: center.X + size*math.Cos(angle),
			Y: center.Y + size*math.Sin(angle),
		}
	}
	return pts
}

// EdgeCenters returns the midpoint of each consecutive corner pair of hex h,
// indexed 0..5 so that index d is the centre of EdgeByDirection(h, Direction(d)).
func EdgeCenters(h Hex, size float64) [6]Point {
	corners := Corners(h, size)
	var mids [6]Point
	for d := 0; d < 6; d++ {
		a := corners[d]
		b := corners[(d+1)%6]
		mids[d] = Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	}
	return mids
}
