// Package hexmap implements the two-layer map model (C4 hex map, C5 edge
// map) with their terrain-uniqueness invariants, grounded on the teacher's
// cube-coordinate-keyed Map/Tile pair (lib/map.go) generalized from a single
// per-cell terrain string to an ordered, catalog-resolved feature list.
package hexmap

import (
	"fmt"
	"math/rand"

	"github.com/turnforge/hexengine/feature"
	"github.com/turnforge/hexengine/hex"
)

// HexMap maps hex.Hex to an ordered sequence of features. Invariants: every
// key is an in-bounds hex produced by Initialize (I1); at most one Terrain
// feature per hex (I2). It is never resized implicitly — Initialize is the
// only way cells come into existence, and calling it again resets the map.
type HexMap struct {
	cells map[hex.Hex]*cell
	order []hex.Hex // insertion order, for a stable IterContents within a run
}

type cell struct {
	contents []feature.Feature
	hasTerrain bool
}

// New constructs an empty HexMap. Call Initialize before using it.
func New() *HexMap {
	return &HexMap{cells: map[hex.Hex]*cell{}}
}

// Initialize populates the map with every hex in the rhombus-trimmed
// rectangle described by (left, right, top, bottom): for r in [top..bottom],
// q ranges over [left-floor(r/2) .. right-floor(r/2)]. floor uses
// mathematical floored division (negative r rounds toward -infinity, per
// scenario S6). Calling Initialize again discards the previous contents and
// starts over.
func (m *HexMap) Initialize(left, right, top, bottom int) {
	m.cells = map[hex.Hex]*cell{}
	m.order = nil
	for r := top; r <= bottom; r++ {
		offset := floorDiv(r, 2)
		for q := left - offset; q <= right-offset; q++ {
			h := hex.New(q, r)
			m.cells[h] = &cell{}
			m.order = append(m.order, h)
		}
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Exists reports whether h is a cell of the map.
func (m *HexMap) Exists(h hex.Hex) bool {
	_, ok := m.cells[h]
	return ok
}

// Append appends f to h's content list. Fails with ErrNoSuchHex if h is not
// present, or ErrDuplicateTerrain if f is a Terrain and h already has one.
func (m *HexMap) Append(h hex.Hex, f feature.Feature) error {
	c, ok := m.cells[h]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNoSuchHex, h)
	}
	if f.Kind == feature.KindTerrain {
		if c.hasTerrain {
			return fmt.Errorf("%w: hex %v", ErrDuplicateTerrain, h)
		}
		c.hasTerrain = true
	}
	c.contents = append(c.contents, f)
	return nil
}

// Contents returns the ordered feature list for h. It never fails; a
// missing hex yields an empty (nil) slice.
func (m *HexMap) Contents(h hex.Hex) []feature.Feature {
	c, ok := m.cells[h]
	if !ok {
		return nil
	}
	return c.contents
}

// FindByID performs a linear scan over every cell's contents for a feature
// with the given id. The core assumes sparse feature populations relative to
// map size, so this is acceptable even for large maps.
func (m *HexMap) FindByID(id string) (feature.Feature, error) {
	for _, h := range m.order {
		for _, f := range m.cells[h].contents {
			if f.ID == id {
				return f, nil
			}
		}
	}
	return feature.Feature{}, fmt.Errorf("%w: id %q", ErrNotFound, id)
}

// FillWithTerrain fills every hex with a single Terrain feature whose type
// is drawn uniformly at random (via rng) from catalog.HexTerrainKinds(),
// constructed through namer. Determinism is entirely defined by rng: the
// same *rand.Rand sequence over the same hex iteration order always
// produces the same fill.
func (m *HexMap) FillWithTerrain(cat *feature.Catalog, rng *rand.Rand, namer IDGenerator) error {
	kinds := cat.HexTerrainKinds()
	if len(kinds) == 0 {
		return fmt.Errorf("hexmap: catalog has no hex-fillable terrain kinds")
	}
	for _, h := range m.order {
		typ := kinds[rng.Intn(len(kinds))]
		id := namer.FreshID(typ, "terrain")
		f, err := feature.NewTerrain(id, typ, typ, cat)
		if err != nil {
			return fmt.Errorf("hexmap: fill at %v: %w", h, err)
		}
		if err := m.Append(h, f); err != nil {
			return fmt.Errorf("hexmap: fill at %v: %w", h, err)
		}
	}
	return nil
}

// IterContents returns every (hex, contents) pair in the map's stable
// insertion order, exposed for a renderer collaborator. The core never
// consumes this itself beyond read-only inspection.
func (m *HexMap) IterContents() []HexContents {
	out := make([]HexContents, 0, len(m.order))
	for _, h := range m.order {
		out = append(out, HexContents{Hex: h, Contents: m.cells[h].contents})
	}
	return out
}

// HexContents pairs a hex with its ordered feature list, as returned by
// IterContents.
type HexContents struct {
	Hex      hex.Hex
	Contents []feature.Feature
}

// Hexes returns every hex in the map, in stable insertion order.
func (m *HexMap) Hexes() []hex.Hex {
	out := make([]hex.Hex, len(m.order))
	copy(out, m.order)
	return out
}

// Len returns the number of hexes in the map.
func (m *HexMap) Len() int {
	return len(m.order)
}
