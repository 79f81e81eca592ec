package hexmap

import (
	"fmt"

	"github.com/turnforge/hexengine/feature"
	"github.com/turnforge/hexengine/hex"
)

// EdgeMap maps a canonical hex.Edge to an ordered sequence of features.
// Invariants: every key is an edge both of whose endpoints are in-bounds
// hexes of the HexMap it was initialized from (I3); at most one Terrain
// feature per edge (I4).
type EdgeMap struct {
	edges map[hex.EdgeKey]*edgeCell
	order []hex.Edge // insertion order; the edge's SpawnHex/SpawnDir is
	// whichever visit first produced it, since insertion only happens once.
}

type edgeCell struct {
	edge       hex.Edge
	contents   []feature.Feature
	hasTerrain bool
}

// NewEdgeMap constructs an empty EdgeMap. Call Initialize before using it.
func NewEdgeMap() *EdgeMap {
	return &EdgeMap{edges: map[hex.EdgeKey]*edgeCell{}}
}

// Initialize populates the edge map with every boundary between two
// in-bounds hexes of hexMap: for each hex, for each of the six directions,
// produce the edge via hex.EdgeByDirection and insert it if its canonical
// key is not yet present. Every internal boundary ends up present exactly
// once; the spawn side recorded is whichever (hex, direction) visited it
// first. Iteration order over hexMap is unspecified but, since hexMap keeps
// a stable insertion-ordered hex list, this produces the same spawn sides on
// every call within one process run.
func (em *EdgeMap) Initialize(hexMap *HexMap) {
	em.edges = map[hex.EdgeKey]*edgeCell{}
	em.order = nil
	for _, h := range hexMap.Hexes() {
		for d := hex.Direction(0); d < hex.NumDirections; d++ {
			n := hex.Neighbour(h, d)
			if !hexMap.Exists(n) {
				continue
			}
			e := hex.EdgeByDirection(h, d)
			key := e.Key()
			if _, exists := em.edges[key]; exists {
				continue
			}
			c := &edgeCell{edge: e}
			em.edges[key] = c
			em.order = append(em.order, e)
		}
	}
}

// Exists reports whether e's canonical key is present in the map.
func (em *EdgeMap) Exists(e hex.Edge) bool {
	_, ok := em.edges[e.Key()]
	return ok
}

// Append appends f to e's content list (matched by canonical key). Fails
// with ErrNoSuchHex if the edge is not present, or ErrDuplicateTerrain if f
// is a Terrain and the edge already has one.
func (em *EdgeMap) Append(e hex.Edge, f feature.Feature) error {
	c, ok := em.edges[e.Key()]
	if !ok {
		return fmt.Errorf("%w: edge %v", ErrNoSuchHex, e)
	}
	if f.Kind == feature.KindTerrain {
		if c.hasTerrain {
			return fmt.Errorf("%w: edge %v", ErrDuplicateTerrain, e)
		}
		c.hasTerrain = true
	}
	c.contents = append(c.contents, f)
	return nil
}

// Contents returns the ordered feature list for e (matched by canonical
// key). It never fails; a missing edge yields an empty (nil) slice.
func (em *EdgeMap) Contents(e hex.Edge) []feature.Feature {
	c, ok := em.edges[e.Key()]
	if !ok {
		return nil
	}
	return c.contents
}

// AppendChain walks from sourceHex stepping through directions in order,
// cloning templateFeature into a fresh feature at each step (a new id via
// namer and a name suffixed with an increasing counter 1, 2, ...), appending
// it to the edge crossed by that step. Fails if any step reaches a hex
// outside the map or would violate Terrain uniqueness; earlier steps in the
// chain remain applied (no rollback), matching the spec's "fails if any step
// reaches a non-existent hex or violates Terrain uniqueness" wording, which
// describes the step that fails rather than the whole chain.
func (em *EdgeMap) AppendChain(hexMap *HexMap, sourceHex hex.Hex, directions []hex.Direction, template feature.Feature, namer IDGenerator) error {
	current := sourceHex
	for i, d := range directions {
		if !hexMap.Exists(current) {
			return fmt.Errorf("%w: chain step %d at %v", ErrNoSuchHex, i, current)
		}
		next := hex.Neighbour(current, d)
		if !hexMap.Exists(next) {
			return fmt.Errorf("%w: chain step %d reaches %v", ErrNoSuchHex, i, next)
		}
		e := hex.EdgeByDirection(current, d)
		if !em.Exists(e) {
			return fmt.Errorf("%w: chain step %d edge %v", ErrNoSuchHex, i, e)
		}

		counter := i + 1
		kindName := "terrain"
		if template.Kind == feature.KindStructure {
			kindName = "structure"
		}
		name := fmt.Sprintf("%s%d", template.Name, counter)
		clone := template
		clone.ID = namer.FreshID(name, kindName)
		clone.Name = name

		if err := em.Append(e, clone); err != nil {
			return fmt.Errorf("chain step %d: %w", i, err)
		}
		current = next
	}
	return nil
}

// IterContents returns every (edge, contents) pair in the map's stable
// insertion order, exposed for a renderer collaborator; each edge carries
// its spawn side for asset placement.
func (em *EdgeMap) IterContents() []EdgeContents {
	out := make([]EdgeContents, 0, len(em.order))
	for _, e := range em.order {
		out = append(out, EdgeContents{Edge: e, Contents: em.edges[e.Key()].contents})
	}
	return out
}

// EdgeContents pairs an edge with its ordered feature list, as returned by
// IterContents.
type EdgeContents struct {
	Edge     hex.Edge
	Contents []feature.Feature
}

// Len returns the number of edges in the map.
func (em *EdgeMap) Len() int {
	return len(em.order)
}
