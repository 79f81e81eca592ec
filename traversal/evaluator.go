// Package traversal implements the move-cost evaluator (C6) and the
// Dijkstra-based reachability engine (C7) that consumes it. Grounded on the
// teacher's services/rules_engine.go for per-feature cost lookup with a
// fallback default (the bridge-consumption rule has no teacher
// counterpart), and on katalvlaran-lvlath's dijkstra package for the
// lazy-decrease-key heap
// shape used by the reachability engine in this same package.
package traversal

import (
	"github.com/turnforge/hexengine/feature"
	"github.com/turnforge/hexengine/hex"
	"github.com/turnforge/hexengine/hexmap"
)

// Evaluator computes move cost and condition strings between a hex and its
// neighbours, consulting a HexMap and an EdgeMap. It holds no state of its
// own beyond references to those two collaborators.
type Evaluator struct {
	hexMap  *hexmap.HexMap
	edgeMap *hexmap.EdgeMap
}

// New returns an Evaluator backed by hexMap and edgeMap.
func New(hexMap *hexmap.HexMap, edgeMap *hexmap.EdgeMap) *Evaluator {
	return &Evaluator{hexMap: hexMap, edgeMap: edgeMap}
}

// Hexes returns every hex of the underlying map, in its stable insertion
// order.
func (e *Evaluator) Hexes() []hex.Hex {
	return e.hexMap.Hexes()
}

// ValidNeighbours returns the directions out of h that land on an in-bounds
// hex of the underlying map, in ascending direction order.
func (e *Evaluator) ValidNeighbours(h hex.Hex) []hex.Direction {
	var out []hex.Direction
	for d := hex.Direction(0); d < hex.NumDirections; d++ {
		if e.hexMap.Exists(hex.Neighbour(h, d)) {
			out = append(out, d)
		}
	}
	return out
}

// Cost returns the move cost of stepping from h in direction d. It inspects
// the neighbour hex's contents and the crossed edge's contents, in that
// order, applying the bridge-consumption rule: if any of those features is
// a Structure whose StructureCondition is "bridge", the first Terrain
// feature in the scan whose TerrainCondition is "bridgeable" adds no cost,
// whether it comes before or after the bridge; later bridgeable terrain
// pays its cost. The result is never less than 1.
func (e *Evaluator) Cost(h hex.Hex, d hex.Direction) int {
	neighbour := hex.Neighbour(h, d)
	hexContents := e.hexMap.Contents(neighbour)
	edgeContents := e.edgeMap.Contents(hex.EdgeByDirection(h, d))

	bridgePresent := false
	for _, f := range hexContents {
		if f.IsBridge() {
			bridgePresent = true
			break
		}
	}
	if !bridgePresent {
		for _, f := range edgeContents {
			if f.IsBridge() {
				bridgePresent = true
				break
			}
		}
	}

	sum := 0
	accumulate := func(f feature.Feature) {
		if bridgePresent && f.IsBridgeableTerrain() {
			bridgePresent = false
			return
		}
		sum += f.MovementCost
	}
	for _, f := range hexContents {
		accumulate(f)
	}
	for _, f := range edgeContents {
		accumulate(f)
	}

	if sum < 1 {
		return 1
	}
	return sum
}

// Conditions returns every TerrainCondition string carried by a Terrain
// feature among the neighbour hex's contents followed by the crossed edge's
// contents, in that order.
func (e *Evaluator) Conditions(h hex.Hex, d hex.Direction) []string {
	neighbour := hex.Neighbour(h, d)
	var out []string
	collect := func(fs []feature.Feature) {
		for _, f := range fs {
			if f.Kind == feature.KindTerrain && f.HasTerrainCondition {
				out = append(out, f.TerrainCondition)
			}
		}
	}
	collect(e.hexMap.Contents(neighbour))
	collect(e.edgeMap.Contents(hex.EdgeByDirection(h, d)))
	return out
}

// NeighbourInfo is one row of NeighbourConditions: the step taken, the hex
// landed on, its cost, and the condition strings gathered along the way.
type NeighbourInfo struct {
	From       hex.Hex
	Direction  hex.Direction
	To         hex.Hex
	Cost       int
	Conditions []string
}

// NeighbourConditions aggregates Cost and Conditions over every valid
// direction out of h, in ascending direction order.
func (e *Evaluator) NeighbourConditions(h hex.Hex) []NeighbourInfo {
	dirs := e.ValidNeighbours(h)
	out := make([]NeighbourInfo, 0, len(dirs))
	for _, d := range dirs {
		out = append(out, NeighbourInfo{
			From:       h,
			Direction:  d,
			To:         hex.Neighbour(h, d),
			Cost:       e.Cost(h, d),
			Conditions: e.Conditions(h, d),
		})
	}
	return out
}
