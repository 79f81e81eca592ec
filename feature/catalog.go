package feature

import (
	"fmt"
	"sort"
)

// Catalog is a pair of read-only mappings from feature-type name to
// attributes, one for Terrain kinds and one for Structure kinds. The core
// never reads a catalog from a file; callers build one in memory (typically
// via a loader outside this package, the way the teacher's
// LoadRulesEngineFromJSON builds a RulesEngine outside the proto types it
// populates) and hand it to hexmap/traversal.
type Catalog struct {
	terrain   map[string]map[string]any
	structure map[string]map[string]any
}

// NewCatalog constructs an empty, writable catalog. Use AddTerrainType and
// AddStructureType to populate it before handing it to map construction.
func NewCatalog() *Catalog {
	return &Catalog{
		terrain:   map[string]map[string]any{},
		structure: map[string]map[string]any{},
	}
}

// AddTerrainType registers a terrain type's attributes under name,
// overwriting any previous registration.
func (c *Catalog) AddTerrainType(name string, attrs map[string]any) {
	c.terrain[name] = attrs
}

// AddStructureType registers a structure type's attributes under name,
// overwriting any previous registration.
func (c *Catalog) AddStructureType(name string, attrs map[string]any) {
	c.structure[name] = attrs
}

// TerrainAttrs returns the attribute map registered for the named terrain
// type, or ErrNotFound.
func (c *Catalog) TerrainAttrs(name string) (map[string]any, error) {
	attrs, ok := c.terrain[name]
	if !ok {
		return nil, fmt.Errorf("%w: terrain type %q", ErrNotFound, name)
	}
	return attrs, nil
}

// StructureAttrs returns the attribute map registered for the named
// structure type, or ErrNotFound.
func (c *Catalog) StructureAttrs(name string) (map[string]any, error) {
	attrs, ok := c.structure[name]
	if !ok {
		return nil, fmt.Errorf("%w: structure type %q", ErrNotFound, name)
	}
	return attrs, nil
}

// HexTerrainKinds returns the terrain type names whose attributes do NOT
// carry a truthy "edgeobject" flag, sorted for determinism so that a seeded
// rng given the same catalog always draws from the same ordered population
// (bulk hex-fill, hexmap.FillWithTerrain, depends on this). An edgeobject
// terrain is edge-only and excluded from bulk hex-fill.
func (c *Catalog) HexTerrainKinds() []string {
	var kinds []string
	for name, attrs := range c.terrain {
		if isTruthy(attrs["edgeobject"]) {
			continue
		}
		kinds = append(kinds, name)
	}
	sort.Strings(kinds)
	return kinds
}

func isTruthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case float64:
		return x != 0
	default:
		return true
	}
}
