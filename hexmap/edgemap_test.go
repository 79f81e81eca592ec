package hexmap

import (
	"errors"
	"testing"

	"github.com/turnforge/hexengine/feature"
	"github.com/turnforge/hexengine/hex"
)

func smallMap(t *testing.T) *HexMap {
	t.Helper()
	m := New()
	m.Initialize(0, 1, 0, 1) // 4 hexes, a 2x2 rhombus patch
	return m
}

func TestEdgeMapInitializeEveryInternalEdgeOnce(t *testing.T) {
	m := smallMap(t)
	em := NewEdgeMap()
	em.Initialize(m)

	seen := map[hex.EdgeKey]int{}
	for _, ec := range em.IterContents() {
		seen[ec.Edge.Key()]++
	}
	for k, n := range seen {
		if n != 1 {
			t.Errorf("edge %v appears %d times, want 1", k, n)
		}
	}
	if em.Len() == 0 {
		t.Fatalf("expected at least one internal edge in a 2x2 patch")
	}

	// Re-running Initialize resets to the same key set (idempotent modulo
	// spawn side, since it always starts the scan from the same hex order).
	before := em.Len()
	em.Initialize(m)
	if em.Len() != before {
		t.Errorf("Initialize not idempotent in edge count: %d vs %d", before, em.Len())
	}
}

func TestEdgeMapAppendTerrainUniqueness(t *testing.T) {
	m := smallMap(t)
	em := NewEdgeMap()
	em.Initialize(m)

	hexes := m.Hexes()
	var e hex.Edge
	found := false
	for _, h := range hexes {
		for d := hex.Direction(0); d < hex.NumDirections; d++ {
			cand := hex.EdgeByDirection(h, d)
			if em.Exists(cand) {
				e = cand
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	if !found {
		t.Fatalf("no edge found in initialized edge map")
	}

	cat := feature.NewCatalog()
	cat.AddTerrainType("river", map[string]any{"movement_cost": 4, "terrain_condition": "bridgeable"})
	f1, _ := feature.NewTerrain("river-1", "River", "river", cat)
	if err := em.Append(e, f1); err != nil {
		t.Fatalf("unexpected error on first terrain append: %v", err)
	}
	f2, _ := feature.NewTerrain("river-2", "River", "river", cat)
	if err := em.Append(e, f2); !errors.Is(err, ErrDuplicateTerrain) {
		t.Fatalf("expected ErrDuplicateTerrain, got %v", err)
	}

	cat.AddStructureType("bridge", map[string]any{"movement_cost": 0, "structure_condition": "bridge"})
	b1, _ := feature.NewStructure("bridge-1", "Bridge", "bridge", cat)
	if err := em.Append(e, b1); err != nil {
		t.Fatalf("expected structure append to succeed alongside terrain: %v", err)
	}
	if len(em.Contents(e)) != 2 {
		t.Fatalf("Contents len = %d, want 2", len(em.Contents(e)))
	}
}

func TestEdgeMapAppendMissingEdgeFails(t *testing.T) {
	m := smallMap(t)
	em := NewEdgeMap()
	em.Initialize(m)

	// An edge on the outer boundary of the patch has no far-side hex, so it
	// was never inserted by Initialize.
	outer := hex.EdgeByDirection(hex.New(0, 0), hex.NW)
	cat := feature.NewCatalog()
	cat.AddTerrainType("plain", map[string]any{"movement_cost": 1})
	f, _ := feature.NewTerrain("id", "Plain", "plain", cat)
	if err := em.Append(outer, f); !errors.Is(err, ErrNoSuchHex) {
		t.Fatalf("expected ErrNoSuchHex for a boundary edge, got %v", err)
	}
}

func TestAppendChainWalksDirectionsAndSuffixesNames(t *testing.T) {
	m := New()
	m.Initialize(0, 3, 0, 0) // one row of 4 hexes, a straight line east
	em := NewEdgeMap()
	em.Initialize(m)

	cat := feature.NewCatalog()
	cat.AddTerrainType("river", map[string]any{"movement_cost": 4, "terrain_condition": "bridgeable"})
	template, err := feature.NewTerrain("template", "River", "river", cat)
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}

	namer := &seqNamer{}
	source := hex.New(0, 0)
	dirs := []hex.Direction{hex.E, hex.E}
	if err := em.AppendChain(m, source, dirs, template, namer); err != nil {
		t.Fatalf("AppendChain failed: %v", err)
	}

	e1 := hex.EdgeByDirection(hex.New(0, 0), hex.E)
	e2 := hex.EdgeByDirection(hex.New(1, 0), hex.E)
	c1 := em.Contents(e1)
	c2 := em.Contents(e2)
	if len(c1) != 1 || len(c2) != 1 {
		t.Fatalf("expected one feature per crossed edge, got %d and %d", len(c1), len(c2))
	}
	if c1[0].Name != "River1" || c2[0].Name != "River2" {
		t.Errorf("chain names = %q, %q, want River1, River2", c1[0].Name, c2[0].Name)
	}
	if c1[0].ID == c2[0].ID {
		t.Errorf("expected distinct ids per chain step, got %q twice", c1[0].ID)
	}
}

func TestAppendChainFailsOnOutOfBoundsStep(t *testing.T) {
	m := New()
	m.Initialize(0, 1, 0, 0) // two hexes only
	em := NewEdgeMap()
	em.Initialize(m)

	cat := feature.NewCatalog()
	cat.AddTerrainType("river", map[string]any{"movement_cost": 4})
	template, _ := feature.NewTerrain("template", "River", "river", cat)

	namer := &seqNamer{}
	dirs := []hex.Direction{hex.E, hex.E} // second step runs off the map
	if err := em.AppendChain(m, hex.New(0, 0), dirs, template, namer); !errors.Is(err, ErrNoSuchHex) {
		t.Fatalf("expected ErrNoSuchHex, got %v", err)
	}
}
