package hexmap

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"

	"github.com/turnforge/hexengine/feature"
	"github.com/turnforge/hexengine/hex"
)

type seqNamer struct{ n int }

func (s *seqNamer) FreshID(name, kind string) string {
	s.n++
	return kind + ":" + name + ":" + strconv.Itoa(s.n)
}

func TestInitializeHexCount(t *testing.T) {
	m := New()
	m.Initialize(0, 3, 0, 2) // left=0 right=3 top=0 bottom=2, 3 rows of 4
	if m.Len() != 12 {
		t.Fatalf("Len() = %d, want 12", m.Len())
	}
}

func TestInitializeNegativeRowsFlooredDivision(t *testing.T) {
	// Scenario S6: negative r must floor toward -infinity, not truncate
	// toward zero, so row -1's q-range is shifted by floor(-1/2) = -1, not 0.
	m := New()
	m.Initialize(0, 1, -1, 1)
	if !m.Exists(hex.New(1, -1)) {
		t.Errorf("expected hex (1,-1) present under floored offset")
	}
	// With truncation toward zero the offset for r=-1 would be 0, so q
	// would range over [0..1]; floored division shifts the row one step
	// east, so q ranges over [0-(-1) .. 1-(-1)] = [1..2].
	if m.Exists(hex.New(0, -1)) {
		t.Errorf("did not expect hex (0,-1) present; floor(-1/2) should shift the row")
	}
}

func TestAppendRejectsMissingHex(t *testing.T) {
	m := New()
	m.Initialize(0, 0, 0, 0)
	cat := NewCatalogWithPlain(t)
	f, err := feature.NewTerrain("id", "Plain", "plain", cat)
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if err := m.Append(hex.New(5, 5), f); !errors.Is(err, ErrNoSuchHex) {
		t.Fatalf("expected ErrNoSuchHex, got %v", err)
	}
}

func TestAppendTerrainUniqueness(t *testing.T) {
	m := New()
	m.Initialize(0, 0, 0, 0)
	cat := NewCatalogWithPlain(t)
	h := hex.New(0, 0)

	f1, _ := feature.NewTerrain("id-1", "Plain", "plain", cat)
	if err := m.Append(h, f1); err != nil {
		t.Fatalf("first terrain append failed: %v", err)
	}
	f2, _ := feature.NewTerrain("id-2", "Plain", "plain", cat)
	if err := m.Append(h, f2); !errors.Is(err, ErrDuplicateTerrain) {
		t.Fatalf("expected ErrDuplicateTerrain, got %v", err)
	}

	cat.AddStructureType("hq", map[string]any{"movement_cost": 0})
	s1, _ := feature.NewStructure("id-3", "HQ", "hq", cat)
	s2, _ := feature.NewStructure("id-4", "HQ", "hq", cat)
	if err := m.Append(h, s1); err != nil {
		t.Fatalf("expected multiple structures allowed, got %v", err)
	}
	if err := m.Append(h, s2); err != nil {
		t.Fatalf("expected multiple structures allowed, got %v", err)
	}
	if len(m.Contents(h)) != 3 {
		t.Fatalf("Contents len = %d, want 3", len(m.Contents(h)))
	}
}

func TestFindByID(t *testing.T) {
	m := New()
	m.Initialize(0, 1, 0, 0)
	cat := NewCatalogWithPlain(t)
	f, _ := feature.NewTerrain("the-id", "Plain", "plain", cat)
	if err := m.Append(hex.New(1, 0), f); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	got, err := m.FindByID("the-id")
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if got.ID != "the-id" {
		t.Errorf("FindByID returned wrong feature: %+v", got)
	}
	if _, err := m.FindByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFillWithTerrainDeterministicUnderSeededRNG(t *testing.T) {
	cat := feature.NewCatalog()
	cat.AddTerrainType("plain", map[string]any{"movement_cost": 1})
	cat.AddTerrainType("forest", map[string]any{"movement_cost": 2})

	run := func(seed int64) []string {
		m := New()
		m.Initialize(0, 3, 0, 3)
		rng := rand.New(rand.NewSource(seed))
		namer := &seqNamer{}
		if err := m.FillWithTerrain(cat, rng, namer); err != nil {
			t.Fatalf("FillWithTerrain: %v", err)
		}
		var types []string
		for _, hc := range m.IterContents() {
			for _, f := range hc.Contents {
				types = append(types, f.Type)
			}
		}
		return types
	}

	a := run(42)
	b := run(42)
	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("fill not deterministic at %d: %q vs %q", i, a[i], b[i])
		}
	}
}

func NewCatalogWithPlain(t *testing.T) *feature.Catalog {
	t.Helper()
	cat := feature.NewCatalog()
	cat.AddTerrainType("plain", map[string]any{"movement_cost": 1})
	return cat
}
