package hex

// EdgeKey is the canonical (low, high) hex pair that determines an edge's
// identity. Two edges are equal iff their EdgeKey values are equal; it is
// the type used as the associative-container key throughout hexmap.EdgeMap.
type EdgeKey struct {
	Low, High Hex
}

// Edge is the undirected boundary between two adjacent hexes. Its identity
// for equality and as a map key is the canonical (low, high) hex pair only;
// SpawnHex/SpawnDir are metadata recording which hex and direction first
// produced the edge, used only to place visual assets, and never affect
// equality or hashing (per the spec's resolution of the source's conflicting
// variants: equality is fixed on the canonical hex pair).
type Edge struct {
	canonical EdgeKey
	SpawnHex  Hex
	SpawnDir  Direction
}

// NewEdge constructs the edge between h1 and h2, recording h1/d as the spawn
// side. h1 and h2 must be the two endpoints of the edge in either order;
// NewEdge normalises them via OrderedPair.
func NewEdge(h1, h2 Hex, spawnDir Direction) Edge {
	low, high := OrderedPair(h1, h2)
	return Edge{
		canonical: EdgeKey{Low: low, High: high},
		SpawnHex:  h1,
		SpawnDir:  spawnDir,
	}
}

// EdgeByDirection returns the edge between h and its neighbour in direction
// d, with h and d recorded as the spawn side.
func EdgeByDirection(h Hex, d Direction) Edge {
	return NewEdge(h, Neighbour(h, d), d)
}

// Low returns the lexicographically-first endpoint of the edge's canonical
// pair.
func (e Edge) Low() Hex { return e.canonical.Low }

// High returns the lexicographically-second endpoint of the edge's
// canonical pair.
func (e Edge) High() Hex { return e.canonical.High }

// Endpoints returns the edge's two hexes in canonical order.
func (e Edge) Endpoints() (low, high Hex) {
	return e.canonical.Low, e.canonical.High
}

// Key returns the EdgeKey identifying e, equal for two Edge values iff their
// canonical hex pairs are equal, regardless of spawn side. Using Key (rather
// than Edge itself) as a map key documents that spawn side is excluded on
// purpose: Edge's own == would also compare SpawnHex/SpawnDir.
func (e Edge) Key() EdgeKey {
	return e.canonical
}

// Equals reports whether e and o identify the same boundary, ignoring spawn
// side.
func (e Edge) Equals(o Edge) bool {
	return e.canonical == o.canonical
}

// String renders the edge's canonical endpoints.
func (e Edge) String() string {
	return e.canonical.Low.String() + "|" + e.canonical.High.String()
}
