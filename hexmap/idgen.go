package hexmap

// IDGenerator is the external collaborator the map types call when they
// construct features on the caller's behalf (FillWithTerrain, AppendChain).
// The core never generates ids itself; ownership of id-generation policy
// belongs to the caller, the way the spec's design notes require moving
// away from a module-singleton id generator toward an injected collaborator.
type IDGenerator interface {
	// FreshID returns an opaque string id, unique per process, for a
	// feature of the given human name and kind ("terrain" or "structure").
	FreshID(name, kind string) string
}
