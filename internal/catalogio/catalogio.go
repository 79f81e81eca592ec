// Package catalogio loads a feature.Catalog from JSON, embedded at compile
// time or read from disk, the way the teacher's web/assets package embeds
// its theme manifests (embed.FS + LoadThemeManifest) and services/rules_loader.go
// turns a raw JSON document into typed rule data. It lives under internal/
// because nothing outside this module should depend on one particular
// catalog file layout; a caller embedding the core packages supplies its own
// feature.Catalog however it likes.
package catalogio

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/turnforge/hexengine/feature"
)

//go:embed defaults/catalog.json
var embeddedDefaults embed.FS

// document mirrors the on-disk JSON shape: two maps from type name to a free
// form attribute bag, one for terrain types and one for structure types.
type document struct {
	Terrain   map[string]map[string]any `json:"terrain"`
	Structure map[string]map[string]any `json:"structure"`
}

// LoadDefault returns the catalog embedded in this binary at compile time.
func LoadDefault() (*feature.Catalog, error) {
	data, err := embeddedDefaults.ReadFile("defaults/catalog.json")
	if err != nil {
		return nil, fmt.Errorf("catalogio: read embedded default: %w", err)
	}
	return parse(data)
}

// LoadFile reads and parses a catalog document from path, overriding the
// embedded default.
func LoadFile(path string) (*feature.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalogio: read %s: %w", path, err)
	}
	cat, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalogio: parse %s: %w", path, err)
	}
	return cat, nil
}

// parse turns a JSON document's bytes into a populated feature.Catalog.
func parse(data []byte) (*feature.Catalog, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalogio: unmarshal: %w", err)
	}

	cat := feature.NewCatalog()
	for name, attrs := range doc.Terrain {
		cat.AddTerrainType(name, attrs)
	}
	for name, attrs := range doc.Structure {
		cat.AddStructureType(name, attrs)
	}
	return cat, nil
}
