// Package idgen provides the default IDGenerator used by cmd/hexcli, built
// on google/uuid the way playbymail-ottomap's wxx writer stamps every map
// feature with a fresh uuid.New().String() rather than a counter. It lives
// under internal/ because nothing outside this module should depend on one
// particular id scheme; a caller embedding the core packages supplies its
// own IDGenerator.
package idgen

import "github.com/google/uuid"

// Generator produces opaque ids of the form "kind:name:uuid".
type Generator struct{}

// New returns a ready-to-use Generator.
func New() *Generator {
	return &Generator{}
}

// FreshID returns an id unique for the lifetime of the process, carrying
// kind and name only for human readability in logs and map dumps; callers
// must not parse it.
func (Generator) FreshID(name, kind string) string {
	return kind + ":" + name + ":" + uuid.New().String()
}
