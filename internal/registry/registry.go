// Package registry provides a global registry of cosmetic skins.
// Skins register themselves in init() functions, allowing the platform to
// list and resolve them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-shank/internal/core"
)

// Kind groups skins by what they decorate.
type Kind string

const (
	KindShank Kind = "shank"
	KindApple Kind = "apple"
)

// Skin is how one board cell is drawn. Board cells are two columns wide, so
// Glyph and Trail are two-rune strings.
type Skin struct {
	ID         string
	Name       string
	Glyph      string // head for shank skins, the apple itself for apple skins
	Color      core.Color
	Trail      string // body segments; unused by apple skins
	TrailColor core.Color
}

var (
	skins = make(map[Kind][]Skin)
	mu    sync.RWMutex
)

// Register adds a skin. The first skin registered for a kind is its default.
// Panics if a skin with the same ID is already registered for the kind.
func Register(kind Kind, s Skin) {
	mu.Lock()
	defer mu.Unlock()

	for _, existing := range skins[kind] {
		if existing.ID == s.ID {
			panic(fmt.Sprintf("registry: %s skin %q already registered", kind, s.ID))
		}
	}
	skins[kind] = append(skins[kind], s)
}

// List returns the skins of a kind in registration order.
func List(kind Kind) []Skin {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Skin, len(skins[kind]))
	copy(out, skins[kind])
	return out
}

// Lookup returns the skin with the given ID, or the kind's default when the
// ID is unknown. The boolean reports whether the ID was found.
func Lookup(kind Kind, id string) (Skin, bool) {
	mu.RLock()
	defer mu.RUnlock()

	list := skins[kind]
	for _, s := range list {
		if s.ID == id {
			return s, true
		}
	}
	if len(list) == 0 {
		return Skin{}, false
	}
	return list[0], false
}

// Exists checks if a skin with the given ID is registered for the kind.
func Exists(kind Kind, id string) bool {
	_, ok := Lookup(kind, id)
	return ok
}
