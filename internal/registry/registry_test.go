package registry

import (
	"testing"

	"github.com/vovakirdan/tui-shank/internal/core"
)

// Tests use their own kinds so they do not collide with skins registered by
// other packages.
const testKind Kind = "test"

func TestRegisterAndLookup(t *testing.T) {
	Register(testKind, Skin{ID: "default", Name: "Plain", Glyph: "##", Color: core.ColorGreen})
	Register(testKind, Skin{ID: "gold", Name: "Gold", Glyph: "$$", Color: core.ColorBrightYellow})

	got, ok := Lookup(testKind, "gold")
	if !ok || got.Name != "Gold" {
		t.Errorf("Lookup(gold) = %+v, %v", got, ok)
	}

	fallback, ok := Lookup(testKind, "missing")
	if ok {
		t.Error("Lookup of unknown ID should report not found")
	}
	if fallback.ID != "default" {
		t.Errorf("unknown ID should fall back to the first skin, got %q", fallback.ID)
	}

	list := List(testKind)
	if len(list) != 2 || list[0].ID != "default" || list[1].ID != "gold" {
		t.Errorf("List should keep registration order, got %+v", list)
	}

	if !Exists(testKind, "default") || Exists(testKind, "missing") {
		t.Error("Exists disagrees with registrations")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	const kind Kind = "dup"
	Register(kind, Skin{ID: "a"})

	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate ID should panic")
		}
	}()
	Register(kind, Skin{ID: "a"})
}

func TestLookupEmptyKind(t *testing.T) {
	if _, ok := Lookup("nothing", "x"); ok {
		t.Error("empty kind should not find anything")
	}
	if len(List("nothing")) != 0 {
		t.Error("empty kind should list nothing")
	}
}
