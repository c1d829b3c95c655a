package shank

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-shank/internal/registry"
)

func TestRegisteredSkins(t *testing.T) {
	if n := len(registry.List(registry.KindShank)); n != 4 {
		t.Errorf("%d shank skins, want 4", n)
	}
	if n := len(registry.List(registry.KindApple)); n != 3 {
		t.Errorf("%d apple skins, want 3", n)
	}
}

func TestLoadSkinsDefaults(t *testing.T) {
	skins := LoadSkins(nil, nil)
	if skins.Shank.ID != "default" || skins.Apple.ID != "default" {
		t.Errorf("got %s/%s, want defaults", skins.Shank.ID, skins.Apple.ID)
	}

	skins = LoadSkins(failingKV{}, nil)
	if skins.Shank.ID != "default" {
		t.Error("a failing store should give the default skin")
	}
}

func TestSaveAndLoadSkin(t *testing.T) {
	kv := NewMemoryKV()
	if err := SaveSkin(kv, registry.KindShank, "skin2"); err != nil {
		t.Fatalf("SaveSkin: %v", err)
	}
	if err := SaveSkin(kv, registry.KindApple, "skin1"); err != nil {
		t.Fatalf("SaveSkin: %v", err)
	}

	skins := LoadSkins(kv, nil)
	if skins.Shank.Name != "Cyber" {
		t.Errorf("shank skin = %s, want Cyber", skins.Shank.Name)
	}
	if skins.Apple.Name != "Golden" {
		t.Errorf("apple skin = %s, want Golden", skins.Apple.Name)
	}
}

func TestSaveUnknownSkin(t *testing.T) {
	kv := NewMemoryKV()
	err := SaveSkin(kv, registry.KindApple, "skin9")

	var unknown *UnknownSkinError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want UnknownSkinError", err)
	}
	if unknown.ID != "skin9" {
		t.Errorf("ID = %q", unknown.ID)
	}
	if _, ok, _ := kv.Get(AppleSkinKey); ok {
		t.Error("unknown skin should not be stored")
	}
}

func TestLoadSkinsIgnoresStaleID(t *testing.T) {
	kv := NewMemoryKV()
	kv.Set(ShankSkinKey, "removed-skin")

	if got := LoadSkins(kv, nil).Shank.ID; got != "default" {
		t.Errorf("stale ID resolved to %q", got)
	}
}
