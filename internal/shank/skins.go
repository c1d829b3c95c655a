package shank

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shank/internal/core"
	"github.com/vovakirdan/tui-shank/internal/registry"
)

func init() {
	registry.Register(registry.KindShank, registry.Skin{
		ID: "default", Name: "Classic",
		Glyph: "██", Color: core.ColorBrightGreen,
		Trail: "▓▓", TrailColor: core.ColorGreen,
	})
	registry.Register(registry.KindShank, registry.Skin{
		ID: "skin1", Name: "Neon",
		Glyph: "██", Color: core.ColorBrightMagenta,
		Trail: "▒▒", TrailColor: core.ColorBrightCyan,
	})
	registry.Register(registry.KindShank, registry.Skin{
		ID: "skin2", Name: "Cyber",
		Glyph: "◢◣", Color: core.ColorBrightCyan,
		Trail: "▪▪", TrailColor: core.ColorCyan,
	})
	registry.Register(registry.KindShank, registry.Skin{
		ID: "skin3", Name: "Retro",
		Glyph: "[]", Color: core.ColorAmber,
		Trail: "()", TrailColor: core.ColorYellow,
	})

	registry.Register(registry.KindApple, registry.Skin{
		ID: "default", Name: "Classic",
		Glyph: "◖◗", Color: core.ColorBrightRed,
	})
	registry.Register(registry.KindApple, registry.Skin{
		ID: "skin1", Name: "Golden",
		Glyph: "◖◗", Color: core.ColorBrightYellow,
	})
	registry.Register(registry.KindApple, registry.Skin{
		ID: "skin2", Name: "Crystal",
		Glyph: "◇◇", Color: core.ColorBrightWhite,
	})
}

// Skins is the pair of skins a player has selected.
type Skins struct {
	Shank registry.Skin
	Apple registry.Skin
}

func skinKey(kind registry.Kind) string {
	if kind == registry.KindApple {
		return AppleSkinKey
	}
	return ShankSkinKey
}

// LoadSkins resolves the persisted skin choices, falling back to the
// defaults for missing or unknown IDs.
func LoadSkins(kv KV, logger *log.Logger) Skins {
	logger = orDiscard(logger)
	return Skins{
		Shank: loadSkin(kv, logger, registry.KindShank),
		Apple: loadSkin(kv, logger, registry.KindApple),
	}
}

func loadSkin(kv KV, logger *log.Logger, kind registry.Kind) registry.Skin {
	id := "default"
	if kv != nil {
		v, ok, err := kv.Get(skinKey(kind))
		switch {
		case err != nil:
			logger.Warn("could not read skin", "kind", kind, "error", err)
		case ok:
			id = v
		}
	}
	skin, _ := registry.Lookup(kind, id)
	return skin
}

// SaveSkin persists a skin choice. Unknown IDs are rejected.
func SaveSkin(kv KV, kind registry.Kind, id string) error {
	if !registry.Exists(kind, id) {
		return &UnknownSkinError{Kind: kind, ID: id}
	}
	if kv == nil {
		return nil
	}
	return kv.Set(skinKey(kind), id)
}

// UnknownSkinError is returned for skin IDs that are not registered.
type UnknownSkinError struct {
	Kind registry.Kind
	ID   string
}

func (e *UnknownSkinError) Error() string {
	return fmt.Sprintf("unknown %s skin %q", e.Kind, e.ID)
}
