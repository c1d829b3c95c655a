package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shank/internal/registry"
	"github.com/vovakirdan/tui-shank/internal/shank"
	"github.com/vovakirdan/tui-shank/internal/storage"
)

var skinsCmd = &cobra.Command{
	Use:   "skins",
	Short: "List or choose skins",
	Long: `Lists the shank and apple skins. The active ones are marked with *.

Examples:
  shank skins
  shank skins set shank skin2
  shank skins set apple default`,
	Args: cobra.NoArgs,
	RunE: runSkins,
}

var skinsSetCmd = &cobra.Command{
	Use:       "set <shank|apple> <id>",
	Short:     "Choose a skin",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{string(registry.KindShank), string(registry.KindApple)},
	RunE:      runSkinsSet,
}

func init() {
	skinsCmd.AddCommand(skinsSetCmd)
}

func runSkins(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	var kv shank.KV
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not open database: %v\n", err)
	} else {
		defer store.Close()
		kv = store
	}
	active := shank.LoadSkins(kv, nil)

	for _, kind := range []registry.Kind{registry.KindShank, registry.KindApple} {
		current := active.Shank
		if kind == registry.KindApple {
			current = active.Apple
		}

		fmt.Fprintf(out, "%s skins:\n", kind)
		for _, s := range registry.List(kind) {
			mark := " "
			if s.ID == current.ID {
				mark = "*"
			}
			fmt.Fprintf(out, "  %s %-8s  %-8s  %s%s\n", mark, s.ID, s.Name, s.Glyph, s.Trail)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, "Run 'shank skins set <shank|apple> <id>' to choose.")
	return nil
}

func runSkinsSet(cmd *cobra.Command, args []string) error {
	kind := registry.Kind(args[0])
	if kind != registry.KindShank && kind != registry.KindApple {
		return fmt.Errorf("unknown skin kind %q (want shank or apple)", args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	if err := shank.SaveSkin(store, kind, args[1]); err != nil {
		return fmt.Errorf("%w (run 'shank skins' to list them)", err)
	}
	skin, _ := registry.Lookup(kind, args[1])
	fmt.Fprintf(cmd.OutOrStdout(), "%s skin set to %s\n", kind, skin.Name)
	return nil
}
