// shank is a grid arcade game for the terminal: steer the shank, eat
// apples, clear five levels.
//
// Usage:
//
//	shank play             - Play in this terminal
//	shank serve            - Start SSH server for remote play
//	shank scores           - Show the run history
//	shank levels           - List the levels
//	shank skins            - List or choose skins
//
// Global flags:
//
//	--fps <rate>         - Frame rate (default: 60, env SHANK_FPS)
//	--seed <value>       - RNG seed for reproducible food placement
//	--db <path>          - Database path (default: ~/.shank/shank.db, env SHANK_DB)
//	--config <path>      - Rules YAML (env SHANK_CONFIG)
//	--log-level <level>  - debug, info, warn or error (env SHANK_LOG_LEVEL)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shank/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	// settings holds SHANK_* environment values; flags default to them.
	settings    config.Env
	settingsErr error
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shank",
	Short: "Shank - a grid arcade game for your terminal",
	Long: `Shank is a snake-style arcade game on a 20x20 grid. Eat apples to
grow and speed up, clear each level's apple target, and survive five
levels of obstacles.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the run history
  levels   - List the levels
  skins    - List or choose skins

Examples:
  shank play
  shank play --config ./my-rules.yaml
  shank serve --ssh :2222
  shank scores --limit 20
  shank skins set shank skin2`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return settingsErr
	},
}

func init() {
	settings, settingsErr = config.ParseEnv()
	if settingsErr != nil {
		settings = config.DefaultEnv()
	}

	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", settings.FrameRate, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", settings.Seed, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", settings.DBPath, "Path to the database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", settings.ConfigPath, "Path to a rules YAML file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", settings.LogLevel, "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(skinsCmd)
}
