package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shank/internal/core"
	"github.com/vovakirdan/tui-shank/internal/platform/tui"
	"github.com/vovakirdan/tui-shank/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD   - Steer
  Enter/Space   - Start, next level, play again
  P/Esc         - Pause / resume
  K             - Skins (title or game over screen)
  T             - Scores (title or game over screen)
  Ctrl+S        - Save a screenshot to ~/.shank/screenshots
  Q/Ctrl+C      - Quit

Examples:
  shank play
  shank play --seed 42
  shank play --config ./my-rules.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	rules, err := loadRules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var logOut io.Writer = io.Discard
	if logFile, logErr := openLogFile(); logErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", logErr)
	} else {
		defer logFile.Close()
		logOut = logFile
	}
	logger, err := newLogger(logOut, "shank")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		logger.Warn("playing without a database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Rules:  rules,
		Store:  store,
		Player: currentPlayer(),
		Logger: logger,
		Config: core.RuntimeConfig{
			ScreenW:   width,
			ScreenH:   height,
			FrameRate: flagFPS,
			Seed:      flagSeed,
		},
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// currentPlayer names local runs after the OS user.
func currentPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
