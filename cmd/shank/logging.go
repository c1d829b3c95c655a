package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shank/internal/config"
	"github.com/vovakirdan/tui-shank/internal/shank"
)

// newLogger builds the process logger at --log-level, writing to w.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogFile opens the log file for appending. The TUI owns the terminal
// while a game runs, so local play logs here instead of to stderr.
func openLogFile() (*os.File, error) {
	path, err := config.ExpandHome(settings.LogFile)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// loadRules reads the rules YAML selected by --config.
func loadRules() (shank.Rules, error) {
	cfg, err := config.LoadShank(flagConfig)
	if err != nil {
		return shank.Rules{}, err
	}
	return shank.RulesFrom(cfg), nil
}
