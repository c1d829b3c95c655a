package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Env holds process settings read from SHANK_* environment variables.
// Command-line flags default to these values.
type Env struct {
	DBPath      string        `env:"SHANK_DB" envDefault:"~/.shank/shank.db"`
	ConfigPath  string        `env:"SHANK_CONFIG"`
	LogLevel    string        `env:"SHANK_LOG_LEVEL" envDefault:"info"`
	LogFile     string        `env:"SHANK_LOG_FILE" envDefault:"~/.shank/shank.log"`
	FrameRate   int           `env:"SHANK_FPS" envDefault:"60"`
	Seed        int64         `env:"SHANK_SEED" envDefault:"0"`
	SSHAddr     string        `env:"SHANK_SSH_ADDR" envDefault:":23234"`
	HostKeyPath string        `env:"SHANK_HOST_KEY"`
	IdleTimeout time.Duration `env:"SHANK_IDLE_TIMEOUT" envDefault:"30m"`
}

// ParseEnv loads settings from the environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("config: parse env: %w", err)
	}
	return e, nil
}

// DefaultEnv returns the settings used when no SHANK_* variable is set.
// Panics if an envDefault tag of Env does not parse.
func DefaultEnv() Env {
	var e Env
	if err := parseDefaults(&e); err != nil {
		panic(err)
	}
	return e
}

// parseDefaults fills v from its envDefault tags alone, ignoring the process
// environment.
func parseDefaults(v any) error {
	if err := env.ParseWithOptions(v, env.Options{Environment: map[string]string{}}); err != nil {
		return fmt.Errorf("config: parse env defaults: %w", err)
	}
	return nil
}
