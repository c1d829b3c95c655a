package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadShank loads the game rules.
// Search order: customPath -> ~/.shank/configs/shank.yaml -> ./configs/shank.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadShank(customPath string) (ShankConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ShankConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseShank(data)
		if err != nil {
			return ShankConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("shank.yaml"), filepath.Join("configs", "shank.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parseShank(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := parseShank(defaultShankYAML)
	if err != nil {
		return DefaultShankConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseShank(data []byte) (ShankConfig, error) {
	cfg := DefaultShankConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShankConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ShankConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shank", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
