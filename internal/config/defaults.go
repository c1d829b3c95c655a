package config

import (
	_ "embed"
)

//go:embed defaults/shank.yaml
var defaultShankYAML []byte

// DefaultShankConfig returns the built-in rules.
func DefaultShankConfig() ShankConfig {
	return ShankConfig{
		Timing: Timing{
			InitialIntervalMs: 150,
			IntervalStepMs:    5,
			MinIntervalMs:     80,
		},
		Scoring: Scoring{
			FoodReward: 10,
		},
	}
}
