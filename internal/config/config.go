// Package config provides YAML-based rules loading and environment-based
// process settings for Shank.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ShankConfig contains the tunable rules of the game.
type ShankConfig struct {
	Timing  Timing  `yaml:"timing"`
	Scoring Scoring `yaml:"scoring"`
}

// Timing defines the tick interval progression.
type Timing struct {
	InitialIntervalMs int `yaml:"initial_interval_ms"`
	IntervalStepMs    int `yaml:"interval_step_ms"`
	MinIntervalMs     int `yaml:"min_interval_ms"`
}

// Scoring defines point rewards.
type Scoring struct {
	FoodReward int `yaml:"food_reward"`
}

// InitialInterval returns the starting tick interval.
func (t Timing) InitialInterval() time.Duration {
	return time.Duration(t.InitialIntervalMs) * time.Millisecond
}

// IntervalStep returns the per-apple speed-up.
func (t Timing) IntervalStep() time.Duration {
	return time.Duration(t.IntervalStepMs) * time.Millisecond
}

// MinInterval returns the interval floor.
func (t Timing) MinInterval() time.Duration {
	return time.Duration(t.MinIntervalMs) * time.Millisecond
}

// Validate reports every field that would break the simulation.
func (c ShankConfig) Validate() error {
	var errs []error
	if c.Timing.MinIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.min_interval_ms must be positive, got %d", c.Timing.MinIntervalMs))
	}
	if c.Timing.InitialIntervalMs < c.Timing.MinIntervalMs {
		errs = append(errs, fmt.Errorf("timing.initial_interval_ms (%d) must not be below timing.min_interval_ms (%d)",
			c.Timing.InitialIntervalMs, c.Timing.MinIntervalMs))
	}
	if c.Timing.IntervalStepMs < 0 {
		errs = append(errs, fmt.Errorf("timing.interval_step_ms must not be negative, got %d", c.Timing.IntervalStepMs))
	}
	if c.Scoring.FoodReward <= 0 {
		errs = append(errs, fmt.Errorf("scoring.food_reward must be positive, got %d", c.Scoring.FoodReward))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid rules: %w", err)
	}
	return nil
}
