package shank

import (
	"time"

	"github.com/vovakirdan/tui-shank/internal/config"
)

// Rules are the tunable constants of a run.
type Rules struct {
	InitialInterval time.Duration
	IntervalStep    time.Duration
	MinInterval     time.Duration
	FoodReward      int
}

// DefaultRules returns the built-in rules.
func DefaultRules() Rules {
	return RulesFrom(config.DefaultShankConfig())
}

// RulesFrom converts loaded configuration into rules.
func RulesFrom(cfg config.ShankConfig) Rules {
	return Rules{
		InitialInterval: cfg.Timing.InitialInterval(),
		IntervalStep:    cfg.Timing.IntervalStep(),
		MinInterval:     cfg.Timing.MinInterval(),
		FoodReward:      cfg.Scoring.FoodReward,
	}
}

// Progression tracks score and speed across a run.
type Progression struct {
	Level        int // 1-based catalog index
	FoodEaten    int // in the current level
	Score        int
	BestScore    int
	TickInterval time.Duration
}

// Begin resets everything except the best score for a fresh run at level 1.
func (p *Progression) Begin(rules Rules) {
	p.Level = 1
	p.FoodEaten = 0
	p.Score = 0
	p.TickInterval = rules.InitialInterval
}

// EnterLevel moves to the given level and derives its interval from the
// accumulated score.
func (p *Progression) EnterLevel(index int, rules Rules) {
	p.Level = index
	p.FoodEaten = 0
	p.TickInterval = LevelInterval(p.Score, LookupLevel(index), rules)
}

// RecordFood applies one eaten apple. It reports whether the level target was
// reached and whether the best score was raised. On the completing apple the
// interval is left untouched.
func (p *Progression) RecordFood(level Level, rules Rules) (complete, newBest bool) {
	p.Score += rules.FoodReward
	p.FoodEaten++
	if p.Score > p.BestScore {
		p.BestScore = p.Score
		newBest = true
	}
	if p.FoodEaten >= level.TargetFood {
		return true, newBest
	}
	p.TickInterval = max(rules.MinInterval, p.TickInterval-rules.IntervalStep)
	return false, newBest
}

// LevelInterval is the starting interval of a level: the run's base interval
// after score/reward speed-ups, shortened by the level's multiplier.
func LevelInterval(score int, level Level, rules Rules) time.Duration {
	eaten := 0
	if rules.FoodReward > 0 {
		eaten = score / rules.FoodReward
	}
	base := rules.InitialInterval - time.Duration(eaten)*rules.IntervalStep
	scaled := time.Duration(float64(base) / level.SpeedMultiplier)
	return max(rules.MinInterval, scaled)
}
