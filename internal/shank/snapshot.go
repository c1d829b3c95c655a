package shank

import (
	"time"

	"github.com/vovakirdan/tui-shank/internal/core"
)

// Snapshot is a read-only copy of the session for presentation and tests.
type Snapshot struct {
	Tick         uint64
	Mode         Mode
	Body         Body
	Food         core.Cell
	Obstacles    ObstacleSet
	Direction    Direction
	Score        int
	BestScore    int
	Level        int // 1-based
	LevelName    string
	TargetFood   int
	FoodEaten    int
	TickInterval time.Duration
	Completed    bool // GAME_OVER reached by clearing the final level
}

// TickIntervalMs returns the interval in whole milliseconds.
func (s Snapshot) TickIntervalMs() int64 {
	return s.TickInterval.Milliseconds()
}

// FinalLevel reports whether the snapshot is on the last catalog level.
func (s Snapshot) FinalLevel() bool {
	return IsFinalLevel(s.Level)
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	level := s.Level()
	return Snapshot{
		Tick:         s.ticks,
		Mode:         s.mode,
		Body:         s.body.Clone(),
		Food:         s.food,
		Obstacles:    level.Obstacles,
		Direction:    s.current,
		Score:        s.progress.Score,
		BestScore:    s.progress.BestScore,
		Level:        s.progress.Level,
		LevelName:    level.Name,
		TargetFood:   level.TargetFood,
		FoodEaten:    s.progress.FoodEaten,
		TickInterval: s.progress.TickInterval,
		Completed:    s.completed,
	}
}
