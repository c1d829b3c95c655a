// Package shank implements the game-state engine: movement, collisions,
// food placement, score and speed progression, and the session state
// machine that gates them.
package shank

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shank/internal/core"
)

// Mode is the top-level session state.
type Mode string

const (
	ModeStart         Mode = "START"
	ModePlaying       Mode = "PLAYING"
	ModePaused        Mode = "PAUSED"
	ModeGameOver      Mode = "GAME_OVER"
	ModeLevelComplete Mode = "LEVEL_COMPLETE"
)

// Event describes what a tick did.
type Event int

const (
	EventNone Event = iota // not playing, nothing happened
	EventMoved
	EventAte
	EventCollided
	EventLevelComplete
)

func (e Event) String() string {
	switch e {
	case EventMoved:
		return "moved"
	case EventAte:
		return "ate"
	case EventCollided:
		return "collided"
	case EventLevelComplete:
		return "level_complete"
	default:
		return "none"
	}
}

// Options configure a new session.
type Options struct {
	Rules  Rules
	Store  KV          // may be nil: best score is then kept in memory only
	Logger *log.Logger // may be nil
	Seed   int64
}

// Session is the single mutable game state. It has exactly one writer:
// whoever drives Tick and the mode requests.
type Session struct {
	rules   Rules
	store   KV
	logger  *log.Logger
	spawner *Spawner

	mode      Mode
	body      Body
	current   Direction // last direction moved
	pending   Direction // applied on the next tick
	food      core.Cell
	progress  Progression
	completed bool // the final level was cleared
	ticks     uint64
}

// NewSession creates a session in START mode. The best score is read from
// the store once, here.
func NewSession(opts Options) *Session {
	logger := orDiscard(opts.Logger)
	if opts.Rules == (Rules{}) {
		opts.Rules = DefaultRules()
	}

	s := &Session{
		rules:   opts.Rules,
		store:   opts.Store,
		logger:  logger,
		spawner: NewSpawner(opts.Seed),
		mode:    ModeStart,
		body:    StartBody(),
		food:    FallbackFood,
	}
	s.progress.Begin(s.rules)
	s.progress.BestScore = LoadBestScore(s.store, logger)
	return s
}

// Mode returns the active mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// TickInterval returns the current time between moves.
func (s *Session) TickInterval() time.Duration {
	return s.progress.TickInterval
}

// Level returns the active level definition.
func (s *Session) Level() Level {
	return LookupLevel(s.progress.Level)
}

// Start begins a run from the title screen.
func (s *Session) Start() bool {
	if s.mode != ModeStart {
		return false
	}
	s.beginRun()
	return true
}

// Restart begins a fresh run at level 1 after a game over.
func (s *Session) Restart() bool {
	if s.mode != ModeGameOver {
		return false
	}
	s.beginRun()
	return true
}

// Pause suspends play.
func (s *Session) Pause() bool {
	if s.mode != ModePlaying {
		return false
	}
	s.mode = ModePaused
	return true
}

// Resume continues a paused run.
func (s *Session) Resume() bool {
	if s.mode != ModePaused {
		return false
	}
	s.mode = ModePlaying
	return true
}

// TogglePause pauses while playing and resumes while paused.
func (s *Session) TogglePause() bool {
	if s.mode == ModePaused {
		return s.Resume()
	}
	return s.Pause()
}

// Advance leaves LEVEL_COMPLETE: into the next level, or into GAME_OVER
// when the final level was just cleared.
func (s *Session) Advance() bool {
	if s.mode != ModeLevelComplete {
		return false
	}
	next := s.progress.Level + 1
	if next > LevelCount() {
		s.completed = true
		s.mode = ModeGameOver
		s.logger.Info("all levels cleared", "score", s.progress.Score)
		return true
	}
	s.progress.EnterLevel(next, s.rules)
	s.placeBody()
	s.mode = ModePlaying
	s.logger.Debug("level started", "level", next, "interval", s.progress.TickInterval)
	return true
}

// Confirm performs the mode's primary action: start, advance or restart.
func (s *Session) Confirm() bool {
	switch s.mode {
	case ModeStart:
		return s.Start()
	case ModeLevelComplete:
		return s.Advance()
	case ModeGameOver:
		return s.Restart()
	}
	return false
}

// RequestDirection buffers a turn for the next tick. Reversals relative to
// the last move and requests outside PLAYING are ignored.
func (s *Session) RequestDirection(d Direction) bool {
	if s.mode != ModePlaying || d == s.current.Opposite() {
		return false
	}
	s.pending = d
	return true
}

// Tick advances the simulation by one move.
func (s *Session) Tick() Event {
	if s.mode != ModePlaying {
		return EventNone
	}
	s.ticks++

	level := s.Level()
	dir := s.pending
	res := Step(s.body, dir, level.Obstacles, s.food)
	s.current = dir

	if res.Collided {
		s.mode = ModeGameOver
		s.logger.Debug("collision", "head", res.Body.Head(), "dir", dir, "score", s.progress.Score)
		return EventCollided
	}
	s.body = res.Body
	if !res.Ate {
		return EventMoved
	}

	complete, newBest := s.progress.RecordFood(level, s.rules)
	if newBest {
		SaveBestScore(s.store, s.logger, s.progress.BestScore)
	}
	if complete {
		s.mode = ModeLevelComplete
		return EventLevelComplete
	}
	s.food = s.spawner.Spawn(s.body, level.Obstacles)
	return EventAte
}

func (s *Session) beginRun() {
	s.progress.Begin(s.rules)
	s.completed = false
	s.ticks = 0
	s.placeBody()
	s.mode = ModePlaying
	s.logger.Debug("run started", "best", s.progress.BestScore)
}

// placeBody resets body, directions and food for the current level.
func (s *Session) placeBody() {
	s.body = StartBody()
	s.current = DirRight
	s.pending = DirRight
	s.food = s.spawner.Spawn(s.body, s.Level().Obstacles)
}
