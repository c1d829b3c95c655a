package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shank/internal/config"
	"github.com/vovakirdan/tui-shank/internal/core"
	"github.com/vovakirdan/tui-shank/internal/shank"
	"github.com/vovakirdan/tui-shank/internal/storage"
)

type view int

const (
	viewGame view = iota
	viewSkins
	viewScores
)

// Options configure a game model.
type Options struct {
	Rules  shank.Rules
	Store  *storage.Store // run history; may be nil
	KV     shank.KV       // settings; defaults to Store, then to memory
	Player string
	Logger *log.Logger
	Config core.RuntimeConfig
}

// Model is the Bubble Tea model for one player: the game screen plus the
// skin picker and scoreboard it can open.
type Model struct {
	loop       *shank.Loop
	screen     *core.Screen
	store      *storage.Store
	kv         shank.KV
	player     string
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	skins      shank.Skins
	view       view
	skinsMenu  SkinsModel
	scoreboard ScoreboardModel
	gen        int  // frame chain generation
	runSaved   bool // Whether the current game over has been recorded
	quitting   bool
}

// NewModel creates a new Bubble Tea model in START mode.
func NewModel(opts Options) Model {
	cfg := opts.Config
	defaults := core.DefaultConfig()
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = defaults.ScreenW, defaults.ScreenH
	}
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = defaults.FrameRate
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	kv := opts.KV
	if kv == nil {
		if opts.Store != nil {
			kv = opts.Store
		} else {
			kv = shank.NewMemoryKV()
		}
	}

	session := shank.NewSession(shank.Options{
		Rules:  opts.Rules,
		Store:  kv,
		Logger: logger,
		Seed:   cfg.Seed,
	})

	return Model{
		loop:   shank.NewLoop(session, shank.SystemClock{}),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  opts.Store,
		kv:     kv,
		player: opts.Player,
		logger: logger,
		config: cfg,
		keys:   DefaultKeyMap(),
		skins:  shank.LoadSkins(kv, logger),
	}
}

// Session returns the engine session driven by this model.
func (m Model) Session() *shank.Session {
	return m.loop.Session()
}

// Init does nothing: frames are only scheduled while a run is playing.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	switch m.view {
	case viewSkins:
		updated, cmd := m.skinsMenu.Update(msg)
		m.skinsMenu = updated.(SkinsModel)
		if m.skinsMenu.WantsBack() {
			m.skins = m.skinsMenu.Selected()
			m.view = viewGame
		}
		return m, cmd
	case viewScores:
		updated, cmd := m.scoreboard.Update(msg)
		m.scoreboard = updated.(ScoreboardModel)
		if m.scoreboard.IsGoingBack() {
			m.view = viewGame
		}
		return m, cmd
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionSkins, core.ActionScores:
		if mode := m.loop.Session().Mode(); mode != shank.ModeStart && mode != shank.ModeGameOver {
			return m, nil
		}
		if action == core.ActionSkins {
			m.skinsMenu = NewSkinsModel(m.kv, m.skins, m.config.ScreenW, m.config.ScreenH)
			m.view = viewSkins
		} else {
			m.scoreboard = NewScoreboardModel(m.store, m.player, m.config.ScreenW, m.config.ScreenH)
			m.view = viewScores
		}
		return m, nil
	}

	wasRunning := m.loop.Running()
	if !m.loop.Dispatch(action) {
		return m, nil
	}
	m.recordRun()

	// Re-entering PLAYING starts a new frame chain; a chain still in flight
	// from before a quick pause/resume is dropped by its generation.
	if !wasRunning && m.loop.Running() {
		m.gen++
		return m, frameCmd(m.config.FrameRate, m.gen)
	}
	return m, nil
}

// handleResize processes window resize events. The run is kept; the
// renderer shows a hint while the window is too small.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	switch m.view {
	case viewSkins:
		updated, _ := m.skinsMenu.Update(msg)
		m.skinsMenu = updated.(SkinsModel)
	case viewScores:
		updated, _ := m.scoreboard.Update(msg)
		m.scoreboard = updated.(ScoreboardModel)
	}
	return m, nil
}

// handleFrame runs one scheduler frame.
func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil
	}

	ev, again := m.loop.Frame()
	if ev != shank.EventNone && ev != shank.EventMoved {
		m.logger.Debug("tick", "event", ev, "score", m.loop.Session().Snapshot().Score)
	}
	m.recordRun()

	if !again {
		return m, nil
	}
	return m, frameCmd(m.config.FrameRate, m.gen)
}

// recordRun saves a finished run to the history once per game over.
func (m *Model) recordRun() {
	snap := m.loop.Session().Snapshot()
	if snap.Mode != shank.ModeGameOver {
		m.runSaved = false
		return
	}
	if m.runSaved {
		return
	}
	m.runSaved = true

	m.logger.Info("run finished",
		"player", m.player,
		"score", snap.Score,
		"level", snap.Level,
		"completed", snap.Completed,
	)
	if m.store == nil || snap.Score == 0 {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		Player:    m.player,
		Score:     snap.Score,
		Level:     snap.Level,
		FoodEaten: snap.FoodEaten,
		Completed: snap.Completed,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	shank.Render(m.screen, m.loop.Session().Snapshot(), m.skins)

	dir, err := config.ExpandHome("~/.shank/screenshots")
	if err == nil {
		err = os.MkdirAll(dir, 0o755)
	}
	if err == nil {
		name := fmt.Sprintf("shank_%s.txt", time.Now().Format("20060102_150405"))
		err = os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
	}
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewSkins:
		return m.skinsMenu.View()
	case viewScores:
		return m.scoreboard.View()
	}

	shank.Render(m.screen, m.loop.Session().Snapshot(), m.skins)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
