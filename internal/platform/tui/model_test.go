package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shank/internal/core"
	"github.com/vovakirdan/tui-shank/internal/shank"
	"github.com/vovakirdan/tui-shank/internal/storage"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func newTestModel(opts Options) Model {
	opts.Config = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, FrameRate: 60, Seed: 1}
	return NewModel(opts)
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func TestModelStartsInStartMode(t *testing.T) {
	m := newTestModel(Options{})
	if m.Init() != nil {
		t.Error("no frames should be scheduled before a run starts")
	}
	if m.Session().Mode() != shank.ModeStart {
		t.Errorf("Mode = %s", m.Session().Mode())
	}

	m.View()
	if !strings.Contains(m.screen.String(), "Press Enter to start") {
		t.Errorf("start screen missing:\n%s", m.screen.String())
	}
}

func TestModelConfirmStartsFrames(t *testing.T) {
	m := newTestModel(Options{})

	m, cmd := update(t, m, enter)
	if m.Session().Mode() != shank.ModePlaying {
		t.Fatalf("Mode = %s after Enter", m.Session().Mode())
	}
	if cmd == nil {
		t.Fatal("starting a run should schedule a frame")
	}
	if m.gen != 1 {
		t.Errorf("gen = %d, want 1", m.gen)
	}

	if _, cmd := update(t, m, FrameMsg{Gen: m.gen}); cmd == nil {
		t.Error("frames should keep coming while playing")
	}
}

func TestModelDropsStaleFrames(t *testing.T) {
	m := newTestModel(Options{})
	m, _ = update(t, m, enter)

	if _, cmd := update(t, m, FrameMsg{Gen: m.gen - 1}); cmd != nil {
		t.Error("a frame from an old chain should not reschedule")
	}
}

func TestModelPauseStopsFrames(t *testing.T) {
	m := newTestModel(Options{})
	m, _ = update(t, m, enter)

	m, cmd := update(t, m, runeKey('p'))
	if m.Session().Mode() != shank.ModePaused || cmd != nil {
		t.Fatalf("Mode = %s, cmd = %v", m.Session().Mode(), cmd != nil)
	}
	if _, cmd := update(t, m, FrameMsg{Gen: m.gen}); cmd != nil {
		t.Error("frames should stop while paused")
	}

	gen := m.gen
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Session().Mode() != shank.ModePlaying || cmd == nil {
		t.Fatal("Esc should resume and restart frames")
	}
	if m.gen != gen+1 {
		t.Error("resuming should start a new frame generation")
	}
}

// pilot steers towards the food without reversing or leaving the grid.
func pilot(s *shank.Session) {
	snap := s.Snapshot()
	head := snap.Body.Head()
	dx, dy := snap.Food.X-head.X, snap.Food.Y-head.Y

	var want []shank.Direction
	switch {
	case dx > 0:
		want = append(want, shank.DirRight)
	case dx < 0:
		want = append(want, shank.DirLeft)
	}
	switch {
	case dy > 0:
		want = append(want, shank.DirDown)
	case dy < 0:
		want = append(want, shank.DirUp)
	}
	// Otherwise turn aside, away from the nearest wall.
	if snap.Direction == shank.DirLeft || snap.Direction == shank.DirRight {
		if head.Y > 0 {
			want = append(want, shank.DirUp)
		}
		want = append(want, shank.DirDown)
	} else {
		if head.X < shank.GridSize-1 {
			want = append(want, shank.DirRight)
		}
		want = append(want, shank.DirLeft)
	}

	for _, d := range want {
		if d != snap.Direction.Opposite() {
			s.RequestDirection(d)
			return
		}
	}
}

func TestModelRecordsRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(Options{Store: store, Player: "alice"})
	m, _ = update(t, m, enter)
	s := m.Session()

	for i := 0; s.Snapshot().Score == 0 && i < 500; i++ {
		pilot(s)
		s.Tick()
	}
	if s.Snapshot().Score == 0 {
		t.Fatal("pilot never reached the food")
	}
	for i := 0; s.Mode() == shank.ModePlaying && i < 100; i++ {
		s.RequestDirection(shank.DirUp)
		s.Tick()
	}
	if s.Mode() != shank.ModeGameOver {
		t.Fatalf("Mode = %s, want GAME_OVER", s.Mode())
	}

	m.recordRun()
	m.recordRun()

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want exactly 1", len(runs))
	}
	if runs[0].Player != "alice" || runs[0].Score != s.Snapshot().Score {
		t.Errorf("saved run %+v", runs[0])
	}

	m, _ = update(t, m, enter)
	if m.Session().Mode() != shank.ModePlaying || m.runSaved {
		t.Error("restart should arm run recording again")
	}
}

func TestModelSkinsScreen(t *testing.T) {
	kv := shank.NewMemoryKV()
	m := newTestModel(Options{KV: kv})

	m, _ = update(t, m, runeKey('k'))
	if m.view != viewSkins {
		t.Fatal("k should open the skin picker from START")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, enter)
	if v, _, _ := kv.Get(shank.ShankSkinKey); v != "skin1" {
		t.Errorf("stored shank skin = %q, want skin1", v)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewGame {
		t.Fatal("Esc should return to the game")
	}
	if m.skins.Shank.ID != "skin1" {
		t.Errorf("active skin = %s, want skin1", m.skins.Shank.ID)
	}
	if m.Session().Mode() != shank.ModeStart {
		t.Error("leaving the picker must not pause or start anything")
	}
}

func TestModelSubScreensOnlyBetweenRuns(t *testing.T) {
	m := newTestModel(Options{})
	m, _ = update(t, m, enter)

	m, _ = update(t, m, runeKey('k'))
	if m.view != viewGame {
		t.Error("skins should not open while playing")
	}
	m, _ = update(t, m, runeKey('t'))
	if m.view != viewGame {
		t.Error("scores should not open while playing")
	}
}

func TestModelScoresWithoutStore(t *testing.T) {
	m := newTestModel(Options{})

	m, _ = update(t, m, runeKey('t'))
	if m.view != viewScores {
		t.Fatal("t should open the scoreboard from START")
	}
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("scoreboard should explain the missing database")
	}

	m, _ = update(t, m, runeKey('b'))
	if m.view != viewGame {
		t.Error("b should go back to the game")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m := newTestModel(Options{})
	m, _ = update(t, m, enter)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if m.Session().Mode() != shank.ModePlaying {
		t.Error("resizing should not end or reset the run")
	}
	m.View()
	if !strings.Contains(m.screen.String(), "too small") {
		t.Error("small window should show a resize hint")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(Options{})
	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil || !m.quitting {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
