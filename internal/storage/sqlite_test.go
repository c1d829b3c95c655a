package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-shank/internal/core"
	"github.com/vovakirdan/tui-shank/internal/shank"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.shank/shank.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".shank", "shank.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}

func TestStoreSettings(t *testing.T) {
	store := openTemp(t)

	if _, ok, err := store.Get("missing"); ok || err != nil {
		t.Errorf("Get(missing) = %v, %v", ok, err)
	}

	if err := store.Set("k", "one"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set("k", "two"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}

	v, ok, err := store.Get("k")
	if err != nil || !ok || v != "two" {
		t.Errorf("Get(k) = %q, %v, %v", v, ok, err)
	}
}

func TestStoreSettingsSurviveReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Set(shank.BestScoreKey, "120"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if got := shank.LoadBestScore(store, nil); got != 120 {
		t.Errorf("LoadBestScore = %d, want 120", got)
	}
}

func TestScopedKV(t *testing.T) {
	store := openTemp(t)
	alice := store.Scoped("user:alice:")
	bob := store.Scoped("user:bob:")

	if err := alice.Set(shank.BestScoreKey, "50"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	if _, ok, _ := bob.Get(shank.BestScoreKey); ok {
		t.Error("scopes should not share keys")
	}
	if v, ok, _ := store.Get("user:alice:" + shank.BestScoreKey); !ok || v != "50" {
		t.Errorf("raw key = %q, %v", v, ok)
	}
}

func TestStoreBacksSession(t *testing.T) {
	store := openTemp(t)
	s := shank.NewSession(shank.Options{Store: store, Seed: 1})
	loop := shank.NewLoop(s, nil)
	loop.Dispatch(core.ActionConfirm)

	// Steer into the top wall.
	loop.Dispatch(core.ActionUp)
	for s.Mode() == shank.ModePlaying {
		s.Tick()
	}

	if s.Mode() != shank.ModeGameOver {
		t.Fatalf("Mode = %s", s.Mode())
	}
	if _, _, err := store.Get(shank.BestScoreKey); err != nil {
		t.Errorf("Get() after a run failed: %v", err)
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTemp(t)

	runs := []Run{
		{Player: "alice", Score: 100, Level: 2, FoodEaten: 3},
		{Player: "bob", Score: 50, Level: 1, FoodEaten: 5},
		{Player: "alice", Score: 500, Level: 5, FoodEaten: 15, Completed: true},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	if top[0].Score != 500 || !top[0].Completed || top[0].Player != "alice" {
		t.Errorf("unexpected best run %+v", top[0])
	}
	if top[2].Score != 50 || top[2].Completed {
		t.Errorf("unexpected last run %+v", top[2])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	mine, err := store.PlayerRuns("alice", 10)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(mine) != 2 || mine[0].Score != 500 {
		t.Errorf("PlayerRuns = %+v, want newest first", mine)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTemp(t)
	for i := range 20 {
		if _, err := store.SaveRun(Run{Score: i * 10, Level: 1}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(top))
	}
	if top[0].Score != 190 {
		t.Errorf("Expected top score 190, got %d", top[0].Score)
	}

	def, _ := store.TopRuns(0)
	if len(def) != 10 {
		t.Errorf("default limit returned %d runs", len(def))
	}
}

func TestStoreHighScoreAndStats(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore()
	if err != nil || high != 0 {
		t.Errorf("HighScore() on empty db = %d, %v", high, err)
	}
	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveRun(Run{Score: 100, Level: 2})
	store.SaveRun(Run{Score: 300, Level: 5, Completed: true})

	high, _ = store.HighScore()
	if high != 300 {
		t.Errorf("HighScore() = %d, want 300", high)
	}
	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.Completed != 1 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTemp(t)
	store.SaveRun(Run{Score: 10, Level: 1})
	store.Set("keep", "me")

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	top, _ := store.TopRuns(10)
	if len(top) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(top))
	}
	if v, ok, _ := store.Get("keep"); !ok || v != "me" {
		t.Error("settings should survive ClearRuns")
	}
}
