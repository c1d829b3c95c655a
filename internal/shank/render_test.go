package shank

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-shank/internal/core"
)

func TestRenderStartOverlay(t *testing.T) {
	screen := core.NewScreen(80, 24)
	Render(screen, NewSession(Options{}).Snapshot(), LoadSkins(nil, nil))

	out := screen.String()
	if !strings.Contains(out, "Press Enter to start") {
		t.Errorf("start overlay missing:\n%s", out)
	}
	if !strings.Contains(out, "Best 0") {
		t.Error("HUD should show the best score")
	}
}

func TestRenderBoard(t *testing.T) {
	s := NewSession(Options{})
	s.Start()
	s.food = core.Cell{X: 0, Y: 0}
	skins := LoadSkins(nil, nil)

	screen := core.NewScreen(80, 24)
	Render(screen, s.Snapshot(), skins)

	ox, oy := (80-boardW)/2, 1
	if got := screen.Get(ox, oy); got != '┌' {
		t.Errorf("board corner = %q", got)
	}

	head := screen.GetCell(ox+1+10*cellWidth, oy+1+10)
	if head.Rune != []rune(skins.Shank.Glyph)[0] || head.Color != skins.Shank.Color {
		t.Errorf("head cell = %+v", head)
	}
	food := screen.GetCell(ox+1, oy+1)
	if food.Color != skins.Apple.Color {
		t.Errorf("food cell = %+v", food)
	}
	if strings.Contains(screen.String(), "Press Enter") {
		t.Error("no overlay while playing")
	}
}

func TestRenderObstacles(t *testing.T) {
	s := NewSession(Options{})
	s.Start()
	s.progress.EnterLevel(2, s.rules)
	s.food = core.Cell{X: 0, Y: 0}

	screen := core.NewScreen(80, 24)
	Render(screen, s.Snapshot(), LoadSkins(nil, nil))

	ox, oy := (80-boardW)/2, 1
	if got := screen.Get(ox+1+5*cellWidth, oy+1+5); got != '▒' {
		t.Errorf("obstacle cell = %q", got)
	}
}

func TestRenderGameOver(t *testing.T) {
	snap := Snapshot{Mode: ModeGameOver, Level: 5, Score: 500, BestScore: 500, Completed: true}
	screen := core.NewScreen(80, 24)
	Render(screen, snap, LoadSkins(nil, nil))

	out := screen.String()
	if !strings.Contains(out, "You cleared every level!") || !strings.Contains(out, "Score 500") {
		t.Errorf("game over overlay missing:\n%s", out)
	}
	if !strings.Contains(out, "Level reached 5") || !strings.Contains(out, "NEW BEST!") {
		t.Errorf("level reached or new best missing:\n%s", out)
	}
}

func TestRenderGameOverWithoutNewBest(t *testing.T) {
	tests := []struct {
		name        string
		score, best int
	}{
		{"below best", 40, 120},
		{"zero score", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := Snapshot{Mode: ModeGameOver, Level: 2, Score: tt.score, BestScore: tt.best}
			screen := core.NewScreen(80, 24)
			Render(screen, snap, LoadSkins(nil, nil))

			out := screen.String()
			if strings.Contains(out, "NEW BEST!") {
				t.Errorf("unexpected new best banner:\n%s", out)
			}
			if !strings.Contains(out, "Game Over") || !strings.Contains(out, "Level reached 2") {
				t.Errorf("game over overlay missing:\n%s", out)
			}
		})
	}
}

func TestRenderTooSmall(t *testing.T) {
	screen := core.NewScreen(30, 10)
	Render(screen, NewSession(Options{}).Snapshot(), LoadSkins(nil, nil))

	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected a resize hint:\n%s", screen.String())
	}
}
