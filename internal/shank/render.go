package shank

import (
	"fmt"

	"github.com/vovakirdan/tui-shank/internal/core"
)

// Board cells are two terminal columns wide so the grid looks square.
const (
	cellWidth  = 2
	boardW     = GridSize*cellWidth + 2
	boardH     = GridSize + 2
	MinScreenW = boardW
	MinScreenH = boardH + 2 // HUD above, key hints below
)

const obstacleGlyph = "▒▒"

// Render draws a snapshot onto the screen.
func Render(dst *core.Screen, snap Snapshot, skins Skins) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		renderOverlay(dst,
			"Window too small",
			fmt.Sprintf("Resize to at least %dx%d", MinScreenW, MinScreenH))
		return
	}

	ox := (dst.Width() - boardW) / 2
	oy := 1

	renderHUD(dst, snap, ox)
	dst.DrawBox(core.NewRect(ox, oy, boardW, boardH), core.ColorGray)

	for _, o := range snap.Obstacles {
		drawCell(dst, ox, oy, o, obstacleGlyph, core.ColorGray)
	}
	if snap.Mode != ModeStart {
		drawCell(dst, ox, oy, snap.Food, skins.Apple.Glyph, skins.Apple.Color)
	}
	// Tail first so the head wins if cells ever overlap.
	for i := len(snap.Body) - 1; i >= 0; i-- {
		if i == 0 {
			drawCell(dst, ox, oy, snap.Body[i], skins.Shank.Glyph, skins.Shank.Color)
			continue
		}
		drawCell(dst, ox, oy, snap.Body[i], skins.Shank.Trail, skins.Shank.TrailColor)
	}

	dst.DrawTextCentered(oy+boardH, hintFor(snap.Mode), core.ColorGray)
	renderModeOverlay(dst, snap)
}

func renderHUD(dst *core.Screen, snap Snapshot, x int) {
	left := fmt.Sprintf("L%d %s  %d/%d", snap.Level, snap.LevelName, snap.FoodEaten, snap.TargetFood)
	right := fmt.Sprintf("Score %d  Best %d", snap.Score, snap.BestScore)
	dst.DrawTextColored(x, 0, left, core.ColorBrightCyan)
	dst.DrawTextColored(x+boardW-len([]rune(right)), 0, right, core.ColorBrightYellow)
}

func renderModeOverlay(dst *core.Screen, snap Snapshot) {
	switch snap.Mode {
	case ModeStart:
		renderOverlay(dst, "S H A N K", "Press Enter to start", "K skins  T scores")
	case ModePaused:
		renderOverlay(dst, "Paused", "Press P to continue")
	case ModeLevelComplete:
		title := fmt.Sprintf("Level %d cleared!", snap.Level)
		if snap.FinalLevel() {
			title = "Final level cleared!"
		}
		renderOverlay(dst, title, fmt.Sprintf("Score %d", snap.Score), "Press Enter to continue")
	case ModeGameOver:
		title := "Game Over"
		if snap.Completed {
			title = "You cleared every level!"
		}
		lines := []string{
			title,
			fmt.Sprintf("Level reached %d", snap.Level),
			fmt.Sprintf("Score %d  Best %d", snap.Score, snap.BestScore),
		}
		if snap.Score > 0 && snap.Score == snap.BestScore {
			lines = append(lines, "NEW BEST!")
		}
		renderOverlay(dst, append(lines, "Enter to play again")...)
	}
}

func hintFor(mode Mode) string {
	switch mode {
	case ModePlaying:
		return "arrows/WASD steer  P pause  Q quit"
	case ModePaused:
		return "P resume  Q quit"
	default:
		return "Enter confirm  Q quit"
	}
}

func drawCell(dst *core.Screen, ox, oy int, c core.Cell, glyph string, color core.Color) {
	if !InBounds(c) {
		return
	}
	dst.DrawTextColored(ox+1+c.X*cellWidth, oy+1+c.Y, glyph, color)
}

// renderOverlay draws a boxed message centered on the screen.
func renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	for i, l := range lines {
		color := core.ColorDefault
		if i == 0 {
			color = core.ColorBrightYellow
		}
		dst.DrawTextCentered(box.Y+1+i, l, color)
	}
}
