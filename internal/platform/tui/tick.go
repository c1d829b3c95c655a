// Package tui provides the Bubble Tea integration for the game. It handles
// the terminal UI loop, input mapping, and frame scheduling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is one animation frame. Frames from an older generation belong
// to a chain that was replaced and are dropped.
type FrameMsg struct {
	Gen int
	At  time.Time
}

// frameCmd schedules the next frame of generation gen at the given rate.
func frameCmd(fps, gen int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Gen: gen, At: t}
	})
}
