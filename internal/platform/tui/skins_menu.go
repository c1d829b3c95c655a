package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shank/internal/registry"
	"github.com/vovakirdan/tui-shank/internal/shank"
)

var skinKinds = []registry.Kind{registry.KindShank, registry.KindApple}

// SkinsModel lets the player pick the shank and apple skins. Choices are
// persisted as soon as they are confirmed.
type SkinsModel struct {
	kv       shank.KV
	keys     KeyMap
	selected shank.Skins
	kind     int // index into skinKinds
	cursor   [2]int
	status   string
	width    int
	height   int
	back     bool
}

// NewSkinsModel creates a skin picker with the cursors on the active skins.
func NewSkinsModel(kv shank.KV, selected shank.Skins, width, height int) SkinsModel {
	m := SkinsModel{
		kv:       kv,
		keys:     DefaultKeyMap(),
		selected: selected,
		width:    width,
		height:   height,
	}
	for i, kind := range skinKinds {
		for j, s := range registry.List(kind) {
			if s.ID == m.active(kind).ID {
				m.cursor[i] = j
			}
		}
	}
	return m
}

// Init initializes the model.
func (m SkinsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SkinsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m SkinsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := registry.List(skinKinds[m.kind])

	switch {
	case key.Matches(msg, m.keys.Back):
		m.back = true
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		m.kind = (m.kind + 1) % len(skinKinds)
		m.status = ""
	case key.Matches(msg, m.keys.Up):
		if m.cursor[m.kind] > 0 {
			m.cursor[m.kind]--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor[m.kind] < len(list)-1 {
			m.cursor[m.kind]++
		}
	case key.Matches(msg, m.keys.Confirm):
		if len(list) == 0 {
			return m, nil
		}
		m.choose(list[m.cursor[m.kind]])
	}
	return m, nil
}

func (m *SkinsModel) choose(s registry.Skin) {
	kind := skinKinds[m.kind]
	if err := shank.SaveSkin(m.kv, kind, s.ID); err != nil {
		var unknown *shank.UnknownSkinError
		if errors.As(err, &unknown) {
			m.status = err.Error()
			return
		}
		// Keep the choice for this session even if it could not be stored.
		m.status = "could not save: " + err.Error()
	} else {
		m.status = fmt.Sprintf("%s skin set to %s", kind, s.Name)
	}

	if kind == registry.KindApple {
		m.selected.Apple = s
	} else {
		m.selected.Shank = s
	}
}

func (m SkinsModel) active(kind registry.Kind) registry.Skin {
	if kind == registry.KindApple {
		return m.selected.Apple
	}
	return m.selected.Shank
}

// View renders the skin lists.
func (m SkinsModel) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(centerText(title.Render("S K I N S"), m.width))
	b.WriteString("\n\n")

	for i, kind := range skinKinds {
		header := strings.ToUpper(string(kind))
		if i == m.kind {
			header = title.Render("[ " + header + " ]")
		} else {
			header = dim.Render("  " + header + "  ")
		}
		b.WriteString(centerText(header, m.width))
		b.WriteString("\n")

		for j, s := range registry.List(kind) {
			cursor := "  "
			if i == m.kind && j == m.cursor[i] {
				cursor = "> "
			}
			mark := " "
			if s.ID == m.active(kind).ID {
				mark = "*"
			}
			line := fmt.Sprintf("%s%s %-8s %s", cursor, mark, s.Name, preview(s))
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(centerText(m.status, m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(dim.Render("←/→: Switch  |  Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// preview draws a short sample of the skin in its colors.
func preview(s registry.Skin) string {
	out := styleFor(s.Color).Render(s.Glyph)
	if s.Trail != "" {
		out += styleFor(s.TrailColor).Render(strings.Repeat(s.Trail, 3))
	}
	return out
}

// Selected returns the skins chosen so far.
func (m SkinsModel) Selected() shank.Skins {
	return m.selected
}

// WantsBack returns true if user pressed back.
func (m SkinsModel) WantsBack() bool {
	return m.back
}
