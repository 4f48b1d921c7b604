package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// panel is one tab of the sidebar.
type panel interface {
	SetSize(width, height int)
	Focus() tea.Cmd
	Blur()
	Update(msg tea.Msg) tea.Cmd
	View(spin string) string
	Bindings() []KeyBinding
}

// busyLine renders the in-flight indicator for a panel.
func busyLine(spin, label string) string {
	return StatusLoadingStyle.Render(spin + " " + label)
}

// fitHeight pads or cuts s to exactly height lines of at most width cells.
func fitHeight(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "")
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// isWheel reports whether msg is a mouse wheel event.
func isWheel(msg tea.Msg) bool {
	_, ok := msg.(tea.MouseWheelMsg)
	return ok
}
