package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/navigator/internal/keys"
	"github.com/zhubert/navigator/internal/ui"
)

// nudgeStep is how many cells one resize key moves the divider.
const nudgeStep = 2

// Shortcut is a key handled before the focused pane sees it.
type Shortcut struct {
	Key         string
	Description string
	Handler     func(m *Model) tea.Cmd
	Condition   func(m *Model) bool // Optional extra condition
}

// shortcuts is the single source of truth for global keys.
var shortcuts = []Shortcut{
	{Key: keys.CtrlC, Description: "quit", Handler: func(m *Model) tea.Cmd { return tea.Quit }},
	{Key: keys.Tab, Description: "cycle focus", Handler: (*Model).cycleFocus},
	{Key: keys.CtrlN, Description: "next panel", Handler: func(m *Model) tea.Cmd {
		return m.showTab(m.sidebar.Active().Next())
	}},
	{Key: keys.CtrlP, Description: "previous panel", Handler: func(m *Model) tea.Cmd {
		return m.showTab(m.sidebar.Active().Prev())
	}},
	{Key: keys.CtrlL, Description: "address bar", Handler: func(m *Model) tea.Cmd {
		return m.setFocus(FocusAddress)
	}},
	{Key: keys.CtrlB, Description: "toggle bookmark", Handler: (*Model).toggleBookmark},
	{Key: keys.CtrlH, Description: "history", Handler: (*Model).openHistory},
	{Key: keys.CtrlY, Description: "copy reply", Handler: (*Model).copyReply},
	{Key: keys.CtrlLeft, Description: "narrow panel", Handler: func(m *Model) tea.Cmd {
		return m.nudge(-nudgeStep)
	}},
	{Key: keys.CtrlRight, Description: "widen panel", Handler: func(m *Model) tea.Cmd {
		return m.nudge(nudgeStep)
	}},
	{Key: "[", Description: "narrow panel", Handler: func(m *Model) tea.Cmd {
		return m.nudge(-nudgeStep)
	}, Condition: pageFocused},
	{Key: "]", Description: "widen panel", Handler: func(m *Model) tea.Cmd {
		return m.nudge(nudgeStep)
	}, Condition: pageFocused},
}

func pageFocused(m *Model) bool { return m.focus == FocusPage }

// handleShortcut runs the shortcut bound to msg, if any.
func (m *Model) handleShortcut(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	key := msg.String()
	for _, s := range shortcuts {
		if s.Key != key {
			continue
		}
		if s.Condition != nil && !s.Condition(m) {
			continue
		}
		m.log.Debug("shortcut", "key", key, "action", s.Description)
		return s.Handler(m), true
	}
	return nil, false
}

// showTab switches the sidebar to t and focuses it.
func (m *Model) showTab(t ui.Tab) tea.Cmd {
	return tea.Batch(m.setFocus(FocusSidebar), m.sidebar.SetActive(t))
}

// nudge changes the side panel width by delta cells.
func (m *Model) nudge(delta int) tea.Cmd {
	m.resizer.Nudge(delta)
	m.updateSizes()
	return nil
}

// footerBindings returns the bindings for the focused pane.
func (m *Model) footerBindings() []ui.KeyBinding {
	switch m.focus {
	case FocusAddress:
		if m.address.HistoryOpen() {
			return []ui.KeyBinding{
				{Key: "↑/↓", Desc: "select"},
				{Key: "enter", Desc: "open"},
				{Key: "ctrl+x", Desc: "clear"},
				{Key: "esc", Desc: "close"},
			}
		}
		return []ui.KeyBinding{
			{Key: "enter", Desc: "go"},
			{Key: "ctrl+b", Desc: "bookmark"},
			{Key: "ctrl+h", Desc: "history"},
			{Key: "tab", Desc: "focus"},
		}
	case FocusPage:
		return []ui.KeyBinding{
			{Key: "↑/↓", Desc: "scroll"},
			{Key: "[/]", Desc: "resize"},
			{Key: "ctrl+l", Desc: "address"},
			{Key: "tab", Desc: "focus"},
		}
	default:
		return append(m.sidebar.Bindings(),
			ui.KeyBinding{Key: "ctrl+n", Desc: "next panel"},
			ui.KeyBinding{Key: "tab", Desc: "focus"},
		)
	}
}
