package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// sidebarSpinnerFrames is the shimmering spinner shown while a request is in flight
var sidebarSpinnerFrames = []string{"·", "✺", "✹", "✸", "✷", "✶", "✵", "✴", "✳", "✲", "✱", "✧", "✦", "·"}

// sidebarSpinnerHoldTimes defines how long each frame should be held (in ticks)
// First and last frames hold longer for a "breathing" effect
var sidebarSpinnerHoldTimes = []int{3, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 3}

// SidebarTickMsg is sent to advance the spinner animation
type SidebarTickMsg time.Time

// SidebarTick returns a command that sends a tick message after a delay
func SidebarTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return SidebarTickMsg(t)
	})
}

// Sidebar is the resizable left panel holding the tabbed tools.
type Sidebar struct {
	Search    *SearchPanel
	Summarize *SummarizePanel
	Theme     *ThemePanel
	Bookmarks *BookmarksPanel
	Settings  *SettingsPanel
	Help      *HelpPanel

	panels  map[Tab]panel
	active  Tab
	busy    map[Tab]bool
	focused bool
	width   int
	height  int

	spinnerFrame int
	spinnerTick  int
	ticking      bool
}

// NewSidebar creates a sidebar with every panel, Search active.
func NewSidebar() *Sidebar {
	s := &Sidebar{
		Search:    NewSearchPanel(),
		Summarize: NewSummarizePanel(),
		Theme:     NewThemePanel(),
		Bookmarks: NewBookmarksPanel(),
		Settings:  NewSettingsPanel(),
		Help:      NewHelpPanel(),
		busy:      make(map[Tab]bool),
	}
	s.panels = map[Tab]panel{
		TabSearch:    s.Search,
		TabSummarize: s.Summarize,
		TabTheme:     s.Theme,
		TabBookmarks: s.Bookmarks,
		TabSettings:  s.Settings,
		TabHelp:      s.Help,
	}
	return s
}

// SetSize sets the outer dimensions including the border.
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
	ctx := GetViewContext()
	inner := ctx.InnerWidth(width)
	// Tab bar and its rule sit above the panel body
	body := ctx.InnerHeight(height) - TabBarHeight - 1
	for _, p := range s.panels {
		p.SetSize(max(inner, 1), max(body, 1))
	}
}

// Width returns the outer width.
func (s *Sidebar) Width() int { return s.width }

// Active returns the visible tab.
func (s *Sidebar) Active() Tab { return s.active }

// SetActive switches tabs, moving keyboard focus along when focused.
func (s *Sidebar) SetActive(t Tab) tea.Cmd {
	if t == s.active {
		return nil
	}
	s.panels[s.active].Blur()
	s.active = t
	if s.focused {
		return s.panels[t].Focus()
	}
	return nil
}

// SetFocused gives or takes keyboard focus.
func (s *Sidebar) SetFocused(focused bool) tea.Cmd {
	s.focused = focused
	if focused {
		return s.panels[s.active].Focus()
	}
	s.panels[s.active].Blur()
	return nil
}

// IsFocused returns whether the sidebar has focus.
func (s *Sidebar) IsFocused() bool { return s.focused }

// SetBusy toggles the in-flight indicator of a tab and starts the spinner.
func (s *Sidebar) SetBusy(t Tab, busy bool) tea.Cmd {
	s.busy[t] = busy
	switch t {
	case TabSearch:
		s.Search.SetBusy(busy)
	case TabSummarize:
		s.Summarize.SetBusy(busy)
	case TabTheme:
		s.Theme.SetBusy(busy)
	}
	if busy && !s.ticking {
		s.ticking = true
		return SidebarTick()
	}
	return nil
}

// IsBusy reports whether any tab has a request in flight.
func (s *Sidebar) IsBusy() bool {
	for _, b := range s.busy {
		if b {
			return true
		}
	}
	return false
}

// Bindings returns the footer bindings of the active panel.
func (s *Sidebar) Bindings() []KeyBinding {
	return s.panels[s.active].Bindings()
}

// TabAt maps a point relative to the sidebar's top-left corner to a tab.
func (s *Sidebar) TabAt(x, y int) (Tab, bool) {
	// Row 0 is the top border; the tab bar is the first inner row
	if y != 1 || x < 1 || x >= s.width-1 {
		return 0, false
	}
	return TabAt(x-1, GetViewContext().InnerWidth(s.width))
}

// Update routes a message to the active panel.
func (s *Sidebar) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(SidebarTickMsg); ok {
		if !s.IsBusy() {
			s.ticking = false
			return nil
		}
		// Advance the spinner with easing (some frames hold longer)
		s.spinnerTick++
		holdTime := sidebarSpinnerHoldTimes[s.spinnerFrame%len(sidebarSpinnerHoldTimes)]
		if s.spinnerTick >= holdTime {
			s.spinnerTick = 0
			s.spinnerFrame = (s.spinnerFrame + 1) % len(sidebarSpinnerFrames)
		}
		return SidebarTick()
	}
	return s.panels[s.active].Update(msg)
}

// View renders the sidebar.
func (s *Sidebar) View() string {
	ctx := GetViewContext()
	inner := max(ctx.InnerWidth(s.width), 1)
	spin := sidebarSpinnerFrames[s.spinnerFrame]

	rule := MarkdownHRStyle.Render(strings.Repeat("─", inner))
	body := s.panels[s.active].View(spin)
	content := lipgloss.JoinVertical(lipgloss.Left, RenderTabBar(s.active, inner), rule, body)

	style := PanelStyle
	if s.focused {
		style = PanelFocusedStyle
	}
	return style.
		Width(s.width).
		Height(s.height).
		Render(content)
}
