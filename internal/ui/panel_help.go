package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/mattn/go-runewidth"
)

// helpSections is the static keyboard reference.
var helpSections = []struct {
	title    string
	bindings []KeyBinding
}{
	{"Global", []KeyBinding{
		{Key: "tab", Desc: "cycle focus"},
		{Key: "ctrl+n/ctrl+p", Desc: "next/previous panel"},
		{Key: "ctrl+l", Desc: "address bar"},
		{Key: "ctrl+b", Desc: "toggle bookmark"},
		{Key: "ctrl+h", Desc: "history"},
		{Key: "ctrl+y", Desc: "copy reply"},
		{Key: "ctrl+←/→", Desc: "resize panel"},
		{Key: "ctrl+c", Desc: "quit"},
	}},
	{"Page", []KeyBinding{
		{Key: "↑/↓ pgup/pgdn", Desc: "scroll"},
		{Key: "[ / ]", Desc: "resize panel"},
	}},
	{"Mouse", []KeyBinding{
		{Key: "click tab", Desc: "switch panel"},
		{Key: "drag divider", Desc: "resize panel"},
		{Key: "wheel", Desc: "scroll"},
	}},
}

// HelpPanel shows the key reference.
type HelpPanel struct {
	width  int
	height int
}

// NewHelpPanel creates the help panel.
func NewHelpPanel() *HelpPanel { return &HelpPanel{} }

// SetSize implements panel.
func (p *HelpPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Focus implements panel.
func (p *HelpPanel) Focus() tea.Cmd { return nil }

// Blur implements panel.
func (p *HelpPanel) Blur() {}

// Update implements panel.
func (p *HelpPanel) Update(tea.Msg) tea.Cmd { return nil }

// View implements panel.
func (p *HelpPanel) View(string) string {
	keyWidth := 0
	for _, s := range helpSections {
		for _, b := range s.bindings {
			keyWidth = max(keyWidth, runewidth.StringWidth(b.Key))
		}
	}

	var lines []string
	for i, s := range helpSections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, PanelTitleStyle.Render(s.title))
		for _, b := range s.bindings {
			pad := strings.Repeat(" ", keyWidth-runewidth.StringWidth(b.Key))
			lines = append(lines, " "+FooterKeyStyle.Render(b.Key)+pad+"  "+FooterDescStyle.Render(b.Desc))
		}
	}
	return fitHeight(strings.Join(lines, "\n"), p.width, p.height)
}

// Bindings implements panel.
func (p *HelpPanel) Bindings() []KeyBinding { return nil }
