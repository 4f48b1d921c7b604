package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/navigator/internal/keys"
	"github.com/zhubert/navigator/internal/theme"
)

// ThemePanel generates a theme from a prompt and previews the current one.
type ThemePanel struct {
	input   textinput.Model
	current theme.Theme
	tokens  theme.Tokens
	status  string
	failed  bool
	busy    bool
	width   int
	height  int
}

// NewThemePanel creates the theme panel showing the default theme.
func NewThemePanel() *ThemePanel {
	ti := textinput.New()
	ti.Placeholder = "e.g. deep ocean at night"
	ti.CharLimit = PromptCharLimit

	p := &ThemePanel{input: ti}
	p.SetTheme(theme.Default())
	return p
}

// SetSize implements panel.
func (p *ThemePanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.SetWidth(max(width-3, 1))
}

// Focus implements panel.
func (p *ThemePanel) Focus() tea.Cmd { return p.input.Focus() }

// Blur implements panel.
func (p *ThemePanel) Blur() { p.input.Blur() }

// SetBusy toggles the in-flight indicator.
func (p *ThemePanel) SetBusy(busy bool) { p.busy = busy }

// SetTheme updates the preview.
func (p *ThemePanel) SetTheme(t theme.Theme) {
	p.current = t
	p.tokens = theme.DeriveTokens(t)
}

// SetStatus shows the outcome of the last generation.
func (p *ThemePanel) SetStatus(text string, failed bool) {
	p.status = text
	p.failed = failed
}

// Update implements panel.
func (p *ThemePanel) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == keys.Enter {
		prompt := strings.TrimSpace(p.input.Value())
		if prompt == "" || p.busy {
			return nil
		}
		return emit(ThemeSubmitMsg{Prompt: prompt})
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// swatch renders one color row of the preview.
func swatch(name, value string) string {
	block := "  "
	if c, ok := parseColorValue(value); ok {
		block = lipgloss.NewStyle().Background(lipgloss.Color(c)).Render("  ")
	}
	return fmt.Sprintf("%s %-16s %s", block, name, MutedStyle.Render(value))
}

// View implements panel.
func (p *ThemePanel) View(spin string) string {
	status := MutedStyle.Render("Describe a theme")
	if p.busy {
		status = busyLine(spin, "Generating…")
	}

	lines := []string{status, p.input.View(), "", PanelTitleStyle.Render("Current")}
	lines = append(lines,
		swatch(theme.FieldPrimary, p.current.PrimaryColor),
		swatch(theme.FieldAccent, p.current.AccentColor),
		swatch(theme.FieldText, p.current.TextColor),
		swatch(theme.FieldBackground, p.current.BackgroundColor),
		"",
		MutedStyle.Render("border     ")+p.tokens.BorderColor,
		MutedStyle.Render("background ")+p.tokens.BackgroundAlpha85,
	)
	if !p.tokens.Valid {
		lines = append(lines, StatusErrorStyle.Render("primary color is not valid hex"))
	}
	if p.status != "" {
		style := AccentStyle
		if p.failed {
			style = StatusErrorStyle
		}
		lines = append(lines, "", style.Render(wrapText(p.status, p.width)))
	}
	return fitHeight(strings.Join(lines, "\n"), p.width, p.height)
}

// Bindings implements panel.
func (p *ThemePanel) Bindings() []KeyBinding {
	return []KeyBinding{{Key: "enter", Desc: "generate"}}
}
