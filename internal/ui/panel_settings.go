package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"

	"github.com/zhubert/navigator/internal/keys"
)

// CredentialSource says which client the AI pipeline will use.
type CredentialSource int

const (
	CredentialNone CredentialSource = iota
	CredentialEnvironment
	CredentialSession
)

// String describes the source for the settings panel.
func (c CredentialSource) String() string {
	switch c {
	case CredentialSession:
		return "Using the key saved in this session."
	case CredentialEnvironment:
		return "Using the key from the environment."
	default:
		return "No API key configured."
	}
}

// SettingsPanel edits the session credential.
type SettingsPanel struct {
	form   *huh.Form
	key    string
	source CredentialSource
	model  string
	width  int
	height int
}

// NewSettingsPanel creates the settings panel.
func NewSettingsPanel() *SettingsPanel {
	p := &SettingsPanel{width: 40}
	p.rebuild()
	return p
}

// rebuild creates a fresh form with an empty key field.
func (p *SettingsPanel) rebuild() {
	p.key = ""
	p.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Gemini API key").
			Description("Stored locally; overrides the environment key").
			Placeholder("paste key").
			EchoMode(huh.EchoModePassword).
			CharLimit(CredentialCharLimit).
			Value(&p.key),
	)).
		WithTheme(FormTheme()).
		WithShowHelp(false).
		WithWidth(max(p.width, 10))
	p.form.Init()
}

// SetSize implements panel.
func (p *SettingsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.form.WithWidth(max(width, 10))
}

// Focus implements panel.
func (p *SettingsPanel) Focus() tea.Cmd { return nil }

// Blur implements panel.
func (p *SettingsPanel) Blur() {}

// SetStatus updates the credential and model lines.
func (p *SettingsPanel) SetStatus(source CredentialSource, model string) {
	p.source = source
	p.model = model
}

// Update implements panel.
func (p *SettingsPanel) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case keys.Enter:
			value := strings.TrimSpace(p.key)
			if value == "" {
				return nil
			}
			p.rebuild()
			return emit(CredentialSubmitMsg{Value: value})
		case keys.CtrlD:
			p.rebuild()
			return emit(CredentialSubmitMsg{Value: ""})
		case keys.CtrlX:
			return emit(ClearHistoryMsg{})
		}
	}
	var cmd tea.Cmd
	p.form, cmd = formUpdate(p.form, msg)
	return cmd
}

// View implements panel.
func (p *SettingsPanel) View(string) string {
	statusStyle := AccentStyle
	if p.source == CredentialNone {
		statusStyle = StatusErrorStyle
	}
	lines := []string{
		p.form.View(),
		"",
		statusStyle.Render(wrapText(p.source.String(), p.width)),
		MutedStyle.Render("Model: " + p.model),
	}
	return fitHeight(strings.Join(lines, "\n"), p.width, p.height)
}

// Bindings implements panel.
func (p *SettingsPanel) Bindings() []KeyBinding {
	return []KeyBinding{
		{Key: "enter", Desc: "save key"},
		{Key: "ctrl+d", Desc: "forget key"},
		{Key: "ctrl+x", Desc: "clear history"},
	}
}
