package ui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/navigator/internal/ai"
	"github.com/zhubert/navigator/internal/keys"
)

// SearchPanel asks the model a question and shows the reply.
type SearchPanel struct {
	input  textinput.Model
	output viewport.Model
	reply  ai.Reply
	busy   bool
	width  int
	height int
}

// NewSearchPanel creates the search panel.
func NewSearchPanel() *SearchPanel {
	ti := textinput.New()
	ti.Placeholder = "Ask anything..."
	ti.CharLimit = PromptCharLimit

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &SearchPanel{input: ti, output: vp}
}

// SetSize implements panel.
func (p *SearchPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.SetWidth(max(width-3, 1))
	// Label, input and a spacer sit above the reply
	p.output.SetWidth(width)
	p.output.SetHeight(max(height-3, 1))
	p.render()
}

// Focus implements panel.
func (p *SearchPanel) Focus() tea.Cmd { return p.input.Focus() }

// Blur implements panel.
func (p *SearchPanel) Blur() { p.input.Blur() }

// SetBusy toggles the in-flight indicator.
func (p *SearchPanel) SetBusy(busy bool) { p.busy = busy }

// SetReply shows a pipeline reply.
func (p *SearchPanel) SetReply(r ai.Reply) {
	p.reply = r
	p.render()
	p.output.GotoTop()
}

// Reply returns the text of the last reply, or "" when there is none.
func (p *SearchPanel) Reply() string {
	return p.reply.Text
}

// Prompt returns the current input.
func (p *SearchPanel) Prompt() string { return p.input.Value() }

// Rerender redraws the reply, picking up new theme colors.
func (p *SearchPanel) Rerender() { p.render() }

func (p *SearchPanel) render() {
	switch {
	case p.reply.Text == "":
		p.output.SetContent(MutedStyle.Render("Replies appear here."))
	case p.reply.Genuine():
		p.output.SetContent(RenderMarkdown(p.reply.Text, p.output.Width()))
	default:
		p.output.SetContent(StatusErrorStyle.Render(wrapText(p.reply.Text, p.output.Width())))
	}
}

// Update implements panel.
func (p *SearchPanel) Update(msg tea.Msg) tea.Cmd {
	if isWheel(msg) {
		var cmd tea.Cmd
		p.output, cmd = p.output.Update(msg)
		return cmd
	}
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case keys.Enter:
			prompt := strings.TrimSpace(p.input.Value())
			if prompt == "" || p.busy {
				return nil
			}
			return emit(SearchSubmitMsg{Prompt: prompt})
		case keys.PgUp, keys.PgDown:
			var cmd tea.Cmd
			p.output, cmd = p.output.Update(msg)
			return cmd
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// View implements panel.
func (p *SearchPanel) View(spin string) string {
	status := MutedStyle.Render("Ask the model")
	if p.busy {
		status = busyLine(spin, "Searching…")
	}
	out := strings.Join([]string{status, p.input.View(), "", p.output.View()}, "\n")
	return fitHeight(out, p.width, p.height)
}

// Bindings implements panel.
func (p *SearchPanel) Bindings() []KeyBinding {
	return []KeyBinding{
		{Key: "enter", Desc: "search"},
		{Key: "pgup/pgdn", Desc: "scroll"},
		{Key: "ctrl+y", Desc: "copy"},
	}
}
