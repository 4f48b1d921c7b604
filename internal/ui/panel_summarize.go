package ui

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/navigator/internal/ai"
	"github.com/zhubert/navigator/internal/keys"
	"github.com/zhubert/navigator/internal/session"
)

// summaryHistoryRows is the height of the history list
const summaryHistoryRows = 5

// SummarizePanel summarizes pasted text and keeps a history of results.
type SummarizePanel struct {
	input   textarea.Model
	output  viewport.Model
	history *List
	records []session.SummaryRecord
	reply   ai.Reply

	// inHistory is true while the history list has the keyboard
	inHistory bool
	focused   bool
	busy      bool
	width     int
	height    int
}

// NewSummarizePanel creates the summarize panel.
func NewSummarizePanel() *SummarizePanel {
	ta := textarea.New()
	ta.Placeholder = "Paste text to summarize..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.SetHeight(TextareaHeight)
	applyTextareaStyles(&ta)

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &SummarizePanel{
		input:   ta,
		output:  vp,
		history: NewList("No summaries yet."),
	}
}

// SetSize implements panel.
func (p *SummarizePanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.SetWidth(width)
	p.input.SetHeight(TextareaHeight)
	p.output.SetWidth(width)
	// status + textarea + spacer above, title + list below
	p.output.SetHeight(max(height-TextareaHeight-2-summaryHistoryRows-1, 1))
	p.render()
}

// Focus implements panel.
func (p *SummarizePanel) Focus() tea.Cmd {
	p.focused = true
	if p.inHistory {
		return nil
	}
	return p.input.Focus()
}

// Blur implements panel.
func (p *SummarizePanel) Blur() {
	p.focused = false
	p.input.Blur()
}

// SetBusy toggles the in-flight indicator.
func (p *SummarizePanel) SetBusy(busy bool) { p.busy = busy }

// SetReply shows a pipeline reply.
func (p *SummarizePanel) SetReply(r ai.Reply) {
	p.reply = r
	p.render()
	p.output.GotoTop()
}

// Reply returns the text of the last reply.
func (p *SummarizePanel) Reply() string { return p.reply.Text }

// Text returns the text being summarized.
func (p *SummarizePanel) Text() string { return p.input.Value() }

// InsertText pastes s at the cursor.
func (p *SummarizePanel) InsertText(s string) {
	p.input.InsertString(s)
}

// SetRecords replaces the history list, newest first.
func (p *SummarizePanel) SetRecords(records []session.SummaryRecord) {
	p.records = records
	items := make([]ListItem, len(records))
	for i, r := range records {
		title := strings.TrimSpace(r.Text)
		if nl := strings.IndexByte(title, '\n'); nl >= 0 {
			title = title[:nl]
		}
		items[i] = ListItem{
			Title:  title,
			Detail: time.UnixMilli(r.TimestampMs).Format("Jan 2 15:04"),
		}
	}
	p.history.SetItems(items)
	if len(records) == 0 && p.inHistory {
		p.leaveHistory()
	}
}

// Restore loads a history record back into the editor and output.
func (p *SummarizePanel) Restore(i int) bool {
	if i < 0 || i >= len(p.records) {
		return false
	}
	r := p.records[i]
	p.input.SetValue(r.Text)
	p.SetReply(ai.Reply{Text: r.Summary, Status: ai.StatusOK})
	return true
}

func (p *SummarizePanel) leaveHistory() tea.Cmd {
	p.inHistory = false
	if p.focused {
		return p.input.Focus()
	}
	return nil
}

// Rerender redraws the reply, picking up new theme colors.
func (p *SummarizePanel) Rerender() { p.render() }

func (p *SummarizePanel) render() {
	switch {
	case p.reply.Text == "":
		p.output.SetContent(MutedStyle.Render("The summary appears here."))
	case p.reply.Genuine():
		p.output.SetContent(RenderMarkdown(p.reply.Text, p.output.Width()))
	default:
		p.output.SetContent(StatusErrorStyle.Render(wrapText(p.reply.Text, p.output.Width())))
	}
}

// Update implements panel.
func (p *SummarizePanel) Update(msg tea.Msg) tea.Cmd {
	if isWheel(msg) {
		var cmd tea.Cmd
		p.output, cmd = p.output.Update(msg)
		return cmd
	}

	key, isKey := msg.(tea.KeyPressMsg)
	if isKey && p.inHistory {
		switch key.String() {
		case keys.Up:
			p.history.Move(-1)
		case keys.Down:
			p.history.Move(1)
		case keys.Enter:
			p.Restore(p.history.Selected())
			return p.leaveHistory()
		case keys.CtrlX:
			return emit(ClearSummariesMsg{})
		case keys.Escape, keys.CtrlR:
			return p.leaveHistory()
		}
		return nil
	}

	if isKey {
		switch key.String() {
		case keys.CtrlS:
			if p.busy {
				return nil
			}
			return emit(SummarizeSubmitMsg{Text: p.input.Value()})
		case keys.CtrlV:
			return emit(PasteRequestMsg{})
		case keys.CtrlR:
			if p.history.Len() == 0 {
				return nil
			}
			p.inHistory = true
			p.input.Blur()
			return nil
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
func (p *SummarizePanel) View(spin string) string {
	status := MutedStyle.Render("Text to summarize")
	if p.busy {
		status = busyLine(spin, "Summarizing…")
	}
	title := PanelTitleStyle.Render("History")
	if p.inHistory {
		title = AccentStyle.Render(" History")
	}
	out := strings.Join([]string{
		status,
		p.input.View(),
		"",
		p.output.View(),
		title,
		p.history.View(p.width, summaryHistoryRows, p.inHistory),
	}, "\n")
	return fitHeight(out, p.width, p.height)
}

// Bindings implements panel.
func (p *SummarizePanel) Bindings() []KeyBinding {
	if p.inHistory {
		return []KeyBinding{
			{Key: "↑/↓", Desc: "select"},
			{Key: "enter", Desc: "restore"},
			{Key: "ctrl+x", Desc: "clear all"},
			{Key: "esc", Desc: "back"},
		}
	}
	return []KeyBinding{
		{Key: "ctrl+s", Desc: "summarize"},
		{Key: "ctrl+v", Desc: "paste"},
		{Key: "ctrl+r", Desc: "history"},
		{Key: "ctrl+y", Desc: "copy"},
	}
}
