package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/navigator/internal/ai"
	"github.com/zhubert/navigator/internal/notification"
	"github.com/zhubert/navigator/internal/session"
	"github.com/zhubert/navigator/internal/theme"
	"github.com/zhubert/navigator/internal/ui"
	"github.com/zhubert/navigator/internal/viewport"
)

// msgThemeFailed is shown when theme generation yields nothing usable.
const msgThemeFailed = "Failed to generate theme. AI core may be unstable or API key is invalid. Try a different prompt."

// SearchResultMsg carries a finished search.
type SearchResultMsg struct {
	Reply ai.Reply
}

// SummaryResultMsg carries a finished summary of Text.
type SummaryResultMsg struct {
	Text  string
	Reply ai.Reply
}

// ThemeResultMsg carries a generated theme. OK is false when generation
// failed for any reason.
type ThemeResultMsg struct {
	Theme theme.Theme
	OK    bool
}

// begin marks op in flight and shows the panel spinner. It reports false
// when op is already running.
func (m *Model) begin(op session.Operation, tab ui.Tab) (tea.Cmd, bool) {
	if !m.session.Begin(op) {
		m.log.Debug("request already in flight", "op", op)
		return nil, false
	}
	return m.sidebar.SetBusy(tab, true), true
}

// end clears the in-flight flag for op.
func (m *Model) end(op session.Operation, tab ui.Tab) {
	m.session.End(op)
	m.sidebar.SetBusy(tab, false)
}

func (m *Model) startSearch(prompt string) tea.Cmd {
	spin, ok := m.begin(session.OpSearch, ui.TabSearch)
	if !ok {
		return nil
	}
	ctx, cred, p := m.ctx, m.session.Snapshot().Credential, m.pipeline
	m.log.Info("search started")
	return tea.Batch(spin, func() tea.Msg {
		return SearchResultMsg{Reply: p.Search(ctx, prompt, cred)}
	})
}

func (m *Model) startSummarize(text string) tea.Cmd {
	spin, ok := m.begin(session.OpSummarize, ui.TabSummarize)
	if !ok {
		return nil
	}
	ctx, cred, p := m.ctx, m.session.Snapshot().Credential, m.pipeline
	m.log.Info("summarize started", "chars", len(text))
	return tea.Batch(spin, func() tea.Msg {
		return SummaryResultMsg{Text: text, Reply: p.Summarize(ctx, text, cred)}
	})
}

func (m *Model) startTheme(prompt string) tea.Cmd {
	spin, ok := m.begin(session.OpTheme, ui.TabTheme)
	if !ok {
		return nil
	}
	m.sidebar.Theme.SetStatus("", false)
	ctx, cred, p := m.ctx, m.session.Snapshot().Credential, m.pipeline
	m.log.Info("theme generation started")
	return tea.Batch(spin, func() tea.Msg {
		t, ok := p.GenerateTheme(ctx, prompt, cred)
		return ThemeResultMsg{Theme: t, OK: ok}
	})
}

func (m *Model) handleSearchResult(msg SearchResultMsg) tea.Cmd {
	m.end(session.OpSearch, ui.TabSearch)
	m.sidebar.Search.SetReply(msg.Reply)
	m.log.Info("search finished", "status", msg.Reply.Status)
	if msg.Reply.Status == ai.StatusNotConfigured {
		return m.ShowFlashWarning("No API key configured. Add one in Settings.")
	}
	return nil
}

func (m *Model) handleSummaryResult(msg SummaryResultMsg) tea.Cmd {
	m.end(session.OpSummarize, ui.TabSummarize)
	m.sidebar.Summarize.SetReply(msg.Reply)
	m.log.Info("summarize finished", "status", msg.Reply.Status)

	recorded, err := m.session.RecordSummary(msg.Text, msg.Reply)
	if err != nil {
		return m.ShowFlashError("Summary kept for this session only: could not save history.")
	}
	if recorded && m.config.Notify {
		return notifyCmd(notification.SummaryReady)
	}
	return nil
}

func (m *Model) handleThemeResult(msg ThemeResultMsg) tea.Cmd {
	m.end(session.OpTheme, ui.TabTheme)
	if !msg.OK {
		m.sidebar.Theme.SetStatus(msgThemeFailed, true)
		return nil
	}
	if err := m.session.ApplyTheme(msg.Theme); err != nil {
		m.log.Warn("generated theme rejected", "error", err)
		m.sidebar.Theme.SetStatus(msgThemeFailed, true)
		return nil
	}
	ui.ApplyTheme(theme.Variables(msg.Theme))
	m.sidebar.Theme.SetStatus("Theme applied.", false)
	m.page.Rerender()
	m.sidebar.Search.Rerender()
	m.sidebar.Summarize.Rerender()
	if m.config.Notify {
		return notifyCmd(notification.ThemeApplied)
	}
	return nil
}

// notifyCmd sends a desktop notification off the event loop.
func notifyCmd(send func() error) tea.Cmd {
	return func() tea.Msg {
		_ = send()
		return nil
	}
}

// load starts fetching url into the page view.
func (m *Model) load(url string) tea.Cmd {
	m.pageSeq++
	m.session.Begin(session.OpPage)
	m.page.SetLoading(true)
	m.header.SetLoading(true)
	m.log.Info("page load", "url", url, "seq", m.pageSeq)
	return m.fetcher.Load(m.pageContext(), url, m.pageSeq)
}

func (m *Model) pageContext() context.Context {
	if m.ctx == nil {
		return context.Background()
	}
	return m.ctx
}

// navigate records raw in history and loads it.
func (m *Model) navigate(raw string) tea.Cmd {
	url := viewport.NormalizeURL(raw)
	if url == "" {
		return nil
	}
	err := m.session.Navigate(url)
	cmds := []tea.Cmd{m.load(url), m.persistResult(err)}
	if m.focus == FocusAddress {
		cmds = append(cmds, m.setFocus(FocusPage))
	}
	return tea.Batch(cmds...)
}

func (m *Model) handlePageLoaded(msg viewport.LoadedMsg) tea.Cmd {
	if msg.Seq != m.pageSeq {
		m.log.Debug("dropping stale page", "seq", msg.Seq, "current", m.pageSeq)
		return nil
	}
	m.session.End(session.OpPage)
	m.header.SetLoading(false)
	m.header.SetPageTitle(msg.Page.Title)
	m.page.SetPage(msg.Page.Markdown)
	return nil
}

func (m *Model) handlePageErrored(msg viewport.ErroredMsg) tea.Cmd {
	if msg.Seq != m.pageSeq {
		return nil
	}
	m.session.End(session.OpPage)
	m.header.SetLoading(false)
	m.header.SetPageTitle("")
	m.page.SetError(msg.Err.Error())
	return nil
}
