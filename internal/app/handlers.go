package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/navigator/internal/clipboard"
	"github.com/zhubert/navigator/internal/session"
	"github.com/zhubert/navigator/internal/ui"
)

// persistResult reports a store failure from a session mutation. The
// in-memory change has already happened.
func (m *Model) persistResult(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	m.log.Error("persistence failed", "error", err)
	if session.IsPersistenceError(err) {
		return m.ShowFlashWarning("Could not save to disk. Changes last until you quit.")
	}
	return m.ShowFlashError(err.Error())
}

func (m *Model) clearBookmarks() tea.Cmd {
	if err := m.session.ClearBookmarks(); err != nil {
		return m.persistResult(err)
	}
	return m.ShowFlashInfo("Bookmarks cleared")
}

func (m *Model) clearHistory() tea.Cmd {
	m.address.CloseHistory()
	if err := m.session.ClearHistory(); err != nil {
		return m.persistResult(err)
	}
	return m.ShowFlashInfo("History cleared")
}

func (m *Model) clearSummaries() tea.Cmd {
	if err := m.session.ClearSummaries(); err != nil {
		return m.persistResult(err)
	}
	return m.ShowFlashInfo("Summary history cleared")
}

func (m *Model) setCredential(value string) tea.Cmd {
	if err := m.session.SetCredential(value); err != nil {
		return m.persistResult(err)
	}
	if strings.TrimSpace(value) == "" {
		return m.ShowFlashInfo("API key removed")
	}
	return m.ShowFlashSuccess("API key saved")
}

// toggleBookmark bookmarks or un-bookmarks the current page.
func (m *Model) toggleBookmark() tea.Cmd {
	url := m.session.Snapshot().CurrentURL
	if strings.TrimSpace(url) == "" {
		return nil
	}
	if err := m.session.ToggleBookmark(url); err != nil {
		return m.persistResult(err)
	}
	if m.session.Snapshot().IsBookmarked(url) {
		return m.ShowFlashSuccess("Bookmarked")
	}
	return m.ShowFlashInfo("Bookmark removed")
}

// openHistory shows the history dropdown under the address bar.
func (m *Model) openHistory() tea.Cmd {
	if m.address.HistoryOpen() {
		m.address.CloseHistory()
		return nil
	}
	history := m.session.Snapshot().History
	if len(history) == 0 {
		return m.ShowFlashInfo("No history yet")
	}
	cmd := m.setFocus(FocusAddress)
	m.address.OpenHistory(history)
	return cmd
}

// pasteIntoSummarize inserts clipboard text into the summarize input.
func (m *Model) pasteIntoSummarize() tea.Cmd {
	text, err := clipboard.ReadText()
	if err != nil {
		return m.ShowFlashError("Clipboard unavailable")
	}
	if text == "" {
		return m.ShowFlashInfo("Clipboard is empty")
	}
	m.sidebar.Summarize.InsertText(text)
	return nil
}

// copyReply copies the reply of the visible panel.
func (m *Model) copyReply() tea.Cmd {
	var text string
	switch m.sidebar.Active() {
	case ui.TabSearch:
		text = m.sidebar.Search.Reply()
	case ui.TabSummarize:
		text = m.sidebar.Summarize.Reply()
	}
	if text == "" {
		return m.ShowFlashInfo("Nothing to copy")
	}
	if err := clipboard.WriteText(text); err != nil {
		return m.ShowFlashError("Clipboard unavailable")
	}
	return m.ShowFlashSuccess("Copied to clipboard")
}
