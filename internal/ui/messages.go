package ui

import tea "charm.land/bubbletea/v2"

// Panel intents. Panels never call the session or the AI pipeline; they
// emit these messages and the app acts on them.

// SearchSubmitMsg asks for a search reply.
type SearchSubmitMsg struct{ Prompt string }

// SummarizeSubmitMsg asks for a summary of Text.
type SummarizeSubmitMsg struct{ Text string }

// ThemeSubmitMsg asks for a generated theme.
type ThemeSubmitMsg struct{ Prompt string }

// NavigateMsg asks the viewport to load URL.
type NavigateMsg struct{ URL string }

// DeleteBookmarkMsg removes the bookmark with ID.
type DeleteBookmarkMsg struct{ ID string }

// CredentialSubmitMsg stores Value as the session credential. An empty
// Value clears it.
type CredentialSubmitMsg struct{ Value string }

// ClearSummariesMsg empties the summary history.
type ClearSummariesMsg struct{}

// ClearHistoryMsg empties the navigation history.
type ClearHistoryMsg struct{}

// ClearBookmarksMsg removes every bookmark.
type ClearBookmarksMsg struct{}

// PasteRequestMsg asks the app to paste clipboard text into the summarize input.
type PasteRequestMsg struct{}

// emit wraps msg in a command.
func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
