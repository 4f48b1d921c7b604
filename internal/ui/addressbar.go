package ui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/navigator/internal/keys"
)

// AddressBar is the URL input with bookmark indicator and history dropdown.
type AddressBar struct {
	input      textinput.Model
	url        string
	bookmarked bool
	focused    bool
	width      int

	historyOpen bool
	history     *List
	entries     []string
}

// NewAddressBar creates an address bar.
func NewAddressBar() *AddressBar {
	ti := textinput.New()
	ti.Placeholder = "Enter a URL"
	ti.CharLimit = URLCharLimit
	ti.Prompt = ""

	return &AddressBar{
		input:   ti,
		history: NewList("No history yet."),
	}
}

// SetWidth sets the outer width including the border.
func (a *AddressBar) SetWidth(width int) {
	a.width = width
	// Border, star and spacing
	a.input.SetWidth(max(GetViewContext().InnerWidth(width)-3, 1))
}

// SetURL shows the committed URL. Unsaved edits are discarded.
func (a *AddressBar) SetURL(url string) {
	a.url = url
	a.input.SetValue(url)
	a.input.CursorEnd()
}

// URL returns the committed URL.
func (a *AddressBar) URL() string { return a.url }

// Value returns the text being edited.
func (a *AddressBar) Value() string { return a.input.Value() }

// SetBookmarked sets the star indicator.
func (a *AddressBar) SetBookmarked(b bool) { a.bookmarked = b }

// SetFocused gives or takes keyboard focus.
func (a *AddressBar) SetFocused(focused bool) tea.Cmd {
	a.focused = focused
	if focused {
		return a.input.Focus()
	}
	a.input.Blur()
	a.historyOpen = false
	// Abandon any unsubmitted edit
	a.input.SetValue(a.url)
	return nil
}

// IsFocused returns whether the address bar has focus.
func (a *AddressBar) IsFocused() bool { return a.focused }

// OpenHistory shows the dropdown with entries, newest first.
func (a *AddressBar) OpenHistory(entries []string) {
	a.entries = entries
	items := make([]ListItem, len(entries))
	for i, e := range entries {
		items[i] = ListItem{Title: e}
	}
	a.history.SetItems(items)
	a.history.Select(0)
	a.historyOpen = true
}

// SetHistory refreshes the dropdown entries if it is open.
func (a *AddressBar) SetHistory(entries []string) {
	if a.historyOpen {
		a.entries = entries
		items := make([]ListItem, len(entries))
		for i, e := range entries {
			items[i] = ListItem{Title: e}
		}
		a.history.SetItems(items)
	}
}

// CloseHistory hides the dropdown.
func (a *AddressBar) CloseHistory() { a.historyOpen = false }

// HistoryOpen reports whether the dropdown is visible.
func (a *AddressBar) HistoryOpen() bool { return a.historyOpen }

// Update handles keys while focused.
func (a *AddressBar) Update(msg tea.Msg) tea.Cmd {
	key, isKey := msg.(tea.KeyPressMsg)
	if isKey && a.historyOpen {
		switch key.String() {
		case keys.Up:
			a.history.Move(-1)
			return nil
		case keys.Down:
			a.history.Move(1)
			return nil
		case keys.Enter:
			i := a.history.Selected()
			a.historyOpen = false
			if i >= 0 && i < len(a.entries) {
				return emit(NavigateMsg{URL: a.entries[i]})
			}
			return nil
		case keys.Escape:
			a.historyOpen = false
			return nil
		case keys.CtrlX:
			a.historyOpen = false
			return emit(ClearHistoryMsg{})
		}
	}
	if isKey {
		switch key.String() {
		case keys.Enter:
			value := strings.TrimSpace(a.input.Value())
			if value == "" {
				return nil
			}
			return emit(NavigateMsg{URL: value})
		case keys.Escape:
			a.input.SetValue(a.url)
			return nil
		}
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return cmd
}

// View renders the bar.
func (a *AddressBar) View() string {
	star := MutedStyle.Render("☆")
	if a.bookmarked {
		star = AccentStyle.Render("★")
	}
	style := PanelStyle
	if a.focused {
		style = PanelFocusedStyle
	}
	return style.Width(a.width).Render(star + " " + a.input.View())
}

// DropdownView renders the history dropdown, or "" when closed.
func (a *AddressBar) DropdownView() string {
	if !a.historyOpen {
		return ""
	}
	inner := max(GetViewContext().InnerWidth(a.width), 1)
	rows := min(max(len(a.entries), 1), HistoryDropdownRows)
	title := PanelTitleStyle.Render("History") + MutedStyle.Render(ansi.Truncate(" enter open · ctrl+x clear · esc close", max(inner-9, 0), "…"))
	body := title + "\n" + a.history.View(inner, rows, true)
	return PanelFocusedStyle.Width(a.width).Render(body)
}
