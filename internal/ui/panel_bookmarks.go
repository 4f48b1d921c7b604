package ui

import (
	"net/url"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/navigator/internal/keys"
	"github.com/zhubert/navigator/internal/session"
)

// BookmarksPanel lists saved pages.
type BookmarksPanel struct {
	list      *List
	bookmarks []session.Bookmark
	focused   bool
	width     int
	height    int
}

// NewBookmarksPanel creates the bookmarks panel.
func NewBookmarksPanel() *BookmarksPanel {
	return &BookmarksPanel{list: NewList("No bookmarks. Press ctrl+b on a page to add one.")}
}

// SetSize implements panel.
func (p *BookmarksPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Focus implements panel.
func (p *BookmarksPanel) Focus() tea.Cmd {
	p.focused = true
	return nil
}

// Blur implements panel.
func (p *BookmarksPanel) Blur() { p.focused = false }

// SetBookmarks replaces the list.
func (p *BookmarksPanel) SetBookmarks(bookmarks []session.Bookmark) {
	p.bookmarks = bookmarks
	items := make([]ListItem, len(bookmarks))
	for i, b := range bookmarks {
		items[i] = ListItem{Title: bookmarkTitle(b.URL), Detail: b.URL}
	}
	p.list.SetItems(items)
}

// bookmarkTitle is the host of u, or u itself when it has none.
func bookmarkTitle(u string) string {
	if parsed, err := url.Parse(u); err == nil && parsed.Host != "" {
		return parsed.Host
	}
	return u
}

// selected returns the highlighted bookmark.
func (p *BookmarksPanel) selected() (session.Bookmark, bool) {
	i := p.list.Selected()
	if i < 0 || i >= len(p.bookmarks) {
		return session.Bookmark{}, false
	}
	return p.bookmarks[i], true
}

// Update implements panel.
func (p *BookmarksPanel) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case keys.Up, "k":
		p.list.Move(-1)
	case keys.Down, "j":
		p.list.Move(1)
	case keys.Enter:
		if b, ok := p.selected(); ok {
			return emit(NavigateMsg{URL: b.URL})
		}
	case "d", keys.Delete:
		if b, ok := p.selected(); ok {
			return emit(DeleteBookmarkMsg{ID: b.ID})
		}
	case keys.CtrlX:
		if len(p.bookmarks) > 0 {
			return emit(ClearBookmarksMsg{})
		}
	}
	return nil
}

// View implements panel.
func (p *BookmarksPanel) View(string) string {
	return fitHeight(p.list.View(p.width, p.height, p.focused), p.width, p.height)
}

// Bindings implements panel.
func (p *BookmarksPanel) Bindings() []KeyBinding {
	return []KeyBinding{
		{Key: "enter", Desc: "open"},
		{Key: "d", Desc: "delete"},
		{Key: "ctrl+x", Desc: "clear all"},
	}
}
