package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// ListItem is one row of a selectable list.
type ListItem struct {
	Title  string
	Detail string
}

// List is a scrolling single-selection list.
type List struct {
	items    []ListItem
	selected int
	offset   int
	empty    string
}

// NewList creates a list that shows empty when it has no items.
func NewList(empty string) *List {
	return &List{empty: empty}
}

// SetItems replaces the items, keeping the selection in range.
func (l *List) SetItems(items []ListItem) {
	l.items = items
	if l.selected >= len(items) {
		l.selected = max(len(items)-1, 0)
	}
}

// Len is the number of items.
func (l *List) Len() int { return len(l.items) }

// Selected returns the selected index, or -1 when the list is empty.
func (l *List) Selected() int {
	if len(l.items) == 0 {
		return -1
	}
	return l.selected
}

// Move shifts the selection by delta, clamped to the list.
func (l *List) Move(delta int) {
	if len(l.items) == 0 {
		return
	}
	l.selected = max(0, min(len(l.items)-1, l.selected+delta))
}

// Select sets the selection directly.
func (l *List) Select(i int) {
	if i >= 0 && i < len(l.items) {
		l.selected = i
	}
}

// View renders at most height rows, scrolling to keep the selection visible.
func (l *List) View(width, height int, focused bool) string {
	if len(l.items) == 0 {
		return ListMutedStyle.Render(ansi.Truncate(l.empty, width, "…"))
	}
	if height < 1 {
		height = 1
	}
	if l.selected < l.offset {
		l.offset = l.selected
	}
	if l.selected >= l.offset+height {
		l.offset = l.selected - height + 1
	}

	// Two columns of padding come from the item styles
	inner := max(width-2, 1)
	var rows []string
	for i := l.offset; i < len(l.items) && i < l.offset+height; i++ {
		item := l.items[i]
		text := item.Title
		if item.Detail != "" {
			titleWidth := runewidth.StringWidth(item.Title)
			if room := inner - titleWidth - 1; room > 4 {
				text += " " + MutedStyle.Render(ansi.Truncate(item.Detail, room, "…"))
			}
		}
		text = ansi.Truncate(text, inner, "…")
		if pad := inner - ansi.StringWidth(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
		if i == l.selected && focused {
			rows = append(rows, ListSelectedStyle.Render(text))
		} else {
			rows = append(rows, ListItemStyle.Render(text))
		}
	}
	return strings.Join(rows, "\n")
}
