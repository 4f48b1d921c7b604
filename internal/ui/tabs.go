package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Tab identifies a side panel.
type Tab int

const (
	TabSearch Tab = iota
	TabSummarize
	TabTheme
	TabBookmarks
	TabSettings
	TabHelp
)

// Tabs lists the panels in tab-bar order.
var Tabs = []Tab{TabSearch, TabSummarize, TabTheme, TabBookmarks, TabSettings, TabHelp}

var tabTitles = map[Tab]string{
	TabSearch:    "Search",
	TabSummarize: "Summarize",
	TabTheme:     "Theme",
	TabBookmarks: "Bookmarks",
	TabSettings:  "Settings",
	TabHelp:      "Help",
}

// Title is the label shown in the tab bar.
func (t Tab) Title() string {
	return tabTitles[t]
}

// Next returns the tab after t, wrapping around.
func (t Tab) Next() Tab {
	return Tabs[(int(t)+1)%len(Tabs)]
}

// Prev returns the tab before t, wrapping around.
func (t Tab) Prev() Tab {
	return Tabs[(int(t)-1+len(Tabs))%len(Tabs)]
}

// shortTitle is the compact label used when the full bar does not fit.
func (t Tab) shortTitle() string {
	return t.Title()[:1]
}

// tabSegments returns the rendered label of every tab and whether the
// compact labels were needed to fit width.
func tabSegments(width int) ([]string, bool) {
	labels := make([]string, len(Tabs))
	total := 0
	for i, t := range Tabs {
		labels[i] = t.Title()
		total += lipgloss.Width(TabStyle.Render(labels[i]))
	}
	if total <= width {
		return labels, false
	}
	for i, t := range Tabs {
		labels[i] = t.shortTitle()
	}
	return labels, true
}

// RenderTabBar renders the tab bar with active highlighted.
func RenderTabBar(active Tab, width int) string {
	labels, _ := tabSegments(width)
	var b strings.Builder
	for i, t := range Tabs {
		if t == active {
			b.WriteString(TabActiveStyle.Render(labels[i]))
		} else {
			b.WriteString(TabStyle.Render(labels[i]))
		}
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(b.String())
}

// TabAt returns the tab under column x of a bar rendered at width.
func TabAt(x, width int) (Tab, bool) {
	if x < 0 {
		return 0, false
	}
	labels, _ := tabSegments(width)
	pos := 0
	for i, t := range Tabs {
		w := lipgloss.Width(TabStyle.Render(labels[i]))
		if x < pos+w {
			return t, true
		}
		pos += w
	}
	return 0, false
}
