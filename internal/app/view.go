package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/navigator/internal/layout"
	"github.com/zhubert/navigator/internal/ui"
)

// updateSizes recomputes every component size from the terminal size and
// the current panel width.
func (m *Model) updateSizes() {
	if m.width == 0 || m.height == 0 {
		return
	}
	// First layout: start at a third of the terminal
	if m.resizer.Width() == 0 {
		m.resizer = layout.NewResizer(layout.CellBounds, m.width/ui.SidebarWidthRatio)
	}
	m.resizer.SetContainer(0, m.width)

	ctx := ui.GetViewContext()
	width, _ := ctx.UpdateTerminalSize(m.width, m.height, m.resizer.Width())

	m.header.SetWidth(width)
	m.footer.SetWidth(width)
	m.sidebar.SetSize(ctx.SidebarWidth, ctx.ContentHeight)
	m.address.SetWidth(ctx.ViewportWidth)
	m.page.SetSize(ctx.ViewportWidth, ctx.ViewportHeight)
}

// View renders the UI
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}
	v.SetContent(m.render())
	return v
}

func (m *Model) render() string {
	m.footer.SetBindings(m.footerBindings())

	main := m.page.View()
	if dropdown := m.address.DropdownView(); dropdown != "" {
		// The dropdown covers the top of the page
		main = lipgloss.JoinVertical(lipgloss.Left, dropdown, clipTop(main, lipgloss.Height(dropdown)))
	}
	right := lipgloss.JoinVertical(lipgloss.Left, m.address.View(), main)

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.sidebar.View(),
		right,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		panels,
		m.footer.View(),
	)
}

// clipTop drops the first n lines of s.
func clipTop(s string, n int) string {
	lines := strings.Split(s, "\n")
	if n >= len(lines) {
		return ""
	}
	return strings.Join(lines[n:], "\n")
}

// RenderToString renders the current frame as plain text, for tests.
func (m *Model) RenderToString() string {
	return m.render()
}
