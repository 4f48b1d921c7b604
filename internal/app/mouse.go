package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/navigator/internal/ui"
)

// inContent reports whether row y is between the header and the footer.
func (m *Model) inContent(y int) bool {
	return y >= ui.HeaderHeight && y < m.height-ui.FooterHeight
}

// handleMouse runs the divider drag, tab clicks, click-to-focus and wheel
// scrolling.
func (m *Model) handleMouse(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft || !m.inContent(msg.Y) {
			return nil
		}
		if m.resizer.Begin(msg.X) {
			m.log.Debug("resize drag started", "x", msg.X, "width", m.resizer.Width())
			return nil
		}
		return m.handleClick(msg.X, msg.Y)

	case tea.MouseMotionMsg:
		if m.resizer.Dragging() && m.resizer.Move(msg.X) {
			m.updateSizes()
		}
		return nil

	case tea.MouseReleaseMsg:
		if m.resizer.Dragging() {
			m.resizer.End()
			m.log.Debug("resize drag finished", "width", m.resizer.Width())
		}
		return nil

	case tea.MouseWheelMsg:
		if msg.X < m.sidebar.Width() {
			return m.sidebar.Update(msg)
		}
		// Shift the wheel event into page coordinates
		msg.X -= m.sidebar.Width()
		msg.Y -= ui.HeaderHeight + ui.AddressBarHeight
		return m.page.Update(msg)
	}
	return nil
}

// handleClick focuses the pane under the pointer. A click on the tab row
// also switches tabs.
func (m *Model) handleClick(x, y int) tea.Cmd {
	sidebarWidth := m.sidebar.Width()
	if x < sidebarWidth {
		if t, ok := m.sidebar.TabAt(x, y-ui.HeaderHeight); ok {
			return m.showTab(t)
		}
		return m.setFocus(FocusSidebar)
	}
	if y < ui.HeaderHeight+ui.AddressBarHeight {
		return m.setFocus(FocusAddress)
	}
	if m.address.HistoryOpen() {
		m.address.CloseHistory()
	}
	return m.setFocus(FocusPage)
}
