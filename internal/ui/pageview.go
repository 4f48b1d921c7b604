package ui

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/navigator/internal/keys"
)

// PageView shows the rendered page beneath the address bar.
type PageView struct {
	viewport viewport.Model
	markdown string
	errText  string
	loading  bool
	focused  bool
	width    int
	height   int
}

// NewPageView creates an empty page view.
func NewPageView() *PageView {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	return &PageView{viewport: vp}
}

// SetSize sets the outer dimensions including the border.
func (p *PageView) SetSize(width, height int) {
	p.width = width
	p.height = height
	ctx := GetViewContext()
	p.viewport.SetWidth(max(ctx.InnerWidth(width), 1))
	p.viewport.SetHeight(max(ctx.InnerHeight(height), 1))
	p.render()
}

// SetFocused gives or takes keyboard focus.
func (p *PageView) SetFocused(focused bool) { p.focused = focused }

// IsFocused returns whether the page has focus.
func (p *PageView) IsFocused() bool { return p.focused }

// SetLoading marks a navigation as in progress.
func (p *PageView) SetLoading(loading bool) {
	p.loading = loading
	p.render()
}

// IsLoading reports whether a navigation is in progress.
func (p *PageView) IsLoading() bool { return p.loading }

// SetPage shows a loaded page.
func (p *PageView) SetPage(markdown string) {
	p.loading = false
	p.errText = ""
	p.markdown = markdown
	p.render()
	p.viewport.GotoTop()
}

// SetError replaces the content with a load failure.
func (p *PageView) SetError(text string) {
	p.loading = false
	p.errText = text
	p.render()
	p.viewport.GotoTop()
}

// Rerender redraws the content, picking up new theme colors.
func (p *PageView) Rerender() { p.render() }

func (p *PageView) render() {
	width := p.viewport.Width()
	switch {
	case p.errText != "":
		p.viewport.SetContent(StatusErrorStyle.Render("Could not load page") + "\n\n" + MutedStyle.Render(wrapText(p.errText, width)))
	case p.markdown == "" && p.loading:
		p.viewport.SetContent(StatusLoadingStyle.Render("Loading…"))
	case strings.TrimSpace(p.markdown) == "":
		p.viewport.SetContent(MutedStyle.Render("This page has no readable content."))
	default:
		p.viewport.SetContent(RenderMarkdown(p.markdown, width))
	}
}

// Update scrolls the page.
func (p *PageView) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case keys.Home:
			p.viewport.GotoTop()
			return nil
		case keys.End:
			p.viewport.GotoBottom()
			return nil
		}
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// View renders the page panel.
func (p *PageView) View() string {
	style := PanelStyle
	if p.focused {
		style = PanelFocusedStyle
	}
	return style.Width(p.width).Height(p.height).Render(p.viewport.View())
}
