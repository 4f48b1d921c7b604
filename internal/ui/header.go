package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// headerTitle is the fixed left-hand text of the header
const headerTitle = " navigator"

// Header represents the top header bar
type Header struct {
	width     int
	pageTitle string
	loading   bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetPageTitle sets the title of the loaded page to display
func (h *Header) SetPageTitle(title string) {
	h.pageTitle = strings.Join(strings.Fields(title), " ")
}

// SetLoading toggles the loading indicator
func (h *Header) SetLoading(loading bool) {
	h.loading = loading
}

// View renders the header
func (h *Header) View() string {
	rightText := h.pageTitle
	if h.loading {
		rightText = "loading…"
	}
	if rightText != "" {
		rightText += " "
	}

	// Keep the title visible; the page title gives way on narrow terminals.
	maxRight := h.width - runewidth.StringWidth(headerTitle) - 2
	if maxRight < 0 {
		maxRight = 0
	}
	if runewidth.StringWidth(rightText) > maxRight {
		rightText = ansi.Truncate(rightText, maxRight, "…")
	}

	paddingLen := h.width - runewidth.StringWidth(headerTitle) - runewidth.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := headerTitle + strings.Repeat(" ", paddingLen) + rightText
	return h.renderGradient(fullContent)
}

// renderGradient renders the content over a gradient from the primary color
// to the background color
func (h *Header) renderGradient(content string) string {
	if len(content) == 0 {
		return ""
	}

	p := CurrentPalette()
	start, _, _ := parseHexColor(p.Primary)
	end, _, _ := parseHexColor(p.Background)

	textColor := lipgloss.Color(p.Text)
	mutedColor := lipgloss.Color(p.TextMuted)
	titleLen := len([]rune(headerTitle))

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)
		c := blend(start, end, 1-t)
		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < titleLen)

		if h.loading && i >= titleLen {
			style = style.Foreground(mutedColor).Italic(true)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
