package ui

import (
	"charm.land/lipgloss/v2"

	"github.com/zhubert/navigator/internal/theme"
)

// Palette is the set of opaque terminal colors resolved from the theme
// variables. Translucent tokens are composited over the background.
type Palette struct {
	Primary    string
	Accent     string
	Text       string
	Background string
	Panel      string
	Glow       string
	Border     string
	TextMuted  string

	Error   string
	Warning string
	Success string
}

// Fixed semantic colors that do not follow the theme.
const (
	errorColor   = "#FF3860"
	warningColor = "#FFB020"
	successColor = "#23D160"
)

var black = rgb{0, 0, 0}

// PaletteFromVariables resolves theme variables into a Palette. Missing or
// malformed values fall back to the default theme.
func PaletteFromVariables(vars map[string]string) Palette {
	def := theme.Variables(theme.Default())
	get := func(name string) string {
		if v, ok := vars[name]; ok && v != "" {
			return v
		}
		return def[name]
	}

	bgHex := resolveColor(get(theme.VarBackground), black, def[theme.VarBackground])
	bg, _, _ := parseHexColor(bgHex)
	text := resolveColor(get(theme.VarText), bg, def[theme.VarText])
	textRGB, _, _ := parseHexColor(text)

	return Palette{
		Primary:    resolveColor(get(theme.VarPrimary), bg, def[theme.VarPrimary]),
		Accent:     resolveColor(get(theme.VarAccent), bg, def[theme.VarAccent]),
		Text:       text,
		Background: bgHex,
		Panel:      resolveColor(get(theme.VarBackgroundTransparent), black, bgHex),
		Glow:       resolveColor(get(theme.VarGlow), bg, def[theme.VarGlow]),
		Border:     resolveColor(get(theme.VarBorder), bg, def[theme.VarBorder]),
		TextMuted:  blend(textRGB, bg, 0.6).hex(),
		Error:      errorColor,
		Warning:    warningColor,
		Success:    successColor,
	}
}

// currentPalette holds the active palette
var currentPalette = PaletteFromVariables(theme.Variables(theme.Default()))

// CurrentPalette returns the active palette
func CurrentPalette() Palette {
	return currentPalette
}

// ApplyTheme installs the named theme variables and regenerates all styles.
func ApplyTheme(vars map[string]string) {
	currentPalette = PaletteFromVariables(vars)
	regenerateStyles()
}

// Color variables, updated by regenerateStyles
var (
	ColorPrimary   = lipgloss.Color(currentPalette.Primary)
	ColorAccent    = lipgloss.Color(currentPalette.Accent)
	ColorText      = lipgloss.Color(currentPalette.Text)
	ColorTextMuted = lipgloss.Color(currentPalette.TextMuted)
	ColorBg        = lipgloss.Color(currentPalette.Background)
	ColorPanel     = lipgloss.Color(currentPalette.Panel)
	ColorGlow      = lipgloss.Color(currentPalette.Glow)
	ColorBorder    = lipgloss.Color(currentPalette.Border)
	ColorError     = lipgloss.Color(errorColor)
	ColorWarning   = lipgloss.Color(warningColor)
	ColorSuccess   = lipgloss.Color(successColor)
)

// Styles, updated by regenerateStyles
var (
	HeaderStyle lipgloss.Style

	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style

	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style

	TabStyle       lipgloss.Style
	TabActiveStyle lipgloss.Style

	ListItemStyle     lipgloss.Style
	ListSelectedStyle lipgloss.Style
	ListMutedStyle    lipgloss.Style

	AccentStyle        lipgloss.Style
	MutedStyle         lipgloss.Style
	StatusLoadingStyle lipgloss.Style
	StatusErrorStyle   lipgloss.Style

	MarkdownH1Style         lipgloss.Style
	MarkdownH2Style         lipgloss.Style
	MarkdownH3Style         lipgloss.Style
	MarkdownH4Style         lipgloss.Style
	MarkdownBoldStyle       lipgloss.Style
	MarkdownItalicStyle     lipgloss.Style
	MarkdownInlineCodeStyle lipgloss.Style
	MarkdownListBulletStyle lipgloss.Style
	MarkdownBlockquoteStyle lipgloss.Style
	MarkdownHRStyle         lipgloss.Style
	MarkdownLinkStyle       lipgloss.Style
)

func init() {
	regenerateStyles()
}

// regenerateStyles updates all style variables based on the current palette
func regenerateStyles() {
	p := currentPalette

	ColorPrimary = lipgloss.Color(p.Primary)
	ColorAccent = lipgloss.Color(p.Accent)
	ColorText = lipgloss.Color(p.Text)
	ColorTextMuted = lipgloss.Color(p.TextMuted)
	ColorBg = lipgloss.Color(p.Background)
	ColorPanel = lipgloss.Color(p.Panel)
	ColorGlow = lipgloss.Color(p.Glow)
	ColorBorder = lipgloss.Color(p.Border)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorGlow)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	TabStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	TabActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorBg).
		Background(ColorPrimary).
		Padding(0, 1)

	ListItemStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	ListSelectedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorBg).
		Background(ColorAccent).
		Padding(0, 1)

	ListMutedStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	AccentStyle = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true)

	MutedStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	StatusLoadingStyle = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	MarkdownH1Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginTop(1)

	MarkdownH2Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent).
		MarginTop(1)

	MarkdownH3Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorGlow)

	MarkdownH4Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextMuted)

	MarkdownBoldStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	MarkdownItalicStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(ColorText)

	MarkdownInlineCodeStyle = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Background(ColorPanel)

	MarkdownListBulletStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary)

	MarkdownBlockquoteStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		BorderLeft(true).
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(ColorBorder).
		PaddingLeft(1)

	MarkdownHRStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	MarkdownLinkStyle = lipgloss.NewStyle().
		Foreground(ColorGlow).
		Underline(true)
}
