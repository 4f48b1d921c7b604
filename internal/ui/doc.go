// Package ui provides the user interface components for the navigator TUI.
//
// # Overview
//
// The ui package implements the visual components of navigator using the
// Bubble Tea framework and Lipgloss styling library. Components are plain
// structs with Update and View methods; the app package owns them and
// decides which one receives input.
//
// # Layout System
//
// The layout is organized as follows:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────┬───────────────────────────────────┤
//	│ Tab bar         │ Address bar                       │
//	│─────────────────│───────────────────────────────────│
//	│                 │                                   │
//	│   Sidebar       │         Page view                 │
//	│   (resizable)   │                                   │
//	│                 │                                   │
//	├─────────────────┴───────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// The sidebar width is owned by layout.Resizer; ViewContext derives the
// remaining dimensions from it.
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
//
// Header: Application title and the current page title over a gradient from
// the primary color to the background.
//
// Footer: Context-aware key bindings, replaced by flash messages.
//
// Sidebar: Tab bar plus the Search, Summarize, Theme, Bookmarks, Settings
// and Help panels. Panels emit intent messages (SearchSubmitMsg,
// NavigateMsg and friends) instead of acting themselves.
//
// AddressBar: URL input with the bookmark star and history dropdown.
//
// PageView: Scrollable markdown rendering of the loaded page.
//
// # Theming
//
// ApplyTheme takes the named variables produced by theme.Variables and
// regenerates every style. Translucent tokens are composited over the
// background so the terminal always receives opaque colors.
package ui
