// Package ui provides constants for layout calculations and configuration.
package ui

import "time"

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// SidebarWidthRatio is the denominator for the initial panel width (1/3 of total width)
	SidebarWidthRatio = 3

	// TabBarHeight is the height of the panel tab bar
	TabBarHeight = 1

	// AddressBarHeight is the height of the address bar including its border
	AddressBarHeight = 3

	// TextareaHeight is the number of lines for the summarize input
	TextareaHeight = 6

	// HistoryDropdownRows is the number of history entries shown under the address bar
	HistoryDropdownRows = 10

	// DefaultWrapWidth is the default width for text wrapping when width is unknown
	DefaultWrapWidth = 80

	// MinTerminalWidth and MinTerminalHeight keep layout math non-negative
	MinTerminalWidth  = 60
	MinTerminalHeight = 12
)

// Input limits
const (
	// PromptCharLimit caps search and theme prompts
	PromptCharLimit = 500

	// URLCharLimit caps the address bar
	URLCharLimit = 2048

	// CredentialCharLimit caps the API key input
	CredentialCharLimit = 256
)

// DefaultFlashDuration is how long a footer flash message stays visible
const DefaultFlashDuration = 4 * time.Second
