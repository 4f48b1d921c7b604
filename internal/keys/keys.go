// Package keys provides string constants for Bubble Tea v2 key press events.
//
// These constants are derived from tea.KeyPressMsg{Code: tea.KeyXxx}.String()
// and are guaranteed to match the actual runtime values. Using these constants
// instead of hardcoded strings prevents typo bugs (e.g., "escape" vs "esc").
//
// Single-character keys like "d", "[", "?" are not included here because they
// are unambiguous and cannot be misspelled in a meaningful way.
package keys

import tea "charm.land/bubbletea/v2"

// Navigation keys
var (
	Up     = tea.KeyPressMsg{Code: tea.KeyUp}.String()     // "up"
	Down   = tea.KeyPressMsg{Code: tea.KeyDown}.String()   // "down"
	Home   = tea.KeyPressMsg{Code: tea.KeyHome}.String()   // "home"
	End    = tea.KeyPressMsg{Code: tea.KeyEnd}.String()    // "end"
	PgUp   = tea.KeyPressMsg{Code: tea.KeyPgUp}.String()   // "pgup"
	PgDown = tea.KeyPressMsg{Code: tea.KeyPgDown}.String() // "pgdown"
)

// Action keys
var (
	Enter    = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                    // "enter"
	Tab      = tea.KeyPressMsg{Code: tea.KeyTab}.String()                      // "tab"
	ShiftTab = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String() // "shift+tab"
	Delete   = tea.KeyPressMsg{Code: tea.KeyDelete}.String()                   // "delete"
	Escape   = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                   // "esc"
)

// Ctrl combinations
var (
	CtrlC     = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String()            // "ctrl+c"
	CtrlV     = (tea.KeyPressMsg{Code: 'v', Mod: tea.ModCtrl}).String()            // "ctrl+v"
	CtrlS     = (tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}).String()            // "ctrl+s"
	CtrlD     = (tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl}).String()            // "ctrl+d"
	CtrlL     = (tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}).String()            // "ctrl+l"
	CtrlB     = (tea.KeyPressMsg{Code: 'b', Mod: tea.ModCtrl}).String()            // "ctrl+b"
	CtrlH     = (tea.KeyPressMsg{Code: 'h', Mod: tea.ModCtrl}).String()            // "ctrl+h"
	CtrlN     = (tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl}).String()            // "ctrl+n"
	CtrlP     = (tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl}).String()            // "ctrl+p"
	CtrlR     = (tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}).String()            // "ctrl+r"
	CtrlX     = (tea.KeyPressMsg{Code: 'x', Mod: tea.ModCtrl}).String()            // "ctrl+x"
	CtrlY     = (tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}).String()            // "ctrl+y"
	CtrlLeft  = (tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModCtrl}).String()  // "ctrl+left"
	CtrlRight = (tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModCtrl}).String() // "ctrl+right"
)
