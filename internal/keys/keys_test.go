package keys

import "testing"

// TestKeyStringValues verifies that all key constants produce the expected
// string representations. This acts as a safety net if Bubble Tea ever changes
// its key string format.
func TestKeyStringValues(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		// Navigation
		{"Up", Up, "up"},
		{"Down", Down, "down"},
		{"Home", Home, "home"},
		{"End", End, "end"},
		{"PgUp", PgUp, "pgup"},
		{"PgDown", PgDown, "pgdown"},

		// Actions
		{"Enter", Enter, "enter"},
		{"Tab", Tab, "tab"},
		{"ShiftTab", ShiftTab, "shift+tab"},
		{"Delete", Delete, "delete"},
		{"Escape", Escape, "esc"},

		// Ctrl combos
		{"CtrlC", CtrlC, "ctrl+c"},
		{"CtrlV", CtrlV, "ctrl+v"},
		{"CtrlS", CtrlS, "ctrl+s"},
		{"CtrlD", CtrlD, "ctrl+d"},
		{"CtrlL", CtrlL, "ctrl+l"},
		{"CtrlB", CtrlB, "ctrl+b"},
		{"CtrlH", CtrlH, "ctrl+h"},
		{"CtrlN", CtrlN, "ctrl+n"},
		{"CtrlP", CtrlP, "ctrl+p"},
		{"CtrlR", CtrlR, "ctrl+r"},
		{"CtrlX", CtrlX, "ctrl+x"},
		{"CtrlY", CtrlY, "ctrl+y"},
		{"CtrlLeft", CtrlLeft, "ctrl+left"},
		{"CtrlRight", CtrlRight, "ctrl+right"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("keys.%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}
}
