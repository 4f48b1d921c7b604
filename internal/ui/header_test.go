package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestHeader_ShowsTitle(t *testing.T) {
	h := NewHeader()
	h.SetWidth(60)

	plain := ansi.Strip(h.View())
	if !strings.Contains(plain, "navigator") {
		t.Errorf("header should contain the app name, got %q", plain)
	}
	if w := ansi.StringWidth(plain); w != 60 {
		t.Errorf("header width = %d, want 60", w)
	}
}

func TestHeader_PageTitleAndLoading(t *testing.T) {
	h := NewHeader()
	h.SetWidth(80)
	h.SetPageTitle("Example\n  Domain")

	if plain := ansi.Strip(h.View()); !strings.Contains(plain, "Example Domain") {
		t.Errorf("page title should be collapsed and shown, got %q", plain)
	}

	h.SetLoading(true)
	plain := ansi.Strip(h.View())
	if !strings.Contains(plain, "loading…") {
		t.Errorf("loading indicator missing, got %q", plain)
	}
	if strings.Contains(plain, "Example Domain") {
		t.Error("loading indicator should replace the page title")
	}
}

func TestHeader_TruncatesLongTitle(t *testing.T) {
	h := NewHeader()
	h.SetWidth(30)
	h.SetPageTitle(strings.Repeat("very long title ", 10))

	plain := ansi.Strip(h.View())
	if w := ansi.StringWidth(plain); w != 30 {
		t.Errorf("header width = %d, want 30", w)
	}
	if !strings.HasPrefix(plain, " navigator") {
		t.Errorf("app name should stay visible, got %q", plain)
	}
}
