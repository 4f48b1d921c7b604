package app

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/navigator/internal/ai"
	"github.com/zhubert/navigator/internal/config"
	"github.com/zhubert/navigator/internal/session"
	"github.com/zhubert/navigator/internal/store"
	"github.com/zhubert/navigator/internal/theme"
	"github.com/zhubert/navigator/internal/ui"
	"github.com/zhubert/navigator/internal/viewport"
)

// stubGenerator answers every request with text.
type stubGenerator struct {
	text string
}

func (g stubGenerator) Generate(context.Context, ai.Request) (ai.Response, error) {
	return ai.Response{Text: g.text}, nil
}

// testModel builds a sized model over an in-memory store.
func testModel(t *testing.T, env ai.Generator) *Model {
	t.Helper()
	cfg := config.Default(t.TempDir())
	deps := Deps{
		Session:  session.New(store.NewMemory()),
		Pipeline: ai.New(env),
		Fetcher:  viewport.NewFetcher(time.Second, viewport.DefaultCapabilities),
	}
	m := New(context.Background(), cfg, deps, "test")
	t.Cleanup(m.Close)
	t.Cleanup(func() { ui.ApplyTheme(theme.Variables(theme.Default())) })
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func key(code rune, mod tea.KeyMod) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Mod: mod}
}

func TestNew_StartsOnSidebar(t *testing.T) {
	m := testModel(t, nil)
	if m.Focus() != FocusSidebar {
		t.Errorf("Focus() = %v, want Sidebar", m.Focus())
	}
	if w := m.SidebarWidth(); w != 40 {
		t.Errorf("SidebarWidth() = %d, want a third of 120", w)
	}
}

func TestView_BeforeSize(t *testing.T) {
	cfg := config.Default(t.TempDir())
	m := New(context.Background(), cfg, Deps{
		Session:  session.New(store.NewMemory()),
		Pipeline: ai.New(nil),
		Fetcher:  viewport.NewFetcher(time.Second, viewport.DefaultCapabilities),
	}, "test")
	defer m.Close()

	v := m.View()
	if !v.AltScreen {
		t.Error("View() should use the alt screen")
	}
}

func TestView_RendersPanelAndAddress(t *testing.T) {
	m := testModel(t, nil)
	out := m.RenderToString()
	if !strings.Contains(out, "Ask the model") {
		t.Error("rendered frame missing the search panel")
	}
	if !strings.Contains(out, "☆") {
		t.Error("rendered frame missing the bookmark star")
	}
}

func TestFocusCycle(t *testing.T) {
	m := testModel(t, nil)
	want := []Focus{FocusAddress, FocusPage, FocusSidebar}
	for _, f := range want {
		m.Update(key(tea.KeyTab, 0))
		if m.Focus() != f {
			t.Fatalf("Focus() = %v, want %v", m.Focus(), f)
		}
	}
}

func TestTabShortcuts(t *testing.T) {
	m := testModel(t, nil)
	m.Update(key('n', tea.ModCtrl))
	if m.sidebar.Active() != ui.TabSummarize {
		t.Errorf("ctrl+n: Active() = %v, want Summarize", m.sidebar.Active())
	}
	m.Update(key('p', tea.ModCtrl))
	m.Update(key('p', tea.ModCtrl))
	if m.sidebar.Active() != ui.TabHelp {
		t.Errorf("ctrl+p twice: Active() = %v, want Help", m.sidebar.Active())
	}
}

func TestSearch_DuplicateIgnoredWhileInFlight(t *testing.T) {
	m := testModel(t, nil)

	_, cmd := m.Update(ui.SearchSubmitMsg{Prompt: "first"})
	if cmd == nil {
		t.Fatal("first search should start")
	}
	if !m.session.InFlight(session.OpSearch) {
		t.Fatal("search not marked in flight")
	}
	if _, cmd := m.Update(ui.SearchSubmitMsg{Prompt: "second"}); cmd != nil {
		t.Error("second search should be ignored while the first is in flight")
	}

	m.Update(SearchResultMsg{Reply: ai.Reply{Text: ai.MsgNotConfigured, Status: ai.StatusNotConfigured}})
	if m.session.InFlight(session.OpSearch) {
		t.Error("search still in flight after result")
	}
	if !m.footer.HasFlash() {
		t.Error("missing credential should flash a warning")
	}
	if got := m.sidebar.Search.Reply(); got != ai.MsgNotConfigured {
		t.Errorf("Reply() = %q", got)
	}
}

func TestSearch_RunsPipeline(t *testing.T) {
	m := testModel(t, stubGenerator{text: "the net is vast"})
	m.begin(session.OpSearch, ui.TabSearch)

	reply := m.pipeline.Search(context.Background(), "what", "")
	m.Update(SearchResultMsg{Reply: reply})
	if got := m.sidebar.Search.Reply(); got != "the net is vast" {
		t.Errorf("Reply() = %q", got)
	}
}

func TestSummaryResult_RecordsGenuineOnly(t *testing.T) {
	m := testModel(t, nil)

	m.Update(SummaryResultMsg{Text: "long text", Reply: ai.Reply{Text: "- short", Status: ai.StatusOK}})
	if n := len(m.session.Snapshot().Summaries); n != 1 {
		t.Fatalf("Summaries = %d, want 1", n)
	}

	m.Update(SummaryResultMsg{Text: "", Reply: ai.Reply{Text: ai.MsgNoText, Status: ai.StatusNoInput}})
	m.Update(SummaryResultMsg{Text: "x", Reply: ai.Reply{Text: ai.MsgSummarizeFailed, Status: ai.StatusRequestFailed}})
	if n := len(m.session.Snapshot().Summaries); n != 1 {
		t.Errorf("Summaries = %d after sentinel replies, want 1", n)
	}
}

func TestThemeResult_Failure(t *testing.T) {
	m := testModel(t, nil)
	m.Update(ThemeResultMsg{OK: false})
	if got := m.session.Snapshot().Theme; got != theme.Default() {
		t.Errorf("Theme = %+v, want default after failure", got)
	}
}

func TestThemeResult_Applied(t *testing.T) {
	m := testModel(t, nil)
	next := theme.Theme{
		PrimaryColor:    "#ff00ff",
		AccentColor:     "#00ff00",
		TextColor:       "#ffffff",
		BackgroundColor: "#000000",
	}
	m.Update(ThemeResultMsg{Theme: next, OK: true})

	snap := m.session.Snapshot()
	if snap.Theme != next {
		t.Errorf("Theme = %+v, want %+v", snap.Theme, next)
	}
	if snap.Tokens.BorderColor != "rgba(255,0,255,0.3)" {
		t.Errorf("BorderColor = %q", snap.Tokens.BorderColor)
	}
	if m.session.InFlight(session.OpTheme) {
		t.Error("theme still in flight")
	}
}

func TestNavigate_RecordsHistoryAndDropsStalePages(t *testing.T) {
	m := testModel(t, nil)

	m.Update(ui.NavigateMsg{URL: "example.com"})
	m.Update(ui.NavigateMsg{URL: "example.org"})

	snap := m.session.Snapshot()
	if snap.CurrentURL != "https://example.org" {
		t.Errorf("CurrentURL = %q", snap.CurrentURL)
	}
	if len(snap.History) != 2 || snap.History[0] != "https://example.org" {
		t.Errorf("History = %v", snap.History)
	}

	// The first navigation finishes late and must be ignored
	m.Update(viewport.LoadedMsg{Seq: m.pageSeq - 1, Page: &viewport.Page{Title: "Old", Markdown: "old"}})
	if !m.page.IsLoading() {
		t.Fatal("stale page replaced the pending one")
	}

	m.Update(viewport.LoadedMsg{Seq: m.pageSeq, Page: &viewport.Page{Title: "New", Markdown: "# New"}})
	if m.page.IsLoading() {
		t.Error("current page still loading")
	}
	if m.session.InFlight(session.OpPage) {
		t.Error("page still in flight")
	}
}

func TestNavigate_BlankIgnored(t *testing.T) {
	m := testModel(t, nil)
	if _, cmd := m.Update(ui.NavigateMsg{URL: "   "}); cmd != nil {
		t.Error("blank navigation should do nothing")
	}
	if n := len(m.session.Snapshot().History); n != 0 {
		t.Errorf("History = %d entries, want 0", n)
	}
}

func TestPageErrored(t *testing.T) {
	m := testModel(t, nil)
	m.Update(ui.NavigateMsg{URL: "example.com"})
	m.Update(viewport.ErroredMsg{Seq: m.pageSeq, URL: "https://example.com", Err: context.DeadlineExceeded})
	if m.page.IsLoading() {
		t.Error("page still loading after error")
	}
}

func TestToggleBookmarkShortcut(t *testing.T) {
	m := testModel(t, nil)
	url := m.session.Snapshot().CurrentURL

	m.Update(key('b', tea.ModCtrl))
	if !m.session.Snapshot().IsBookmarked(url) {
		t.Fatal("ctrl+b should bookmark the current page")
	}
	m.Update(key('b', tea.ModCtrl))
	if m.session.Snapshot().IsBookmarked(url) {
		t.Error("second ctrl+b should remove the bookmark")
	}
}

func TestDeleteAndClearBookmarks(t *testing.T) {
	m := testModel(t, nil)
	m.session.ToggleBookmark("https://a.example")
	m.session.ToggleBookmark("https://b.example")

	id := m.session.Snapshot().Bookmarks[0].ID
	m.Update(ui.DeleteBookmarkMsg{ID: id})
	if n := len(m.session.Snapshot().Bookmarks); n != 1 {
		t.Fatalf("Bookmarks = %d after delete, want 1", n)
	}
	m.Update(ui.ClearBookmarksMsg{})
	if n := len(m.session.Snapshot().Bookmarks); n != 0 {
		t.Errorf("Bookmarks = %d after clear, want 0", n)
	}
}

func TestClearHistory(t *testing.T) {
	m := testModel(t, nil)
	m.Update(ui.NavigateMsg{URL: "example.com"})
	m.Update(ui.ClearHistoryMsg{})
	if n := len(m.session.Snapshot().History); n != 0 {
		t.Errorf("History = %d entries, want 0", n)
	}
}

func TestHistoryShortcut_EmptyFlashes(t *testing.T) {
	m := testModel(t, nil)
	m.Update(key('h', tea.ModCtrl))
	if m.address.HistoryOpen() {
		t.Error("dropdown opened with no history")
	}
	if !m.footer.HasFlash() {
		t.Error("expected a flash for empty history")
	}

	m.Update(ui.NavigateMsg{URL: "example.com"})
	m.Update(key('h', tea.ModCtrl))
	if !m.address.HistoryOpen() {
		t.Error("dropdown should open once there is history")
	}
	if m.Focus() != FocusAddress {
		t.Errorf("Focus() = %v, want Address", m.Focus())
	}
}

func TestCredential_SetAndClear(t *testing.T) {
	m := testModel(t, nil)

	m.Update(ui.CredentialSubmitMsg{Value: "key-123"})
	if got := m.session.Snapshot().Credential; got != "key-123" {
		t.Errorf("Credential = %q", got)
	}
	if got := m.credentialSource(m.session.Snapshot()); got != ui.CredentialSession {
		t.Errorf("credentialSource() = %v, want session", got)
	}

	m.Update(ui.CredentialSubmitMsg{Value: ""})
	if got := m.session.Snapshot().Credential; got != "" {
		t.Errorf("Credential = %q after clear", got)
	}
	if got := m.credentialSource(m.session.Snapshot()); got != ui.CredentialNone {
		t.Errorf("credentialSource() = %v, want none", got)
	}
}

func TestCredentialSource_Environment(t *testing.T) {
	m := testModel(t, stubGenerator{})
	if got := m.credentialSource(m.session.Snapshot()); got != ui.CredentialEnvironment {
		t.Errorf("credentialSource() = %v, want environment", got)
	}
}

func TestResizeDrag(t *testing.T) {
	m := testModel(t, nil)
	divider := m.SidebarWidth()

	m.Update(tea.MouseClickMsg{X: divider, Y: 5, Button: tea.MouseLeft})
	if !m.resizer.Dragging() {
		t.Fatal("click on the divider should start a drag")
	}
	m.Update(tea.MouseMotionMsg{X: 60, Y: 5})
	if w := m.SidebarWidth(); w != 60 {
		t.Errorf("SidebarWidth() = %d during drag, want 60", w)
	}
	// The viewport keeps its reserved share
	m.Update(tea.MouseMotionMsg{X: 115, Y: 5})
	if w := m.SidebarWidth(); w != 80 {
		t.Errorf("SidebarWidth() = %d, want clamp to 80", w)
	}
	m.Update(tea.MouseReleaseMsg{X: 115, Y: 5})
	if m.resizer.Dragging() {
		t.Error("release should end the drag")
	}

	m.Update(tea.MouseMotionMsg{X: 50, Y: 5})
	if w := m.SidebarWidth(); w != 80 {
		t.Errorf("SidebarWidth() = %d, motion after release should be ignored", w)
	}
	if got := m.sidebar.Width(); got != 80 {
		t.Errorf("sidebar.Width() = %d, want 80", got)
	}
}

func TestResizeNudge(t *testing.T) {
	m := testModel(t, nil)
	start := m.SidebarWidth()

	m.Update(key(tea.KeyRight, tea.ModCtrl))
	if w := m.SidebarWidth(); w != start+nudgeStep {
		t.Errorf("ctrl+right: SidebarWidth() = %d, want %d", w, start+nudgeStep)
	}
	m.Update(key(tea.KeyLeft, tea.ModCtrl))
	m.Update(key(tea.KeyLeft, tea.ModCtrl))
	if w := m.SidebarWidth(); w != start-nudgeStep {
		t.Errorf("ctrl+left: SidebarWidth() = %d, want %d", w, start-nudgeStep)
	}

	for range 50 {
		m.Update(key(tea.KeyLeft, tea.ModCtrl))
	}
	if w := m.SidebarWidth(); w != 30 {
		t.Errorf("SidebarWidth() = %d, want the 30 cell minimum", w)
	}
}

func TestBracketsResizeOnlyWhenPageFocused(t *testing.T) {
	m := testModel(t, nil)
	start := m.SidebarWidth()

	m.Update(tea.KeyPressMsg{Code: ']', Text: "]"})
	if w := m.SidebarWidth(); w != start {
		t.Errorf("] with sidebar focused changed width to %d", w)
	}

	m.setFocus(FocusPage)
	m.Update(tea.KeyPressMsg{Code: ']', Text: "]"})
	if w := m.SidebarWidth(); w != start+nudgeStep {
		t.Errorf("] with page focused: SidebarWidth() = %d, want %d", w, start+nudgeStep)
	}
}

func TestClickTab(t *testing.T) {
	m := testModel(t, nil)
	inner := m.SidebarWidth() - ui.BorderSize

	col := -1
	for x := range inner {
		if tab, ok := ui.TabAt(x, inner); ok && tab == ui.TabTheme {
			col = x
			break
		}
	}
	if col < 0 {
		t.Fatal("Theme tab not found in tab bar")
	}

	m.setFocus(FocusPage)
	m.Update(tea.MouseClickMsg{X: col + 1, Y: ui.HeaderHeight + 1, Button: tea.MouseLeft})
	if m.sidebar.Active() != ui.TabTheme {
		t.Errorf("Active() = %v, want Theme", m.sidebar.Active())
	}
	if m.Focus() != FocusSidebar {
		t.Errorf("Focus() = %v, want Sidebar", m.Focus())
	}
}

func TestClickFocusesPane(t *testing.T) {
	m := testModel(t, nil)
	right := m.SidebarWidth() + 10

	m.Update(tea.MouseClickMsg{X: right, Y: ui.HeaderHeight + 1, Button: tea.MouseLeft})
	if m.Focus() != FocusAddress {
		t.Errorf("Focus() = %v, want Address", m.Focus())
	}
	m.Update(tea.MouseClickMsg{X: right, Y: 20, Button: tea.MouseLeft})
	if m.Focus() != FocusPage {
		t.Errorf("Focus() = %v, want Page", m.Focus())
	}
	m.Update(tea.MouseClickMsg{X: 5, Y: 20, Button: tea.MouseLeft})
	if m.Focus() != FocusSidebar {
		t.Errorf("Focus() = %v, want Sidebar", m.Focus())
	}
}

func TestFlashTick_ClearsExpired(t *testing.T) {
	m := testModel(t, nil)
	m.footer.SetFlashWithDuration("gone", ui.FlashInfo, -time.Second)
	if _, cmd := m.Update(ui.FlashTickMsg{}); cmd != nil {
		t.Error("expired flash should stop the ticker")
	}
	if m.footer.HasFlash() {
		t.Error("expired flash still shown")
	}
}
