package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zhubert/navigator/internal/ai"
	"github.com/zhubert/navigator/internal/config"
	"github.com/zhubert/navigator/internal/session"
	"github.com/zhubert/navigator/internal/store"
)

// cannedGenerator answers every request with text.
type cannedGenerator struct {
	text string
}

func (g cannedGenerator) Generate(context.Context, ai.Request) (ai.Response, error) {
	return ai.Response{Text: g.text}, nil
}

func testRuntime(t *testing.T, env ai.Generator) *runtime {
	t.Helper()
	st := store.NewMemory()
	return &runtime{
		cfg:      config.Default(t.TempDir()),
		store:    st,
		session:  session.New(st),
		pipeline: ai.New(env),
		close:    func() error { return nil },
	}
}

func TestRunSearch(t *testing.T) {
	rt := testRuntime(t, cannedGenerator{text: "Neon rain."})
	var out bytes.Buffer
	if err := runSearch(context.Background(), &out, rt, "weather"); err != nil {
		t.Fatalf("runSearch() error = %v", err)
	}
	if strings.TrimSpace(out.String()) != "Neon rain." {
		t.Errorf("output = %q", out.String())
	}
	if rt.session.InFlight(session.OpSearch) {
		t.Error("search left in flight")
	}
}

func TestRunSearch_NotConfigured(t *testing.T) {
	rt := testRuntime(t, nil)
	var out bytes.Buffer
	err := runSearch(context.Background(), &out, rt, "weather")
	if err == nil {
		t.Fatal("runSearch() without credentials should fail")
	}
	if strings.HasPrefix(err.Error(), "Error:") {
		t.Errorf("error %q keeps the sentinel prefix", err)
	}
	if !strings.Contains(err.Error(), "not configured") {
		t.Errorf("error = %q", err)
	}
	if out.Len() != 0 {
		t.Errorf("sentinel printed to stdout: %q", out.String())
	}
}

func TestRunSearch_AlreadyInFlight(t *testing.T) {
	rt := testRuntime(t, cannedGenerator{text: "x"})
	rt.session.Begin(session.OpSearch)
	if err := runSearch(context.Background(), &bytes.Buffer{}, rt, "q"); err == nil {
		t.Error("runSearch() while in flight should fail")
	}
}

func TestRunSummarize_RecordsHistory(t *testing.T) {
	rt := testRuntime(t, cannedGenerator{text: "- short"})
	var out bytes.Buffer
	if err := runSummarize(context.Background(), &out, rt, "a long text"); err != nil {
		t.Fatalf("runSummarize() error = %v", err)
	}
	summaries := rt.session.Snapshot().Summaries
	if len(summaries) != 1 || summaries[0].Summary != "- short" || summaries[0].Text != "a long text" {
		t.Errorf("Summaries = %+v", summaries)
	}
	if _, ok, _ := rt.store.Get(store.KeySummaryHistory); !ok {
		t.Error("summary history not persisted")
	}
}

func TestRunSummarize_BlankInput(t *testing.T) {
	rt := testRuntime(t, cannedGenerator{text: "unused"})
	err := runSummarize(context.Background(), &bytes.Buffer{}, rt, "   ")
	if err == nil || err.Error() != ai.MsgNoText {
		t.Errorf("runSummarize(blank) error = %v, want %q", err, ai.MsgNoText)
	}
	if n := len(rt.session.Snapshot().Summaries); n != 0 {
		t.Errorf("Summaries = %d, want 0", n)
	}
}

func TestRunTheme(t *testing.T) {
	rt := testRuntime(t, cannedGenerator{text: "Here you go:\n```json\n" +
		`{"primaryColor":"#03d8f3","accentColor":"#fcee0c","textColor":"#e0e0e0","backgroundColor":"#1a1a2e"}` +
		"\n```"})
	var out bytes.Buffer
	if err := runTheme(context.Background(), &out, rt, "neon"); err != nil {
		t.Fatalf("runTheme() error = %v", err)
	}
	for _, want := range []string{`"primaryColor": "#03d8f3"`, `"--border-color": "rgba(3,216,243,0.3)"`, `"--background-color-transparent": "#1a1a2ed9"`} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %s:\n%s", want, out.String())
		}
	}
}

func TestRunTheme_Refusal(t *testing.T) {
	rt := testRuntime(t, cannedGenerator{text: "I cannot comply"})
	if err := runTheme(context.Background(), &bytes.Buffer{}, rt, "neon"); err == nil {
		t.Error("runTheme() with unusable reply should fail")
	}
	if rt.session.InFlight(session.OpTheme) {
		t.Error("theme left in flight")
	}
}

func TestReadInput(t *testing.T) {
	got, err := readInput(nil, strings.NewReader("from stdin"))
	if err != nil || got != "from stdin" {
		t.Errorf("readInput(stdin) = %q, %v", got, err)
	}
	got, err = readInput([]string{"-"}, strings.NewReader("dash"))
	if err != nil || got != "dash" {
		t.Errorf("readInput(-) = %q, %v", got, err)
	}

	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("from file"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err = readInput([]string{path}, strings.NewReader("ignored"))
	if err != nil || got != "from file" {
		t.Errorf("readInput(file) = %q, %v", got, err)
	}

	if _, err := readInput([]string{filepath.Join(t.TempDir(), "missing")}, nil); err == nil {
		t.Error("readInput(missing) expected error")
	}
}

func TestListBookmarksAndHistory(t *testing.T) {
	rt := testRuntime(t, nil)

	var out bytes.Buffer
	listBookmarks(&out, rt)
	listHistory(&out, rt)
	if !strings.Contains(out.String(), "No bookmarks.") || !strings.Contains(out.String(), "No history.") {
		t.Errorf("empty listings = %q", out.String())
	}

	rt.session.Navigate("https://a.example")
	rt.session.Navigate("https://b.example")
	rt.session.ToggleBookmark("https://a.example")

	out.Reset()
	listHistory(&out, rt)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], "https://b.example") {
		t.Errorf("history listing = %q, want most recent first", out.String())
	}

	out.Reset()
	listBookmarks(&out, rt)
	if !strings.Contains(out.String(), "https://a.example") {
		t.Errorf("bookmark listing = %q", out.String())
	}
}
