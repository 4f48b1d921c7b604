package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderMarkdown_Headings(t *testing.T) {
	out := ansi.Strip(RenderMarkdown("# Title\n## Sub\nbody", 40))

	if strings.Contains(out, "#") {
		t.Errorf("heading markers should be removed, got %q", out)
	}
	for _, want := range []string{"Title", "Sub", "body"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestRenderMarkdown_Inline(t *testing.T) {
	out := ansi.Strip(RenderMarkdown("a **bold** and `code` and [link](https://example.com)", 80))

	if strings.Contains(out, "**") || strings.Contains(out, "`") {
		t.Errorf("inline markers should be removed, got %q", out)
	}
	if !strings.Contains(out, "link (https://example.com)") {
		t.Errorf("links should show their target, got %q", out)
	}
}

func TestRenderMarkdown_Lists(t *testing.T) {
	out := ansi.Strip(RenderMarkdown("- one\n* two\n3. three", 40))

	if strings.Count(out, "•") != 2 {
		t.Errorf("expected two bullets, got %q", out)
	}
	if !strings.Contains(out, "3. three") {
		t.Errorf("numbered item missing, got %q", out)
	}
}

func TestRenderMarkdown_CodeBlock(t *testing.T) {
	out := ansi.Strip(RenderMarkdown("```go\nfunc main() {}\n```", 40))

	if strings.Contains(out, "```") {
		t.Errorf("fences should be removed, got %q", out)
	}
	if !strings.Contains(out, "func main() {}") {
		t.Errorf("code should be preserved, got %q", out)
	}
}

func TestRenderMarkdown_UnterminatedCodeBlock(t *testing.T) {
	out := ansi.Strip(RenderMarkdown("```\nleft open", 40))
	if !strings.Contains(out, "left open") {
		t.Errorf("unterminated block content lost, got %q", out)
	}
}

func TestRenderMarkdown_Images(t *testing.T) {
	out := ansi.Strip(RenderMarkdown("![a cat](cat.png)", 40))
	if out != "[a cat]" {
		t.Errorf("image should become its alt text, got %q", out)
	}
}

func TestRenderMarkdown_Wraps(t *testing.T) {
	out := ansi.Strip(RenderMarkdown(strings.Repeat("word ", 30), 20))
	for _, line := range strings.Split(out, "\n") {
		if ansi.StringWidth(line) > 20 {
			t.Errorf("line exceeds width: %q", line)
		}
	}
}

func TestRenderMarkdown_UnderscoreInIdentifier(t *testing.T) {
	out := ansi.Strip(RenderMarkdown("call foo_bar_baz now", 80))
	if !strings.Contains(out, "foo_bar_baz") {
		t.Errorf("identifier underscores should survive, got %q", out)
	}
}
