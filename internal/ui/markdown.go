package ui

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/reflow/wordwrap"
)

// Compiled regex patterns for markdown parsing
var (
	boldPattern       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	starItalic        = regexp.MustCompile(`(^|[^*])\*([^*\s][^*]*)\*`)
	underscoreItalic  = regexp.MustCompile(`(^|[^a-zA-Z0-9_])_([^_]+)_([^a-zA-Z0-9_]|$)`)
	inlineCodePattern = regexp.MustCompile("`([^`]+)`")
	imagePattern      = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	linkPattern       = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)(?:\s+"[^"]*")?\)`)
	numberedPattern   = regexp.MustCompile(`^(\d{1,3})\. `)
	tableRulePattern  = regexp.MustCompile(`^\|?\s*:?-{3,}:?\s*(\|\s*:?-{3,}:?\s*)*\|?$`)
)

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return buf.String()
}

// renderInlineMarkdown applies inline formatting (bold, italic, code, links) to a line
func renderInlineMarkdown(line string) string {
	// Rendered spans are swapped for placeholders so later patterns never
	// match inside their escape sequences
	var spans []string
	protect := func(rendered string) string {
		spans = append(spans, rendered)
		return fmt.Sprintf("\x00%d\x00", len(spans)-1)
	}

	line = inlineCodePattern.ReplaceAllStringFunc(line, func(match string) string {
		return protect(MarkdownInlineCodeStyle.Render(inlineCodePattern.FindStringSubmatch(match)[1]))
	})

	line = imagePattern.ReplaceAllStringFunc(line, func(match string) string {
		alt := imagePattern.FindStringSubmatch(match)[1]
		if alt == "" {
			alt = "image"
		}
		return protect(MutedStyle.Render("[" + alt + "]"))
	})

	line = linkPattern.ReplaceAllStringFunc(line, func(match string) string {
		parts := linkPattern.FindStringSubmatch(match)
		return protect(MarkdownLinkStyle.Render(parts[1]) + MutedStyle.Render(" ("+parts[2]+")"))
	})

	line = boldPattern.ReplaceAllStringFunc(line, func(match string) string {
		return MarkdownBoldStyle.Render(boldPattern.FindStringSubmatch(match)[1])
	})

	line = starItalic.ReplaceAllStringFunc(line, func(match string) string {
		sub := starItalic.FindStringSubmatch(match)
		return sub[1] + MarkdownItalicStyle.Render(sub[2])
	})

	// Only match underscores at word boundaries (not in identifiers like foo_bar_baz)
	line = underscoreItalic.ReplaceAllStringFunc(line, func(match string) string {
		sub := underscoreItalic.FindStringSubmatch(match)
		return sub[1] + MarkdownItalicStyle.Render(sub[2]) + sub[3]
	})

	for i, rendered := range spans {
		line = strings.Replace(line, fmt.Sprintf("\x00%d\x00", i), rendered, 1)
	}
	return line
}

// wrapText wraps text to the specified width, handling ANSI escape codes
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}

// indentContinuation indents every line after the first by n spaces
func indentContinuation(s string, n int) string {
	lines := strings.Split(s, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = strings.Repeat(" ", n) + lines[i]
	}
	return strings.Join(lines, "\n")
}

// renderMarkdownLine renders a single line with markdown formatting
func renderMarkdownLine(line string, width int) string {
	trimmed := strings.TrimSpace(line)

	// Headers - don't wrap, they should be concise
	switch {
	case strings.HasPrefix(trimmed, "#### "):
		return MarkdownH4Style.Render(renderInlineMarkdown(strings.TrimPrefix(trimmed, "#### ")))
	case strings.HasPrefix(trimmed, "### "):
		return MarkdownH3Style.Render(renderInlineMarkdown(strings.TrimPrefix(trimmed, "### ")))
	case strings.HasPrefix(trimmed, "## "):
		return MarkdownH2Style.Render(renderInlineMarkdown(strings.TrimPrefix(trimmed, "## ")))
	case strings.HasPrefix(trimmed, "# "):
		return MarkdownH1Style.Render(renderInlineMarkdown(strings.TrimPrefix(trimmed, "# ")))
	}

	if trimmed == "---" || trimmed == "***" || trimmed == "___" {
		return MarkdownHRStyle.Render(strings.Repeat("─", min(max(width, 1), 32)))
	}

	// Tables: the rule row becomes a line, cells keep their pipes
	if strings.HasPrefix(trimmed, "|") {
		if tableRulePattern.MatchString(trimmed) {
			return MarkdownHRStyle.Render(strings.Repeat("─", min(max(width, 1), len(trimmed))))
		}
		cells := strings.Split(strings.Trim(trimmed, "|"), "|")
		for i, c := range cells {
			cells[i] = renderInlineMarkdown(strings.TrimSpace(c))
		}
		sep := MarkdownHRStyle.Render(" │ ")
		return strings.Join(cells, sep)
	}

	if strings.HasPrefix(trimmed, "> ") || trimmed == ">" {
		content := strings.TrimSpace(strings.TrimPrefix(trimmed, ">"))
		return MarkdownBlockquoteStyle.Render(wrapText(renderInlineMarkdown(content), width-4))
	}

	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") || strings.HasPrefix(trimmed, "+ ") {
		bullet := MarkdownListBulletStyle.Render("•")
		wrapped := wrapText(renderInlineMarkdown(trimmed[2:]), width-6)
		return "  " + bullet + " " + indentContinuation(wrapped, 4)
	}

	if m := numberedPattern.FindStringSubmatch(trimmed); m != nil {
		number := MarkdownListBulletStyle.Render(m[1] + ".")
		wrapped := wrapText(renderInlineMarkdown(trimmed[len(m[0]):]), width-6)
		return "  " + number + " " + indentContinuation(wrapped, len(m[1])+4)
	}

	return wrapText(renderInlineMarkdown(line), width)
}

// RenderMarkdown renders markdown content with syntax-highlighted code blocks
func RenderMarkdown(content string, width int) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var result strings.Builder
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	inCodeBlock := false
	codeBlockLang := ""
	var codeBlockContent strings.Builder

	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if !inCodeBlock {
				inCodeBlock = true
				codeBlockLang = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "```"))
				codeBlockContent.Reset()
			} else {
				inCodeBlock = false
				if result.Len() > 0 {
					result.WriteString("\n")
				}
				result.WriteString(highlightCode(codeBlockContent.String(), codeBlockLang))
				result.WriteString("\n")
				codeBlockLang = ""
			}
			continue
		}

		if inCodeBlock {
			if codeBlockContent.Len() > 0 {
				codeBlockContent.WriteString("\n")
			}
			codeBlockContent.WriteString(line)
			continue
		}

		result.WriteString(renderMarkdownLine(line, width))
		result.WriteString("\n")
	}

	// Unterminated code block: output whatever we have
	if inCodeBlock {
		result.WriteString(highlightCode(codeBlockContent.String(), codeBlockLang))
	}

	return strings.TrimRight(result.String(), "\n")
}
