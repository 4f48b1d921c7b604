// Package viewport is the page-rendering surface. It fetches a URL, strips
// and sanitizes the document, and turns it into Markdown for the terminal.
//
// Each navigation ends in exactly one LoadedMsg or ErroredMsg.
package viewport

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/microcosm-cc/bluemonday"

	"github.com/zhubert/navigator/internal/errors"
	"github.com/zhubert/navigator/internal/logger"
)

// UserAgent identifies page requests.
const UserAgent = "navigator/1.0 (+terminal)"

// DefaultTimeout bounds a single page request.
const DefaultTimeout = 20 * time.Second

// maxRedirects caps the redirect chain for one navigation.
const maxRedirects = 10

// Capabilities are the fixed content features the surface renders.
type Capabilities struct {
	// Images keeps images as Markdown image links; otherwise they are dropped.
	Images bool
	// Tables renders tables as Markdown tables; otherwise as plain text.
	Tables bool
}

// DefaultCapabilities enables every feature.
var DefaultCapabilities = Capabilities{Images: true, Tables: true}

// Page is a rendered document.
type Page struct {
	URL         string
	FinalURL    string
	Title       string
	Markdown    string
	Text        string
	Status      int
	ContentType string
}

// Fetcher loads pages. It is safe for concurrent use.
type Fetcher struct {
	client *resty.Client
	policy *bluemonday.Policy
	conv   *converter.Converter
	caps   Capabilities
	log    *slog.Logger
}

// NewFetcher returns a Fetcher with the given request timeout.
func NewFetcher(timeout time.Duration, caps Capabilities) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.5").
		SetHeader("Accept-Language", "en-US,en;q=0.9").
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(maxRedirects))

	plugins := []converter.Plugin{
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
	}
	if caps.Tables {
		plugins = append(plugins, table.NewTablePlugin())
	}

	return &Fetcher{
		client: client,
		policy: bluemonday.UGCPolicy(),
		conv:   converter.NewConverter(converter.WithPlugins(plugins...)),
		caps:   caps,
		log:    logger.WithComponent("viewport"),
	}
}

var schemePattern = regexp.MustCompile(`(?i)^https?://`)

// NormalizeURL trims input and prefixes https:// when it has no http or
// https scheme. Blank input stays blank.
func NormalizeURL(input string) string {
	input = strings.TrimSpace(input)
	if input == "" || schemePattern.MatchString(input) {
		return input
	}
	return "https://" + input
}

// Fetch retrieves and renders rawURL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	const op errors.Op = "viewport.Fetch"

	target := NormalizeURL(rawURL)
	parsed, err := url.Parse(target)
	if err != nil || parsed.Host == "" {
		return nil, errors.E(op, errors.KindInvalid, fmt.Sprintf("invalid URL %q", rawURL))
	}

	f.log.Debug("fetching page", "url", target)
	resp, err := f.client.R().SetContext(ctx).Get(target)
	if err != nil {
		return nil, errors.E(op, errors.KindIO, err)
	}
	status := resp.StatusCode()
	if status < http.StatusOK || status >= http.StatusBadRequest {
		return nil, errors.E(op, errors.KindIO, fmt.Sprintf("HTTP %d from %s", status, target))
	}

	page := &Page{
		URL:         target,
		FinalURL:    target,
		Status:      status,
		ContentType: resp.Header().Get("Content-Type"),
	}
	if resp.RawResponse != nil && resp.RawResponse.Request != nil {
		page.FinalURL = resp.RawResponse.Request.URL.String()
	}

	body := resp.String()
	switch mediaType(page.ContentType) {
	case "text/plain":
		page.Title = parsed.Host
		page.Text = body
		page.Markdown = "```\n" + body + "\n```"
		return page, nil
	case "", "text/html", "application/xhtml+xml":
	default:
		return nil, errors.E(op, errors.KindInvalid, fmt.Sprintf("cannot render %s", page.ContentType))
	}

	if err := f.render(page, body); err != nil {
		return nil, errors.E(op, errors.KindIO, err)
	}
	f.log.Info("page loaded", "url", page.FinalURL, "status", status, "bytes", len(body))
	return page, nil
}

func mediaType(contentType string) string {
	mt, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}

// render fills the title, text and Markdown of page from an HTML body.
func (f *Fetcher) render(page *Page, html string) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return fmt.Errorf("failed to parse HTML: %w", err)
	}

	page.Title = strings.TrimSpace(doc.Find("title").First().Text())
	if page.Title == "" {
		if u, err := url.Parse(page.FinalURL); err == nil {
			page.Title = u.Host
		}
	}

	doc.Find("script, style, noscript, iframe, template, svg").Remove()
	if !f.caps.Images {
		doc.Find("img, picture").Remove()
	}

	content := doc.Find("main, article").First()
	if content.Length() == 0 {
		content = doc.Find("body")
	}
	inner, err := content.Html()
	if err != nil {
		return fmt.Errorf("failed to render HTML: %w", err)
	}

	page.Text = collapseSpace(content.Text())

	clean := f.policy.Sanitize(inner)
	md, err := f.conv.ConvertString(clean, converter.WithDomain(page.FinalURL))
	if err != nil {
		return fmt.Errorf("failed to convert HTML: %w", err)
	}
	page.Markdown = strings.TrimSpace(md)
	return nil
}

var spaceRun = regexp.MustCompile(`\s+`)

func collapseSpace(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}

// LoadedMsg reports a successful navigation.
type LoadedMsg struct {
	Seq  int
	Page *Page
}

// ErroredMsg reports a failed navigation.
type ErroredMsg struct {
	Seq int
	URL string
	Err error
}

// Load returns a command that fetches rawURL and reports the outcome. seq
// lets the receiver tell navigations apart.
func (f *Fetcher) Load(ctx context.Context, rawURL string, seq int) tea.Cmd {
	return func() tea.Msg {
		page, err := f.Fetch(ctx, rawURL)
		if err != nil {
			f.log.Warn("page failed", "url", rawURL, "error", err)
			return ErroredMsg{Seq: seq, URL: rawURL, Err: err}
		}
		return LoadedMsg{Seq: seq, Page: page}
	}
}
