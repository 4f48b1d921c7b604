// Package ai turns requests to the generative-AI service into display-ready
// text or validated domain values.
//
// Nothing in this package returns a failure the caller must handle: search
// and summarize produce a Reply whose Status says whether the text is
// genuine output, and theme generation yields a theme or nothing.
package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/zhubert/navigator/internal/errors"
	"github.com/zhubert/navigator/internal/logger"
	"github.com/zhubert/navigator/internal/theme"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// User-facing messages for the non-genuine reply paths.
const (
	MsgNotConfigured   = "Error: API Key not configured. Please set it in the Settings panel or via host environment variables."
	MsgSearchFailed    = "Error: Could not connect to AI core. System might be offline or the API key is invalid."
	MsgSummarizeFailed = "Error: Failed to process text. The AI summarization module is unresponsive or the API key is invalid."
	MsgNoText          = "No text provided to summarize."
)

// Status classifies a Reply.
type Status int

const (
	StatusOK Status = iota
	StatusNoInput
	StatusNotConfigured
	StatusRequestFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoInput:
		return "no input"
	case StatusNotConfigured:
		return "not configured"
	case StatusRequestFailed:
		return "request failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Reply is the outcome of a text operation.
type Reply struct {
	Text   string
	Status Status
}

// Genuine reports whether Text came from the service.
func (r Reply) Genuine() bool {
	return r.Status == StatusOK && strings.TrimSpace(r.Text) != ""
}

// Pipeline issues requests to the AI service. The environment client is
// fixed at construction and never replaced.
type Pipeline struct {
	model     string
	env       Generator
	newClient ClientFactory
	log       *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithModel sets the model identifier. Blank values are ignored.
func WithModel(model string) Option {
	return func(p *Pipeline) {
		if strings.TrimSpace(model) != "" {
			p.model = model
		}
	}
}

// WithClientFactory replaces the factory used for session credentials.
func WithClientFactory(f ClientFactory) Option {
	return func(p *Pipeline) {
		if f != nil {
			p.newClient = f
		}
	}
}

// New returns a Pipeline. env is the client built from the environment
// credential at startup and may be nil.
func New(env Generator, opts ...Option) *Pipeline {
	p := &Pipeline{
		model:     DefaultModel,
		env:       env,
		newClient: GeminiFactory,
		log:       logger.WithComponent("ai"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Model returns the configured model identifier.
func (p *Pipeline) Model() string {
	return p.model
}

// HasEnvironmentClient reports whether a fallback client exists.
func (p *Pipeline) HasEnvironmentClient() bool {
	return p.env != nil
}

// Resolve picks the client for one call. A session credential always gets
// a dedicated client; if that cannot be built the call fails without
// falling back to the environment client.
func (p *Pipeline) Resolve(ctx context.Context, credential string) (Generator, error) {
	const op errors.Op = "ai.Resolve"

	if key := strings.TrimSpace(credential); key != "" {
		g, err := p.newClient(ctx, key)
		if err != nil {
			p.log.Warn("session client construction failed", "error", err)
			return nil, errors.E(op, errors.KindNotConfigured, "session credential rejected", err)
		}
		return g, nil
	}
	if p.env != nil {
		return p.env, nil
	}
	return nil, errors.NotConfigured(op)
}

// Search answers a free-form prompt.
func (p *Pipeline) Search(ctx context.Context, prompt, credential string) Reply {
	return p.text(ctx, "ai.Search", searchPrompt(prompt), credential, MsgSearchFailed)
}

// Summarize condenses text into a bulleted list. Blank input returns the
// MsgNoText sentinel without contacting the service.
func (p *Pipeline) Summarize(ctx context.Context, text, credential string) Reply {
	if strings.TrimSpace(text) == "" {
		return Reply{Text: MsgNoText, Status: StatusNoInput}
	}
	return p.text(ctx, "ai.Summarize", summarizePrompt(text), credential, MsgSummarizeFailed)
}

func (p *Pipeline) text(ctx context.Context, op errors.Op, prompt, credential, failMsg string) Reply {
	g, err := p.Resolve(ctx, credential)
	if err != nil {
		return Reply{Text: MsgNotConfigured, Status: StatusNotConfigured}
	}
	resp, err := g.Generate(ctx, Request{Model: p.model, Prompt: prompt})
	if err != nil {
		p.log.Error("request failed", "op", string(op), "error", errors.RequestFailed(op, err))
		return Reply{Text: failMsg, Status: StatusRequestFailed}
	}
	return Reply{Text: resp.Text, Status: StatusOK}
}

// GenerateTheme asks the service for a theme matching prompt. The result is
// either fully valid or absent.
func (p *Pipeline) GenerateTheme(ctx context.Context, prompt, credential string) (theme.Theme, bool) {
	t, err := p.generateTheme(ctx, prompt, credential)
	if err != nil {
		p.log.Warn("theme generation failed", "kind", errors.KindOf(err).String(), "error", err)
		return theme.Theme{}, false
	}
	return t, true
}

func (p *Pipeline) generateTheme(ctx context.Context, prompt, credential string) (theme.Theme, error) {
	const op errors.Op = "ai.GenerateTheme"

	g, err := p.Resolve(ctx, credential)
	if err != nil {
		return theme.Theme{}, err
	}
	resp, err := g.Generate(ctx, Request{
		Model:  p.model,
		Prompt: themePrompt(prompt),
		Schema: ThemeSchema(),
	})
	if err != nil {
		return theme.Theme{}, errors.RequestFailed(op, err)
	}
	return ExtractTheme(resp.Text)
}

func searchPrompt(prompt string) string {
	return `You are a futuristic AI assistant in a cyberpunk browser. Respond to the following user query: "` + prompt + `"`
}

func summarizePrompt(text string) string {
	return "Summarize the following text in a concise, bulleted list suitable for a cyberpunk interface:\n\n---\n" + text + "\n---"
}

func themePrompt(prompt string) string {
	return `Generate a cyberpunk theme based on this prompt: "` + prompt + `". The theme should evoke a high-tech, futuristic feel.`
}

// ThemeSchema is the structured-response constraint for theme generation.
func ThemeSchema() *Schema {
	return &Schema{
		Properties: []Property{
			{theme.FieldPrimary, "The primary neon color for UI elements like borders and highlights. Must be a hex code."},
			{theme.FieldAccent, "A secondary accent color for special elements. Must be a hex code."},
			{theme.FieldText, "The main text color, usually a light color for dark backgrounds. Must be a hex code."},
			{theme.FieldBackground, "The main dark background color of the UI. Must be a hex code."},
		},
		Required: append([]string(nil), theme.Fields...),
	}
}
