package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Property is one string field of a structured response schema.
type Property struct {
	Name        string
	Description string
}

// Schema constrains a structured response to a flat object of string
// properties.
type Schema struct {
	Properties []Property
	Required   []string
}

// Request is a single generation request.
type Request struct {
	Model  string
	Prompt string
	// Schema is nil for free-form text responses.
	Schema *Schema
}

// Response is the service's reply.
type Response struct {
	Text string
}

// Generator is the external AI service contract.
type Generator interface {
	Generate(ctx context.Context, req Request) (Response, error)
}

// ClientFactory builds a Generator for an API key.
type ClientFactory func(ctx context.Context, apiKey string) (Generator, error)

// GeminiClient is a Generator backed by the Gemini API.
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient creates a client for apiKey. An empty key is rejected
// here rather than letting the SDK fall back to its own environment lookup.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("api key is empty")
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiClient{client: c}, nil
}

// GeminiFactory is the ClientFactory for production use.
func GeminiFactory(ctx context.Context, apiKey string) (Generator, error) {
	c, err := NewGeminiClient(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Generate implements Generator.
func (g *GeminiClient) Generate(ctx context.Context, req Request) (Response, error) {
	var cfg *genai.GenerateContentConfig
	if req.Schema != nil {
		cfg = &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   toGenaiSchema(req.Schema),
		}
	}
	resp, err := g.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: resp.Text()}, nil
}

func toGenaiSchema(s *Schema) *genai.Schema {
	props := make(map[string]*genai.Schema, len(s.Properties))
	order := make([]string, 0, len(s.Properties))
	for _, p := range s.Properties {
		props[p.Name] = &genai.Schema{
			Type:        genai.TypeString,
			Description: p.Description,
		}
		order = append(order, p.Name)
	}
	return &genai.Schema{
		Type:             genai.TypeObject,
		Properties:       props,
		PropertyOrdering: order,
		Required:         s.Required,
	}
}
