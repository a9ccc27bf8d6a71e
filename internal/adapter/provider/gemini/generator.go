// Package gemini generates tone rewrites with Google's Gemini models.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/heartmarshall/toneshift-backend/internal/domain"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-1.5-flash"

// Generator sends single-turn prompts to the Gemini API.
type Generator struct {
	client    *genai.Client
	model     string
	maxTokens int32
	log       *slog.Logger
}

// NewGenerator creates a Generator against the public Gemini API.
func NewGenerator(ctx context.Context, apiKey, model string, maxTokens int64, logger *slog.Logger) (*Generator, error) {
	return newGenerator(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}, model, maxTokens, logger)
}

// NewGeneratorWithURL creates a Generator with a custom base URL (for testing).
func NewGeneratorWithURL(ctx context.Context, baseURL, apiKey, model string, maxTokens int64, logger *slog.Logger) (*Generator, error) {
	return newGenerator(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	}, model, maxTokens, logger)
}

func newGenerator(ctx context.Context, cc *genai.ClientConfig, model string, maxTokens int64, logger *slog.Logger) (*Generator, error) {
	if cc.APIKey == "" {
		return nil, fmt.Errorf("gemini: api key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Generator{
		client:    client,
		model:     model,
		maxTokens: int32(maxTokens),
		log:       logger.With("adapter", "gemini"),
	}, nil
}

// Model returns the model identifier requests are sent to.
func (g *Generator) Model() string { return g.model }

// Generate sends prompt as one user turn and returns the model's text.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	g.log.DebugContext(ctx, "gemini request", slog.String("model", g.model), slog.Int("prompt_len", len(prompt)))

	var cfg *genai.GenerateContentConfig
	if g.maxTokens > 0 {
		cfg = &genai.GenerateContentConfig{MaxOutputTokens: g.maxTokens}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini: %w", domain.ErrEmptyGeneration)
	}
	return text, nil
}
