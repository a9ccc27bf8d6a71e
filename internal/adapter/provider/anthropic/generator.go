// Package anthropic generates tone rewrites with Anthropic's Claude models.
package anthropic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/toneshift-backend/internal/domain"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "claude-3-5-haiku-latest"

// Generator sends single-turn prompts to the Messages API.
type Generator struct {
	client    sdk.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// NewGenerator creates a Generator. Extra request options (base URL, retries)
// are passed through to the SDK client.
func NewGenerator(apiKey, model string, maxTokens int64, logger *slog.Logger, opts ...option.RequestOption) (*Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic: api key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	// Single attempt per request.
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}, opts...)

	return &Generator{
		client:    sdk.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
		log:       logger.With("adapter", "anthropic"),
	}, nil
}

// Model returns the model identifier requests are sent to.
func (g *Generator) Model() string { return g.model }

// Generate sends prompt as one user message and returns the concatenated
// text blocks of the reply.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	g.log.DebugContext(ctx, "anthropic request", slog.String("model", g.model), slog.Int("prompt_len", len(prompt)))

	msg, err := g.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(g.model),
		MaxTokens: g.maxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: messages.new: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}

	text := b.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("anthropic: %w", domain.ErrEmptyGeneration)
	}
	return text, nil
}
