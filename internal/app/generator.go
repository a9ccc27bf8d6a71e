package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/toneshift-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/toneshift-backend/internal/adapter/provider/gemini"
	"github.com/heartmarshall/toneshift-backend/internal/config"
)

// textGenerator is what every model provider offers.
type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Model() string
}

// newGenerator builds the configured model client once per process.
func newGenerator(ctx context.Context, cfg config.GeneratorConfig, log *slog.Logger) (textGenerator, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return gemini.NewGenerator(ctx, cfg.APIKey, cfg.ModelOrDefault(), cfg.MaxTokens, log)
	case config.ProviderAnthropic:
		return anthropic.NewGenerator(cfg.APIKey, cfg.ModelOrDefault(), cfg.MaxTokens, log)
	default:
		return nil, fmt.Errorf("unknown generator provider %q", cfg.Provider)
	}
}
