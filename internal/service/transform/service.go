// Package transform rewrites text in a chosen tone using a hosted language model.
package transform

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heartmarshall/toneshift-backend/internal/domain"
)

type generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Model() string
}

// Service turns (text, tone) into a stylized rewrite.
type Service struct {
	gen generator
	log *slog.Logger
}

// NewService creates a new transform service.
func NewService(log *slog.Logger, gen generator) *Service {
	return &Service{
		gen: gen,
		log: log.With("service", "transform"),
	}
}

// Transform validates the input, prompts the model once and returns its text
// unmodified. Any generator failure is logged here and reported to the caller
// only as domain.ErrGenerationUnavailable.
func (s *Service) Transform(ctx context.Context, in TransformInput) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	prompt := in.Tone.Prompt(in.Text)
	start := time.Now()

	out, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, context.Canceled) {
			level = slog.LevelWarn
		}
		s.log.Log(ctx, level, "generation failed",
			slog.String("model", s.gen.Model()),
			slog.String("tone", in.Tone.Slug()),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return nil, domain.ErrGenerationUnavailable
	}

	s.log.InfoContext(ctx, "text transformed",
		slog.String("model", s.gen.Model()),
		slog.String("tone", in.Tone.Slug()),
		slog.Int("input_len", len(in.Text)),
		slog.Int("output_len", len(out)),
		slog.Duration("duration", time.Since(start)),
	)

	return &Result{
		OriginalText:    in.Text,
		TransformedText: out,
		Tone:            in.Tone,
	}, nil
}
