package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/toneshift-backend/internal/config"
	"github.com/heartmarshall/toneshift-backend/internal/domain"
	"github.com/heartmarshall/toneshift-backend/internal/service/community"
	"github.com/heartmarshall/toneshift-backend/internal/service/studio"
	"github.com/heartmarshall/toneshift-backend/internal/service/transform"
)

// TransformOnce runs a single transformation outside the HTTP server.
// With save set, the result is also appended to the configured store and
// the call waits for that append before returning.
func TransformOnce(ctx context.Context, cfg *config.Config, log *slog.Logger, text string, tone domain.Tone, save bool) (*transform.Result, error) {
	gen, err := newGenerator(ctx, cfg.Generator, log)
	if err != nil {
		return nil, fmt.Errorf("create generator: %w", err)
	}
	transformSvc := transform.NewService(log, gen)

	if !save {
		return transformSvc.Transform(ctx, transform.TransformInput{Text: text, Tone: tone})
	}

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer closeStore()

	svc := studio.NewService(log, transformSvc, community.NewService(log, store), nil, cfg.Store.WriteTimeout)
	res, err := svc.Transform(ctx, text, tone)
	svc.Wait()
	return res, err
}

// RecentTransformations reads the community feed from the configured store.
func RecentTransformations(ctx context.Context, cfg *config.Config, log *slog.Logger, limit int) ([]domain.Transformation, error) {
	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer closeStore()

	return community.NewService(log, store).ListRecent(ctx, limit), nil
}

// LoadConfig loads configuration for CLI commands.
func LoadConfig(path string) (*config.Config, error) {
	return loadConfig(path)
}
