// Package community records successful transformations and serves the
// public feed of recent ones.
package community

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/toneshift-backend/internal/domain"
)

type transformationRepo interface {
	Create(ctx context.Context, t domain.NewTransformation) (*domain.Transformation, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Transformation, error)
}

// Service is the persistence boundary for transformation records.
// Store failures never reach callers as panics; reads degrade to an
// empty feed.
type Service struct {
	repo transformationRepo
	log  *slog.Logger
}

// NewService creates a new community service.
func NewService(log *slog.Logger, repo transformationRepo) *Service {
	return &Service{
		repo: repo,
		log:  log.With("service", "community"),
	}
}

// Append stores one record. The error is logged and returned; callers on
// the request path are expected to ignore it.
func (s *Service) Append(ctx context.Context, t domain.NewTransformation) (*domain.Transformation, error) {
	rec, err := s.repo.Create(ctx, t)
	if err != nil {
		s.log.ErrorContext(ctx, "append transformation failed",
			slog.String("tone", t.Tone.Slug()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("append transformation: %w", err)
	}

	s.log.DebugContext(ctx, "transformation appended",
		slog.String("id", rec.ID),
		slog.String("tone", rec.Tone.Slug()),
	)
	return rec, nil
}

// ListRecent returns at most limit records, newest first. Out-of-range
// limits clamp to domain.FeedLimit. Failures are logged and yield an empty,
// non-nil slice.
func (s *Service) ListRecent(ctx context.Context, limit int) []domain.Transformation {
	limit = domain.ClampFeedLimit(limit)

	recs, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		s.log.ErrorContext(ctx, "list transformations failed",
			slog.Int("limit", limit),
			slog.String("error", err.Error()),
		)
		return []domain.Transformation{}
	}

	if recs == nil {
		return []domain.Transformation{}
	}
	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}
