// Package studio orchestrates a transformation request: generate the
// rewrite, answer the caller, and record the result in the background.
package studio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/toneshift-backend/internal/domain"
	"github.com/heartmarshall/toneshift-backend/internal/metrics"
	"github.com/heartmarshall/toneshift-backend/internal/service/transform"
)

type transformer interface {
	Transform(ctx context.Context, in transform.TransformInput) (*transform.Result, error)
}

type recordStore interface {
	Append(ctx context.Context, t domain.NewTransformation) (*domain.Transformation, error)
	ListRecent(ctx context.Context, limit int) []domain.Transformation
}

type observer interface {
	ObserveTransform(tone, outcome string, d time.Duration)
	AppendStarted()
	AppendFinished(err error)
	ObserveFeedRead(n int)
}

// DefaultWriteTimeout bounds a background append when none is configured.
const DefaultWriteTimeout = 10 * time.Second

// Service is the request orchestrator.
type Service struct {
	transformer  transformer
	records      recordStore
	obs          observer
	log          *slog.Logger
	writeTimeout time.Duration
	now          func() time.Time

	mu      sync.Mutex
	closed  bool
	pending sync.WaitGroup
}

// NewService creates a new studio service. obs may be nil.
func NewService(
	log *slog.Logger,
	transformer transformer,
	records recordStore,
	obs observer,
	writeTimeout time.Duration,
) *Service {
	if obs == nil {
		obs = nopObserver{}
	}
	if writeTimeout <= 0 {
		writeTimeout = DefaultWriteTimeout
	}
	return &Service{
		transformer:  transformer,
		records:      records,
		obs:          obs,
		log:          log.With("service", "studio"),
		writeTimeout: writeTimeout,
		now:          time.Now,
	}
}

// Transform produces the rewrite and returns as soon as it is known.
// The record is appended on a separate goroutine; its outcome never
// affects the returned result.
func (s *Service) Transform(ctx context.Context, text string, tone domain.Tone) (*transform.Result, error) {
	start := s.now()

	res, err := s.transformer.Transform(ctx, transform.TransformInput{Text: text, Tone: tone})
	s.obs.ObserveTransform(tone.Slug(), outcomeOf(err), s.now().Sub(start))
	if err != nil {
		return nil, err
	}

	s.appendAsync(ctx, domain.NewTransformation{
		OriginalText:    res.OriginalText,
		TransformedText: res.TransformedText,
		Tone:            res.Tone,
		CreatedAt:       s.now().UTC(),
	})

	return res, nil
}

// ListRecent returns the community feed.
func (s *Service) ListRecent(ctx context.Context, limit int) []domain.Transformation {
	recs := s.records.ListRecent(ctx, limit)
	s.obs.ObserveFeedRead(len(recs))
	return recs
}

// Wait blocks until every background append started so far has finished.
func (s *Service) Wait() {
	s.pending.Wait()
}

// Shutdown stops scheduling background appends and waits for the ones in
// flight. Appends requested afterwards run inline. It returns ctx.Err() if
// ctx ends first.
func (s *Service) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("studio shutdown: %w", ctx.Err())
	}
}

func (s *Service) appendAsync(ctx context.Context, rec domain.NewTransformation) {
	// Keep request-scoped values (request id) but not the caller's deadline.
	bg := context.WithoutCancel(ctx)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.append(bg, rec)
		return
	}
	s.pending.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.pending.Done()
		s.append(bg, rec)
	}()
}

func (s *Service) append(ctx context.Context, rec domain.NewTransformation) {
	ctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	s.obs.AppendStarted()
	var err error
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
			s.log.ErrorContext(ctx, "background append panicked", slog.Any("panic", r))
		}
		s.obs.AppendFinished(err)
	}()

	// The community service logs its own failures.
	_, err = s.records.Append(ctx, rec)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, domain.ErrValidation):
		return metrics.OutcomeInvalid
	case errors.Is(err, domain.ErrGenerationUnavailable):
		return metrics.OutcomeUnavailable
	default:
		return metrics.OutcomeError
	}
}

type nopObserver struct{}

func (nopObserver) ObserveTransform(string, string, time.Duration) {}
func (nopObserver) AppendStarted()                                 {}
func (nopObserver) AppendFinished(error)                           {}
func (nopObserver) ObserveFeedRead(int)                            {}
