// Package transformation implements the transformation store on SQLite.
package transformation

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/toneshift-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/toneshift-backend/internal/domain"
)

const table = "transformations"

var columns = []string{"id", "original_text", "transformed_text", "tone", "created_at"}

// Repo provides transformation persistence backed by SQLite.
// created_at is stored as Unix microseconds.
type Repo struct {
	db *sql.DB
}

// New creates a new transformation repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts one row and returns it with the id SQLite assigned.
func (r *Repo) Create(ctx context.Context, t domain.NewTransformation) (*domain.Transformation, error) {
	if !t.Tone.IsValid() {
		return nil, fmt.Errorf("insert transformation: tone %s: %w", t.Tone, domain.ErrValidation)
	}

	createdAt := t.CreatedAt.UTC().Truncate(time.Microsecond)

	res, err := sq.
		Insert(table).
		Columns("original_text", "transformed_text", "tone", "created_at").
		Values(t.OriginalText, t.TransformedText, t.Tone.Slug(), createdAt.UnixMicro()).
		RunWith(r.db).
		ExecContext(ctx)
	if err != nil {
		return nil, sqlite.MapError(err, "insert transformation")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert transformation: last insert id: %w", err)
	}

	return &domain.Transformation{
		ID:              strconv.FormatInt(id, 10),
		OriginalText:    t.OriginalText,
		TransformedText: t.TransformedText,
		Tone:            t.Tone,
		CreatedAt:       createdAt,
	}, nil
}

// ListRecent returns up to limit transformations, newest first.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domain.Transformation, error) {
	rows, err := sq.
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		RunWith(r.db).
		QueryContext(ctx)
	if err != nil {
		return nil, sqlite.MapError(err, "list transformations")
	}
	defer rows.Close()

	out := make([]domain.Transformation, 0, limit)
	for rows.Next() {
		var (
			id        int64
			tone      string
			createdAt int64
			rec       domain.Transformation
		)
		if err := rows.Scan(&id, &rec.OriginalText, &rec.TransformedText, &tone, &createdAt); err != nil {
			return nil, fmt.Errorf("scan transformation: %w", err)
		}
		if rec.Tone, err = domain.ParseTone(tone); err != nil {
			return nil, fmt.Errorf("transformation %d: %w", id, err)
		}
		rec.ID = strconv.FormatInt(id, 10)
		rec.CreatedAt = time.UnixMicro(createdAt).UTC()
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, sqlite.MapError(err, "list transformations")
	}

	return out, nil
}

// Ping reports whether the database file is usable.
func (r *Repo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
