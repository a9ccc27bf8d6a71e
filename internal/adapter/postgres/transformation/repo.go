// Package transformation implements the transformation store using PostgreSQL.
// The table is append-only: there are no update or delete operations.
package transformation

import (
	"context"
	"fmt"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/toneshift-backend/internal/adapter/postgres"
	"github.com/heartmarshall/toneshift-backend/internal/domain"
)

const table = "transformations"

var (
	psql    = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	columns = []string{"id", "original_text", "transformed_text", "tone", "created_at"}
)

// Repo provides transformation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new transformation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts one row. The id is assigned by the database; created_at
// is the caller's timestamp.
func (r *Repo) Create(ctx context.Context, t domain.NewTransformation) (*domain.Transformation, error) {
	query, args, err := psql.
		Insert(table).
		Columns("original_text", "transformed_text", "tone", "created_at").
		Values(t.OriginalText, t.TransformedText, t.Tone.Slug(), t.CreatedAt.UTC()).
		Suffix("RETURNING id, original_text, transformed_text, tone, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert transformation: %w", err)
	}

	rec, err := scanTransformation(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "insert transformation")
	}
	return &rec, nil
}

// ListRecent returns up to limit transformations, newest first.
// Ties on created_at are broken by id so the order is stable.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domain.Transformation, error) {
	query, args, err := psql.
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list transformations: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "list transformations")
	}
	defer rows.Close()

	out := make([]domain.Transformation, 0, limit)
	for rows.Next() {
		rec, err := scanTransformation(rows)
		if err != nil {
			return nil, postgres.MapError(err, "scan transformation")
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "list transformations")
	}

	return out, nil
}

// Ping reports whether the database is reachable.
func (r *Repo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func scanTransformation(row pgx.Row) (domain.Transformation, error) {
	var (
		id        int64
		tone      string
		createdAt time.Time
		rec       domain.Transformation
	)
	if err := row.Scan(&id, &rec.OriginalText, &rec.TransformedText, &tone, &createdAt); err != nil {
		return domain.Transformation{}, err
	}

	parsed, err := domain.ParseTone(tone)
	if err != nil {
		return domain.Transformation{}, fmt.Errorf("transformation %d: %w", id, err)
	}

	rec.ID = strconv.FormatInt(id, 10)
	rec.Tone = parsed
	rec.CreatedAt = createdAt.UTC()
	return rec, nil
}
