// Package transformation implements the transformation store on Redis.
//
// Each record is a JSON string under "<prefix>transformation:<id>". A sorted
// set "<prefix>transformations" indexes ids by creation time in Unix
// microseconds; members are zero-padded ids so equal scores still order by id.
package transformation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/toneshift-backend/internal/domain"
)

const defaultPrefix = "toneshift:"

// Repo provides transformation persistence backed by Redis.
type Repo struct {
	client *backend.Client
	prefix string
}

// Option configures a Repo.
type Option func(*Repo)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(r *Repo) {
		r.prefix = prefix
	}
}

// NewFromClient creates a repository on an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Repo {
	r := &Repo{client: client, prefix: defaultPrefix}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type record struct {
	ID              int64  `json:"id"`
	OriginalText    string `json:"original_text"`
	TransformedText string `json:"transformed_text"`
	Tone            string `json:"tone"`
	CreatedAt       int64  `json:"created_at"`
}

func (r *Repo) seqKey() string   { return r.prefix + "transformations:seq" }
func (r *Repo) indexKey() string { return r.prefix + "transformations" }

func (r *Repo) recordKey(member string) string {
	return r.prefix + "transformation:" + member
}

func member(id int64) string {
	return fmt.Sprintf("%020d", id)
}

// Create allocates an id and stores the record together with its index entry.
func (r *Repo) Create(ctx context.Context, t domain.NewTransformation) (*domain.Transformation, error) {
	if !t.Tone.IsValid() {
		return nil, fmt.Errorf("insert transformation: tone %s: %w", t.Tone, domain.ErrValidation)
	}

	id, err := r.client.Incr(ctx, r.seqKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("insert transformation: next id: %w", err)
	}

	createdAt := t.CreatedAt.UTC().Truncate(time.Microsecond)
	data, err := json.Marshal(record{
		ID:              id,
		OriginalText:    t.OriginalText,
		TransformedText: t.TransformedText,
		Tone:            t.Tone.Slug(),
		CreatedAt:       createdAt.UnixMicro(),
	})
	if err != nil {
		return nil, fmt.Errorf("insert transformation: marshal: %w", err)
	}

	m := member(id)
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.recordKey(m), data, 0)
	pipe.ZAdd(ctx, r.indexKey(), backend.Z{Score: float64(createdAt.UnixMicro()), Member: m})
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("insert transformation: %w", err)
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
	out := make([]domain.Transformation, 0, limit)
	if limit <= 0 {
		return out, nil
	}

	members, err := r.client.ZRevRange(ctx, r.indexKey(), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("list transformations: %w", err)
	}
	if len(members) == 0 {
		return out, nil
	}

	keys := make([]string, len(members))
	for i, m := range members {
		keys[i] = r.recordKey(m)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("list transformations: %w", err)
	}

	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			// Index entry without a record; skip it.
			continue
		}
		rec, err := decode(s)
		if err != nil {
			return nil, fmt.Errorf("transformation %s: %w", members[i], err)
		}
		out = append(out, rec)
	}

	return out, nil
}

// Ping reports whether the server is reachable.
func (r *Repo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func decode(s string) (domain.Transformation, error) {
	var rec record
	if err := json.Unmarshal([]byte(s), &rec); err != nil {
		return domain.Transformation{}, fmt.Errorf("unmarshal: %w", err)
	}

	tone, err := domain.ParseTone(rec.Tone)
	if err != nil {
		return domain.Transformation{}, err
	}
	if rec.ID <= 0 {
		return domain.Transformation{}, errors.New("missing id")
	}

	return domain.Transformation{
		ID:              strconv.FormatInt(rec.ID, 10),
		OriginalText:    rec.OriginalText,
		TransformedText: rec.TransformedText,
		Tone:            tone,
		CreatedAt:       time.UnixMicro(rec.CreatedAt).UTC(),
	}, nil
}
