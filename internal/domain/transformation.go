package domain

import "time"

// FeedLimit is the maximum number of transformations shown in the community feed.
const FeedLimit = 50

// Transformation is a persisted (original, transformed, tone) triple.
// Records are append-only: the store assigns ID and nothing updates or
// deletes them afterwards.
type Transformation struct {
	ID              string
	OriginalText    string
	TransformedText string
	Tone            Tone
	CreatedAt       time.Time
}

// NewTransformation is a transformation not yet written to a store.
type NewTransformation struct {
	OriginalText    string
	TransformedText string
	Tone            Tone
	CreatedAt       time.Time
}

// ClampFeedLimit maps a requested feed size onto 1..FeedLimit.
// Zero or negative values mean "the full feed".
func ClampFeedLimit(limit int) int {
	if limit <= 0 || limit > FeedLimit {
		return FeedLimit
	}
	return limit
}
