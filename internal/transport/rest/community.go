package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/toneshift-backend/internal/domain"
)

type feedService interface {
	ListRecent(ctx context.Context, limit int) []domain.Transformation
}

// CommunityHandler serves the public feed of recent transformations.
type CommunityHandler struct {
	svc feedService
}

// NewCommunityHandler creates a CommunityHandler.
func NewCommunityHandler(svc feedService) *CommunityHandler {
	return &CommunityHandler{svc: svc}
}

// Generation is one feed item.
type Generation struct {
	ID              string    `json:"id"`
	OriginalText    string    `json:"originalText"`
	TransformedText string    `json:"transformedText"`
	Tone            string    `json:"tone"`
	ToneLabel       string    `json:"toneLabel"`
	ToneColor       string    `json:"toneColor"`
	CreatedAt       time.Time `json:"createdAt"`
}

// GenerationsResponse is the GET /api/generations body.
type GenerationsResponse struct {
	Generations []Generation `json:"generations"`
}

// List handles GET /api/generations?limit=N. It always answers 200; a
// missing or malformed limit means the full feed.
func (h *CommunityHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	recs := h.svc.ListRecent(r.Context(), limit)

	out := make([]Generation, 0, len(recs))
	for _, rec := range recs {
		out = append(out, Generation{
			ID:              rec.ID,
			OriginalText:    rec.OriginalText,
			TransformedText: rec.TransformedText,
			Tone:            rec.Tone.Slug(),
			ToneLabel:       rec.Tone.Label(),
			ToneColor:       rec.Tone.Color(),
			CreatedAt:       rec.CreatedAt,
		})
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, GenerationsResponse{Generations: out})
}
