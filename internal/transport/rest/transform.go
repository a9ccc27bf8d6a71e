package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/toneshift-backend/internal/domain"
	"github.com/heartmarshall/toneshift-backend/internal/service/transform"
)

type transformService interface {
	Transform(ctx context.Context, text string, tone domain.Tone) (*transform.Result, error)
}

// TransformHandler serves text transformation requests.
type TransformHandler struct {
	svc     transformService
	log     *slog.Logger
	maxBody int64
}

// NewTransformHandler creates a TransformHandler. Request bodies larger than
// maxBody bytes are rejected with 413.
func NewTransformHandler(svc transformService, log *slog.Logger, maxBody int64) *TransformHandler {
	return &TransformHandler{
		svc:     svc,
		log:     log.With("handler", "transform"),
		maxBody: maxBody,
	}
}

// TransformRequest is the POST /api/transform body.
type TransformRequest struct {
	Text string `json:"text"`
	Tone string `json:"tone"`
}

// TransformResponse is returned on success.
type TransformResponse struct {
	TransformedText string `json:"transformedText"`
	Tone            string `json:"tone"`
}

// Post handles POST /api/transform. An empty tone selects the default; an
// unknown tone is a validation error.
func (h *TransformHandler) Post(w http.ResponseWriter, r *http.Request) {
	if h.maxBody > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	}

	var req TransformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "request body too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	tone := domain.DefaultTone
	if strings.TrimSpace(req.Tone) != "" {
		parsed, err := domain.ParseTone(req.Tone)
		if err != nil {
			writeError(w, r, h.log, domain.NewValidationError("tone", "unknown tone "+strings.TrimSpace(req.Tone)))
			return
		}
		tone = parsed
	}

	h.respond(w, r, req.Text, tone)
}

// DeepLink handles GET /api/transform?text=&tone=. A missing or unknown tone
// falls back to the default so shared links never fail on the tone alone.
func (h *TransformHandler) DeepLink(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	tone, err := domain.ParseTone(q.Get("tone"))
	if err != nil {
		tone = domain.DefaultTone
	}

	h.respond(w, r, q.Get("text"), tone)
}

func (h *TransformHandler) respond(w http.ResponseWriter, r *http.Request, text string, tone domain.Tone) {
	res, err := h.svc.Transform(r.Context(), text, tone)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, TransformResponse{
		TransformedText: res.TransformedText,
		Tone:            res.Tone.Slug(),
	})
}
