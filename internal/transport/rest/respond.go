package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/toneshift-backend/internal/domain"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeError maps a service error to a status code and a message safe to
// show to end users.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		msg := "invalid request"
		if len(ve.Errors) > 0 {
			msg = ve.Errors[0].Message
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg, Fields: ve.Errors})
	case errors.Is(err, domain.ErrGenerationUnavailable):
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: domain.MsgGenerationUnavailable})
	default:
		log.ErrorContext(r.Context(), "unhandled error",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
