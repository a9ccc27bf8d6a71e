package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/toneshift-backend/pkg/ctxutil"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-Id"

// maxRequestIDLen bounds a client-supplied ID; longer ones are replaced.
const maxRequestIDLen = 128

// RequestID returns middleware that puts a request ID into the context and
// the response header. A client-supplied ID is reused when it is short enough.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLen {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
		})
	}
}
