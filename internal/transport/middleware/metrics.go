package middleware

import (
	"net/http"
	"time"
)

type httpObserver interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// Metrics returns middleware that reports each request to obs, labeled by
// the matched ServeMux pattern. It must sit between any middleware that
// replaces the *http.Request and the mux, so the pattern is visible here.
func Metrics(obs httpObserver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			obs.ObserveHTTP(r.Method, routeOf(r), sw.status, time.Since(start))
		})
	}
}
