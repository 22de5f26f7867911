// ABOUTME: Rate limiting middleware using a token bucket
// ABOUTME: Rejects requests over the configured rate with 429 responses

package middleware

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimit creates a middleware that enforces the given request rate
// across all clients.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"error":"Too many requests"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
