package middleware

import (
	"net/http"

	"github.com/fulfilmenthub/notify-adapter/internal/ratelimiter"
)

// RateLimit rejects requests with 429 once the limiter is exhausted.
// The webhook caller owns retry policy, so shedding load here is safe.
func RateLimit(limiter *ratelimiter.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"message":"Too many requests"}` + "\n"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
