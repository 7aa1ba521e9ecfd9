package ratelimiter

import "golang.org/x/time/rate"

// Limiter caps the rate of inbound fulfilment requests with a single
// token bucket. Burst is set equal to the rate so no extra capacity
// accumulates beyond the configured per-second maximum.
type Limiter struct {
	limiter *rate.Limiter
}

// New creates a Limiter allowing ratePerSec requests per second.
func New(ratePerSec int) *Limiter {
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(ratePerSec), ratePerSec),
	}
}

// Allow reports whether another request may proceed now. Callers that
// receive false should shed the request rather than queue it; the
// webhook sender owns retries.
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}
