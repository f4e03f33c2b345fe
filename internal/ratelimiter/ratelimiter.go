// Package ratelimiter throttles requests a backend sends to a remote
// service, using the token bucket of golang.org/x/time/rate.
package ratelimiter

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimiter spaces out backend requests.
//
// Tokens are added at the sustained rate up to the burst capacity; each
// request consumes one. A nil *RateLimiter never throttles, so backends can
// hold one unconditionally.
//
// Thread safety:
// All methods are safe for concurrent use.
type RateLimiter struct {
	limiter *rate.Limiter
}

// New creates a RateLimiter allowing requestsPerSecond sustained with bursts
// of up to burst requests.
//
// Special cases:
//   - requestsPerSecond = 0: returns nil (unlimited)
//   - burst = 0: burst defaults to requestsPerSecond
//
// Example:
//
//	// At most 100 HEAD/LIST calls per second, 200 at once
//	limiter := New(100, 200)
func New(requestsPerSecond, burst uint) *RateLimiter {
	if requestsPerSecond == 0 {
		return nil
	}
	if burst == 0 {
		burst = requestsPerSecond
	}

	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), int(burst)),
	}
}

// allow consumes a token if one is available, without waiting.
func (r *RateLimiter) allow() bool {
	if r == nil {
		return true
	}
	return r.limiter.Allow()
}

// Wait blocks until a token is available or ctx is done. It fails early when
// ctx has a deadline the wait could not meet.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if r == nil {
		return ctx.Err()
	}
	return r.limiter.Wait(ctx)
}
