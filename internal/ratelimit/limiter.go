// Package ratelimit provides per-service token-bucket rate limiting
// for outbound calls.
package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter rate-limits outbound requests per named service.
type Limiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	rps      float64
	burst    int
}

// NewLimiter creates a limiter with the given per-service RPS and burst.
func NewLimiter(rps float64, burst int) *Limiter {
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		burst:    burst,
	}
}

func (l *Limiter) get(service string) *rate.Limiter {
	l.mu.RLock()
	lim, ok := l.limiters[service]
	l.mu.RUnlock()
	if ok {
		return lim
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if lim, ok := l.limiters[service]; ok {
		return lim
	}
	lim = rate.NewLimiter(rate.Limit(l.rps), l.burst)
	l.limiters[service] = lim
	return lim
}

// Allow reports whether a request for the service may proceed now.
func (l *Limiter) Allow(service string) bool {
	return l.get(service).Allow()
}

// Wait blocks until a request for the service is allowed or the
// context is cancelled.
func (l *Limiter) Wait(ctx context.Context, service string) error {
	return l.get(service).Wait(ctx)
}
