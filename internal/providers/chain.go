// Package providers implements the ordered fallback chain used by the
// external-service clients: each provider is tried in sequence under
// its own timeout and error boundary, and the first non-empty result
// wins. Failures are logged and swallowed; a fully exhausted chain
// returns ErrExhausted.
package providers

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrExhausted means every provider in the chain failed or returned empty.
var ErrExhausted = errors.New("all providers exhausted")

// Provider is one attemptable source. Fetch returns (value, ok, err);
// ok=false with a nil error means "no data here", which moves the
// chain along without counting as a failure.
type Provider[T any] struct {
	Name    string
	Timeout time.Duration
	Fetch   func(ctx context.Context) (T, bool, error)
}

// Try runs the chain in order and returns the first non-empty result
// together with the name of the provider that produced it.
func Try[T any](ctx context.Context, chain []Provider[T]) (T, string, error) {
	var zero T
	for _, p := range chain {
		if ctx.Err() != nil {
			return zero, "", ctx.Err()
		}

		timeout := p.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		val, ok, err := p.Fetch(attemptCtx)
		cancel()

		if err != nil {
			log.Warn().Str("provider", p.Name).Err(err).Msg("provider failed, trying next")
			continue
		}
		if !ok {
			log.Debug().Str("provider", p.Name).Msg("provider returned no data")
			continue
		}
		return val, p.Name, nil
	}
	return zero, "", ErrExhausted
}
