// Package breaker wraps sony/gobreaker with the trip policy used for
// the optional external services: trip fast on consecutive failures,
// or on a sustained failure rate once enough traffic has been seen.
package breaker

import (
	"time"

	cb "github.com/sony/gobreaker"
)

type Breaker struct {
	cb *cb.CircuitBreaker
}

func New(name string) *Breaker {
	st := cb.Settings{Name: name}
	st.Interval = 60 * time.Second
	st.Timeout = 30 * time.Second
	st.ReadyToTrip = func(counts cb.Counts) bool {
		if counts.ConsecutiveFailures >= 3 {
			return true
		}
		total := counts.Requests
		if total < 20 {
			return false
		}
		return float64(counts.TotalFailures)/float64(total) > 0.25
	}
	return &Breaker{cb: cb.NewCircuitBreaker(st)}
}

// Execute runs fn through the breaker. While the circuit is open it
// fails immediately with gobreaker.ErrOpenState.
func (b *Breaker) Execute(fn func() (any, error)) (any, error) {
	return b.cb.Execute(fn)
}

// State returns the current circuit state name.
func (b *Breaker) State() string {
	return b.cb.State().String()
}
