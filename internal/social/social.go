// Package social fetches the optional adoption signal from the
// social-signal service. When a signal is available its derived score
// replaces the default on-chain adoption factor.
package social

import (
	"context"

	"github.com/tokensight/tokensight/internal/model"
)

// Service is the external social-signal collaborator. Implementations
// must be safe for concurrent use.
type Service interface {
	AdoptionSignal(ctx context.Context, symbol, handle string) (*model.AdoptionSignal, error)
}

// Status reports how a signal fetch concluded.
type Status int

const (
	// StatusApplied means a signal came back and its score is usable.
	StatusApplied Status = iota
	// StatusAbsent means no service is configured or no symbol was
	// given. Not a failure.
	StatusAbsent
	// StatusDegraded means the configured service call failed. An
	// exhausted endpoint chain counts as degraded.
	StatusDegraded
)

// Fetch wraps a service call with the engine's fail-soft contract:
// any non-Applied status leaves the default adoption scorer standing.
// No error escapes.
func Fetch(ctx context.Context, svc Service, symbol, handle string) (*model.AdoptionSignal, Status) {
	if svc == nil || symbol == "" {
		return nil, StatusAbsent
	}
	sig, err := svc.AdoptionSignal(ctx, symbol, handle)
	if err != nil {
		return nil, StatusDegraded
	}
	if sig == nil {
		return nil, StatusAbsent
	}
	if sig.Score < 0 {
		sig.Score = 0
	}
	if sig.Score > 100 {
		sig.Score = 100
	}
	return sig, StatusApplied
}
