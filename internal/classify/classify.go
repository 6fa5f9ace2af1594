// Package classify resolves the meme-vs-utility classification that
// drives weight-profile selection.
package classify

import (
	"context"

	"github.com/tokensight/tokensight/internal/model"
)

// TokenHint is the identity material sent to the classification service.
type TokenHint struct {
	Symbol      string `json:"symbol,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// Empty reports whether there is nothing to classify on.
func (h TokenHint) Empty() bool {
	return h.Symbol == "" && h.Name == ""
}

// Service is the external classification collaborator. Implementations
// must be safe for concurrent use across scoring calls.
type Service interface {
	Classify(ctx context.Context, hint TokenHint) (model.ClassificationResult, error)
}

// Status reports how a classification attempt concluded.
type Status int

const (
	// StatusResolved means the result is usable for profile weighting.
	StatusResolved Status = iota
	// StatusSkipped means no service is configured or there was nothing
	// to classify on. Not a failure.
	StatusSkipped
	// StatusDegraded means a configured service was called and failed.
	StatusDegraded
)

// Resolver turns metadata into a ClassificationResult, honoring manual
// overrides and failing soft when the service is unavailable.
type Resolver struct {
	svc Service
}

// NewResolver creates a resolver around a classification service.
// svc may be nil when no service is configured.
func NewResolver(svc Service) *Resolver {
	return &Resolver{svc: svc}
}

// Resolve returns the classification and how the attempt concluded.
// A manual override always wins and never touches the service. Any
// non-Resolved status yields (not meme, confidence 0): the caller
// continues on the legacy weighting path.
func (r *Resolver) Resolve(ctx context.Context, manual *model.TokenClass, hint TokenHint) (model.ClassificationResult, Status) {
	if manual != nil {
		return model.ClassificationResult{
			IsMeme:           *manual == model.ClassMeme,
			Confidence:       100,
			Reasoning:        "manual override",
			IsManualOverride: true,
		}, StatusResolved
	}

	if r.svc == nil || hint.Empty() {
		return unavailable(), StatusSkipped
	}

	result, err := r.svc.Classify(ctx, hint)
	if err != nil {
		return unavailable(), StatusDegraded
	}
	if result.Confidence < 0 {
		result.Confidence = 0
	}
	if result.Confidence > 100 {
		result.Confidence = 100
	}
	return result, StatusResolved
}

func unavailable() model.ClassificationResult {
	return model.ClassificationResult{
		IsMeme:     false,
		Confidence: 0,
		Reasoning:  "classification unavailable",
	}
}
