package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokensight/tokensight/internal/model"
)

type fakeService struct {
	result model.ClassificationResult
	err    error
	calls  int
}

func (f *fakeService) Classify(ctx context.Context, hint TokenHint) (model.ClassificationResult, error) {
	f.calls++
	if f.err != nil {
		return model.ClassificationResult{}, f.err
	}
	return f.result, nil
}

func TestResolve_ManualOverrideSkipsService(t *testing.T) {
	svc := &fakeService{result: model.ClassificationResult{IsMeme: false, Confidence: 80}}
	r := NewResolver(svc)

	meme := model.ClassMeme
	result, status := r.Resolve(context.Background(), &meme, TokenHint{Symbol: "DOGE"})

	require.Equal(t, StatusResolved, status)
	assert.True(t, result.IsMeme)
	assert.Equal(t, 100, result.Confidence)
	assert.Equal(t, "manual override", result.Reasoning)
	assert.True(t, result.IsManualOverride)
	assert.Zero(t, svc.calls, "manual override must not invoke the service")
}

func TestResolve_ManualUtility(t *testing.T) {
	r := NewResolver(nil)

	utility := model.ClassUtility
	result, status := r.Resolve(context.Background(), &utility, TokenHint{})

	require.Equal(t, StatusResolved, status)
	assert.False(t, result.IsMeme)
	assert.Equal(t, 100, result.Confidence)
}

func TestResolve_ServiceSuccess(t *testing.T) {
	svc := &fakeService{result: model.ClassificationResult{
		IsMeme: true, Confidence: 85, Reasoning: "dog-themed ticker",
	}}
	r := NewResolver(svc)

	result, status := r.Resolve(context.Background(), nil, TokenHint{Symbol: "WIF"})

	require.Equal(t, StatusResolved, status)
	assert.True(t, result.IsMeme)
	assert.Equal(t, 85, result.Confidence)
	assert.False(t, result.IsManualOverride)
}

func TestResolve_ServiceFailureDegrades(t *testing.T) {
	svc := &fakeService{err: errors.New("timeout")}
	r := NewResolver(svc)

	result, status := r.Resolve(context.Background(), nil, TokenHint{Symbol: "WIF"})

	assert.Equal(t, StatusDegraded, status, "failure must route to the legacy path")
	assert.False(t, result.IsMeme)
	assert.Equal(t, 0, result.Confidence)
}

func TestResolve_NoHintNoCall(t *testing.T) {
	svc := &fakeService{}
	r := NewResolver(svc)

	_, status := r.Resolve(context.Background(), nil, TokenHint{Description: "only a description"})

	assert.Equal(t, StatusSkipped, status)
	assert.Zero(t, svc.calls)
}

func TestResolve_NilService(t *testing.T) {
	r := NewResolver(nil)

	result, status := r.Resolve(context.Background(), nil, TokenHint{Symbol: "PEPE"})

	assert.Equal(t, StatusSkipped, status, "unconfigured service is not a degradation")
	assert.Equal(t, 0, result.Confidence)
}

func TestResolve_ConfidenceClamped(t *testing.T) {
	svc := &fakeService{result: model.ClassificationResult{IsMeme: true, Confidence: 250}}
	r := NewResolver(svc)

	result, status := r.Resolve(context.Background(), nil, TokenHint{Symbol: "X"})

	require.Equal(t, StatusResolved, status)
	assert.Equal(t, 100, result.Confidence)
}
