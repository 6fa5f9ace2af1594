package social

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokensight/tokensight/internal/model"
)

type fakeService struct {
	sig *model.AdoptionSignal
	err error
}

func (f *fakeService) AdoptionSignal(ctx context.Context, symbol, handle string) (*model.AdoptionSignal, error) {
	return f.sig, f.err
}

func TestFetch_Success(t *testing.T) {
	svc := &fakeService{sig: &model.AdoptionSignal{Score: 42, Source: "social-primary"}}

	sig, status := Fetch(context.Background(), svc, "WIF", "@wif")

	require.Equal(t, StatusApplied, status)
	assert.Equal(t, 42.0, sig.Score)
}

func TestFetch_ErrorDegrades(t *testing.T) {
	svc := &fakeService{err: errors.New("unreachable")}

	sig, status := Fetch(context.Background(), svc, "WIF", "")

	assert.Equal(t, StatusDegraded, status)
	assert.Nil(t, sig)
}

func TestFetch_NilServiceOrSymbol(t *testing.T) {
	_, status := Fetch(context.Background(), nil, "WIF", "")
	assert.Equal(t, StatusAbsent, status)

	svc := &fakeService{sig: &model.AdoptionSignal{Score: 10}}
	_, status = Fetch(context.Background(), svc, "", "@handle")
	assert.Equal(t, StatusAbsent, status)
}

func TestFetch_NoSignalIsAbsentNotDegraded(t *testing.T) {
	svc := &fakeService{}

	sig, status := Fetch(context.Background(), svc, "WIF", "")

	assert.Equal(t, StatusAbsent, status)
	assert.Nil(t, sig)
}

func TestFetch_ScoreClamped(t *testing.T) {
	svc := &fakeService{sig: &model.AdoptionSignal{Score: 140}}
	sig, status := Fetch(context.Background(), svc, "X", "")
	require.Equal(t, StatusApplied, status)
	assert.Equal(t, 100.0, sig.Score)

	svc.sig = &model.AdoptionSignal{Score: -5}
	sig, status = Fetch(context.Background(), svc, "X", "")
	require.Equal(t, StatusApplied, status)
	assert.Equal(t, 0.0, sig.Score)
}
