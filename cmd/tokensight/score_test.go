package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokensight/tokensight/internal/model"
)

func TestParsePlan(t *testing.T) {
	p, err := parsePlan("free")
	require.NoError(t, err)
	assert.Equal(t, model.PlanFree, p)

	p, err = parsePlan("premium")
	require.NoError(t, err)
	assert.Equal(t, model.PlanPremium, p)
}

func TestParsePlan_RejectsUnknown(t *testing.T) {
	for _, bad := range []string{"", "banana", "Free", "PREMIUM"} {
		_, err := parsePlan(bad)
		assert.Error(t, err, bad)
	}
}
