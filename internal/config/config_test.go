package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 55.0, cfg.Calibration.MemeFloor)
	assert.Equal(t, 50_000_000_000.0, cfg.Calibration.LargeCapUSD)
	assert.Equal(t, 75, cfg.Calibration.CriticalAt)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("/nonexistent/tokensight.yaml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesSelectedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	content := `
calibration:
  meme_floor: 60
services:
  classification:
    base_url: "https://classify.internal"
    timeout_ms: 2500
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 60.0, cfg.Calibration.MemeFloor)
	assert.Equal(t, "https://classify.internal", cfg.Services.Classification.BaseURL)
	assert.Equal(t, 2500*time.Millisecond, cfg.Services.Classification.Timeout())

	// Untouched keys keep their defaults.
	assert.Equal(t, 75, cfg.Calibration.CriticalAt)
	assert.Equal(t, Default().Services.Social.BaseURL, cfg.Services.Social.BaseURL)
}

func TestLoad_RejectsBrokenThresholds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	content := `
calibration:
  medium_at: 80
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("calibration: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDurationAccessors_Defaults(t *testing.T) {
	var svc ServiceConfig
	assert.Equal(t, 5*time.Second, svc.Timeout())

	var cache CacheConfig
	assert.Equal(t, 6*time.Hour, cache.TTL())
}
