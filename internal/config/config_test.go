package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRuntimeConfigMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadRuntimeConfig(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultRuntimeConfig(), cfg)
}

func TestLoadRuntimeConfigRoundTrip(t *testing.T) {
	t.Parallel()

	hcl := `
server {
  address = "0.0.0.0"
  port = 9090
  log_level = "debug"
  artifacts_root = "/tmp/artifacts"
}
`
	path := filepath.Join(t.TempDir(), "runtime.hcl")
	require.NoError(t, os.WriteFile(path, []byte(hcl), 0o644))

	cfg, err := LoadRuntimeConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Address)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "/tmp/artifacts", cfg.Server.ArtifactsRoot)
	require.NoError(t, cfg.Validate())
}

func TestRuntimeConfigValidateRejectsBadPort(t *testing.T) {
	t.Parallel()

	cfg := DefaultRuntimeConfig()
	cfg.Server.Port = 70000
	assert.Error(t, cfg.Validate())
}

func TestLoadCalibrationConfigMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadCalibrationConfig(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultCalibrationConfig(), cfg)
}

func TestLoadCalibrationConfigRoundTrip(t *testing.T) {
	t.Parallel()

	hcl := `
run {
  mode = "challenge"
  seed_count = 500
  rollout_k = 8
  rollout_r = 64
}
`
	path := filepath.Join(t.TempDir(), "calibration.hcl")
	require.NoError(t, os.WriteFile(path, []byte(hcl), 0o644))

	cfg, err := LoadCalibrationConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "challenge", cfg.Run.Mode)
	assert.Equal(t, 500, cfg.Run.SeedCount)
	assert.Equal(t, 8, cfg.Run.RolloutK)
	assert.Equal(t, 64, cfg.Run.RolloutR)
}
