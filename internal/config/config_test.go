package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/greenevent/internal/config"
	"github.com/rshade/greenevent/internal/engine"
)

// isolate points the config home at a fresh directory and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	for _, env := range []string{
		config.EnvProjectDir, config.EnvOutputFormat, config.EnvLogLevel, config.EnvLogFormat,
		config.EnvLogFile, config.EnvDistributionPolicy, config.EnvRegion, config.EnvConcurrency,
		config.EnvServerAddr,
	} {
		t.Setenv(env, "")
	}
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.FormatTable, cfg.Output.DefaultFormat)
	assert.Equal(t, "warn", cfg.Engine.DistributionPolicy)
	assert.InDelta(t, 1.0, cfg.Engine.DistributionTolerance, 1e-9)
	assert.InDelta(t, 0.5, cfg.Engine.InPersonShare, 1e-9)
	assert.Equal(t, engine.DistributionWarn, cfg.TravelOptions().Policy)
}

func TestValidate_ReportsEveryBadField(t *testing.T) {
	cfg := config.Default()
	cfg.Output.DefaultFormat = "xml"
	cfg.Engine.DistributionPolicy = "ignore"
	cfg.Engine.Region = "mars"
	cfg.Engine.Concurrency = 0
	cfg.Server.Addr = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))
	for _, key := range []string{
		"output.default_format", "engine.distribution_policy", "engine.region",
		"engine.concurrency", "server.addr",
	} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestNew_LoadsFileAndEnv(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("output:\n  precision: 3\nengine:\n  region: eu\n"), 0o600))
	t.Setenv(config.EnvLogLevel, "debug")

	cfg := config.New()
	assert.Equal(t, 3, cfg.Output.Precision)
	assert.Equal(t, config.FormatTable, cfg.Output.DefaultFormat, "absent keys keep defaults")
	assert.Equal(t, "eu", cfg.Engine.Region)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestNew_MalformedFileFallsBackToDefaults(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("output: [\n"), 0o600))

	cfg := config.New()
	assert.Equal(t, config.Default().Output, cfg.Output)
}

func TestApplyEnvOverrides_IgnoresBadNumbers(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvConcurrency, "many")
	cfg := config.Default()
	cfg.ApplyEnvOverrides()
	assert.Equal(t, 4, cfg.Engine.Concurrency)

	t.Setenv(config.EnvConcurrency, "8")
	cfg.ApplyEnvOverrides()
	assert.Equal(t, 8, cfg.Engine.Concurrency)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := config.Default()
	cfg.Server.Addr = "127.0.0.1:9000"
	require.NoError(t, cfg.Save(path))

	loaded := config.Default()
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, cfg, loaded)

	assert.Error(t, loaded.Load(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestGet(t *testing.T) {
	cfg := config.Default()

	v, err := cfg.Get("output.default_format")
	require.NoError(t, err)
	assert.Equal(t, "table", v)

	v, err = cfg.Get("engine.concurrency")
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	_, err = cfg.Get("engine.nothing")
	assert.ErrorIs(t, err, config.ErrUnknownKey)

	keys := cfg.Keys()
	assert.Contains(t, keys, "server.addr")
	assert.IsIncreasing(t, keys)
}
