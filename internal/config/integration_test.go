package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/greenevent/internal/config"
	"github.com/rshade/greenevent/internal/logging"
)

func TestGlobalConfig(t *testing.T) {
	isolate(t)

	cfg := config.GetGlobalConfig()
	require.NotNil(t, cfg)
	assert.Same(t, cfg, config.GetGlobalConfig())

	config.ResetGlobalConfigForTest()
	assert.NotSame(t, cfg, config.GetGlobalConfig())

	replacement := config.Default()
	replacement.Output.DefaultFormat = config.FormatJSON
	replacement.Output.Precision = 4
	config.SetGlobalConfig(replacement)
	assert.Equal(t, config.FormatJSON, config.GetDefaultOutputFormat())
	assert.Equal(t, 4, config.GetOutputPrecision())
}

func TestGetConfigDir(t *testing.T) {
	home := isolate(t)
	dir, err := config.GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, home, dir)

	path, err := config.ConfigFilePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "config.yaml"), path)
}

func TestEnsureConfigDir(t *testing.T) {
	isolate(t)
	nested := filepath.Join(t.TempDir(), "a", "b")
	t.Setenv(config.EnvHome, nested)

	require.NoError(t, config.EnsureConfigDir())
	assert.DirExists(t, nested)
}

func TestEnsureLogDir(t *testing.T) {
	isolate(t)
	logFile := filepath.Join(t.TempDir(), "logs", "greenevent.log")
	t.Setenv(config.EnvLogFile, logFile)

	require.NoError(t, config.EnsureLogDir())
	_, err := os.Stat(filepath.Dir(logFile))
	assert.NoError(t, err)
}

func TestToLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "debug", Format: "json"}
	got := lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputStderr, got.Output)
	assert.Equal(t, "debug", got.Level)

	lc.File = "/tmp/x.log"
	got = lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputFile, got.Output)
	assert.Equal(t, "/tmp/x.log", got.File)
}
