package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/greenevent/internal/config"
)

func TestResolveProjectDir_FlagOverridesEnv(t *testing.T) {
	isolate(t)
	flagDir := t.TempDir()
	t.Setenv(config.EnvProjectDir, t.TempDir())

	got := config.ResolveProjectDir(context.Background(), flagDir, "/does/not/matter")
	assert.Equal(t, filepath.Join(flagDir, config.ProjectDirName), got)
}

func TestResolveProjectDir_EnvWithSuffix(t *testing.T) {
	isolate(t)
	envDir := filepath.Join(t.TempDir(), config.ProjectDirName)
	t.Setenv(config.EnvProjectDir, envDir)

	assert.Equal(t, envDir, config.ResolveProjectDir(context.Background(), "", ""))
}

func TestResolveProjectDir_WalkUp(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, config.ProjectDirName), 0o750))
	deep := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(deep, 0o750))

	got := config.ResolveProjectDir(context.Background(), "", deep)
	assert.Equal(t, filepath.Join(root, config.ProjectDirName), got)
}

func TestResolveProjectDir_NoProject(t *testing.T) {
	isolate(t)
	assert.Empty(t, config.ResolveProjectDir(context.Background(), "", t.TempDir()))
	assert.Empty(t, config.ResolveProjectDir(context.Background(), "", ""))
}

func TestSetResolvedProjectDir_RoundTrip(t *testing.T) {
	config.SetResolvedProjectDir("/tmp/p/.greenevent")
	t.Cleanup(func() { config.SetResolvedProjectDir("") })
	assert.Equal(t, "/tmp/p/.greenevent", config.GetResolvedProjectDir())
}

func TestNewWithProjectDir(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("output:\n  precision: 4\n"), 0o600))

	projectDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "config.yaml"),
		[]byte("engine:\n  region: ca\n"), 0o600))
	t.Setenv(config.EnvRegion, "au")

	cfg := config.NewWithProjectDir(context.Background(), projectDir)
	assert.Equal(t, 4, cfg.Output.Precision, "global file still applies")
	assert.Equal(t, "au", cfg.Engine.Region, "environment wins over project file")

	t.Setenv(config.EnvRegion, "")
	cfg = config.NewWithProjectDir(context.Background(), projectDir)
	assert.Equal(t, "ca", cfg.Engine.Region)
}

func TestNewWithProjectDir_FallsBack(t *testing.T) {
	isolate(t)
	assert.Equal(t, config.New(), config.NewWithProjectDir(context.Background(), ""))
	assert.Equal(t, config.New(), config.NewWithProjectDir(context.Background(), t.TempDir()))

	corrupt := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(corrupt, "config.yaml"), []byte("engine: [\n"), 0o600))
	assert.Equal(t, config.New(), config.NewWithProjectDir(context.Background(), corrupt))
}
