package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/greenevent/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestConfigInit_Global(t *testing.T) {
	home := setupCLITest(t)
	t.Chdir(t.TempDir())

	out, _, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")

	cfg := config.Default()
	require.NoError(t, cfg.Load(filepath.Join(home, "config.yaml")))
	assert.Equal(t, config.Default(), cfg)

	_, _, err = execute(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, _, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigInit_Project(t *testing.T) {
	setupCLITest(t)
	project := t.TempDir()

	out, _, err := execute(t, "--project-dir", project, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized at")
	assert.Contains(t, out, "Created .gitignore")

	dir := filepath.Join(project, config.ProjectDirName)
	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, config.GitignoreContent(), string(data))

	// --force rewrites the config but keeps an edited .gitignore.
	writeFile(t, filepath.Join(dir, ".gitignore"), "# mine\n")
	out, _, err = execute(t, "--project-dir", project, "config", "init", "--force")
	require.NoError(t, err)
	assert.NotContains(t, out, "Created .gitignore")
	data, err = os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, "# mine\n", string(data))
}

func TestConfigGet(t *testing.T) {
	setupCLITest(t)
	t.Setenv(config.EnvRegion, "uk")

	out, _, err := execute(t, "config", "get", "engine.region")
	require.NoError(t, err)
	assert.Equal(t, "uk\n", out)

	out, _, err = execute(t, "config", "get")
	require.NoError(t, err)
	assert.Contains(t, out, "output.default_format")
	assert.Contains(t, out, "server.addr")

	_, _, err = execute(t, "config", "get", "output.colour")
	require.ErrorIs(t, err, config.ErrUnknownKey)
}

func TestConfigValidate(t *testing.T) {
	home := setupCLITest(t)

	out, _, err := execute(t, "config", "validate", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "Distribution policy: warn")

	t.Setenv(config.EnvConcurrency, "0")
	_, _, err = execute(t, "config", "validate")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	t.Setenv(config.EnvConcurrency, "")
	writeFile(t, filepath.Join(home, "config.yaml"), "output: [not, a, map\n")
	_, _, err = execute(t, "config", "validate")
	require.Error(t, err)
}
