package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalPath(t *testing.T) {
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer func() {
		if origXDG != "" {
			_ = os.Setenv("XDG_CONFIG_HOME", origXDG)
		} else {
			_ = os.Unsetenv("XDG_CONFIG_HOME")
		}
	}()

	t.Run("with XDG_CONFIG_HOME set", func(t *testing.T) {
		_ = os.Setenv("XDG_CONFIG_HOME", "/custom/config")
		assert.Equal(t, "/custom/config/dayfocus/dayfocus.yml", GlobalPath())
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		_ = os.Unsetenv("XDG_CONFIG_HOME")
		got := GlobalPath()
		assert.True(t, filepath.IsAbs(got), "path should be absolute")
		assert.Equal(t, "dayfocus.yml", filepath.Base(got))
	})
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.User, "user has no default")
	assert.Equal(t, ".dayfocus", cfg.DataDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DAYFOCUS_USER", "107534123456789")
	t.Setenv("DAYFOCUS_DATA_DIR", "/tmp/focus-data")
	t.Setenv("DAYFOCUS_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "107534123456789", cfg.User)
	assert.Equal(t, "/tmp/focus-data", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadProjectConfig(t *testing.T) {
	dir := chdirTemp(t)

	content := "user: alice@example.com\nlog_level: warn\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dayfocus.yml"), []byte(content), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", cfg.User)
	assert.Equal(t, "warn", cfg.LogLevel)
	// Unset keys keep their defaults.
	assert.Equal(t, ".dayfocus", cfg.DataDir)
}

func TestLoadEnvBeatsProjectConfig(t *testing.T) {
	dir := chdirTemp(t)

	content := "user: from-file\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dayfocus.yml"), []byte(content), 0644))
	t.Setenv("DAYFOCUS_USER", "from-env")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.User)
}

func TestWriteGlobalRoundTrip(t *testing.T) {
	chdirTemp(t)

	cfg := &Config{User: "bob", DataDir: ".dayfocus", LogLevel: "error"}
	require.NoError(t, WriteGlobal(cfg))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "bob", loaded.User)
	assert.Equal(t, "error", loaded.LogLevel)
}

// chdirTemp moves the test into an empty directory, with XDG pointed at it
// so no real global config leaks in.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origWd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	return dir
}
