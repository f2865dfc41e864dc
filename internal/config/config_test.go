package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STATESTORE_ENV", "")
	t.Setenv("STATESTORE_LOG_LEVEL", "")
	t.Setenv("STATESTORE_CONFIG_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.Production())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STATESTORE_ENV", "Production")
	t.Setenv("STATESTORE_LOG_LEVEL", "debug")
	t.Setenv("STATESTORE_CONFIG_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Production())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "statestore.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("env: production\nlog_level: error\n"), 0o644))

	t.Setenv("STATESTORE_CONFIG_FILE", fn)
	t.Setenv("STATESTORE_ENV", "")
	t.Setenv("STATESTORE_LOG_LEVEL", "info")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Production(), "env from file")
	assert.Equal(t, "info", cfg.LogLevel, "environment wins over file")
	assert.Equal(t, fn, cfg.File)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist wrapped error, got %v", err)
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("env: [unterminated"), 0o644))

	_, err := LoadFile(fn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yaml unmarshal")
}
