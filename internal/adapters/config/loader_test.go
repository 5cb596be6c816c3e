package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/xpersist/internal/adapters/config"
	"go.trai.ch/xpersist/internal/core/domain"
)

func TestLoad_Defaults(t *testing.T) {
	loader := &config.Loader{Path: filepath.Join(t.TempDir(), "absent.yaml")}

	settings, err := loader.Load()
	require.NoError(t, err)
	require.NotEmpty(t, settings.CacheDir)
	require.Equal(t, domain.FormatJSON, settings.Format)
}

func TestLoad_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	content := "cache_dir: /tmp/xp-cache\nformat: yaml\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	loader := &config.Loader{Path: path}
	settings, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/xp-cache", settings.CacheDir)
	require.Equal(t, domain.FormatYAML, settings.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv(config.EnvCacheDir, "/tmp/from-env")

	loader := &config.Loader{Path: filepath.Join(t.TempDir(), "absent.yaml")}
	settings, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/from-env", settings.CacheDir)
}

func TestLoad_UnknownFormat(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: nc\n"), 0o600))

	loader := &config.Loader{Path: path}
	_, err := loader.Load()
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrUnknownFormat))
}

func TestLoad_MalformedFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache_dir: [unclosed"), 0o600))

	loader := &config.Loader{Path: path}
	_, err := loader.Load()
	require.Error(t, err)
}
