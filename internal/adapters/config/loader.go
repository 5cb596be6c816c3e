// Package config provides the settings loader for xpersist.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/xpersist/internal/core/domain"
	"go.trai.ch/xpersist/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// EnvCacheDir overrides the configured cache directory when set.
const EnvCacheDir = "XPERSIST_CACHE_DIR"

var _ ports.SettingsLoader = (*Loader)(nil)

// Loader implements ports.SettingsLoader using an optional YAML file.
type Loader struct {
	// Path is the location of the configuration file. A missing file is not
	// an error; defaults apply.
	Path string
}

// NewLoader creates a loader reading the user-level configuration file.
func NewLoader() *Loader {
	dir, err := os.UserConfigDir()
	if err != nil {
		// Fall back to the working directory; Load tolerates a missing file.
		dir = "."
	}
	return &Loader{Path: filepath.Join(dir, "xpersist", "config.yaml")}
}

// settingsFile represents the structure of the config.yaml file.
type settingsFile struct {
	CacheDir string `yaml:"cache_dir"`
	Format   string `yaml:"format"`
}

// Load returns the process-wide settings. Precedence: environment override,
// then the configuration file, then built-in defaults.
func (l *Loader) Load() (*domain.Settings, error) {
	settings := &domain.Settings{
		CacheDir: defaultCacheDir(),
		Format:   domain.FormatJSON,
	}

	data, err := os.ReadFile(l.Path) //nolint:gosec // Path is a fixed user config location
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", l.Path)
	}

	if err == nil && len(data) > 0 {
		var file settingsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", l.Path)
		}
		if file.CacheDir != "" {
			settings.CacheDir = file.CacheDir
		}
		if file.Format != "" {
			settings.Format = domain.Format(file.Format)
		}
	}

	if dir := os.Getenv(EnvCacheDir); dir != "" {
		settings.CacheDir = dir
	}

	if !domain.KnownFormat(settings.Format) {
		return nil, zerr.With(domain.ErrUnknownFormat, "format", string(settings.Format))
	}

	return settings, nil
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(".", "xpersist-cache")
	}
	return filepath.Join(dir, "xpersist")
}
