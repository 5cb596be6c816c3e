package ports

import "go.trai.ch/xpersist/internal/core/domain"

// SettingsLoader loads the process-wide cache settings.
type SettingsLoader interface {
	// Load returns the settings, falling back to defaults when no
	// configuration file is present.
	Load() (*domain.Settings, error)
}
