package driven

import "github.com/docsage-labs/docsage-cli/internal/core/domain"

// SettingsStore persists the application configuration.
type SettingsStore interface {
	// Load reads the stored configuration, filling defaults for any
	// missing fields. A missing file yields pure defaults, not an
	// error.
	Load() (*domain.Settings, error)

	// Save persists the configuration.
	Save(settings *domain.Settings) error

	// Path returns the configuration file path.
	Path() string
}
