package driving

import "github.com/riklabs/rigveda-cli/internal/core/domain"

// SettingsService manages the user's reading preferences.
type SettingsService interface {
	// Get retrieves current settings, merged over defaults. A missing
	// or unreadable persisted record silently yields the defaults.
	Get() (domain.ReadingSettings, error)

	// Save persists settings. Invalid fields are normalised to their
	// defaults before writing.
	Save(settings domain.ReadingSettings) error

	// Set updates a single preference by its key (e.g. "script",
	// "translation", "font_size"). Unknown keys return an error.
	Set(key, value string) error

	// GetDefaults returns the default settings.
	GetDefaults() domain.ReadingSettings
}
