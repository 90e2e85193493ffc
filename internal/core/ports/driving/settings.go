package driving

import "github.com/custodia-labs/notesync/internal/core/domain"

// SyncSettingsService manages the saved sync configuration.
type SyncSettingsService interface {
	// Get returns the saved configuration, with defaults for unset keys.
	Get() (domain.SyncConfiguration, error)

	// Save validates and persists the configuration.
	Save(cfg domain.SyncConfiguration) error

	// Validate checks the saved configuration.
	Validate() error
}
