package driven

import "time"

// ConfigStore provides access to application configuration.
// Keys are dot-separated ("sync.markdown.path"); implementations decide how
// they are persisted and convert stored values to the requested type.
// Typed getters return the zero value when a key is missing or has another type.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	GetInt(key string) int

	// GetBool retrieves a boolean configuration value.
	GetBool(key string) bool

	// GetDuration retrieves a duration. Numbers are seconds; strings use
	// time.ParseDuration syntax ("90s", "2m").
	GetDuration(key string) time.Duration

	// Set stores a configuration value and persists it immediately.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage, replacing what is in memory.
	Load() error

	// Path returns where the configuration is stored.
	Path() string
}
