package services

import (
	"fmt"
	"time"

	"github.com/custodia-labs/notesync/internal/core/domain"
	"github.com/custodia-labs/notesync/internal/core/ports/driven"
	"github.com/custodia-labs/notesync/internal/core/ports/driving"
)

// Ensure SyncSettingsService implements the interface.
var _ driving.SyncSettingsService = (*SyncSettingsService)(nil)

// Config keys for sync settings storage.
const (
	keyMarkdownEnabled   = "sync.markdown.enabled"
	keyMarkdownPath      = "sync.markdown.path"
	keyMarkdownMetadata  = "sync.markdown.include_metadata"
	keyAppleNotesEnabled = "sync.apple_notes.enabled"
	keyAppleNotesTitle   = "sync.apple_notes.title"
	keyAppleNotesFolder  = "sync.apple_notes.folder"
	keyAppleNotesMeta    = "sync.apple_notes.include_metadata"
	keyAllowMultiple     = "sync.allow_multiple"
	keyScriptTimeout     = "apple_notes.script_timeout"
)

// DefaultScriptTimeout bounds one AppleScript run when no timeout is saved.
const DefaultScriptTimeout = 60 * time.Second

// SyncSettingsService maps the sync configuration onto the config store.
type SyncSettingsService struct {
	configStore driven.ConfigStore
}

// NewSyncSettingsService creates a new sync settings service.
func NewSyncSettingsService(configStore driven.ConfigStore) *SyncSettingsService {
	return &SyncSettingsService{configStore: configStore}
}

// Get returns the saved configuration. Unset keys take their defaults.
func (s *SyncSettingsService) Get() (domain.SyncConfiguration, error) {
	defaults := domain.DefaultSyncConfiguration()

	return domain.SyncConfiguration{
		Markdown: domain.MarkdownSettings{
			Enabled:         s.getBool(keyMarkdownEnabled, defaults.Markdown.Enabled),
			Path:            s.configStore.GetString(keyMarkdownPath),
			IncludeMetadata: s.getBool(keyMarkdownMetadata, defaults.Markdown.IncludeMetadata),
		},
		AppleNotes: domain.AppleNotesSettings{
			Enabled:         s.getBool(keyAppleNotesEnabled, defaults.AppleNotes.Enabled),
			Title:           s.getString(keyAppleNotesTitle, defaults.AppleNotes.Title),
			Folder:          s.getString(keyAppleNotesFolder, defaults.AppleNotes.Folder),
			IncludeMetadata: s.getBool(keyAppleNotesMeta, defaults.AppleNotes.IncludeMetadata),
		},
		AllowMultiple: s.getBool(keyAllowMultiple, defaults.AllowMultiple),
	}, nil
}

// Save validates cfg and persists it. Nothing is written if cfg is invalid.
func (s *SyncSettingsService) Save(cfg domain.SyncConfiguration) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyMarkdownEnabled, cfg.Markdown.Enabled},
		{keyMarkdownPath, cfg.Markdown.Path},
		{keyMarkdownMetadata, cfg.Markdown.IncludeMetadata},
		{keyAppleNotesEnabled, cfg.AppleNotes.Enabled},
		{keyAppleNotesTitle, cfg.AppleNotes.Title},
		{keyAppleNotesFolder, cfg.AppleNotes.Folder},
		{keyAppleNotesMeta, cfg.AppleNotes.IncludeMetadata},
		{keyAllowMultiple, cfg.AllowMultiple},
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

// Validate checks the saved configuration.
func (s *SyncSettingsService) Validate() error {
	cfg, err := s.Get()
	if err != nil {
		return err
	}
	return cfg.Validate()
}

// ScriptTimeout returns the per-script bound for Apple Notes. The stored
// value is seconds or a duration string; zero, negative or unparsable values
// fall back to DefaultScriptTimeout.
func (s *SyncSettingsService) ScriptTimeout() time.Duration {
	timeout := s.configStore.GetDuration(keyScriptTimeout)
	if timeout <= 0 {
		return DefaultScriptTimeout
	}
	return timeout
}

// Helper methods for reading config with defaults.

func (s *SyncSettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SyncSettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
