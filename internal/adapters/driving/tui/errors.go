package tui

import "errors"

// ErrMissingSyncService is returned when the note sync service is not provided.
var ErrMissingSyncService = errors.New("tui: note sync service is required")

// ErrMissingSettingsService is returned when the settings service is not provided.
var ErrMissingSettingsService = errors.New("tui: sync settings service is required")
