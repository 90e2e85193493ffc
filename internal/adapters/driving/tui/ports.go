// Package tui provides the interactive sync progress view for notesync.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/notesync/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Sync exports the note to every enabled destination.
	Sync driving.NoteSyncService

	// Settings reads the saved sync configuration.
	Settings driving.SyncSettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Sync == nil {
		return ErrMissingSyncService
	}
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	return nil
}
