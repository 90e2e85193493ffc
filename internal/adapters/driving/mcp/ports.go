package mcp

import (
	"github.com/custodia-labs/notesync/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Sync exports the note and probes Apple Notes.
	Sync driving.NoteSyncService

	// Settings exposes the saved configuration. Optional.
	Settings driving.SyncSettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Sync == nil {
		return ErrMissingSyncService
	}
	return nil
}
