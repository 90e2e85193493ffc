package driven

import (
	"context"

	"github.com/custodia-labs/notesync/internal/core/domain"
)

// Destination exports note content to one external place.
// Each destination (Markdown file, Apple Notes) implements this interface.
type Destination interface {
	// Target returns the sync target this destination serves.
	Target() domain.SyncTarget

	// Export writes content using the destination's settings in cfg.
	// content is the raw editor HTML; the destination sanitises it.
	// Failures are returned as *domain.SyncError.
	Export(ctx context.Context, content string, cfg domain.SyncConfiguration) error
}

// NotesBridge is a scripted destination that also exposes read-only probes
// usable before a write is attempted.
type NotesBridge interface {
	Destination

	// CheckAvailability verifies the automation bridge can reach the application.
	CheckAvailability(ctx context.Context) error

	// ListCollections returns the folder names of the default account.
	ListCollections(ctx context.Context) ([]string, error)
}
