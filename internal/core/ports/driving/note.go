package driving

import (
	"context"

	"github.com/custodia-labs/notesync/internal/core/domain"
)

// NoteSyncService is the caller-facing surface used by the CLI, MCP server
// and watcher. Each call reads the note and the saved configuration once.
type NoteSyncService interface {
	// SyncNow exports the note and fails fast on the first destination error.
	SyncNow(ctx context.Context) error

	// SyncOutcomes exports the note and reports every destination's result.
	SyncOutcomes(ctx context.Context) ([]domain.SyncOutcome, error)

	// TestSync runs the first enabled destination and reports the result.
	TestSync(ctx context.Context) (domain.SyncTestResult, error)

	// ListCollections lists Apple Notes folders. Independent of content.
	ListCollections(ctx context.Context) ([]string, error)

	// CheckAvailability probes the Apple Notes automation bridge.
	CheckAvailability(ctx context.Context) error

	// Note returns the current note HTML.
	Note(ctx context.Context) (string, error)

	// SetNote replaces the note HTML. Blank content is rejected.
	SetNote(ctx context.Context, content string) error

	// NotePath returns the file backing the note.
	NotePath() string
}
