package driving

import (
	"context"

	"github.com/custodia-labs/notesync/internal/core/domain"
)

// SyncOrchestrator exports note content to every enabled destination.
// It is a pure function of (content, configuration): nothing is read from
// shared state.
type SyncOrchestrator interface {
	// SyncAll runs every enabled destination and returns the first failure
	// in destination order. It is a no-op when nothing is enabled.
	SyncAll(ctx context.Context, content string, cfg domain.SyncConfiguration) error

	// SyncOutcomes runs every enabled destination and records each result.
	// A failing destination never prevents the next one from running.
	SyncOutcomes(ctx context.Context, content string, cfg domain.SyncConfiguration) []domain.SyncOutcome

	// TestSync reports the outcome of the first enabled destination.
	TestSync(ctx context.Context, content string, cfg domain.SyncConfiguration) domain.SyncTestResult
}
