package applenotes

import (
	"context"

	"github.com/custodia-labs/notesync/internal/core/domain"
	"github.com/custodia-labs/notesync/internal/core/ports/driven"
	"github.com/custodia-labs/notesync/internal/logger"
)

// Ensure Unsupported implements the interface.
var _ driven.NotesBridge = (*Unsupported)(nil)

const unsupportedDetail = "Apple Notes sync is only available on macOS"

// Unsupported stands in for Backend on platforms without Apple Notes.
// Every operation fails immediately without running a process.
type Unsupported struct{}

// NewUnsupported creates the stub destination.
func NewUnsupported() *Unsupported {
	return &Unsupported{}
}

// Target returns the Apple Notes sync target.
func (u *Unsupported) Target() domain.SyncTarget {
	return domain.SyncTargetAppleNotes
}

// Export always fails with a platform error.
func (u *Unsupported) Export(_ context.Context, _ string, _ domain.SyncConfiguration) error {
	logger.Warn(unsupportedDetail)
	return domain.NewPlatformUnsupportedError(unsupportedDetail)
}

// CheckAvailability always fails with a platform error.
func (u *Unsupported) CheckAvailability(_ context.Context) error {
	return domain.NewPlatformUnsupportedError(unsupportedDetail)
}

// ListCollections always fails with a platform error.
func (u *Unsupported) ListCollections(_ context.Context) ([]string, error) {
	return nil, domain.NewPlatformUnsupportedError(unsupportedDetail)
}
