// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"time"

	"github.com/custodia-labs/notesync/internal/core/domain"
)

// TargetsLoaded carries the destinations enabled in the saved configuration.
type TargetsLoaded struct {
	Targets []domain.SyncTarget
	Err     error
}

// SyncCompleted carries the result of one sync run.
// Err is set when the run could not start (unreadable note, invalid settings);
// per-destination failures are in Outcomes.
type SyncCompleted struct {
	Outcomes []domain.SyncOutcome
	Err      error
	Elapsed  time.Duration
}

// Failed returns true if the run did not start or any destination failed.
func (m SyncCompleted) Failed() bool {
	if m.Err != nil {
		return true
	}
	for _, o := range m.Outcomes {
		if !o.Succeeded() {
			return true
		}
	}
	return false
}
