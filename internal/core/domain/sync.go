package domain

// SyncTarget identifies a destination the note can be exported to.
type SyncTarget string

// Available sync targets, in the order they are synchronised.
const (
	// SyncTargetMarkdown writes the note to a local Markdown file.
	SyncTargetMarkdown SyncTarget = "markdown"

	// SyncTargetAppleNotes upserts the note into Apple Notes via AppleScript.
	SyncTargetAppleNotes SyncTarget = "apple-notes"
)

// AllSyncTargets returns every target in synchronisation order.
func AllSyncTargets() []SyncTarget {
	return []SyncTarget{SyncTargetMarkdown, SyncTargetAppleNotes}
}

// IsValid returns true if the target is recognised.
func (t SyncTarget) IsValid() bool {
	switch t {
	case SyncTargetMarkdown, SyncTargetAppleNotes:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t SyncTarget) String() string {
	return string(t)
}

const unknownDescription = "Unknown"

// Label returns the human-readable name used in user-facing reports.
func (t SyncTarget) Label() string {
	switch t {
	case SyncTargetMarkdown:
		return "Markdown"
	case SyncTargetAppleNotes:
		return "Apple Notes"
	default:
		return unknownDescription
	}
}

// SyncOutcome is the result of one destination in one sync run.
type SyncOutcome struct {
	// Target is the destination that was attempted.
	Target SyncTarget

	// Err is nil on success, otherwise typically a *SyncError.
	Err error
}

// Succeeded returns true if the destination was written.
func (o SyncOutcome) Succeeded() bool {
	return o.Err == nil
}

// Messages reported by the test-sync action.
const (
	MessageNoTargetsEnabled = "No sync targets are enabled"
	MessageSyncSucceeded    = "Sync completed successfully"
)

// SyncTestResult is the structured response of a single-destination test sync.
type SyncTestResult struct {
	Success bool   `json:"success"`
	Target  string `json:"target,omitempty"`
	Message string `json:"message"`
}

// NewSyncTestResult summarises the first outcome of a run.
// A nil outcome means no destination was enabled.
func NewSyncTestResult(outcome *SyncOutcome) SyncTestResult {
	if outcome == nil {
		return SyncTestResult{Message: MessageNoTargetsEnabled}
	}
	if outcome.Err != nil {
		return SyncTestResult{
			Target:  outcome.Target.Label(),
			Message: outcome.Err.Error(),
		}
	}
	return SyncTestResult{
		Success: true,
		Target:  outcome.Target.Label(),
		Message: MessageSyncSucceeded,
	}
}
