// Package domain defines the core business entities for notesync.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - SyncConfiguration: Per-destination settings, passed by value per call
//   - SyncTarget: A destination the note can be exported to
//   - SyncOutcome: The per-destination result of one sync run
//   - SyncError: The closed taxonomy of sync failures
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, ozzo-validation for configuration rules
//   - Cannot Import: Any internal/ package
package domain
