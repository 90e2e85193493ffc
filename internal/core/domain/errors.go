package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Sync Errors.
	// Every *SyncError matches exactly one of these via errors.Is.

	// ErrNotConfigured indicates a destination setting is missing or invalid,
	// or the target collection does not exist.
	ErrNotConfigured = errors.New("sync not configured")

	// ErrPermissionDenied indicates the OS denied access to the automation bridge.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrScriptingFailure indicates the external application reported an
	// error that is not otherwise classified.
	ErrScriptingFailure = errors.New("scripting failure")

	// ErrPlatformUnsupported indicates the destination is unavailable on this OS.
	ErrPlatformUnsupported = errors.New("platform unsupported")

	// ErrIO indicates a process could not be spawned or a file write failed.
	ErrIO = errors.New("io failure")
)

// SyncErrorKind classifies a sync failure.
type SyncErrorKind int

// Sync error kinds. The set is closed.
const (
	KindNotConfigured SyncErrorKind = iota + 1
	KindPermissionDenied
	KindScriptingFailure
	KindPlatformUnsupported
	KindIO
)

// String returns the kind name used in logs.
func (k SyncErrorKind) String() string {
	switch k {
	case KindNotConfigured:
		return "not_configured"
	case KindPermissionDenied:
		return "permission_denied"
	case KindScriptingFailure:
		return "scripting_failure"
	case KindPlatformUnsupported:
		return "platform_unsupported"
	case KindIO:
		return "io_failure"
	default:
		return "unknown"
	}
}

func (k SyncErrorKind) sentinel() error {
	switch k {
	case KindNotConfigured:
		return ErrNotConfigured
	case KindPermissionDenied:
		return ErrPermissionDenied
	case KindScriptingFailure:
		return ErrScriptingFailure
	case KindPlatformUnsupported:
		return ErrPlatformUnsupported
	case KindIO:
		return ErrIO
	default:
		return nil
	}
}

// SyncError is the typed failure returned by destinations.
// Error() is a single line meant for direct display to the user.
type SyncError struct {
	Kind   SyncErrorKind
	Detail string
	Err    error
}

// Error implements the error interface.
func (e *SyncError) Error() string {
	detail := e.Detail
	if detail == "" && e.Err != nil {
		detail = e.Err.Error()
	}

	switch e.Kind {
	case KindNotConfigured:
		return "Sync not configured: " + detail
	case KindPermissionDenied:
		return "Permission denied while running sync: " + detail
	case KindScriptingFailure:
		return "AppleScript failed: " + detail
	case KindPlatformUnsupported:
		return "Sync not implemented: " + detail
	case KindIO:
		return "IO error: " + detail
	default:
		return fmt.Sprintf("sync failed: %s", detail)
	}
}

// Is reports whether target is the sentinel for this error's kind.
func (e *SyncError) Is(target error) bool {
	sentinel := e.Kind.sentinel()
	return sentinel != nil && target == sentinel
}

// Unwrap returns the underlying cause, if any.
func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewNotConfiguredError reports a missing or invalid destination setting.
func NewNotConfiguredError(detail string) *SyncError {
	return &SyncError{Kind: KindNotConfigured, Detail: detail}
}

// NewPermissionDeniedError reports a denied automation request.
func NewPermissionDeniedError(detail string) *SyncError {
	return &SyncError{Kind: KindPermissionDenied, Detail: detail}
}

// NewScriptingError reports an unclassified failure from the scripted application.
func NewScriptingError(detail string) *SyncError {
	return &SyncError{Kind: KindScriptingFailure, Detail: detail}
}

// NewPlatformUnsupportedError reports a destination that cannot run on this OS.
func NewPlatformUnsupportedError(detail string) *SyncError {
	return &SyncError{Kind: KindPlatformUnsupported, Detail: detail}
}

// NewIOError wraps a spawn or file system failure.
func NewIOError(err error) *SyncError {
	return &SyncError{Kind: KindIO, Err: err}
}

// SyncErrorKindOf returns the kind of err, or 0 if err is not a *SyncError.
func SyncErrorKindOf(err error) SyncErrorKind {
	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return syncErr.Kind
	}
	return 0
}
