package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncError_Messages(t *testing.T) {
	tests := []struct {
		name     string
		err      *SyncError
		expected string
	}{
		{"not configured", NewNotConfiguredError("Markdown file path must be specified"),
			"Sync not configured: Markdown file path must be specified"},
		{"permission denied", NewPermissionDeniedError("Not authorised to send Apple events to Notes."),
			"Permission denied while running sync: Not authorised to send Apple events to Notes."},
		{"scripting failure", NewScriptingError("syntax error"), "AppleScript failed: syntax error"},
		{"platform unsupported", NewPlatformUnsupportedError("Apple Notes sync is only available on macOS"),
			"Sync not implemented: Apple Notes sync is only available on macOS"},
		{"io", NewIOError(errors.New("disk full")), "IO error: disk full"},
		{"unknown kind", &SyncError{Detail: "x"}, "sync failed: x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestSyncError_MatchesExactlyOneSentinel(t *testing.T) {
	sentinels := []error{ErrNotConfigured, ErrPermissionDenied, ErrScriptingFailure, ErrPlatformUnsupported, ErrIO}
	errs := map[error]*SyncError{
		ErrNotConfigured:       NewNotConfiguredError("a"),
		ErrPermissionDenied:    NewPermissionDeniedError("b"),
		ErrScriptingFailure:    NewScriptingError("c"),
		ErrPlatformUnsupported: NewPlatformUnsupportedError("d"),
		ErrIO:                  NewIOError(errors.New("e")),
	}

	for want, err := range errs {
		for _, sentinel := range sentinels {
			assert.Equal(t, sentinel == want, errors.Is(err, sentinel), "%v vs %v", err, sentinel)
		}
	}
}

func TestSyncError_UnwrapsCause(t *testing.T) {
	cause := errors.New("permission bits")
	err := fmt.Errorf("export: %w", NewIOError(cause))

	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindIO, SyncErrorKindOf(err))
}

func TestSyncError_DetailTakesPrecedence(t *testing.T) {
	err := &SyncError{Kind: KindNotConfigured, Detail: "title", Err: ErrInvalidInput}

	assert.Equal(t, "Sync not configured: title", err.Error())
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSyncErrorKindOf(t *testing.T) {
	assert.Equal(t, KindScriptingFailure, SyncErrorKindOf(NewScriptingError("x")))
	assert.Equal(t, SyncErrorKind(0), SyncErrorKindOf(errors.New("plain")))
	assert.Equal(t, SyncErrorKind(0), SyncErrorKindOf(nil))
}

func TestSyncErrorKind_String(t *testing.T) {
	assert.Equal(t, "not_configured", KindNotConfigured.String())
	assert.Equal(t, "permission_denied", KindPermissionDenied.String())
	assert.Equal(t, "scripting_failure", KindScriptingFailure.String())
	assert.Equal(t, "platform_unsupported", KindPlatformUnsupported.String())
	assert.Equal(t, "io_failure", KindIO.String())
	assert.Equal(t, "unknown", SyncErrorKind(99).String())
}
