package applenotes

import "github.com/custodia-labs/notesync/internal/core/ports/driven"

// SupportedOS is the only GOOS on which Apple Notes can be automated.
const SupportedOS = "darwin"

// New returns the Apple Notes destination for goos: the scripted Backend on
// macOS, Unsupported everywhere else.
func New(goos string, runner driven.ScriptRunner, opts ...Option) driven.NotesBridge {
	if goos == SupportedOS {
		return NewBackend(runner, opts...)
	}
	return NewUnsupported()
}
