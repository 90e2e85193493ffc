package driven

import "context"

// NoteStore provides access to the single editable note.
type NoteStore interface {
	// Read returns the current note HTML.
	// A note that has never been saved yields the default welcome note.
	Read(ctx context.Context) (string, error)

	// Write replaces the note HTML.
	Write(ctx context.Context, content string) error

	// Path returns the file backing the note.
	Path() string
}
