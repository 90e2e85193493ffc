package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/notesync/internal/core/domain"
	"github.com/custodia-labs/notesync/internal/core/ports/driven"
)

// Ensure NoteStore implements the interface.
var _ driven.NoteStore = (*NoteStore)(nil)

// NoteStore reads and writes the note HTML at a fixed path.
type NoteStore struct {
	path string
}

// NewNoteStore creates a note store backed by path.
func NewNoteStore(path string) *NoteStore {
	return &NoteStore{path: path}
}

// Read returns the note HTML, or domain.DefaultNote if the file does not exist.
func (s *NoteStore) Read(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DefaultNote, nil
		}
		return "", fmt.Errorf("read note %s: %w", s.path, err)
	}
	return string(data), nil
}

// Write replaces the note file. The file is written to a temporary sibling
// and renamed so a watcher never observes a partial note.
func (s *NoteStore) Write(_ context.Context, content string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create note directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".note-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp note: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("write note: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write note: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replace note: %w", err)
	}
	return nil
}

// Path returns the note file path.
func (s *NoteStore) Path() string {
	return s.path
}
