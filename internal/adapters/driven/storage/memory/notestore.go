package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/notesync/internal/core/domain"
	"github.com/custodia-labs/notesync/internal/core/ports/driven"
)

// Ensure NoteStore implements the interface.
var _ driven.NoteStore = (*NoteStore)(nil)

// NoteStore is an in-memory implementation of driven.NoteStore.
type NoteStore struct {
	mu      sync.RWMutex
	content *string
	readErr error
}

// NewNoteStore creates a note store. An empty store reads as the default note.
func NewNoteStore() *NoteStore {
	return &NoteStore{}
}

// NewNoteStoreWith creates a note store holding content.
func NewNoteStoreWith(content string) *NoteStore {
	return &NoteStore{content: &content}
}

// FailReads makes every subsequent Read return err. Used by tests.
func (s *NoteStore) FailReads(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readErr = err
}

// Read returns the stored note, or domain.DefaultNote if none was written.
func (s *NoteStore) Read(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.readErr != nil {
		return "", s.readErr
	}
	if s.content == nil {
		return domain.DefaultNote, nil
	}
	return *s.content, nil
}

// Write replaces the stored note.
func (s *NoteStore) Write(_ context.Context, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = &content
	return nil
}

// Path returns a placeholder path.
func (s *NoteStore) Path() string {
	return ":memory:"
}
