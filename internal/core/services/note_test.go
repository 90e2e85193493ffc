package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/notesync/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/notesync/internal/core/domain"
)

type noteFixture struct {
	notes    *memory.NoteStore
	store    *memory.ConfigStore
	markdown *mockDestination
	bridge   *mockBridge
	service  *NoteSyncService
}

func newNoteFixture(values map[string]any) *noteFixture {
	f := &noteFixture{
		notes:    memory.NewNoteStoreWith("<h1>Note</h1><p>Body</p>"),
		store:    memory.NewConfigStoreFrom(values),
		markdown: &mockDestination{target: domain.SyncTargetMarkdown},
		bridge: &mockBridge{
			mockDestination: mockDestination{target: domain.SyncTargetAppleNotes},
			folders:         []string{"Notes", "Work"},
		},
	}
	f.service = NewNoteSyncService(
		f.notes,
		NewSyncSettingsService(f.store),
		NewSyncOrchestrator(f.markdown, f.bridge),
		f.bridge,
	)
	return f
}

var markdownOnly = map[string]any{
	"sync.markdown.enabled": true,
	"sync.markdown.path":    "/tmp/note.md",
}

func TestNoteSyncService_SyncNow(t *testing.T) {
	f := newNoteFixture(markdownOnly)

	require.NoError(t, f.service.SyncNow(context.Background()))

	assert.Equal(t, []string{"<h1>Note</h1><p>Body</p>"}, f.markdown.contents)
	assert.Zero(t, f.bridge.calls)
}

func TestNoteSyncService_SyncNow_ReturnsDestinationError(t *testing.T) {
	f := newNoteFixture(markdownOnly)
	f.markdown.err = domain.NewIOError(errors.New("denied"))

	err := f.service.SyncNow(context.Background())

	assert.ErrorIs(t, err, domain.ErrIO)
}

func TestNoteSyncService_InvalidSettingsFailBeforeExport(t *testing.T) {
	f := newNoteFixture(map[string]any{
		"sync.markdown.enabled":    true,
		"sync.markdown.path":       "/tmp/note.md",
		"sync.apple_notes.enabled": true,
	})

	err := f.service.SyncNow(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotConfigured)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, f.markdown.calls+f.bridge.calls)
}

func TestNoteSyncService_ReadError(t *testing.T) {
	f := newNoteFixture(markdownOnly)
	readErr := errors.New("disk gone")
	f.notes.FailReads(readErr)

	_, err := f.service.SyncOutcomes(context.Background())

	assert.ErrorIs(t, err, readErr)
	assert.Contains(t, err.Error(), "read note")
}

func TestNoteSyncService_SyncOutcomes(t *testing.T) {
	f := newNoteFixture(map[string]any{
		"sync.apple_notes.enabled": true,
	})

	outcomes, err := f.service.SyncOutcomes(context.Background())

	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, domain.SyncTargetAppleNotes, outcomes[0].Target)
	assert.True(t, outcomes[0].Succeeded())
}

func TestNoteSyncService_TestSync(t *testing.T) {
	f := newNoteFixture(nil)

	result, err := f.service.TestSync(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.MessageNoTargetsEnabled, result.Message)
}

func TestNoteSyncService_DefaultNote(t *testing.T) {
	f := newNoteFixture(markdownOnly)
	f.service = NewNoteSyncService(memory.NewNoteStore(), NewSyncSettingsService(f.store),
		NewSyncOrchestrator(f.markdown), nil)

	require.NoError(t, f.service.SyncNow(context.Background()))

	assert.Equal(t, []string{domain.DefaultNote}, f.markdown.contents)
}

func TestNoteSyncService_Probes(t *testing.T) {
	f := newNoteFixture(nil)

	folders, err := f.service.ListCollections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Notes", "Work"}, folders)

	assert.NoError(t, f.service.CheckAvailability(context.Background()))
	assert.Equal(t, 2, f.bridge.probes)

	f.bridge.probeErr = domain.NewPermissionDeniedError("blocked")
	assert.ErrorIs(t, f.service.CheckAvailability(context.Background()), domain.ErrPermissionDenied)
}

func TestNoteSyncService_ProbesWithoutBridge(t *testing.T) {
	service := NewNoteSyncService(memory.NewNoteStore(), NewSyncSettingsService(memory.NewConfigStore()),
		NewSyncOrchestrator(), nil)

	_, err := service.ListCollections(context.Background())
	assert.ErrorIs(t, err, domain.ErrPlatformUnsupported)
	assert.ErrorIs(t, service.CheckAvailability(context.Background()), domain.ErrPlatformUnsupported)
}

func TestNoteSyncService_NoteAndPath(t *testing.T) {
	f := newNoteFixture(nil)

	content, err := f.service.Note(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "<h1>Note</h1><p>Body</p>", content)
	assert.Equal(t, ":memory:", f.service.NotePath())
}

func TestNoteSyncService_SetNote(t *testing.T) {
	f := newNoteFixture(nil)

	require.NoError(t, f.service.SetNote(context.Background(), "<p>Replaced</p>"))

	content, err := f.service.Note(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "<p>Replaced</p>", content)
}

func TestNoteSyncService_SetNote_RejectsBlank(t *testing.T) {
	f := newNoteFixture(nil)

	err := f.service.SetNote(context.Background(), " \n\t")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	content, readErr := f.service.Note(context.Background())
	require.NoError(t, readErr)
	assert.Equal(t, "<h1>Note</h1><p>Body</p>", content)
}
