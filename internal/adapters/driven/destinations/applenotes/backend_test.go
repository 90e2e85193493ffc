package applenotes

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/notesync/internal/core/domain"
	"github.com/custodia-labs/notesync/internal/core/ports/driven"
)

// fakeRunner records scripts and answers them with respond.
type fakeRunner struct {
	scripts  []string
	contexts []context.Context
	respond  func(script string) (driven.ScriptResult, error)
}

func (f *fakeRunner) Run(ctx context.Context, script string) (driven.ScriptResult, error) {
	f.scripts = append(f.scripts, script)
	f.contexts = append(f.contexts, ctx)
	if f.respond == nil {
		return driven.ScriptResult{}, nil
	}
	return f.respond(script)
}

// failWhen fails every script containing marker with stderr.
func failWhen(marker, stderr string) func(string) (driven.ScriptResult, error) {
	return func(script string) (driven.ScriptResult, error) {
		if strings.Contains(script, marker) {
			return driven.ScriptResult{Stderr: stderr, ExitCode: 1}, nil
		}
		return driven.ScriptResult{}, nil
	}
}

func fixedClock() time.Time {
	return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
}

func notesConfig(title, folder string) domain.SyncConfiguration {
	cfg := domain.DefaultSyncConfiguration()
	cfg.AppleNotes.Enabled = true
	cfg.AppleNotes.Title = title
	cfg.AppleNotes.Folder = folder
	cfg.AppleNotes.IncludeMetadata = false
	return cfg
}

func TestBackend_Target(t *testing.T) {
	assert.Equal(t, domain.SyncTargetAppleNotes, NewBackend(&fakeRunner{}).Target())
}

func TestBackend_Export_Success(t *testing.T) {
	runner := &fakeRunner{}
	backend := NewBackend(runner, WithClock(fixedClock))

	err := backend.Export(context.Background(), "<h1>My Note</h1><p>Body</p>", notesConfig(" My Note ", " Work "))

	require.NoError(t, err)
	require.Len(t, runner.scripts, 2)
	assert.Equal(t, launchNotesScript, runner.scripts[0])

	upsert := runner.scripts[1]
	assert.Contains(t, upsert, `set noteName to "My Note"`)
	assert.Contains(t, upsert, `set targetFolderName to "Work"`)
	assert.Contains(t, upsert, `set noteHTML to "<h1>My Note</h1><p>Body</p>"`)
}

func TestBackend_Export_IncludesMetadata(t *testing.T) {
	runner := &fakeRunner{}
	backend := NewBackend(runner, WithClock(fixedClock))

	cfg := notesConfig("My Note", "Notes")
	cfg.AppleNotes.IncludeMetadata = true

	err := backend.Export(context.Background(), "<p>Body</p>", cfg)

	require.NoError(t, err)
	require.Len(t, runner.scripts, 2)
	assert.Contains(t, runner.scripts[1], "Synced from What The Note • 2024-05-01T10:00:00Z")
	assert.Contains(t, runner.scripts[1], `<p style=\"font-size:11px;color:#6e6e73;margin:8px 0;\">`)
}

func TestBackend_Export_NotConfigured(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		folder string
		detail string
	}{
		{name: "blank folder", title: "My Note", folder: "   ", detail: "folder must be specified"},
		{name: "blank title", title: "", folder: "Notes", detail: "title must be specified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{}
			backend := NewBackend(runner)

			err := backend.Export(context.Background(), "<p>x</p>", notesConfig(tt.title, tt.folder))

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrNotConfigured)
			assert.Contains(t, err.Error(), tt.detail)
			assert.Empty(t, runner.scripts, "no script should run")
		})
	}
}

func TestBackend_Export_FolderNotFound(t *testing.T) {
	runner := &fakeRunner{
		respond: failWhen("set noteName", "execution error: Apple Notes folder not found (-2700)"),
	}
	backend := NewBackend(runner)

	err := backend.Export(context.Background(), "<p>x</p>", notesConfig("My Note", "Missing"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
	assert.Equal(t, "Sync not configured: Apple Notes folder does not exist", err.Error())
}

func TestBackend_Export_PermissionDeniedOnLaunch(t *testing.T) {
	runner := &fakeRunner{
		respond: failWhen("launch", "execution error: Not authorised to send Apple events to Notes. (-1743)"),
	}
	backend := NewBackend(runner)

	err := backend.Export(context.Background(), "<p>x</p>", notesConfig("My Note", "Notes"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	assert.Len(t, runner.scripts, 1, "upsert must not run after launch fails")
}

func TestBackend_Export_ScriptingFailure(t *testing.T) {
	runner := &fakeRunner{
		respond: failWhen("set noteName", "  execution error: boom  \n"),
	}
	backend := NewBackend(runner)

	err := backend.Export(context.Background(), "<p>x</p>", notesConfig("My Note", "Notes"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrScriptingFailure)
	assert.Equal(t, "AppleScript failed: execution error: boom", err.Error())
}

func TestBackend_Export_SpawnFailure(t *testing.T) {
	spawnErr := errors.New("exec: \"osascript\": executable file not found in $PATH")
	runner := &fakeRunner{
		respond: func(string) (driven.ScriptResult, error) {
			return driven.ScriptResult{}, spawnErr
		},
	}
	backend := NewBackend(runner)

	err := backend.Export(context.Background(), "<p>x</p>", notesConfig("My Note", "Notes"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIO)
	assert.ErrorIs(t, err, spawnErr)
}

func TestBackend_Timeout(t *testing.T) {
	t.Run("default timeout sets deadline", func(t *testing.T) {
		runner := &fakeRunner{}
		backend := NewBackend(runner)

		require.NoError(t, backend.CheckAvailability(context.Background()))

		for _, ctx := range runner.contexts {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
		}
	})

	t.Run("zero timeout leaves context alone", func(t *testing.T) {
		runner := &fakeRunner{}
		backend := NewBackend(runner, WithTimeout(0))

		require.NoError(t, backend.CheckAvailability(context.Background()))

		for _, ctx := range runner.contexts {
			_, ok := ctx.Deadline()
			assert.False(t, ok)
		}
	})
}

func TestBackend_CheckAvailability(t *testing.T) {
	t.Run("launches then probes", func(t *testing.T) {
		runner := &fakeRunner{}
		backend := NewBackend(runner)

		require.NoError(t, backend.CheckAvailability(context.Background()))
		assert.Equal(t, []string{launchNotesScript, permissionProbeScript}, runner.scripts)
	})

	t.Run("permission denied", func(t *testing.T) {
		runner := &fakeRunner{
			respond: failWhen("return true", "Notes got an error: NOT AUTHORISED."),
		}
		backend := NewBackend(runner)

		err := backend.CheckAvailability(context.Background())
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	})
}

func TestBackend_ListCollections(t *testing.T) {
	t.Run("parses folder names", func(t *testing.T) {
		runner := &fakeRunner{
			respond: func(script string) (driven.ScriptResult, error) {
				if script == listFoldersScript {
					return driven.ScriptResult{Stdout: `{"Notes", "Work", "Personal"}` + "\n"}, nil
				}
				return driven.ScriptResult{}, nil
			},
		}
		backend := NewBackend(runner)

		folders, err := backend.ListCollections(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"Notes", "Work", "Personal"}, folders)
		assert.Equal(t, []string{launchNotesScript, listFoldersScript}, runner.scripts)
	})

	t.Run("propagates failure", func(t *testing.T) {
		runner := &fakeRunner{
			respond: failWhen("folderNames", "boom"),
		}
		backend := NewBackend(runner)

		folders, err := backend.ListCollections(context.Background())

		assert.Nil(t, folders)
		assert.ErrorIs(t, err, domain.ErrScriptingFailure)
	})
}

func TestBackend_NoteBody(t *testing.T) {
	backend := NewBackend(&fakeRunner{}, WithClock(fixedClock))

	t.Run("duplicate heading dropped", func(t *testing.T) {
		body := backend.noteBody("<h1>my note</h1><p>Body</p>", "My Note", false)
		assert.Equal(t, "<h1>My Note</h1><p>Body</p>", body)
	})

	t.Run("empty content gets placeholder", func(t *testing.T) {
		body := backend.noteBody("", "My Note", false)
		assert.Equal(t, "<h1>My Note</h1><div></div>", body)
	})

	t.Run("title escaped", func(t *testing.T) {
		body := backend.noteBody("<p>x</p>", "Tom & Jerry", false)
		assert.True(t, strings.HasPrefix(body, "<h1>Tom &amp; Jerry</h1>"))
	})

	t.Run("metadata between title and body", func(t *testing.T) {
		body := backend.noteBody("<p>Body</p>", "My Note", true)
		titleEnd := strings.Index(body, "</h1>")
		meta := strings.Index(body, "Synced from What The Note")
		content := strings.Index(body, "<p>Body</p>")
		assert.True(t, titleEnd < meta && meta < content)
	})
}

func TestUnsupported(t *testing.T) {
	ctx := context.Background()
	stub := NewUnsupported()

	assert.Equal(t, domain.SyncTargetAppleNotes, stub.Target())

	err := stub.Export(ctx, "<p>x</p>", notesConfig("My Note", "Notes"))
	assert.ErrorIs(t, err, domain.ErrPlatformUnsupported)
	assert.Equal(t, "Sync not implemented: Apple Notes sync is only available on macOS", err.Error())

	assert.ErrorIs(t, stub.CheckAvailability(ctx), domain.ErrPlatformUnsupported)

	folders, err := stub.ListCollections(ctx)
	assert.Nil(t, folders)
	assert.ErrorIs(t, err, domain.ErrPlatformUnsupported)
}

func TestNew_SelectsByPlatform(t *testing.T) {
	runner := &fakeRunner{}

	assert.IsType(t, &Backend{}, New("darwin", runner))
	assert.IsType(t, &Unsupported{}, New("linux", runner))
	assert.IsType(t, &Unsupported{}, New("windows", runner))

	err := New("linux", runner).Export(context.Background(), "<p>x</p>", notesConfig("My Note", "Notes"))
	assert.ErrorIs(t, err, domain.ErrPlatformUnsupported)
	assert.Empty(t, runner.scripts, "unsupported platforms never run a process")
}
