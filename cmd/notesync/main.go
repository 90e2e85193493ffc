// Command notesync exports a single note to Markdown and Apple Notes.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/custodia-labs/notesync/internal/adapters/driven/config/file"
	"github.com/custodia-labs/notesync/internal/adapters/driven/destinations/applenotes"
	"github.com/custodia-labs/notesync/internal/adapters/driven/destinations/markdown"
	"github.com/custodia-labs/notesync/internal/adapters/driven/scripting/osascript"
	notefile "github.com/custodia-labs/notesync/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/notesync/internal/adapters/driving/cli"
	"github.com/custodia-labs/notesync/internal/core/domain"
	"github.com/custodia-labs/notesync/internal/core/services"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

// homeEnv overrides the configuration directory (default ~/.notesync).
const homeEnv = "NOTESYNC_HOME"

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	configDir := os.Getenv(homeEnv)

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "notesync: %v\n", err)
		return err
	}
	settings := services.NewSyncSettingsService(configStore)

	notes := notefile.NewNoteStore(filepath.Join(filepath.Dir(configStore.Path()), domain.NoteFileName))

	bridge := applenotes.New(runtime.GOOS, osascript.NewRunner(),
		applenotes.WithTimeout(settings.ScriptTimeout()),
	)
	orchestrator := services.NewSyncOrchestrator(markdown.New(), bridge)

	cli.SetServices(services.NewNoteSyncService(notes, settings, orchestrator, bridge), settings)
	cli.SetVersion(version)

	return cli.Execute(context.Background())
}
