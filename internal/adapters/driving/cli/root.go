// Package cli implements the notesync command-line interface.
package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/notesync/internal/core/ports/driving"
	"github.com/custodia-labs/notesync/internal/logger"
)

// version is set at build time.
var version = "dev"

var (
	noteService     driving.NoteSyncService
	settingsService driving.SyncSettingsService
	verbose         bool
)

var errNotConfigured = errors.New("note sync service not configured")

var rootCmd = &cobra.Command{
	Use:   "notesync",
	Short: "Sync a note to Markdown and Apple Notes",
	Long: `notesync exports a single HTML note to the destinations you enable:
a Markdown file on disk, or a named note in Apple Notes (macOS only).

Configure destinations with 'notesync settings', then run 'notesync sync'
or keep them up to date with 'notesync watch'.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
}

// SetServices injects the core services used by every command.
func SetServices(note driving.NoteSyncService, settings driving.SyncSettingsService) {
	noteService = note
	settingsService = settings
}

// SetVersion sets the version reported by 'notesync version'.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
