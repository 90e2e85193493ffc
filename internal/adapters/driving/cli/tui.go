package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/notesync/internal/adapters/driving/tui"
)

// runInteractiveSync runs the sync behind the progress view. The view
// stays open after the run so the user can retry or quit.
func runInteractiveSync(cmd *cobra.Command) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	app, err := tui.NewApp(&tui.Ports{
		Sync:     noteService,
		Settings: settingsService,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app,
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if result := app.Result(); result != nil && result.Failed() {
		return errors.New("sync failed")
	}
	return nil
}
