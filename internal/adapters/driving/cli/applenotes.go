package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var appleNotesCmd = &cobra.Command{
	Use:     "apple-notes",
	Aliases: []string{"notes"},
	Short:   "Inspect the Apple Notes destination",
	Long: `Commands that talk to Apple Notes directly. They are useful for choosing
a folder and for diagnosing automation permissions. Only available on macOS.`,
}

var appleNotesFoldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "List folders in the default Apple Notes account",
	RunE:  runAppleNotesFolders,
}

var appleNotesCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that Apple Notes can be automated",
	Long: `Launches Apple Notes if needed and asks it for a trivial value. The first
run may show a macOS prompt asking to allow automation of Notes.`,
	RunE: runAppleNotesCheck,
}

func init() {
	appleNotesCmd.AddCommand(appleNotesFoldersCmd)
	appleNotesCmd.AddCommand(appleNotesCheckCmd)
	rootCmd.AddCommand(appleNotesCmd)
}

func runAppleNotesFolders(cmd *cobra.Command, _ []string) error {
	if noteService == nil {
		return errNotConfigured
	}

	folders, err := noteService.ListCollections(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list folders: %w", err)
	}

	if len(folders) == 0 {
		cmd.Println("No folders found.")
		return nil
	}
	for _, f := range folders {
		cmd.Println(f)
	}
	return nil
}

func runAppleNotesCheck(cmd *cobra.Command, _ []string) error {
	if noteService == nil {
		return errNotConfigured
	}

	if err := noteService.CheckAvailability(cmd.Context()); err != nil {
		return fmt.Errorf("apple notes unavailable: %w", err)
	}
	cmd.Println("Apple Notes is available.")
	return nil
}
