package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	htmlnorm "github.com/custodia-labs/notesync/internal/normalisers/html"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Show or replace the note that is synced",
}

var noteShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the note as plain text",
	RunE:  runNoteShow,
}

var notePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the path of the note file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if noteService == nil {
			return errNotConfigured
		}
		cmd.Println(noteService.NotePath())
		return nil
	},
}

var noteSetCmd = &cobra.Command{
	Use:   "set [file]",
	Short: "Replace the note with HTML from a file or stdin",
	Long: `Replace the note with the HTML read from file, or from stdin when no file
(or "-") is given. A running 'notesync watch' picks up the change.

Examples:
  notesync note set draft.html
  pandoc -t html notes.md | notesync note set`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNoteSet,
}

func init() {
	noteShowCmd.Flags().Bool("html", false, "print the stored HTML instead of plain text")
	noteCmd.AddCommand(noteShowCmd)
	noteCmd.AddCommand(notePathCmd)
	noteCmd.AddCommand(noteSetCmd)
	rootCmd.AddCommand(noteCmd)
}

func runNoteShow(cmd *cobra.Command, _ []string) error {
	if noteService == nil {
		return errNotConfigured
	}

	raw, err := cmd.Flags().GetBool("html")
	if err != nil {
		return fmt.Errorf("getting html flag: %w", err)
	}

	content, err := noteService.Note(cmd.Context())
	if err != nil {
		return err
	}

	if raw {
		cmd.Println(content)
		return nil
	}
	cmd.Println(htmlnorm.PlainText(content))
	return nil
}

func runNoteSet(cmd *cobra.Command, args []string) error {
	if noteService == nil {
		return errNotConfigured
	}

	var (
		content []byte
		err     error
	)
	if len(args) == 0 || args[0] == "-" {
		content, err = io.ReadAll(cmd.InOrStdin())
	} else {
		content, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("reading note: %w", err)
	}

	if err := noteService.SetNote(cmd.Context(), string(content)); err != nil {
		return err
	}

	cmd.Printf("Note saved to %s\n", noteService.NotePath())
	return nil
}
