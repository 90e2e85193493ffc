package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/notesync/internal/core/domain"
)

var errSettingsNotConfigured = errors.New("settings service not configured")

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage sync settings",
	Long: `View and configure the sync destinations.

Use subcommands to change individual settings or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change sync settings",
	Long: `Change one or more sync settings. Only the flags you pass are changed.

Examples:
  notesync settings set --markdown --markdown-path ~/Documents/note.md
  notesync settings set --apple-notes --title "Scratch" --folder Work
  notesync settings set --markdown=false`,
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to choose and configure a sync destination.`,
	RunE:  runSettingsWizard,
}

func init() {
	f := settingsSetCmd.Flags()
	f.Bool("markdown", false, "enable the Markdown destination")
	f.String("markdown-path", "", "Markdown output file (~ expands to home)")
	f.Bool("markdown-metadata", true, "write a front matter block")
	f.Bool("apple-notes", false, "enable the Apple Notes destination")
	f.String("title", "", "Apple Notes note title")
	f.String("folder", "", "Apple Notes folder")
	f.Bool("apple-notes-metadata", true, "add a 'Synced from' line")
	f.Bool("allow-multiple", false, "allow more than one destination at a time")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	cfg, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Sync Settings")
	cmd.Println("=============")
	cmd.Println()

	cmd.Println("[Markdown]")
	cmd.Printf("  Enabled: %s\n", yesNo(cfg.Markdown.Enabled))
	cmd.Printf("  Path: %s\n", orNotSet(cfg.Markdown.Path))
	cmd.Printf("  Front matter: %s\n", yesNo(cfg.Markdown.IncludeMetadata))
	cmd.Println()

	cmd.Println("[Apple Notes]")
	cmd.Printf("  Enabled: %s\n", yesNo(cfg.AppleNotes.Enabled))
	cmd.Printf("  Title: %s\n", orNotSet(cfg.AppleNotes.Title))
	cmd.Printf("  Folder: %s\n", orNotSet(cfg.AppleNotes.Folder))
	cmd.Printf("  Synced-from line: %s\n", yesNo(cfg.AppleNotes.IncludeMetadata))
	cmd.Println()

	cmd.Printf("Allow multiple targets: %s\n", yesNo(cfg.AllowMultiple))
	if noteService != nil {
		cmd.Printf("Note file: %s\n", noteService.NotePath())
	}
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'notesync settings wizard' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	cfg, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	f := cmd.Flags()
	if f.NFlag() == 0 {
		return errors.New("no settings given; see 'notesync settings set --help'")
	}

	setBool := func(name string, dst *bool) {
		if f.Changed(name) {
			*dst, _ = f.GetBool(name)
		}
	}
	setString := func(name string, dst *string) {
		if f.Changed(name) {
			*dst, _ = f.GetString(name)
		}
	}

	setBool("markdown", &cfg.Markdown.Enabled)
	setString("markdown-path", &cfg.Markdown.Path)
	setBool("markdown-metadata", &cfg.Markdown.IncludeMetadata)
	setBool("apple-notes", &cfg.AppleNotes.Enabled)
	setString("title", &cfg.AppleNotes.Title)
	setString("folder", &cfg.AppleNotes.Folder)
	setBool("apple-notes-metadata", &cfg.AppleNotes.IncludeMetadata)
	setBool("allow-multiple", &cfg.AllowMultiple)

	if err := settingsService.Save(cfg); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println("Settings saved.")
	return nil
}

// Destination choices offered by the wizard.
const (
	choiceMarkdown = iota + 1
	choiceAppleNotes
	choiceBoth
	choiceNone
)

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	cfg, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("notesync Settings Wizard")
	cmd.Println("========================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	cmd.Println("Step 1: Choose a destination")
	cmd.Println("----------------------------")
	cmd.Println("  1. Markdown file")
	cmd.Println("  2. Apple Notes")
	cmd.Println("  3. Both")
	cmd.Println("  4. None")
	current := currentChoice(cfg)
	cmd.Printf("\nEnter choice [%d]: ", current)
	choice := parseChoice(readLine(reader), choiceNone, current)

	cfg.Markdown.Enabled = choice == choiceMarkdown || choice == choiceBoth
	cfg.AppleNotes.Enabled = choice == choiceAppleNotes || choice == choiceBoth
	cfg.AllowMultiple = choice == choiceBoth
	cmd.Println()

	if cfg.Markdown.Enabled {
		cmd.Println("Step 2: Markdown")
		cmd.Println("----------------")
		cmd.Printf("File path [%s]: ", cfg.Markdown.Path)
		cfg.Markdown.Path = orDefault(readLine(reader), cfg.Markdown.Path)
		cmd.Printf("Write front matter? %s: ", yesNoPrompt(cfg.Markdown.IncludeMetadata))
		cfg.Markdown.IncludeMetadata = parseYesNo(readLine(reader), cfg.Markdown.IncludeMetadata)
		cmd.Println()
	}

	if cfg.AppleNotes.Enabled {
		cmd.Println("Step 3: Apple Notes")
		cmd.Println("-------------------")
		if noteService != nil {
			if folders, err := noteService.ListCollections(cmd.Context()); err == nil && len(folders) > 0 {
				cmd.Printf("Available folders: %s\n", strings.Join(folders, ", "))
			}
		}
		cmd.Printf("Note title [%s]: ", cfg.AppleNotes.Title)
		cfg.AppleNotes.Title = orDefault(readLine(reader), cfg.AppleNotes.Title)
		cmd.Printf("Folder [%s]: ", cfg.AppleNotes.Folder)
		cfg.AppleNotes.Folder = orDefault(readLine(reader), cfg.AppleNotes.Folder)
		cmd.Printf("Add a 'Synced from' line? %s: ", yesNoPrompt(cfg.AppleNotes.IncludeMetadata))
		cfg.AppleNotes.IncludeMetadata = parseYesNo(readLine(reader), cfg.AppleNotes.IncludeMetadata)
		cmd.Println()
	}

	if err := settingsService.Save(cfg); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println("Settings saved.")
	return nil
}

func currentChoice(cfg domain.SyncConfiguration) int {
	switch {
	case cfg.Markdown.Enabled && cfg.AppleNotes.Enabled:
		return choiceBoth
	case cfg.Markdown.Enabled:
		return choiceMarkdown
	case cfg.AppleNotes.Enabled:
		return choiceAppleNotes
	default:
		return choiceNone
	}
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func parseYesNo(input string, defaultVal bool) bool {
	switch strings.ToLower(input) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return defaultVal
	}
}

func yesNoPrompt(defaultVal bool) string {
	if defaultVal {
		return "[Y/n]"
	}
	return "[y/N]"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orNotSet(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(not set)"
	}
	return s
}

func orDefault(input, current string) string {
	if input == "" {
		return current
	}
	return input
}
