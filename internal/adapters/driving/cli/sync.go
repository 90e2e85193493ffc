package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/notesync/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/notesync/internal/core/domain"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Export the note to every enabled destination",
	Long: `Exports the note to every enabled destination, in order: Markdown, then
Apple Notes. A failing destination does not stop the next one; every result
is reported and the command fails if any destination failed.

Use --test to run only the first enabled destination and report the result.
Use --first-error to skip the per-destination report and return only the
first failure, which suits scripts that check the exit status.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().Bool("test", false, "run the first enabled destination only")
	syncCmd.Flags().BoolP("interactive", "i", false, "show progress in an interactive view")
	syncCmd.Flags().Bool("first-error", false, "report only the first failing destination")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, _ []string) error {
	if noteService == nil {
		return errNotConfigured
	}

	testOnly, err := cmd.Flags().GetBool("test")
	if err != nil {
		return fmt.Errorf("getting test flag: %w", err)
	}
	interactive, err := cmd.Flags().GetBool("interactive")
	if err != nil {
		return fmt.Errorf("getting interactive flag: %w", err)
	}
	firstError, err := cmd.Flags().GetBool("first-error")
	if err != nil {
		return fmt.Errorf("getting first-error flag: %w", err)
	}

	if testOnly {
		return runTestSync(cmd)
	}
	if firstError {
		if err := noteService.SyncNow(cmd.Context()); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		cmd.Println("Sync completed.")
		return nil
	}
	if interactive {
		if isTerminal(cmd.OutOrStdout()) {
			return runInteractiveSync(cmd)
		}
		cmd.PrintErrln("Not a terminal; showing plain output.")
	}

	outcomes, err := noteService.SyncOutcomes(cmd.Context())
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}
	return reportOutcomes(cmd, outcomes)
}

func runTestSync(cmd *cobra.Command) error {
	result, err := noteService.TestSync(cmd.Context())
	if err != nil {
		return fmt.Errorf("test sync failed: %w", err)
	}

	if result.Target == "" {
		cmd.Println(result.Message)
		return nil
	}
	cmd.Printf("%s: %s\n", result.Target, result.Message)
	if !result.Success {
		return fmt.Errorf("test sync to %s failed", result.Target)
	}
	return nil
}

// reportOutcomes prints one line per destination and fails if any failed.
func reportOutcomes(cmd *cobra.Command, outcomes []domain.SyncOutcome) error {
	if len(outcomes) == 0 {
		cmd.Println(domain.MessageNoTargetsEnabled)
		return nil
	}

	styled := isTerminal(cmd.OutOrStdout())
	s := styles.DefaultStyles()
	failed := 0
	for _, o := range outcomes {
		if !o.Succeeded() {
			failed++
		}
		if styled {
			cmd.Println(s.Outcome(o))
			continue
		}
		cmd.Println(outcomeLine(o))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d destinations failed", failed, len(outcomes))
	}
	return nil
}

func outcomeLine(o domain.SyncOutcome) string {
	if o.Succeeded() {
		return fmt.Sprintf("%s: %s", o.Target.Label(), domain.MessageSyncSucceeded)
	}
	return fmt.Sprintf("%s: %v", o.Target.Label(), o.Err)
}
