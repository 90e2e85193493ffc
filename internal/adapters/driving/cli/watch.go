package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/notesync/internal/adapters/driving/watch"
	"github.com/custodia-labs/notesync/internal/core/domain"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Sync the note whenever it changes",
	Long: `Watches the note file and exports it to every enabled destination after
each change. Bursts of writes are coalesced (--debounce) and runs are spaced
at least --min-interval apart so Apple Notes is not flooded with scripts.

Sync failures are printed and watching continues. Stop with Ctrl+C.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Duration("debounce", watch.DefaultDebounce, "quiet period after a change before syncing")
	watchCmd.Flags().Duration("min-interval", watch.DefaultMinInterval, "minimum time between two syncs")
	watchCmd.Flags().Bool("no-initial", false, "skip the sync on startup")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if noteService == nil {
		return errNotConfigured
	}

	debounce, err := cmd.Flags().GetDuration("debounce")
	if err != nil {
		return fmt.Errorf("getting debounce flag: %w", err)
	}
	minInterval, err := cmd.Flags().GetDuration("min-interval")
	if err != nil {
		return fmt.Errorf("getting min-interval flag: %w", err)
	}
	noInitial, err := cmd.Flags().GetBool("no-initial")
	if err != nil {
		return fmt.Errorf("getting no-initial flag: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	path := noteService.NotePath()
	cmd.Printf("Watching %s (Ctrl+C to stop)\n", path)

	w := watch.New(noteService, path,
		watch.WithDebounce(debounce),
		watch.WithMinInterval(minInterval),
		watch.WithInitialSync(!noInitial),
		watch.WithReporter(func(run watch.Run) { printRun(cmd, run) }),
	)
	return w.Run(ctx)
}

func printRun(cmd *cobra.Command, run watch.Run) {
	stamp := run.At.Format("15:04:05")
	if run.Err != nil {
		cmd.Printf("[%s] %s: %v\n", stamp, run.Trigger, run.Err)
		return
	}
	if len(run.Outcomes) == 0 {
		cmd.Printf("[%s] %s: %s\n", stamp, run.Trigger, domain.MessageNoTargetsEnabled)
		return
	}
	for _, o := range run.Outcomes {
		cmd.Printf("[%s] %s: %s\n", stamp, run.Trigger, outcomeLine(o))
	}
}
