// Package osascript runs AppleScript through the osascript command-line
// interpreter. Each Run spawns one short-lived process, waits for it, and
// returns its captured output.
package osascript

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/custodia-labs/notesync/internal/core/ports/driven"
	"github.com/custodia-labs/notesync/internal/logger"
)

// Ensure Runner implements the interface.
var _ driven.ScriptRunner = (*Runner)(nil)

// DefaultBinary is the AppleScript interpreter shipped with macOS.
const DefaultBinary = "osascript"

// waitDelay bounds how long output is drained after the process is killed.
const waitDelay = 2 * time.Second

// Runner executes scripts as `<binary> <args...> <script>`.
type Runner struct {
	binary string
	args   []string
}

// NewRunner creates a runner for osascript, passing the script with -e.
func NewRunner() *Runner {
	return NewCommandRunner(DefaultBinary, "-e")
}

// NewCommandRunner creates a runner for any interpreter that takes the
// script as its final argument.
func NewCommandRunner(binary string, args ...string) *Runner {
	return &Runner{
		binary: binary,
		args:   args,
	}
}

// Run executes script and captures stdout and stderr separately.
// A non-zero exit is returned in the result; the error is reserved for
// spawn failures and context cancellation.
func (r *Runner) Run(ctx context.Context, script string) (driven.ScriptResult, error) {
	args := append(append([]string{}, r.args...), script)
	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug("Running %s (%d byte script)", r.binary, len(script))
	logger.Block("script", script)
	err := cmd.Run()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return driven.ScriptResult{}, fmt.Errorf("run %s: %w", r.binary, ctxErr)
	}

	result := driven.ScriptResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return driven.ScriptResult{}, fmt.Errorf("run %s: %w", r.binary, err)
	}

	return result, nil
}
