package driven

import "context"

// ScriptRunner executes an automation script in an external interpreter.
type ScriptRunner interface {
	// Run executes script and waits for the process to exit.
	// A non-zero exit is reported through ScriptResult, not the error.
	// The error is non-nil only if the process could not be run at all
	// or ctx ended first.
	Run(ctx context.Context, script string) (ScriptResult, error)
}

// ScriptResult holds the captured output of one script run.
type ScriptResult struct {
	// Stdout is the captured standard output.
	Stdout string

	// Stderr is the captured standard error.
	Stderr string

	// ExitCode is the process exit status.
	ExitCode int
}

// Success returns true if the script exited with status 0.
func (r ScriptResult) Success() bool {
	return r.ExitCode == 0
}
