package applenotes

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/custodia-labs/notesync/internal/core/domain"
	"github.com/custodia-labs/notesync/internal/core/ports/driven"
	"github.com/custodia-labs/notesync/internal/logger"
	htmlnorm "github.com/custodia-labs/notesync/internal/normalisers/html"
)

// Ensure Backend implements the interface.
var _ driven.NotesBridge = (*Backend)(nil)

// DefaultTimeout bounds a single script run, including any permission prompt.
const DefaultTimeout = 60 * time.Second

const metadataTemplate = `<p style="font-size:11px;color:#6e6e73;margin:8px 0;"><em>Synced from What The Note • %s</em></p>`

// Backend drives Apple Notes through AppleScript.
type Backend struct {
	runner  driven.ScriptRunner
	timeout time.Duration
	now     func() time.Time
}

// Option configures a Backend.
type Option func(*Backend)

// WithTimeout bounds each script run. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(b *Backend) {
		b.timeout = d
	}
}

// WithClock sets the time source used for the metadata line.
func WithClock(now func() time.Time) Option {
	return func(b *Backend) {
		b.now = now
	}
}

// NewBackend creates a Backend that runs scripts with runner.
func NewBackend(runner driven.ScriptRunner, opts ...Option) *Backend {
	b := &Backend{
		runner:  runner,
		timeout: DefaultTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Target returns the Apple Notes sync target.
func (b *Backend) Target() domain.SyncTarget {
	return domain.SyncTargetAppleNotes
}

// Export upserts the note named by the configured title into the
// configured folder.
func (b *Backend) Export(ctx context.Context, content string, cfg domain.SyncConfiguration) error {
	settings := cfg.AppleNotes

	folder := strings.TrimSpace(settings.Folder)
	if folder == "" {
		return domain.NewNotConfiguredError("Apple Notes folder must be specified")
	}
	title := strings.TrimSpace(settings.Title)
	if title == "" {
		return domain.NewNotConfiguredError("Apple Notes title must be specified")
	}

	if err := b.ensureRunning(ctx); err != nil {
		return err
	}

	body := b.noteBody(content, title, settings.IncludeMetadata)
	logger.Debug("Upserting Apple Notes note %q in folder %q (%d bytes)", title, folder, len(body))

	_, err := b.run(ctx, buildUpsertScript(title, folder, body))
	return err
}

// CheckAvailability launches Notes if needed and verifies it accepts
// automation requests.
func (b *Backend) CheckAvailability(ctx context.Context) error {
	if err := b.ensureRunning(ctx); err != nil {
		return err
	}
	_, err := b.run(ctx, permissionProbeScript)
	return err
}

// ListCollections returns the folder names of the default account.
func (b *Backend) ListCollections(ctx context.Context) ([]string, error) {
	if err := b.ensureRunning(ctx); err != nil {
		return nil, err
	}

	output, err := b.run(ctx, listFoldersScript)
	if err != nil {
		return nil, err
	}
	return parseList(output), nil
}

// noteBody assembles the note: title heading, optional metadata line,
// then the sanitised content.
func (b *Backend) noteBody(content, title string, includeMetadata bool) string {
	var sb strings.Builder

	sb.WriteString("<h1>")
	sb.WriteString(html.EscapeString(title))
	sb.WriteString("</h1>")

	if includeMetadata {
		sb.WriteString(fmt.Sprintf(metadataTemplate, b.now().UTC().Format(time.RFC3339)))
	}

	sb.WriteString(htmlnorm.PrepareForDestination(content, title))
	return sb.String()
}

// ensureRunning launches Notes if it is not already running. Idempotent.
func (b *Backend) ensureRunning(ctx context.Context) error {
	_, err := b.run(ctx, launchNotesScript)
	return err
}

// run executes script and classifies any failure.
func (b *Backend) run(ctx context.Context, script string) (string, error) {
	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	result, err := b.runner.Run(ctx, script)
	if err != nil {
		return "", domain.NewIOError(err)
	}

	if !result.Success() {
		syncErr := classifyFailure(result)
		logger.Debug("AppleScript failed (%s), exit status %d", syncErr.Kind, result.ExitCode)
		logger.Block("stderr", result.Stderr)
		return "", syncErr
	}

	logger.Debug("AppleScript completed successfully")
	return result.Stdout, nil
}
