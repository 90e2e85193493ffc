package markdown

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/notesync/internal/core/domain"
	"github.com/custodia-labs/notesync/internal/core/ports/driven"
	"github.com/custodia-labs/notesync/internal/logger"
	htmlnorm "github.com/custodia-labs/notesync/internal/normalisers/html"
)

// Ensure Destination implements the interface.
var _ driven.Destination = (*Destination)(nil)

// Generator is recorded in the front matter of every exported file.
const Generator = "notesync"

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// frontMatter is the metadata block written ahead of the note.
type frontMatter struct {
	Title     string `yaml:"title,omitempty"`
	SyncedAt  string `yaml:"synced_at"`
	Generator string `yaml:"generator"`
}

// Destination writes the note to a Markdown file.
type Destination struct {
	now     func() time.Time
	homeDir func() (string, error)
}

// Option configures a Destination.
type Option func(*Destination)

// WithClock sets the time source used for the synced_at field.
func WithClock(now func() time.Time) Option {
	return func(d *Destination) {
		d.now = now
	}
}

// WithHomeDir sets how "~" in the configured path is resolved.
func WithHomeDir(homeDir func() (string, error)) Option {
	return func(d *Destination) {
		d.homeDir = homeDir
	}
}

// New creates a Markdown file destination.
func New(opts ...Option) *Destination {
	d := &Destination{
		now:     time.Now,
		homeDir: os.UserHomeDir,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Target returns the Markdown sync target.
func (d *Destination) Target() domain.SyncTarget {
	return domain.SyncTargetMarkdown
}

// Export renders content as Markdown and overwrites the configured file,
// creating parent directories as needed.
func (d *Destination) Export(ctx context.Context, content string, cfg domain.SyncConfiguration) error {
	path, err := d.resolvePath(cfg.Markdown.Path)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return domain.NewIOError(err)
	}

	body, err := Render(htmlnorm.Sanitise(content))
	if err != nil {
		return domain.NewIOError(err)
	}

	var buf bytes.Buffer
	if cfg.Markdown.IncludeMetadata {
		if err := d.writeFrontMatter(&buf, htmlnorm.FirstHeading(content)); err != nil {
			return domain.NewIOError(err)
		}
	}
	buf.WriteString(body)
	buf.WriteString("\n")

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return domain.NewIOError(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return domain.NewIOError(err)
	}

	logger.Debug("Wrote %d bytes of Markdown to %s", buf.Len(), path)
	return nil
}

func (d *Destination) writeFrontMatter(buf *bytes.Buffer, title string) error {
	meta := frontMatter{
		Title:     title,
		SyncedAt:  d.now().UTC().Format(time.RFC3339),
		Generator: Generator,
	}

	data, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("encode front matter: %w", err)
	}

	buf.WriteString("---\n")
	buf.Write(data)
	buf.WriteString("---\n\n")
	return nil
}

// resolvePath trims the configured path and expands a leading "~".
func (d *Destination) resolvePath(configured string) (string, error) {
	path := strings.TrimSpace(configured)
	if path == "" {
		return "", domain.NewNotConfiguredError("Markdown file path must be specified")
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := d.homeDir()
		if err != nil {
			return "", domain.NewIOError(fmt.Errorf("resolve home directory: %w", err))
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	return filepath.Clean(path), nil
}
