// Package watch re-syncs the note whenever its file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/notesync/internal/core/domain"
	"github.com/custodia-labs/notesync/internal/logger"
)

// Defaults for bursts of editor saves.
const (
	DefaultDebounce    = 500 * time.Millisecond
	DefaultMinInterval = 2 * time.Second
)

// Syncer runs one sync over every enabled destination.
type Syncer interface {
	SyncOutcomes(ctx context.Context) ([]domain.SyncOutcome, error)
}

// Run is the result of one triggered sync.
type Run struct {
	Trigger  string
	At       time.Time
	Outcomes []domain.SyncOutcome
	Err      error
}

// Failed returns true if the run or any destination failed.
func (r Run) Failed() bool {
	if r.Err != nil {
		return true
	}
	for _, o := range r.Outcomes {
		if !o.Succeeded() {
			return true
		}
	}
	return false
}

// Reporter receives every completed run.
type Reporter func(Run)

// Watcher syncs the note after its file settles.
type Watcher struct {
	syncer   Syncer
	path     string
	debounce time.Duration
	limiter  *rate.Limiter
	initial  bool
	report   Reporter
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long the file must be quiet before a sync.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithMinInterval sets the minimum time between two syncs.
func WithMinInterval(d time.Duration) Option {
	return func(w *Watcher) {
		w.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// WithInitialSync runs one sync before waiting for changes.
func WithInitialSync(enabled bool) Option {
	return func(w *Watcher) {
		w.initial = enabled
	}
}

// WithReporter sets the callback invoked after every run.
func WithReporter(r Reporter) Option {
	return func(w *Watcher) {
		w.report = r
	}
}

// New creates a watcher for the note file at path.
func New(syncer Syncer, path string, opts ...Option) *Watcher {
	w := &Watcher{
		syncer:   syncer,
		path:     filepath.Clean(path),
		debounce: DefaultDebounce,
		limiter:  rate.NewLimiter(rate.Every(DefaultMinInterval), 1),
		report:   logRun,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run watches until ctx is cancelled. Sync failures are reported and never
// stop the watcher.
//
// The parent directory is watched rather than the file itself, so editors
// that save by renaming a temporary file are still observed.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	logger.Info("Watching %s", w.path)

	if w.initial {
		w.sync(ctx, "startup")
	}

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("Note changed (%s)", event.Op)
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch %s: %v", dir, err)

		case <-timer.C:
			w.sync(ctx, "change")
		}
	}
}

func (w *Watcher) sync(ctx context.Context, trigger string) {
	if err := w.limiter.Wait(ctx); err != nil {
		return
	}

	outcomes, err := w.syncer.SyncOutcomes(ctx)
	w.report(Run{
		Trigger:  trigger,
		At:       time.Now(),
		Outcomes: outcomes,
		Err:      err,
	})
}

func logRun(run Run) {
	if run.Err != nil {
		logger.Error("sync after %s failed: %v", run.Trigger, run.Err)
		return
	}
	if len(run.Outcomes) == 0 {
		logger.Info(domain.MessageNoTargetsEnabled)
		return
	}
	for _, o := range run.Outcomes {
		if o.Succeeded() {
			logger.Info("%s: synced", o.Target.Label())
		} else {
			logger.Error("%s: %v", o.Target.Label(), o.Err)
		}
	}
}
