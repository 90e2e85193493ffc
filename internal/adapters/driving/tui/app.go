package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/notesync/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/notesync/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/notesync/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/notesync/internal/core/domain"
)

// App shows a spinner while the note is exported and then one line per
// destination. It implements tea.Model for use with Bubbletea.
type App struct {
	ports   *Ports
	ctx     context.Context
	styles  *styles.Styles
	keys    *keymap.KeyMap
	spinner spinner.Model

	// targets are the destinations enabled when the view started.
	targets    []domain.SyncTarget
	targetsErr error

	// syncing is true while a run is in flight.
	syncing bool

	// last is the most recent completed run.
	last *messages.SyncCompleted

	width int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the sync progress view with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(s.Spinner),
	)

	return &App{
		ports:   ports,
		ctx:     context.Background(),
		styles:  s,
		keys:    keymap.DefaultKeyMap(),
		spinner: sp,
		syncing: true,
	}, nil
}

// WithContext sets the context passed to the sync service.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model. The first run starts immediately.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("notesync"),
		a.loadTargets,
		a.spinner.Tick,
		a.runSync,
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Retry) && !a.syncing:
			a.syncing = true
			return a, tea.Batch(a.spinner.Tick, a.runSync)
		}
		return a, nil

	case spinner.TickMsg:
		if !a.syncing {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case messages.TargetsLoaded:
		a.targets = msg.Targets
		a.targetsErr = msg.Err
		return a, nil

	case messages.SyncCompleted:
		a.syncing = false
		a.last = &msg
		return a, nil
	}

	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("notesync"))
	b.WriteString("\n")
	b.WriteString(a.styles.Muted.Render(a.targetSummary()))
	b.WriteString("\n\n")

	if a.syncing {
		b.WriteString(a.spinner.View())
		b.WriteString(" Syncing note…\n")
		return b.String()
	}

	b.WriteString(a.styles.Border.Render(a.resultLines()))
	b.WriteString("\n")
	if a.last != nil {
		b.WriteString(a.styles.Muted.Render(fmt.Sprintf("Finished in %s", a.last.Elapsed.Round(time.Millisecond))))
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Help.Render(a.helpLine()))
	b.WriteString("\n")
	return b.String()
}

func (a *App) targetSummary() string {
	if a.targetsErr != nil {
		return "Targets: unavailable (" + a.targetsErr.Error() + ")"
	}
	if len(a.targets) == 0 {
		return "Targets: none"
	}
	labels := make([]string, len(a.targets))
	for i, t := range a.targets {
		labels[i] = t.Label()
	}
	return "Targets: " + strings.Join(labels, ", ")
}

func (a *App) resultLines() string {
	if a.last == nil {
		return ""
	}
	if a.last.Err != nil {
		return a.styles.Error.Render(a.last.Err.Error())
	}
	if len(a.last.Outcomes) == 0 {
		return a.styles.Muted.Render(domain.MessageNoTargetsEnabled)
	}
	lines := make([]string, len(a.last.Outcomes))
	for i, o := range a.last.Outcomes {
		lines[i] = a.styles.Outcome(o)
	}
	return strings.Join(lines, "\n")
}

func (a *App) helpLine() string {
	parts := make([]string, 0, 2)
	for _, b := range a.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

func (a *App) loadTargets() tea.Msg {
	cfg, err := a.ports.Settings.Get()
	if err != nil {
		return messages.TargetsLoaded{Err: err}
	}
	return messages.TargetsLoaded{Targets: cfg.EnabledTargets()}
}

func (a *App) runSync() tea.Msg {
	start := time.Now()
	outcomes, err := a.ports.Sync.SyncOutcomes(a.ctx)
	return messages.SyncCompleted{
		Outcomes: outcomes,
		Err:      err,
		Elapsed:  time.Since(start),
	}
}

// Syncing returns true while a run is in flight.
func (a *App) Syncing() bool {
	return a.syncing
}

// Result returns the most recent completed run, or nil.
func (a *App) Result() *messages.SyncCompleted {
	return a.last
}

// Targets returns the enabled destinations.
func (a *App) Targets() []domain.SyncTarget {
	return a.targets
}
