package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/notesync/internal/core/domain"
)

// mockNoteService implements driving.NoteSyncService for testing.
type mockNoteService struct {
	outcomes   []domain.SyncOutcome
	testResult domain.SyncTestResult
	folders    []string
	note       string
	path       string
	err        error
	probeErr   error
	syncs      int
	syncNows   int
}

func (m *mockNoteService) SyncNow(_ context.Context) error {
	m.syncs++
	m.syncNows++
	return m.err
}

func (m *mockNoteService) SyncOutcomes(_ context.Context) ([]domain.SyncOutcome, error) {
	m.syncs++
	return m.outcomes, m.err
}

func (m *mockNoteService) TestSync(_ context.Context) (domain.SyncTestResult, error) {
	return m.testResult, m.err
}

func (m *mockNoteService) ListCollections(_ context.Context) ([]string, error) {
	return m.folders, m.probeErr
}

func (m *mockNoteService) CheckAvailability(_ context.Context) error {
	return m.probeErr
}

func (m *mockNoteService) Note(_ context.Context) (string, error) {
	return m.note, m.err
}

func (m *mockNoteService) SetNote(_ context.Context, content string) error {
	if m.err != nil {
		return m.err
	}
	m.note = content
	return nil
}

func (m *mockNoteService) NotePath() string {
	return m.path
}

// mockSettingsService implements driving.SyncSettingsService for testing.
type mockSettingsService struct {
	cfg     domain.SyncConfiguration
	saved   *domain.SyncConfiguration
	saveErr error
}

func (m *mockSettingsService) Get() (domain.SyncConfiguration, error) {
	return m.cfg, nil
}

func (m *mockSettingsService) Save(cfg domain.SyncConfiguration) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	m.saved = &cfg
	m.cfg = cfg
	return nil
}

func (m *mockSettingsService) Validate() error {
	return m.cfg.Validate()
}

// withServices installs the given services for the duration of a test.
func withServices(t *testing.T, note *mockNoteService, settings *mockSettingsService) {
	t.Helper()
	oldNote, oldSettings := noteService, settingsService
	noteService, settingsService = nil, nil
	if note != nil {
		noteService = note
	}
	if settings != nil {
		settingsService = settings
	}
	t.Cleanup(func() {
		noteService, settingsService = oldNote, oldSettings
	})
}

// execute runs the root command with args and returns everything written.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeContext(t, context.Background(), "", args...)
}

func executeContext(t *testing.T, ctx context.Context, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(bytes.NewBufferString(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.ExecuteContext(ctx)
	return buf.String(), err
}

// resetFlags restores every flag to its default; cobra keeps parsed values
// between executions of the same command tree.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
