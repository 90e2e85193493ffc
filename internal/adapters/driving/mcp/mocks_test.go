package mcp

import (
	"context"

	"github.com/custodia-labs/notesync/internal/core/domain"
)

// mockSyncService is a mock implementation of driving.NoteSyncService.
type mockSyncService struct {
	outcomes   []domain.SyncOutcome
	testResult domain.SyncTestResult
	folders    []string
	note       string
	err        error
	probeErr   error
}

func (m *mockSyncService) SyncNow(_ context.Context) error {
	return m.err
}

func (m *mockSyncService) SyncOutcomes(_ context.Context) ([]domain.SyncOutcome, error) {
	return m.outcomes, m.err
}

func (m *mockSyncService) TestSync(_ context.Context) (domain.SyncTestResult, error) {
	return m.testResult, m.err
}

func (m *mockSyncService) ListCollections(_ context.Context) ([]string, error) {
	return m.folders, m.probeErr
}

func (m *mockSyncService) CheckAvailability(_ context.Context) error {
	return m.probeErr
}

func (m *mockSyncService) Note(_ context.Context) (string, error) {
	return m.note, m.err
}

func (m *mockSyncService) SetNote(_ context.Context, content string) error {
	m.note = content
	return m.err
}

func (m *mockSyncService) NotePath() string {
	return "/tmp/note.html"
}

// mockSettingsService is a mock implementation of driving.SyncSettingsService.
type mockSettingsService struct {
	cfg domain.SyncConfiguration
	err error
}

func (m *mockSettingsService) Get() (domain.SyncConfiguration, error) {
	return m.cfg, m.err
}

func (m *mockSettingsService) Save(_ domain.SyncConfiguration) error {
	return m.err
}

func (m *mockSettingsService) Validate() error {
	return m.err
}
