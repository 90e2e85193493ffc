package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/notesync/internal/core/domain"
	"github.com/custodia-labs/notesync/internal/core/ports/driven"
	"github.com/custodia-labs/notesync/internal/core/ports/driving"
)

// Ensure NoteSyncService implements the interface.
var _ driving.NoteSyncService = (*NoteSyncService)(nil)

// NoteSyncService loads the note and the saved configuration, then hands
// both to the orchestrator.
type NoteSyncService struct {
	notes        driven.NoteStore
	settings     driving.SyncSettingsService
	orchestrator driving.SyncOrchestrator
	bridge       driven.NotesBridge
}

// NewNoteSyncService creates a new note sync service.
// bridge serves the Apple Notes probes and may be nil when no scripted
// destination is wired.
func NewNoteSyncService(
	notes driven.NoteStore,
	settings driving.SyncSettingsService,
	orchestrator driving.SyncOrchestrator,
	bridge driven.NotesBridge,
) *NoteSyncService {
	return &NoteSyncService{
		notes:        notes,
		settings:     settings,
		orchestrator: orchestrator,
		bridge:       bridge,
	}
}

// SyncNow exports the note and returns the first destination failure.
func (s *NoteSyncService) SyncNow(ctx context.Context) error {
	content, cfg, err := s.load(ctx)
	if err != nil {
		return err
	}
	return s.orchestrator.SyncAll(ctx, content, cfg)
}

// SyncOutcomes exports the note and returns every destination's result.
func (s *NoteSyncService) SyncOutcomes(ctx context.Context) ([]domain.SyncOutcome, error) {
	content, cfg, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return s.orchestrator.SyncOutcomes(ctx, content, cfg), nil
}

// TestSync runs the first enabled destination and reports the result.
func (s *NoteSyncService) TestSync(ctx context.Context) (domain.SyncTestResult, error) {
	content, cfg, err := s.load(ctx)
	if err != nil {
		return domain.SyncTestResult{}, err
	}
	return s.orchestrator.TestSync(ctx, content, cfg), nil
}

// ListCollections lists the Apple Notes folders.
func (s *NoteSyncService) ListCollections(ctx context.Context) ([]string, error) {
	if s.bridge == nil {
		return nil, domain.NewPlatformUnsupportedError("Apple Notes is not available")
	}
	return s.bridge.ListCollections(ctx)
}

// CheckAvailability probes the Apple Notes automation bridge.
func (s *NoteSyncService) CheckAvailability(ctx context.Context) error {
	if s.bridge == nil {
		return domain.NewPlatformUnsupportedError("Apple Notes is not available")
	}
	return s.bridge.CheckAvailability(ctx)
}

// Note returns the current note HTML.
func (s *NoteSyncService) Note(ctx context.Context) (string, error) {
	content, err := s.notes.Read(ctx)
	if err != nil {
		return "", fmt.Errorf("read note: %w", err)
	}
	return content, nil
}

// SetNote replaces the stored note.
func (s *NoteSyncService) SetNote(ctx context.Context, content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: note content is empty", domain.ErrInvalidInput)
	}
	if err := s.notes.Write(ctx, content); err != nil {
		return fmt.Errorf("write note: %w", err)
	}
	return nil
}

// NotePath returns the file backing the note.
func (s *NoteSyncService) NotePath() string {
	return s.notes.Path()
}

// load reads content and configuration once for a single call.
// The configuration is validated so a rule violation fails before any write.
func (s *NoteSyncService) load(ctx context.Context) (string, domain.SyncConfiguration, error) {
	cfg, err := s.settings.Get()
	if err != nil {
		return "", domain.SyncConfiguration{}, fmt.Errorf("load sync settings: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return "", domain.SyncConfiguration{}, &domain.SyncError{
			Kind:   domain.KindNotConfigured,
			Detail: err.Error(),
			Err:    err,
		}
	}

	content, err := s.Note(ctx)
	if err != nil {
		return "", domain.SyncConfiguration{}, err
	}
	return content, cfg, nil
}
