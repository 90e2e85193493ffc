package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/notesync/internal/core/domain"
	"github.com/custodia-labs/notesync/internal/core/ports/driven"
	"github.com/custodia-labs/notesync/internal/core/ports/driving"
	"github.com/custodia-labs/notesync/internal/logger"
)

// Ensure SyncOrchestrator implements the interface.
var _ driving.SyncOrchestrator = (*SyncOrchestrator)(nil)

// SyncOrchestrator exports note content to each enabled destination in turn.
type SyncOrchestrator struct {
	destinations []driven.Destination
}

// NewSyncOrchestrator creates a new sync orchestrator.
// Destinations run in slice order; the wiring passes Markdown before
// Apple Notes. Nil entries are ignored.
func NewSyncOrchestrator(destinations ...driven.Destination) *SyncOrchestrator {
	kept := make([]driven.Destination, 0, len(destinations))
	for _, d := range destinations {
		if d != nil {
			kept = append(kept, d)
		}
	}
	return &SyncOrchestrator{destinations: kept}
}

// SyncAll exports to every enabled destination and returns the first
// failure, in destination order.
func (o *SyncOrchestrator) SyncAll(ctx context.Context, content string, cfg domain.SyncConfiguration) error {
	if !cfg.IsAnyEnabled() {
		return nil
	}

	for _, outcome := range o.SyncOutcomes(ctx, content, cfg) {
		if outcome.Err != nil {
			return outcome.Err
		}
	}
	return nil
}

// SyncOutcomes exports to every enabled destination and records each result.
// A failed destination does not stop the ones after it.
func (o *SyncOrchestrator) SyncOutcomes(ctx context.Context, content string, cfg domain.SyncConfiguration) []domain.SyncOutcome {
	outcomes := make([]domain.SyncOutcome, 0, len(o.destinations))
	if !cfg.IsAnyEnabled() {
		return outcomes
	}

	runID := uuid.NewString()
	logger.Section("Sync " + runID)

	for _, dest := range o.destinations {
		if !cfg.IsEnabled(dest.Target()) {
			continue
		}
		outcomes = append(outcomes, o.export(ctx, dest, content, cfg))
	}

	return outcomes
}

// TestSync exports to the first enabled destination only and reports how
// it went. Later destinations are left untouched.
func (o *SyncOrchestrator) TestSync(ctx context.Context, content string, cfg domain.SyncConfiguration) domain.SyncTestResult {
	for _, dest := range o.destinations {
		if !cfg.IsEnabled(dest.Target()) {
			continue
		}
		logger.Section("Test sync " + uuid.NewString())
		outcome := o.export(ctx, dest, content, cfg)
		return domain.NewSyncTestResult(&outcome)
	}
	return domain.NewSyncTestResult(nil)
}

func (o *SyncOrchestrator) export(ctx context.Context, dest driven.Destination, content string, cfg domain.SyncConfiguration) domain.SyncOutcome {
	target := dest.Target()
	start := time.Now()
	err := dest.Export(ctx, content, cfg)
	if err != nil {
		logger.Warn("%s sync failed after %s: %v", target.Label(), time.Since(start).Round(time.Millisecond), err)
	} else {
		logger.Info("%s sync completed in %s", target.Label(), time.Since(start).Round(time.Millisecond))
	}
	return domain.SyncOutcome{Target: target, Err: err}
}
