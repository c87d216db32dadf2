package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ciraganenicole/choir-registry/pkg/core/model"
	"github.com/ciraganenicole/choir-registry/pkg/core/normalize"
	"github.com/ciraganenicole/choir-registry/pkg/db"
)

// PromoteStore defines the boundary operations for promotion.
type PromoteStore interface {
	GetRehearsal(ctx context.Context, id int) (*db.RehearsalRecord, error)
	CreatePerformanceFromRehearsal(ctx context.Context, rehearsalID int) (*model.Performance, error)
	UpdateRehearsal(ctx context.Context, id int, patch db.RehearsalPatch) error
}

// PromoteRehearsal converts a completed rehearsal into a performance record.
// Eligibility requires a persisted rehearsal linked to a performance target,
// with at least one song plan, in Completed status, not yet promoted.
//
// Ineligibility reasons surface in a fixed priority order that caller
// messaging depends on: already promoted first, then not completed, then the
// generic link-and-songs reason. Promotion is one-way: the promoted flag is
// sticky, so a second call is a no-op that returns the already-promoted
// error without creating a second performance.
func PromoteRehearsal(ctx context.Context, store PromoteStore, logger *zap.Logger, rehearsalID int) (*model.Performance, error) {
	if rehearsalID <= 0 {
		return nil, &EligibilityError{Reason: "cannot promote rehearsal: check the performance link and songs"}
	}

	rec, err := store.GetRehearsal(ctx, rehearsalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rehearsal %d: %w", rehearsalID, err)
	}
	rehearsal := normalize.Rehearsal(rec, nil)

	if rehearsal.IsPromoted {
		return nil, &EligibilityError{Reason: "rehearsal is already promoted"}
	}
	if rehearsal.Status != model.StatusCompleted {
		return nil, &EligibilityError{
			Reason: fmt.Sprintf("rehearsal must be completed before promotion, current status is %s", rehearsal.Status),
		}
	}
	if rehearsal.PerformanceID <= 0 || len(rehearsal.SongPlans) == 0 {
		return nil, &EligibilityError{Reason: "cannot promote rehearsal: check the performance link and songs"}
	}

	logger.Info("Promoting rehearsal",
		zap.Int("rehearsal_id", rehearsalID),
		zap.Int("performance_id", rehearsal.PerformanceID),
		zap.Int("song_count", len(rehearsal.SongPlans)))

	// The performance store skips duplicate sub-entities itself when
	// equivalent content already exists; any non-error response is success.
	performance, err := store.CreatePerformanceFromRehearsal(ctx, rehearsalID)
	if err != nil {
		return nil, fmt.Errorf("failed to create performance from rehearsal %d: %w", rehearsalID, err)
	}

	promoted := true
	if err := store.UpdateRehearsal(ctx, rehearsalID, db.RehearsalPatch{IsPromoted: &promoted}); err != nil {
		return nil, fmt.Errorf("performance %d created but marking rehearsal %d promoted failed: %w", performance.ID, rehearsalID, err)
	}

	logger.Info("Rehearsal promoted",
		zap.Int("rehearsal_id", rehearsalID),
		zap.Int("new_performance_id", performance.ID))
	return performance, nil
}
