package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ciraganenicole/choir-registry/pkg/core/model"
	"github.com/ciraganenicole/choir-registry/pkg/db"
)

// UpdateRehearsalStore defines the boundary operations for partial updates.
type UpdateRehearsalStore interface {
	GetRehearsal(ctx context.Context, id int) (*db.RehearsalRecord, error)
	UpdateRehearsal(ctx context.Context, id int, patch db.RehearsalPatch) error
}

// UpdateRehearsal applies a partial update to a persisted rehearsal. The
// promotion flag is owned by the promotion workflow and cannot be patched
// through this path. A failed boundary call leaves nothing committed; the
// caller's in-memory state is still its last known-good value.
func UpdateRehearsal(ctx context.Context, store UpdateRehearsalStore, logger *zap.Logger, id int, patch db.RehearsalPatch) error {
	if id <= 0 {
		return ValidationErrors{"id": "rehearsal is not persisted"}
	}
	if patch.IsPromoted != nil {
		return ValidationErrors{"isPromoted": "the promotion flag is managed by the promotion workflow"}
	}
	if patch.Status != nil {
		return ValidationErrors{"status": "use the status update operation"}
	}
	if patch.DurationMinutes != nil && *patch.DurationMinutes < 15 {
		return ValidationErrors{"duration": "duration must be at least 15 minutes"}
	}

	logger.Debug("Updating rehearsal", zap.Int("rehearsal_id", id))

	if err := store.UpdateRehearsal(ctx, id, patch); err != nil {
		return fmt.Errorf("failed to update rehearsal %d: %w", id, err)
	}
	return nil
}

// UpdateRehearsalStatus moves a rehearsal to a new lifecycle status. Any
// valid status may follow any other: status is corrector-editable by a lead
// user, so Planning can jump straight to Completed and a terminal status can
// be reopened. Leaving Completed after promotion never clears the promotion
// flag.
func UpdateRehearsalStatus(ctx context.Context, store UpdateRehearsalStore, logger *zap.Logger, id int, next model.Status) error {
	if id <= 0 {
		return ValidationErrors{"id": "rehearsal is not persisted"}
	}
	if !next.IsValid() {
		return ValidationErrors{"status": fmt.Sprintf("%q is not a rehearsal status", next)}
	}

	rec, err := store.GetRehearsal(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch rehearsal %d: %w", id, err)
	}

	current := model.Status(rec.Status)
	if !current.CanTransitionTo(next) {
		return ValidationErrors{"status": fmt.Sprintf("cannot move from %q to %q", current, next)}
	}

	logger.Info("Updating rehearsal status",
		zap.Int("rehearsal_id", id),
		zap.String("from", string(current)),
		zap.String("to", string(next)))

	status := string(next)
	if err := store.UpdateRehearsal(ctx, id, db.RehearsalPatch{Status: &status}); err != nil {
		return fmt.Errorf("failed to update status of rehearsal %d: %w", id, err)
	}
	return nil
}

// DeleteRehearsalStore defines the boundary delete operation.
type DeleteRehearsalStore interface {
	DeleteRehearsal(ctx context.Context, id int) error
}

// DeleteRehearsal removes a rehearsal through the external delete
// collaborator. The engine itself never hard-deletes.
func DeleteRehearsal(ctx context.Context, store DeleteRehearsalStore, logger *zap.Logger, id int) error {
	if id <= 0 {
		return ValidationErrors{"id": "rehearsal is not persisted"}
	}
	logger.Info("Deleting rehearsal", zap.Int("rehearsal_id", id))
	if err := store.DeleteRehearsal(ctx, id); err != nil {
		return fmt.Errorf("failed to delete rehearsal %d: %w", id, err)
	}
	return nil
}
