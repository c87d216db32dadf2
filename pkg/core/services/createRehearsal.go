package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ciraganenicole/choir-registry/pkg/core/model"
)

// CreateRehearsalStore defines the boundary operations needed to persist a
// new rehearsal with its initial song plans.
type CreateRehearsalStore interface {
	CreateRehearsal(ctx context.Context, r *model.Rehearsal) (*model.Rehearsal, error)
	AddMultipleSongsToRehearsal(ctx context.Context, rehearsalID int, plans []model.SongPlan) error
}

// CreateRehearsal validates a draft and persists it through the boundary,
// then persists its initial song plans as subresources. This is the only
// path that runs the first-save rule groups (time budget, per-song checks).
func CreateRehearsal(
	ctx context.Context,
	store CreateRehearsalStore,
	shifts ShiftValidator,
	logger *zap.Logger,
	draft *model.Rehearsal,
	shiftCtx ShiftContext,
	opts ValidateOptions,
) (*model.Rehearsal, error) {
	if draft.IsPersisted() {
		return nil, fmt.Errorf("rehearsal %d is already persisted; use update instead", draft.ID)
	}

	logger.Info("Creating rehearsal",
		zap.String("title", draft.Title),
		zap.Int("song_count", len(draft.SongPlans)))

	if draft.Status == "" {
		draft.Status = model.StatusPlanning
	}

	opts.FirstSave = true
	if err := ValidateRehearsal(ctx, shifts, logger, draft, shiftCtx, opts); err != nil {
		logger.Warn("Rehearsal validation failed", zap.Error(err))
		return nil, err
	}

	assignSongOrders(draft)

	created, err := store.CreateRehearsal(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("failed to create rehearsal: %w", err)
	}

	if len(draft.SongPlans) > 0 {
		for i := range draft.SongPlans {
			if draft.SongPlans[i].AddedByID == 0 {
				draft.SongPlans[i].AddedByID = created.RehearsalLeadID
			}
		}
		if err := store.AddMultipleSongsToRehearsal(ctx, created.ID, draft.SongPlans); err != nil {
			return nil, fmt.Errorf("rehearsal %d created but adding songs failed: %w", created.ID, err)
		}
		created.SongPlans = draft.SongPlans
	}

	logger.Info("Rehearsal created",
		zap.Int("rehearsal_id", created.ID),
		zap.String("status", string(created.Status)))
	return created, nil
}

// assignSongOrders fills in missing or colliding order values so that order
// stays unique within the rehearsal. Explicit non-colliding values are kept.
func assignSongOrders(r *model.Rehearsal) {
	used := make(map[int]bool, len(r.SongPlans))
	for i := range r.SongPlans {
		o := r.SongPlans[i].Order
		if o <= 0 || used[o] {
			o = r.NextSongOrder()
			for used[o] {
				o++
			}
			r.SongPlans[i].Order = o
		}
		used[o] = true
	}
}
