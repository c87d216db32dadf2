package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ciraganenicole/choir-registry/pkg/core/model"
	"github.com/ciraganenicole/choir-registry/pkg/core/normalize"
	"github.com/ciraganenicole/choir-registry/pkg/core/refdata"
	"github.com/ciraganenicole/choir-registry/pkg/db"
)

// SongPlanStore defines the boundary operations for the song-plan
// subresource.
type SongPlanStore interface {
	GetRehearsal(ctx context.Context, id int) (*db.RehearsalRecord, error)
	AddSongToRehearsal(ctx context.Context, rehearsalID int, plan *model.SongPlan) error
	UpdateRehearsalSong(ctx context.Context, rehearsalID, rehearsalSongID int, patch db.SongPlanPatch) (*db.SongRecord, error)
	DeleteRehearsalSong(ctx context.Context, rehearsalID, rehearsalSongID int) error
	FetchRehearsalSongs(ctx context.Context, rehearsalID int) (*db.RehearsalSongsResult, error)
}

// AddSongPlan attaches a song to a persisted rehearsal. When no explicit
// order is supplied, the plan goes after the current last song. A draft
// rehearsal cannot own persisted song plans; build it with the initial songs
// and CreateRehearsal instead.
func AddSongPlan(ctx context.Context, store SongPlanStore, logger *zap.Logger, rehearsalID int, plan model.SongPlan) (*model.SongPlan, error) {
	if rehearsalID <= 0 {
		return nil, ValidationErrors{"rehearsalId": "rehearsal is not persisted"}
	}
	if plan.SongID <= 0 {
		return nil, ValidationErrors{"songId": "a catalog song must be selected"}
	}

	rec, err := store.GetRehearsal(ctx, rehearsalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rehearsal %d: %w", rehearsalID, err)
	}
	rehearsal := normalize.Rehearsal(rec, nil)

	if plan.Order <= 0 || orderTaken(rehearsal, plan.Order) {
		plan.Order = rehearsal.NextSongOrder()
	}

	logger.Info("Adding song to rehearsal",
		zap.Int("rehearsal_id", rehearsalID),
		zap.Int("song_id", plan.SongID),
		zap.Int("order", plan.Order))

	if err := store.AddSongToRehearsal(ctx, rehearsalID, &plan); err != nil {
		return nil, fmt.Errorf("failed to add song %d to rehearsal %d: %w", plan.SongID, rehearsalID, err)
	}
	return &plan, nil
}

// UpdateSongPlan applies a partial update to one song plan. Every field
// except the catalog song reference may change; patches carry no song id by
// construction. None of the first-save rule groups re-run here.
func UpdateSongPlan(
	ctx context.Context,
	store SongPlanStore,
	logger *zap.Logger,
	res *refdata.Resolver,
	rehearsalID, rehearsalSongID int,
	patch db.SongPlanPatch,
) (*model.SongPlan, error) {
	if rehearsalID <= 0 || rehearsalSongID <= 0 {
		return nil, ValidationErrors{"id": "rehearsal and song plan must be persisted"}
	}

	logger.Debug("Updating song plan",
		zap.Int("rehearsal_id", rehearsalID),
		zap.Int("rehearsal_song_id", rehearsalSongID))

	rec, err := store.UpdateRehearsalSong(ctx, rehearsalID, rehearsalSongID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update song plan %d on rehearsal %d: %w", rehearsalSongID, rehearsalID, err)
	}

	plans := normalize.SongPlans([]db.SongRecord{*rec}, res)
	return &plans[0], nil
}

// DeleteSongPlan removes a song plan after the per-call permission check:
// the caller must be the plan's adder, the rehearsal's lead, or hold an
// elevated role. A refused delete mutates nothing.
func DeleteSongPlan(ctx context.Context, store SongPlanStore, logger *zap.Logger, caller model.User, rehearsalID, rehearsalSongID int) error {
	if rehearsalID <= 0 || rehearsalSongID <= 0 {
		return ValidationErrors{"id": "rehearsal and song plan must be persisted"}
	}

	rec, err := store.GetRehearsal(ctx, rehearsalID)
	if err != nil {
		return fmt.Errorf("failed to fetch rehearsal %d: %w", rehearsalID, err)
	}
	rehearsal := normalize.Rehearsal(rec, nil)

	plan := rehearsal.FindSongPlan(rehearsalSongID)
	if plan == nil {
		return fmt.Errorf("song plan %d not found on rehearsal %d", rehearsalSongID, rehearsalID)
	}

	if !CanDeleteSongPlan(caller, rehearsal, plan) {
		logger.Warn("Song plan delete refused",
			zap.Int("rehearsal_id", rehearsalID),
			zap.Int("rehearsal_song_id", rehearsalSongID),
			zap.Int("caller_id", caller.ID))
		return &PermissionError{Action: fmt.Sprintf("delete song plan %d", rehearsalSongID)}
	}

	logger.Info("Deleting song plan",
		zap.Int("rehearsal_id", rehearsalID),
		zap.Int("rehearsal_song_id", rehearsalSongID))

	if err := store.DeleteRehearsalSong(ctx, rehearsalID, rehearsalSongID); err != nil {
		return fmt.Errorf("failed to delete song plan %d from rehearsal %d: %w", rehearsalSongID, rehearsalID, err)
	}
	return nil
}

// CanDeleteSongPlan evaluates the delete permission for one call. It is
// never cached; role or lead changes take effect on the next call.
func CanDeleteSongPlan(caller model.User, rehearsal *model.Rehearsal, plan *model.SongPlan) bool {
	if caller.Role.IsElevated() {
		return true
	}
	if caller.ID > 0 && caller.ID == rehearsal.RehearsalLeadID {
		return true
	}
	return caller.ID > 0 && caller.ID == plan.AddedByID
}

// LoadSongPlans reads a rehearsal's songs through the separated read path
// and normalizes them. The combined path arrives via GetRehearsal plus
// normalize.Rehearsal; both paths yield the same canonical plans.
func LoadSongPlans(ctx context.Context, store SongPlanStore, logger *zap.Logger, res *refdata.Resolver, rehearsalID int) ([]model.SongPlan, error) {
	if rehearsalID <= 0 {
		return nil, ValidationErrors{"rehearsalId": "rehearsal is not persisted"}
	}

	result, err := store.FetchRehearsalSongs(ctx, rehearsalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch songs for rehearsal %d: %w", rehearsalID, err)
	}

	plans := normalize.Separated(result, res)
	logger.Debug("Loaded song plans",
		zap.Int("rehearsal_id", rehearsalID),
		zap.Int("count", len(plans)))
	return plans, nil
}

func orderTaken(r *model.Rehearsal, order int) bool {
	for _, sp := range r.SongPlans {
		if sp.Order == order {
			return true
		}
	}
	return false
}
