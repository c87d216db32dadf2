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

// ViewRehearsalStore defines the boundary operations for the combined read
// path plus the directory snapshots behind name resolution.
type ViewRehearsalStore interface {
	GetRehearsal(ctx context.Context, id int) (*db.RehearsalRecord, error)
	GetUsers(ctx context.Context) ([]model.User, error)
	GetSongs(ctx context.Context) ([]model.Song, error)
}

// ViewRehearsal fetches one rehearsal through the combined read path and
// normalizes it with names resolved. The returned resolver is valid for the
// rest of the caller's session; the snapshots behind it are read-only.
func ViewRehearsal(ctx context.Context, store ViewRehearsalStore, logger *zap.Logger, id int) (*model.Rehearsal, *refdata.Resolver, error) {
	if id <= 0 {
		return nil, nil, ValidationErrors{"id": "rehearsal is not persisted"}
	}

	users, err := store.GetUsers(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch user directory: %w", err)
	}
	songs, err := store.GetSongs(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch song catalog: %w", err)
	}
	res := refdata.NewResolver(users, songs)

	rec, err := store.GetRehearsal(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch rehearsal %d: %w", id, err)
	}

	rehearsal := normalize.Rehearsal(rec, res)
	logger.Debug("Loaded rehearsal",
		zap.Int("rehearsal_id", id),
		zap.String("status", string(rehearsal.Status)),
		zap.Int("song_count", len(rehearsal.SongPlans)))
	return rehearsal, res, nil
}
