package db

import (
	"context"
	"time"

	"github.com/ciraganenicole/choir-registry/pkg/core/model"
)

// RehearsalStore defines the rehearsal-level collaborator operations.
type RehearsalStore interface {
	// CreateRehearsal persists a draft and returns it with ids assigned.
	CreateRehearsal(ctx context.Context, r *model.Rehearsal) (*model.Rehearsal, error)
	// GetRehearsal returns the combined-shape read of one rehearsal.
	GetRehearsal(ctx context.Context, id int) (*RehearsalRecord, error)
	UpdateRehearsal(ctx context.Context, id int, patch RehearsalPatch) error
	DeleteRehearsal(ctx context.Context, id int) error
}

// SongStore defines the song-plan subresource operations.
type SongStore interface {
	AddSongToRehearsal(ctx context.Context, rehearsalID int, plan *model.SongPlan) error
	AddMultipleSongsToRehearsal(ctx context.Context, rehearsalID int, plans []model.SongPlan) error
	UpdateRehearsalSong(ctx context.Context, rehearsalID, rehearsalSongID int, patch SongPlanPatch) (*SongRecord, error)
	DeleteRehearsalSong(ctx context.Context, rehearsalID, rehearsalSongID int) error
	// FetchRehearsalSongs returns the separated-shape read of a rehearsal's
	// songs.
	FetchRehearsalSongs(ctx context.Context, rehearsalID int) (*RehearsalSongsResult, error)
}

// PerformanceStore is the promotion write target. The store skips duplicate
// sub-entities itself when equivalent performance content already exists;
// callers treat any non-error response as success.
type PerformanceStore interface {
	CreatePerformanceFromRehearsal(ctx context.Context, rehearsalID int) (*model.Performance, error)
}

// TemplateStore defines the rehearsal-template CRUD surface.
type TemplateStore interface {
	FetchTemplates(ctx context.Context) ([]model.RehearsalTemplate, error)
	CreateTemplate(ctx context.Context, tpl *model.RehearsalTemplate) (*model.RehearsalTemplate, error)
	UpdateTemplate(ctx context.Context, id int, tpl *model.RehearsalTemplate) error
	DeleteTemplate(ctx context.Context, id int) error
}

// ShiftStore consults the external duty-roster subsystem.
type ShiftStore interface {
	// GetActiveShift returns the active shift covering the given date, or
	// nil when no shift context exists.
	GetActiveShift(ctx context.Context, date time.Time) (*model.DutyShift, error)
	// ValidateShift checks that a shift is neither invalid nor expired.
	ValidateShift(ctx context.Context, shiftID int) error
}

// DirectoryStore supplies the read-only snapshots behind the reference data
// resolver.
type DirectoryStore interface {
	GetUsers(ctx context.Context) ([]model.User, error)
	GetSongs(ctx context.Context) ([]model.Song, error)
}

// Database is the full collaborator boundary.
type Database interface {
	RehearsalStore
	SongStore
	PerformanceStore
	TemplateStore
	ShiftStore
	DirectoryStore
}
