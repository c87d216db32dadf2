package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ciraganenicole/choir-registry/pkg/core/model"
)

// GetUsers returns the user directory snapshot.
func (d *DB) GetUsers(ctx context.Context) ([]model.User, error) {
	rows, err := d.pool.Query(ctx, `SELECT id, name, role FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		var role string
		if err := rows.Scan(&u.ID, &u.Name, &role); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		u.Role = model.Role(role)
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetSongs returns the song catalog snapshot.
func (d *DB) GetSongs(ctx context.Context) ([]model.Song, error) {
	rows, err := d.pool.Query(ctx, `SELECT id, title, composer, genre FROM songs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query songs: %w", err)
	}
	defer rows.Close()

	var songs []model.Song
	for rows.Next() {
		var s model.Song
		if err := rows.Scan(&s.ID, &s.Title, &s.Composer, &s.Genre); err != nil {
			return nil, fmt.Errorf("failed to scan song: %w", err)
		}
		songs = append(songs, s)
	}
	return songs, rows.Err()
}

// GetActiveShift returns the active duty shift covering the given date, or
// nil when no shift context applies.
func (d *DB) GetActiveShift(ctx context.Context, date time.Time) (*model.DutyShift, error) {
	var shift model.DutyShift
	var status string
	err := d.pool.QueryRow(ctx, `
		SELECT id, shift_date, supervisor_id, status
		FROM duty_shifts
		WHERE shift_date = $1::date AND status = 'Active'
		ORDER BY id
		LIMIT 1
	`, date).Scan(&shift.ID, &shift.Date, &shift.SupervisorID, &status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query active shift: %w", err)
	}
	shift.Status = model.ShiftStatus(status)
	return &shift, nil
}

// ValidateShift checks that a shift exists and is neither stale nor closed.
func (d *DB) ValidateShift(ctx context.Context, shiftID int) error {
	var shiftDate time.Time
	var status string
	err := d.pool.QueryRow(ctx,
		`SELECT shift_date, status FROM duty_shifts WHERE id = $1`,
		shiftID).Scan(&shiftDate, &status)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("duty shift %d does not exist", shiftID)
	}
	if err != nil {
		return fmt.Errorf("failed to query duty shift %d: %w", shiftID, err)
	}

	if model.ShiftStatus(status).IsClosed() {
		return fmt.Errorf("duty shift %d is %s", shiftID, status)
	}
	if status == string(model.ShiftScheduled) && shiftDate.Before(time.Now().Truncate(24*time.Hour)) {
		return fmt.Errorf("duty shift %d expired on %s", shiftID, shiftDate.Format("2006-01-02"))
	}
	return nil
}

// CreatePerformanceFromRehearsal creates the performance record for a
// rehearsal, or returns the existing one when equivalent content was already
// written. Duplicate handling lives here, not in the promotion workflow.
func (d *DB) CreatePerformanceFromRehearsal(ctx context.Context, rehearsalID int) (*model.Performance, error) {
	var p model.Performance
	err := d.pool.QueryRow(ctx, `
		INSERT INTO performances (rehearsal_id, performance_date)
		SELECT r.id, r.rehearsal_date
		FROM rehearsals r
		WHERE r.id = $1
		ON CONFLICT (rehearsal_id) DO UPDATE SET rehearsal_id = EXCLUDED.rehearsal_id
		RETURNING id, rehearsal_id, performance_date
	`, rehearsalID).Scan(&p.ID, &p.RehearsalID, &p.Date)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("rehearsal %d does not exist", rehearsalID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create performance for rehearsal %d: %w", rehearsalID, err)
	}
	return &p, nil
}
