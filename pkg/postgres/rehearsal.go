package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ciraganenicole/choir-registry/pkg/core/model"
	"github.com/ciraganenicole/choir-registry/pkg/db"
)

// CreateRehearsal persists a draft rehearsal's scalar fields and session
// musicians in one transaction and returns a copy with the assigned id. Song
// plans go through the subresource calls.
func (d *DB) CreateRehearsal(ctx context.Context, r *model.Rehearsal) (*model.Rehearsal, error) {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	created := *r
	err = tx.QueryRow(ctx, `
		INSERT INTO rehearsals (
			title, rehearsal_date, location, duration_minutes, type,
			objectives, notes, feedback, is_template,
			performance_id, rehearsal_lead_id, shift_lead_id, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`, r.Title, r.Date, r.Location, r.DurationMinutes, string(r.Type),
		r.Objectives, r.Notes, r.Feedback, r.IsTemplate,
		r.PerformanceID, r.RehearsalLeadID, r.ShiftLeadID, string(r.Status),
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert rehearsal: %w", err)
	}

	if err := insertSessionMusicians(ctx, tx, created.ID, sessionMusicianRows(r.SessionMusicians)); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit rehearsal insert: %w", err)
	}
	return &created, nil
}

// GetRehearsal returns the combined-shape read: rehearsal scalars with song
// plans and session musicians inlined.
func (d *DB) GetRehearsal(ctx context.Context, id int) (*db.RehearsalRecord, error) {
	var rec db.RehearsalRecord
	err := d.pool.QueryRow(ctx, `
		SELECT id, title, rehearsal_date, location, duration_minutes, type,
		       objectives, notes, feedback, is_template,
		       performance_id, rehearsal_lead_id, shift_lead_id, status, is_promoted
		FROM rehearsals
		WHERE id = $1
	`, id).Scan(
		&rec.ID, &rec.Title, &rec.Date, &rec.Location, &rec.DurationMinutes, &rec.Type,
		&rec.Objectives, &rec.Notes, &rec.Feedback, &rec.IsTemplate,
		&rec.PerformanceID, &rec.RehearsalLeadID, &rec.ShiftLeadID, &rec.Status, &rec.IsPromoted,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query rehearsal %d: %w", id, err)
	}

	songs, err := d.querySongRows(ctx, id)
	if err != nil {
		return nil, err
	}
	rec.SongPlans = songs

	musicians, err := d.querySessionMusicians(ctx, id)
	if err != nil {
		return nil, err
	}
	rec.SessionMusicians = musicians

	return &rec, nil
}

// UpdateRehearsal applies a partial update. Absent patch fields are left
// untouched. A non-nil SessionMusicians list replaces the stored rows.
func (d *DB) UpdateRehearsal(ctx context.Context, id int, patch db.RehearsalPatch) error {
	set := newSetClause()
	addSet(set, "title", patch.Title)
	addSet(set, "rehearsal_date", patch.Date)
	addSet(set, "location", patch.Location)
	addSet(set, "duration_minutes", patch.DurationMinutes)
	addSet(set, "type", patch.Type)
	addSet(set, "objectives", patch.Objectives)
	addSet(set, "notes", patch.Notes)
	addSet(set, "feedback", patch.Feedback)
	addSet(set, "performance_id", patch.PerformanceID)
	addSet(set, "rehearsal_lead_id", patch.RehearsalLeadID)
	addSet(set, "shift_lead_id", patch.ShiftLeadID)
	addSet(set, "status", patch.Status)
	addSet(set, "is_promoted", patch.IsPromoted)
	if set.empty() && patch.SessionMusicians == nil {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if !set.empty() {
		tag, err := tx.Exec(ctx,
			fmt.Sprintf(`UPDATE rehearsals SET %s WHERE id = $%d`, set.sql(), set.next()),
			append(set.args(), id)...)
		if err != nil {
			return fmt.Errorf("failed to update rehearsal %d: %w", id, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("rehearsal %d not found", id)
		}
	}

	if patch.SessionMusicians != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM session_musicians WHERE rehearsal_id = $1`, id); err != nil {
			return fmt.Errorf("failed to clear session musicians for rehearsal %d: %w", id, err)
		}
		if err := insertSessionMusicians(ctx, tx, id, *patch.SessionMusicians); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit rehearsal update: %w", err)
	}
	return nil
}

// DeleteRehearsal removes a rehearsal; song plans and session musicians
// cascade.
func (d *DB) DeleteRehearsal(ctx context.Context, id int) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM rehearsals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete rehearsal %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("rehearsal %d not found", id)
	}
	return nil
}

func insertSessionMusicians(ctx context.Context, tx pgx.Tx, rehearsalID int, musicians []db.SessionMusicianRecord) error {
	for _, m := range musicians {
		_, err := tx.Exec(ctx, `
			INSERT INTO session_musicians (
				rehearsal_id, user_id, instrument, custom_instrument, is_accompanist,
				position, time_allocated, needs_practice, practice_notes,
				accompaniment_notes, solo_notes
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, rehearsalID, m.UserID, m.Instrument, m.CustomInstrument, m.IsAccompanist,
			m.Order, m.TimeAllocated, m.NeedsPractice, m.PracticeNotes,
			m.AccompanimentNotes, m.SoloNotes)
		if err != nil {
			return fmt.Errorf("failed to insert session musician for rehearsal %d: %w", rehearsalID, err)
		}
	}
	return nil
}

func sessionMusicianRows(musicians []model.SessionMusician) []db.SessionMusicianRecord {
	rows := make([]db.SessionMusicianRecord, len(musicians))
	for i, m := range musicians {
		rows[i] = db.SessionMusicianRecord{
			UserID:             m.UserID,
			Instrument:         string(m.Instrument),
			CustomInstrument:   m.CustomInstrument,
			IsAccompanist:      m.IsAccompanist,
			Order:              m.Order,
			TimeAllocated:      m.TimeAllocated,
			NeedsPractice:      m.NeedsPractice,
			PracticeNotes:      m.PracticeNotes,
			AccompanimentNotes: m.AccompanimentNotes,
			SoloNotes:          m.SoloNotes,
		}
	}
	return rows
}

func (d *DB) querySessionMusicians(ctx context.Context, rehearsalID int) ([]db.SessionMusicianRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT user_id, instrument, custom_instrument, is_accompanist, position,
		       time_allocated, needs_practice, practice_notes, accompaniment_notes, solo_notes
		FROM session_musicians
		WHERE rehearsal_id = $1
		ORDER BY position
	`, rehearsalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query session musicians: %w", err)
	}
	defer rows.Close()

	var musicians []db.SessionMusicianRecord
	for rows.Next() {
		var m db.SessionMusicianRecord
		if err := rows.Scan(
			&m.UserID, &m.Instrument, &m.CustomInstrument, &m.IsAccompanist, &m.Order,
			&m.TimeAllocated, &m.NeedsPractice, &m.PracticeNotes, &m.AccompanimentNotes, &m.SoloNotes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan session musician: %w", err)
		}
		musicians = append(musicians, m)
	}
	return musicians, rows.Err()
}
