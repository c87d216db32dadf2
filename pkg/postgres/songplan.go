package postgres

import (
	"context"
	"fmt"

	"github.com/ciraganenicole/choir-registry/pkg/core/model"
	"github.com/ciraganenicole/choir-registry/pkg/db"
)

// AddSongToRehearsal inserts one song plan and fills in its subresource id.
func (d *DB) AddSongToRehearsal(ctx context.Context, rehearsalID int, plan *model.SongPlan) error {
	err := d.pool.QueryRow(ctx, `
		INSERT INTO rehearsal_songs (
			rehearsal_id, song_id, difficulty, musical_key, needs_work,
			song_order, time_allocated, focus_points, notes, added_by_id,
			lead_singer_ids, chorus_member_ids, voice_parts, musicians
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`, rehearsalID, plan.SongID, string(plan.Difficulty), string(plan.MusicalKey), plan.NeedsWork,
		plan.Order, plan.TimeAllocated, plan.FocusPoints, plan.Notes, plan.AddedByID,
		intArray(plan.LeadSingerIDs), intArray(plan.ChorusMemberIDs),
		voicePartRecords(plan.VoiceParts), musicianRecords(plan.Musicians),
	).Scan(&plan.RehearsalSongID)
	if err != nil {
		return fmt.Errorf("failed to insert song %d into rehearsal %d: %w", plan.SongID, rehearsalID, err)
	}
	return nil
}

// AddMultipleSongsToRehearsal inserts song plans in one transaction; either
// all of them land or none do.
func (d *DB) AddMultipleSongsToRehearsal(ctx context.Context, rehearsalID int, plans []model.SongPlan) error {
	if len(plans) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for i := range plans {
		plan := &plans[i]
		err := tx.QueryRow(ctx, `
			INSERT INTO rehearsal_songs (
				rehearsal_id, song_id, difficulty, musical_key, needs_work,
				song_order, time_allocated, focus_points, notes, added_by_id,
				lead_singer_ids, chorus_member_ids, voice_parts, musicians
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			RETURNING id
		`, rehearsalID, plan.SongID, string(plan.Difficulty), string(plan.MusicalKey), plan.NeedsWork,
			plan.Order, plan.TimeAllocated, plan.FocusPoints, plan.Notes, plan.AddedByID,
			intArray(plan.LeadSingerIDs), intArray(plan.ChorusMemberIDs),
			voicePartRecords(plan.VoiceParts), musicianRecords(plan.Musicians),
		).Scan(&plan.RehearsalSongID)
		if err != nil {
			return fmt.Errorf("failed to insert song %d into rehearsal %d: %w", plan.SongID, rehearsalID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit song inserts: %w", err)
	}
	return nil
}

// UpdateRehearsalSong applies a partial update to one song plan and returns
// the updated row. The catalog song reference is not updatable.
func (d *DB) UpdateRehearsalSong(ctx context.Context, rehearsalID, rehearsalSongID int, patch db.SongPlanPatch) (*db.SongRecord, error) {
	set := newSetClause()
	addSet(set, "difficulty", patch.Difficulty)
	addSet(set, "musical_key", patch.MusicalKey)
	addSet(set, "needs_work", patch.NeedsWork)
	addSet(set, "song_order", patch.Order)
	addSet(set, "time_allocated", patch.TimeAllocated)
	addSet(set, "focus_points", patch.FocusPoints)
	addSet(set, "notes", patch.Notes)
	addSet(set, "lead_singer_ids", patch.LeadSingerIDs)
	addSet(set, "chorus_member_ids", patch.ChorusMemberIDs)
	addSet(set, "voice_parts", patch.VoiceParts)
	addSet(set, "musicians", patch.Musicians)

	if !set.empty() {
		args := append(set.args(), rehearsalID, rehearsalSongID)
		tag, err := d.pool.Exec(ctx,
			fmt.Sprintf(`UPDATE rehearsal_songs SET %s WHERE rehearsal_id = $%d AND id = $%d`,
				set.sql(), set.next(), set.next()+1),
			args...)
		if err != nil {
			return nil, fmt.Errorf("failed to update song plan %d: %w", rehearsalSongID, err)
		}
		if tag.RowsAffected() == 0 {
			return nil, fmt.Errorf("song plan %d not found on rehearsal %d", rehearsalSongID, rehearsalID)
		}
	}

	songs, err := d.querySongRows(ctx, rehearsalID)
	if err != nil {
		return nil, err
	}
	for i := range songs {
		if songs[i].RehearsalSongID == rehearsalSongID {
			return &songs[i], nil
		}
	}
	return nil, fmt.Errorf("song plan %d not found on rehearsal %d", rehearsalSongID, rehearsalID)
}

// DeleteRehearsalSong removes one song plan.
func (d *DB) DeleteRehearsalSong(ctx context.Context, rehearsalID, rehearsalSongID int) error {
	tag, err := d.pool.Exec(ctx,
		`DELETE FROM rehearsal_songs WHERE rehearsal_id = $1 AND id = $2`,
		rehearsalID, rehearsalSongID)
	if err != nil {
		return fmt.Errorf("failed to delete song plan %d: %w", rehearsalSongID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("song plan %d not found on rehearsal %d", rehearsalSongID, rehearsalID)
	}
	return nil
}

// FetchRehearsalSongs returns the separated-shape read: a rehearsal header
// plus one record per song pairing the catalog reference with the detail
// bundle.
func (d *DB) FetchRehearsalSongs(ctx context.Context, rehearsalID int) (*db.RehearsalSongsResult, error) {
	var info db.RehearsalInfo
	err := d.pool.QueryRow(ctx, `
		SELECT id, title, rehearsal_date, status FROM rehearsals WHERE id = $1
	`, rehearsalID).Scan(&info.ID, &info.Title, &info.Date, &info.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to query rehearsal %d: %w", rehearsalID, err)
	}

	rows, err := d.pool.Query(ctx, `
		SELECT rs.id, rs.difficulty, rs.musical_key, rs.needs_work, rs.song_order,
		       rs.time_allocated, rs.focus_points, rs.notes, rs.added_by_id,
		       rs.lead_singer_ids, rs.chorus_member_ids, rs.voice_parts, rs.musicians,
		       s.id, s.title, s.composer, s.genre
		FROM rehearsal_songs rs
		JOIN songs s ON s.id = rs.song_id
		WHERE rs.rehearsal_id = $1
		ORDER BY rs.song_order
	`, rehearsalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rehearsal songs: %w", err)
	}
	defer rows.Close()

	result := &db.RehearsalSongsResult{RehearsalInfo: info}
	for rows.Next() {
		var rec db.SongRecord
		song := &db.SongRef{}
		detail := &db.SongDetail{}
		if err := rows.Scan(
			&rec.RehearsalSongID, &detail.Difficulty, &detail.MusicalKey, &detail.NeedsWork, &detail.Order,
			&detail.TimeAllocated, &detail.FocusPoints, &detail.Notes, &detail.AddedByID,
			&detail.LeadSingerIDs, &detail.ChorusMemberIDs, &detail.VoiceParts, &detail.Musicians,
			&song.ID, &song.Title, &song.Composer, &song.Genre,
		); err != nil {
			return nil, fmt.Errorf("failed to scan rehearsal song: %w", err)
		}
		rec.Song = song
		rec.Details = detail
		result.RehearsalSongs = append(result.RehearsalSongs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rehearsal songs: %w", err)
	}
	return result, nil
}

// querySongRows reads a rehearsal's songs in the combined shape.
func (d *DB) querySongRows(ctx context.Context, rehearsalID int) ([]db.SongRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT rs.id, rs.song_id, s.title,
		       rs.difficulty, rs.musical_key, rs.needs_work, rs.song_order,
		       rs.time_allocated, rs.focus_points, rs.notes, rs.added_by_id,
		       rs.lead_singer_ids, rs.chorus_member_ids, rs.voice_parts, rs.musicians
		FROM rehearsal_songs rs
		LEFT JOIN songs s ON s.id = rs.song_id
		WHERE rs.rehearsal_id = $1
		ORDER BY rs.song_order
	`, rehearsalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rehearsal songs: %w", err)
	}
	defer rows.Close()

	var songs []db.SongRecord
	for rows.Next() {
		var rec db.SongRecord
		var title *string
		if err := rows.Scan(
			&rec.RehearsalSongID, &rec.SongID, &title,
			&rec.Difficulty, &rec.MusicalKey, &rec.NeedsWork, &rec.Order,
			&rec.TimeAllocated, &rec.FocusPoints, &rec.Notes, &rec.AddedByID,
			&rec.LeadSingerIDs, &rec.ChorusMemberIDs, &rec.VoiceParts, &rec.Musicians,
		); err != nil {
			return nil, fmt.Errorf("failed to scan rehearsal song: %w", err)
		}
		if title != nil {
			rec.Title = *title
		}
		songs = append(songs, rec)
	}
	return songs, rows.Err()
}

// intArray keeps empty id sets as empty postgres arrays rather than NULL.
func intArray(ids []int) []int {
	if ids == nil {
		return []int{}
	}
	return ids
}

func voicePartRecords(parts []model.VoicePartAssignment) []db.VoicePartRecord {
	records := make([]db.VoicePartRecord, 0, len(parts))
	for _, vp := range parts {
		records = append(records, db.VoicePartRecord{
			VoicePartType: string(vp.VoicePartType),
			MemberIDs:     vp.MemberIDs,
			NeedsWork:     vp.NeedsWork,
			FocusPoints:   vp.FocusPoints,
			Notes:         vp.Notes,
		})
	}
	return records
}

func musicianRecords(musicians []model.SongMusician) []db.SongMusicianRecord {
	records := make([]db.SongMusicianRecord, 0, len(musicians))
	for _, m := range musicians {
		records = append(records, db.SongMusicianRecord{
			UserID:           m.UserID,
			Instrument:       string(m.Instrument),
			CustomInstrument: m.CustomInstrument,
			IsAccompanist:    m.IsAccompanist,
			Order:            m.Order,
			TimeAllocated:    m.TimeAllocated,
			Notes:            m.Notes,
			SoloStartMinute:  m.SoloStartMinute,
			SoloEndMinute:    m.SoloEndMinute,
		})
	}
	return records
}
