package postgres

import (
	"context"
	"fmt"

	"github.com/ciraganenicole/choir-registry/pkg/core/model"
)

// FetchTemplates returns all rehearsal templates.
func (d *DB) FetchTemplates(ctx context.Context) ([]model.RehearsalTemplate, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, title, type, duration_minutes, objectives, category,
		       tags, estimated_attendees, difficulty, recurrence
		FROM rehearsal_templates
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query templates: %w", err)
	}
	defer rows.Close()

	var templates []model.RehearsalTemplate
	for rows.Next() {
		var tpl model.RehearsalTemplate
		var typ, difficulty string
		if err := rows.Scan(
			&tpl.ID, &tpl.Title, &typ, &tpl.DurationMinutes, &tpl.Objectives, &tpl.Category,
			&tpl.Tags, &tpl.EstimatedAttendees, &difficulty, &tpl.Recurrence,
		); err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		tpl.Type = model.RehearsalType(typ)
		tpl.Difficulty = model.Difficulty(difficulty)
		templates = append(templates, tpl)
	}
	return templates, rows.Err()
}

// CreateTemplate inserts a template and returns it with the assigned id.
func (d *DB) CreateTemplate(ctx context.Context, tpl *model.RehearsalTemplate) (*model.RehearsalTemplate, error) {
	created := *tpl
	err := d.pool.QueryRow(ctx, `
		INSERT INTO rehearsal_templates (
			title, type, duration_minutes, objectives, category,
			tags, estimated_attendees, difficulty, recurrence
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, tpl.Title, string(tpl.Type), tpl.DurationMinutes, tpl.Objectives, tpl.Category,
		tagArray(tpl.Tags), tpl.EstimatedAttendees, string(tpl.Difficulty), tpl.Recurrence,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert template: %w", err)
	}
	return &created, nil
}

// UpdateTemplate overwrites a template's fields.
func (d *DB) UpdateTemplate(ctx context.Context, id int, tpl *model.RehearsalTemplate) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE rehearsal_templates
		SET title = $2, type = $3, duration_minutes = $4, objectives = $5,
		    category = $6, tags = $7, estimated_attendees = $8,
		    difficulty = $9, recurrence = $10
		WHERE id = $1
	`, id, tpl.Title, string(tpl.Type), tpl.DurationMinutes, tpl.Objectives,
		tpl.Category, tagArray(tpl.Tags), tpl.EstimatedAttendees,
		string(tpl.Difficulty), tpl.Recurrence)
	if err != nil {
		return fmt.Errorf("failed to update template %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("template %d not found", id)
	}
	return nil
}

// DeleteTemplate removes a template. Rehearsals instantiated from it keep
// their copied fields.
func (d *DB) DeleteTemplate(ctx context.Context, id int) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM rehearsal_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete template %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("template %d not found", id)
	}
	return nil
}

func tagArray(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
