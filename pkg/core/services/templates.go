package services

import (
	"context"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/ciraganenicole/choir-registry/internal/config"
	"github.com/ciraganenicole/choir-registry/pkg/core/model"
)

// TemplateStore defines the boundary operations for rehearsal templates.
type TemplateStore interface {
	FetchTemplates(ctx context.Context) ([]model.RehearsalTemplate, error)
	CreateTemplate(ctx context.Context, tpl *model.RehearsalTemplate) (*model.RehearsalTemplate, error)
	UpdateTemplate(ctx context.Context, id int, tpl *model.RehearsalTemplate) error
	DeleteTemplate(ctx context.Context, id int) error
}

// ListTemplates returns all rehearsal templates.
func ListTemplates(ctx context.Context, store TemplateStore, logger *zap.Logger) ([]model.RehearsalTemplate, error) {
	templates, err := store.FetchTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch templates: %w", err)
	}
	logger.Debug("Fetched templates", zap.Int("count", len(templates)))
	return templates, nil
}

// SaveTemplate creates or updates a template depending on whether it carries
// an id yet.
func SaveTemplate(ctx context.Context, store TemplateStore, logger *zap.Logger, tpl *model.RehearsalTemplate) (*model.RehearsalTemplate, error) {
	if err := validateTemplate(tpl); err != nil {
		return nil, err
	}

	if tpl.ID > 0 {
		logger.Info("Updating template", zap.Int("template_id", tpl.ID))
		if err := store.UpdateTemplate(ctx, tpl.ID, tpl); err != nil {
			return nil, fmt.Errorf("failed to update template %d: %w", tpl.ID, err)
		}
		return tpl, nil
	}

	logger.Info("Creating template", zap.String("title", tpl.Title))
	created, err := store.CreateTemplate(ctx, tpl)
	if err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return created, nil
}

// DeleteTemplate removes a template. Rehearsals created from it are
// unaffected; instantiation never shares identity.
func DeleteTemplate(ctx context.Context, store TemplateStore, logger *zap.Logger, id int) error {
	if id <= 0 {
		return ValidationErrors{"id": "template is not persisted"}
	}
	logger.Info("Deleting template", zap.Int("template_id", id))
	if err := store.DeleteTemplate(ctx, id); err != nil {
		return fmt.Errorf("failed to delete template %d: %w", id, err)
	}
	return nil
}

// InstantiateTemplate copies a template's scalar fields into a fresh draft
// rehearsal dated at the given time. The draft has no identity and never
// mutates the template.
func InstantiateTemplate(tpl *model.RehearsalTemplate, date time.Time) *model.Rehearsal {
	return &model.Rehearsal{
		Title:           tpl.Title,
		Date:            date,
		DurationMinutes: tpl.DurationMinutes,
		Type:            tpl.Type,
		Objectives:      tpl.Objectives,
		Status:          model.StatusPlanning,
	}
}

// ScheduleFromTemplate expands a template's recurrence rule into up to count
// dated drafts starting on or after from. Templates without a recurrence
// rule yield a single draft on the from date.
func ScheduleFromTemplate(logger *zap.Logger, tpl *model.RehearsalTemplate, from time.Time, count int) ([]*model.Rehearsal, error) {
	if count <= 0 {
		return nil, fmt.Errorf("draft count must be positive, got %d", count)
	}
	if tpl.Recurrence == "" {
		return []*model.Rehearsal{InstantiateTemplate(tpl, from)}, nil
	}

	rule, err := rrule.StrToRRule(tpl.Recurrence)
	if err != nil {
		return nil, fmt.Errorf("invalid recurrence rule on template %d: %w", tpl.ID, err)
	}
	rule.DTStart(from)

	drafts := make([]*model.Rehearsal, 0, count)
	next := rule.Iterator()
	for len(drafts) < count {
		occurrence, ok := next()
		if !ok {
			break
		}
		if occurrence.Before(from) {
			continue
		}
		drafts = append(drafts, InstantiateTemplate(tpl, occurrence))
	}

	logger.Info("Scheduled drafts from template",
		zap.Int("template_id", tpl.ID),
		zap.String("rule", tpl.Recurrence),
		zap.Int("draft_count", len(drafts)))
	return drafts, nil
}

// ScheduleSeries expands every configured rehearsal series into dated drafts.
// Each override names a stored template by title and supplies its own
// recurrence rule, which takes the place of the template's Recurrence field.
func ScheduleSeries(
	ctx context.Context,
	store TemplateStore,
	logger *zap.Logger,
	series []config.SeriesOverride,
	from time.Time,
	defaultCount int,
) ([]*model.Rehearsal, error) {
	if len(series) == 0 {
		return nil, nil
	}
	if defaultCount <= 0 {
		defaultCount = 1
	}

	templates, err := store.FetchTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch templates: %w", err)
	}
	byTitle := make(map[string]*model.RehearsalTemplate, len(templates))
	for i := range templates {
		byTitle[templates[i].Title] = &templates[i]
	}

	var drafts []*model.Rehearsal
	for _, override := range series {
		tpl, ok := byTitle[override.TemplateTitle]
		if !ok {
			return nil, fmt.Errorf("no template titled %q for configured series", override.TemplateTitle)
		}

		seriesTpl := *tpl
		seriesTpl.Recurrence = override.RRule
		count := defaultCount
		if override.Count != nil {
			count = *override.Count
		}

		expanded, err := ScheduleFromTemplate(logger, &seriesTpl, from, count)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, expanded...)
	}

	logger.Info("Scheduled configured series",
		zap.Int("series_count", len(series)),
		zap.Int("draft_count", len(drafts)))
	return drafts, nil
}

func validateTemplate(tpl *model.RehearsalTemplate) error {
	errs := ValidationErrors{}
	if tpl.Title == "" {
		errs.Add("title", "a title is required")
	}
	if tpl.DurationMinutes < 15 {
		errs.Add("duration", "duration must be at least 15 minutes")
	}
	if tpl.Difficulty != "" && !tpl.Difficulty.IsValid() {
		errs.Add("difficulty", fmt.Sprintf("%q is not a difficulty", tpl.Difficulty))
	}
	if tpl.Recurrence != "" {
		if _, err := rrule.StrToRRule(tpl.Recurrence); err != nil {
			errs.Add("recurrence", fmt.Sprintf("invalid recurrence rule: %v", err))
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
