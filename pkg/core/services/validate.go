package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ciraganenicole/choir-registry/pkg/core/model"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ShiftContext carries the duty-shift precondition state explicitly, rather
// than having validation read ambient state. A nil Shift means no shift
// context applies; the supervisor requirement is then waived.
type ShiftContext struct {
	Shift *model.DutyShift
}

// Active reports whether a duty shift gates this operation.
func (s ShiftContext) Active() bool {
	return s.Shift != nil
}

// ShiftValidator is the external shift-validation collaborator consulted by
// rule group 1.
type ShiftValidator interface {
	ValidateShift(ctx context.Context, shiftID int) error
}

// ValidateOptions tunes which rule groups apply to a given pass.
type ValidateOptions struct {
	// FirstSave enables the creation-only groups: the song time budget and
	// the per-song catalog/lead-singer checks. Subresource edits after
	// creation never re-run these.
	FirstSave bool
	// PerformancePrebound waives the performance-link requirement when the
	// caller was handed a performance id externally.
	PerformancePrebound bool
}

// rehearsalFields is the struct-tag carrier for the required-scalar group.
type rehearsalFields struct {
	Date            time.Time `validate:"required"`
	Location        string    `validate:"required"`
	DurationMinutes int       `validate:"min=15"`
	RehearsalLeadID int       `validate:"gt=0"`
}

// ValidateRehearsal runs the scheduling rule groups in order, short-circuiting
// on the first group with failures. All fields within a failing group are
// still collected so the caller sees every error from that pass. Returns
// ValidationErrors or nil.
func ValidateRehearsal(
	ctx context.Context,
	shifts ShiftValidator,
	logger *zap.Logger,
	r *model.Rehearsal,
	shiftCtx ShiftContext,
	opts ValidateOptions,
) error {
	logger.Debug("Validating rehearsal",
		zap.Int("rehearsal_id", r.ID),
		zap.Bool("first_save", opts.FirstSave),
		zap.Bool("shift_context", shiftCtx.Active()))

	// Group 1: duty-shift preconditions. Creating a rehearsal against an
	// invalid or closed shift is rejected before anything else is looked at.
	if shiftCtx.Active() {
		errs := ValidationErrors{}
		shift := shiftCtx.Shift

		if err := shifts.ValidateShift(ctx, shift.ID); err != nil {
			errs.Add("shift", fmt.Sprintf("duty shift is not valid: %v", err))
		}
		if shift.SupervisorID <= 0 {
			errs.Add("shiftSupervisor", "duty shift has no assigned supervisor")
		}
		if shift.Status.IsClosed() {
			errs.Add("shiftStatus", fmt.Sprintf("duty shift is %s and cannot host a rehearsal", shift.Status))
		}
		if len(errs) > 0 {
			return errs
		}
	}

	// Group 2: required scalar fields, declared as validator tags.
	if err := validate.Struct(rehearsalFields{
		Date:            r.Date,
		Location:        r.Location,
		DurationMinutes: r.DurationMinutes,
		RehearsalLeadID: r.RehearsalLeadID,
	}); err != nil {
		errs := ValidationErrors{}
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("field validation failed: %w", err)
		}
		for _, fe := range fieldErrs {
			field, msg := describeFieldError(fe)
			errs.Add(field, msg)
		}
		return errs
	}

	// Group 3: supervisor selection, required only under an active shift.
	if shiftCtx.Active() && r.ShiftLeadID <= 0 {
		return ValidationErrors{"shiftLeadId": "a duty supervisor must be selected while a shift is active"}
	}

	// Group 4: performance link, unless pre-bound externally.
	if !opts.PerformancePrebound && r.PerformanceID <= 0 {
		return ValidationErrors{"performanceId": "a performance must be linked"}
	}

	if !opts.FirstSave {
		return nil
	}

	// Group 5: song time budget, first save only. Later song edits are a
	// separate flow with its own checks and never re-apply this guard.
	if total := r.TotalSongTime(); total > r.DurationMinutes {
		return ValidationErrors{
			"songPlans": fmt.Sprintf("total song time exceeds rehearsal duration (%d > %d)", total, r.DurationMinutes),
		}
	}

	// Group 6: each song must reference a catalog song and name at least one
	// lead singer. First save only, same asymmetry as group 5.
	errs := ValidationErrors{}
	for i, sp := range r.SongPlans {
		if sp.SongID <= 0 {
			errs.Add(fmt.Sprintf("songPlans[%d].songId", i), "a catalog song must be selected")
		}
		if len(sp.LeadSingerIDs) == 0 {
			errs.Add(fmt.Sprintf("songPlans[%d].leadSingers", i), "at least one lead singer is required")
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// describeFieldError maps a validator field error to the engine's field keys
// and user-facing wording.
func describeFieldError(fe validator.FieldError) (field, message string) {
	switch fe.StructField() {
	case "Date":
		return "date", "a date is required"
	case "Location":
		return "location", "a location is required"
	case "DurationMinutes":
		return "duration", "duration must be at least 15 minutes"
	case "RehearsalLeadID":
		return "rehearsalLeadId", "a rehearsal lead must be selected"
	default:
		return fe.StructField(), fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
