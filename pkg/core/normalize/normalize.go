// Package normalize converts the two wire shapes a rehearsal's songs can
// arrive in, combined (details inlined on the rehearsal) and separated
// (catalog reference plus detail bundle), into the canonical model types.
//
// Normalization is pure and total: it never returns an error. Absent or
// malformed nested data degrades to empty collections or placeholder labels.
package normalize

import (
	"sort"

	"github.com/ciraganenicole/choir-registry/pkg/core/model"
	"github.com/ciraganenicole/choir-registry/pkg/core/refdata"
	"github.com/ciraganenicole/choir-registry/pkg/db"
)

// SongPlans normalizes a list of song records of either shape, returning the
// canonical plans sorted by their explicit order field. A nil resolver is
// tolerated; every name then resolves to a placeholder.
func SongPlans(records []db.SongRecord, res *refdata.Resolver) []model.SongPlan {
	if res == nil {
		res = refdata.NewResolver(nil, nil)
	}

	plans := make([]model.SongPlan, 0, len(records))
	for i := range records {
		plans = append(plans, songPlan(&records[i], res))
	}

	sort.SliceStable(plans, func(a, b int) bool {
		return plans[a].Order < plans[b].Order
	})
	return plans
}

// Rehearsal normalizes a combined-shape rehearsal read into the aggregate.
func Rehearsal(rec *db.RehearsalRecord, res *refdata.Resolver) *model.Rehearsal {
	if rec == nil {
		return nil
	}

	status := model.Status(rec.Status)
	if !status.IsValid() {
		status = model.StatusPlanning
	}

	r := &model.Rehearsal{
		ID:              rec.ID,
		Title:           rec.Title,
		Date:            rec.Date,
		Location:        rec.Location,
		DurationMinutes: rec.DurationMinutes,
		Type:            model.RehearsalType(rec.Type),
		Objectives:      rec.Objectives,
		Notes:           rec.Notes,
		Feedback:        rec.Feedback,
		IsTemplate:      rec.IsTemplate,
		PerformanceID:   rec.PerformanceID,
		RehearsalLeadID: rec.RehearsalLeadID,
		ShiftLeadID:     rec.ShiftLeadID,
		Status:          status,
		IsPromoted:      rec.IsPromoted,
		SongPlans:       SongPlans(rec.SongPlans, res),
	}
	for _, m := range rec.SessionMusicians {
		r.SessionMusicians = append(r.SessionMusicians, sessionMusician(m))
	}
	return r
}

// Separated normalizes the separated-shape read path. The rehearsal header is
// ignored here; callers already hold the aggregate from the combined path.
func Separated(result *db.RehearsalSongsResult, res *refdata.Resolver) []model.SongPlan {
	if result == nil {
		return nil
	}
	return SongPlans(result.RehearsalSongs, res)
}

func songPlan(rec *db.SongRecord, res *refdata.Resolver) model.SongPlan {
	detail := &rec.SongDetail
	songID := rec.SongID
	title := rec.Title

	if rec.IsSeparated() {
		songID = rec.Song.ID
		title = rec.Song.Title
		if rec.Details != nil {
			detail = rec.Details
		} else {
			detail = &db.SongDetail{}
		}
	}
	if title == "" {
		title = res.ResolveSongTitle(songID)
	}

	ids, names := extractLeadSingers(detail)
	if len(names) == 0 && len(ids) > 0 {
		names = res.ResolveUserNames(ids)
	}
	// A source may carry name records with blank names; resolve those
	// individually rather than keeping the empty string.
	for i := range names {
		if names[i] == "" && i < len(ids) {
			names[i] = res.ResolveUserName(ids[i])
		}
	}

	plan := model.SongPlan{
		RehearsalSongID: rec.RehearsalSongID,
		SongID:          songID,
		SongTitle:       title,
		Difficulty:      model.Difficulty(detail.Difficulty),
		MusicalKey:      model.MusicalKey(detail.MusicalKey),
		NeedsWork:       detail.NeedsWork,
		Order:           detail.Order,
		TimeAllocated:   detail.TimeAllocated,
		FocusPoints:     detail.FocusPoints,
		Notes:           detail.Notes,
		LeadSingerIDs:   ids,
		LeadSingerNames: dedupe(names),
		ChorusMemberIDs: detail.ChorusMemberIDs,
		AddedByID:       detail.AddedByID,
	}

	for _, vp := range detail.VoiceParts {
		plan.VoiceParts = append(plan.VoiceParts, voicePart(vp, res))
	}
	for _, m := range detail.Musicians {
		plan.Musicians = append(plan.Musicians, model.SongMusician{
			UserID:           m.UserID,
			Instrument:       model.Instrument(m.Instrument),
			CustomInstrument: m.CustomInstrument,
			IsAccompanist:    m.IsAccompanist,
			Order:            m.Order,
			TimeAllocated:    m.TimeAllocated,
			Notes:            m.Notes,
			SoloStartMinute:  m.SoloStartMinute,
			SoloEndMinute:    m.SoloEndMinute,
		})
	}
	return plan
}

// voicePart probes member name records first, then member ids through the
// resolver. Neither yielding data leaves the part with zero members, which
// renders as unassigned rather than failing.
func voicePart(rec db.VoicePartRecord, res *refdata.Resolver) model.VoicePartAssignment {
	vp := model.VoicePartAssignment{
		VoicePartType: model.SanitizeVoicePartType(rec.VoicePartType),
		NeedsWork:     rec.NeedsWork,
		FocusPoints:   rec.FocusPoints,
		Notes:         rec.Notes,
	}

	switch {
	case len(rec.Members) > 0:
		for _, m := range rec.Members {
			vp.MemberIDs = append(vp.MemberIDs, m.ID)
			name := m.Name
			if name == "" {
				name = res.ResolveUserName(m.ID)
			}
			vp.MemberNames = append(vp.MemberNames, name)
		}
	case len(rec.MemberIDs) > 0:
		vp.MemberIDs = rec.MemberIDs
		vp.MemberNames = res.ResolveUserNames(rec.MemberIDs)
	}
	return vp
}

func sessionMusician(rec db.SessionMusicianRecord) model.SessionMusician {
	return model.SessionMusician{
		UserID:             rec.UserID,
		Instrument:         model.Instrument(rec.Instrument),
		CustomInstrument:   rec.CustomInstrument,
		IsAccompanist:      rec.IsAccompanist,
		Order:              rec.Order,
		TimeAllocated:      rec.TimeAllocated,
		NeedsPractice:      rec.NeedsPractice,
		PracticeNotes:      rec.PracticeNotes,
		AccompanimentNotes: rec.AccompanimentNotes,
		SoloNotes:          rec.SoloNotes,
	}
}

// dedupe drops repeated names, keeping first occurrence order.
func dedupe(names []string) []string {
	if len(names) < 2 {
		return names
	}
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
