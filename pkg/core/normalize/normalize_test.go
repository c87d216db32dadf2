package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciraganenicole/choir-registry/pkg/core/model"
	"github.com/ciraganenicole/choir-registry/pkg/core/refdata"
	"github.com/ciraganenicole/choir-registry/pkg/db"
)

func testResolver() *refdata.Resolver {
	return refdata.NewResolver(
		[]model.User{
			{ID: 1, Name: "Alice Uwase"},
			{ID: 2, Name: "Jean Bosco"},
			{ID: 3, Name: "Claudine Mukamana"},
		},
		[]model.Song{
			{ID: 10, Title: "Amazing Grace"},
			{ID: 11, Title: "How Great Thou Art"},
		},
	)
}

func TestSongPlans_CombinedShape(t *testing.T) {
	records := []db.SongRecord{
		{
			RehearsalSongID: 100,
			SongID:          10,
			SongDetail: db.SongDetail{
				Difficulty:    "Intermediate",
				MusicalKey:    "G",
				Order:         1,
				TimeAllocated: 20,
				LeadSingerIDs: []int{1, 2},
			},
		},
	}

	plans := SongPlans(records, testResolver())
	require.Len(t, plans, 1)

	assert.Equal(t, 10, plans[0].SongID)
	assert.Equal(t, "Amazing Grace", plans[0].SongTitle)
	assert.Equal(t, []int{1, 2}, plans[0].LeadSingerIDs)
	assert.Equal(t, []string{"Alice Uwase", "Jean Bosco"}, plans[0].LeadSingerNames)
}

func TestSongPlans_SeparatedShape(t *testing.T) {
	records := []db.SongRecord{
		{
			RehearsalSongID: 100,
			Song:            &db.SongRef{ID: 10, Title: "Amazing Grace"},
			Details: &db.SongDetail{
				Order:         1,
				TimeAllocated: 20,
				LeadSingerIDs: []int{1, 2},
			},
		},
	}

	plans := SongPlans(records, testResolver())
	require.Len(t, plans, 1)
	assert.Equal(t, 10, plans[0].SongID)
	assert.Equal(t, "Amazing Grace", plans[0].SongTitle)
	assert.Equal(t, []int{1, 2}, plans[0].LeadSingerIDs)
}

// The same logical song data must normalize identically through both wire
// shapes.
func TestSongPlans_ShapeIndependence(t *testing.T) {
	detail := db.SongDetail{
		Difficulty:    "Advanced",
		MusicalKey:    "Eb",
		Order:         2,
		TimeAllocated: 25,
		LeadSingerIDs: []int{1, 3},
		VoiceParts: []db.VoicePartRecord{
			{VoicePartType: "Alto", MemberIDs: []int{2, 3}},
		},
	}

	combined := []db.SongRecord{{RehearsalSongID: 5, SongID: 11, Title: "How Great Thou Art", SongDetail: detail}}
	separated := []db.SongRecord{{
		RehearsalSongID: 5,
		Song:            &db.SongRef{ID: 11, Title: "How Great Thou Art"},
		Details:         &detail,
	}}

	fromCombined := SongPlans(combined, testResolver())
	fromSeparated := SongPlans(separated, testResolver())

	require.Len(t, fromCombined, 1)
	require.Len(t, fromSeparated, 1)
	assert.Equal(t, fromCombined[0].SongID, fromSeparated[0].SongID)
	assert.Equal(t, fromCombined[0].LeadSingerIDs, fromSeparated[0].LeadSingerIDs)
	assert.Equal(t, fromCombined[0].LeadSingerNames, fromSeparated[0].LeadSingerNames)
	require.Len(t, fromSeparated[0].VoiceParts, 1)
	assert.Equal(t, fromCombined[0].VoiceParts[0].MemberIDs, fromSeparated[0].VoiceParts[0].MemberIDs)
	assert.Equal(t, fromCombined[0].VoiceParts[0].MemberNames, fromSeparated[0].VoiceParts[0].MemberNames)
}

// The probe chain order is behavior, not an implementation detail: a
// populated lower-priority source must lose to any higher-priority one.
func TestLeadSingerProbeOrder(t *testing.T) {
	tests := []struct {
		name    string
		detail  db.SongDetail
		wantIDs []int
	}{
		{
			name: "explicit list beats everything",
			detail: db.SongDetail{
				LeadSingerIDs: []int{1},
				LeadSingers:   []db.UserRef{{ID: 2, Name: "Jean Bosco"}},
				LeadSinger:    &db.UserRef{ID: 3},
				LeadSingerID:  3,
				VocalLeadIDs:  []int{3},
				SoloistIDs:    []int{3},
			},
			wantIDs: []int{1},
		},
		{
			name: "alternate-name list beats single object",
			detail: db.SongDetail{
				LeadSingers:  []db.UserRef{{ID: 2, Name: "Jean Bosco"}},
				LeadSinger:   &db.UserRef{ID: 3},
				LeadSingerID: 3,
			},
			wantIDs: []int{2},
		},
		{
			name: "single object beats single id",
			detail: db.SongDetail{
				LeadSinger:   &db.UserRef{ID: 3, Name: "Claudine Mukamana"},
				LeadSingerID: 1,
			},
			wantIDs: []int{3},
		},
		{
			name:    "single id beats legacy lists",
			detail:  db.SongDetail{LeadSingerID: 2, VocalLeadIDs: []int{1}, SoloistIDs: []int{3}},
			wantIDs: []int{2},
		},
		{
			name:    "vocal leads beat soloists",
			detail:  db.SongDetail{VocalLeadIDs: []int{1}, SoloistIDs: []int{3}},
			wantIDs: []int{1},
		},
		{
			name:    "soloists as last resort",
			detail:  db.SongDetail{SoloistIDs: []int{3}},
			wantIDs: []int{3},
		},
		{
			name:    "no source yields no leads",
			detail:  db.SongDetail{},
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, _ := extractLeadSingers(&tt.detail)
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestStrategyOrderMatchesFieldPriority(t *testing.T) {
	want := []string{"leadSingerIds", "leadSingers", "leadSinger", "leadSingerId", "vocalLeadIds", "soloistIds"}
	require.Len(t, LeadSingerStrategies, len(want))
	for i, src := range LeadSingerStrategies {
		assert.Equal(t, want[i], src.Name)
	}
}

func TestSongPlans_LeadSingerNamesAreDeduplicated(t *testing.T) {
	records := []db.SongRecord{{
		SongID: 10,
		SongDetail: db.SongDetail{
			Order:         1,
			LeadSingerIDs: []int{1, 1, 99, 98},
		},
	}}

	plans := SongPlans(records, testResolver())
	require.Len(t, plans, 1)
	// Two unknown ids resolve to one placeholder entry after de-duplication.
	assert.Equal(t, []string{"Alice Uwase", refdata.UnknownUser}, plans[0].LeadSingerNames)
}

func TestSongPlans_BlankLeadSingerNameResolvedByID(t *testing.T) {
	records := []db.SongRecord{{
		SongID: 10,
		SongDetail: db.SongDetail{
			Order: 1,
			LeadSingers: []db.UserRef{
				{ID: 1, Name: ""},
				{ID: 2, Name: "Jean Bosco"},
				{ID: 99, Name: ""},
			},
		},
	}}

	plans := SongPlans(records, testResolver())
	require.Len(t, plans, 1)
	assert.Equal(t, []int{1, 2, 99}, plans[0].LeadSingerIDs)
	assert.Equal(t, []string{"Alice Uwase", "Jean Bosco", refdata.UnknownUser}, plans[0].LeadSingerNames)
}

func TestVoicePart_MembersProbedBeforeMemberIDs(t *testing.T) {
	records := []db.SongRecord{{
		SongID: 10,
		SongDetail: db.SongDetail{
			Order: 1,
			VoiceParts: []db.VoicePartRecord{{
				VoicePartType: "Tenor",
				Members:       []db.UserRef{{ID: 2, Name: "Jean Bosco"}},
				MemberIDs:     []int{1, 3},
			}},
		},
	}}

	plans := SongPlans(records, testResolver())
	require.Len(t, plans[0].VoiceParts, 1)
	vp := plans[0].VoiceParts[0]
	assert.Equal(t, []int{2}, vp.MemberIDs)
	assert.Equal(t, []string{"Jean Bosco"}, vp.MemberNames)
}

func TestVoicePart_MemberIDsResolvedWhenNoNameRecords(t *testing.T) {
	records := []db.SongRecord{{
		SongID: 10,
		SongDetail: db.SongDetail{
			Order: 1,
			VoiceParts: []db.VoicePartRecord{{
				VoicePartType: "Bass",
				MemberIDs:     []int{1, 3},
			}},
		},
	}}

	plans := SongPlans(records, testResolver())
	vp := plans[0].VoiceParts[0]
	assert.Equal(t, []int{1, 3}, vp.MemberIDs)
	assert.Equal(t, []string{"Alice Uwase", "Claudine Mukamana"}, vp.MemberNames)
}

func TestVoicePart_NoMemberSourceYieldsUnassigned(t *testing.T) {
	records := []db.SongRecord{{
		SongID: 10,
		SongDetail: db.SongDetail{
			Order:      1,
			VoiceParts: []db.VoicePartRecord{{VoicePartType: "Soprano"}},
		},
	}}

	plans := SongPlans(records, testResolver())
	vp := plans[0].VoiceParts[0]
	assert.Empty(t, vp.MemberIDs)
	assert.Empty(t, vp.MemberNames)
}

func TestVoicePart_UnknownTypeCoercesToSoprano(t *testing.T) {
	records := []db.SongRecord{{
		SongID: 10,
		SongDetail: db.SongDetail{
			Order:      1,
			VoiceParts: []db.VoicePartRecord{{VoicePartType: "Countertenor"}},
		},
	}}

	plans := SongPlans(records, testResolver())
	assert.Equal(t, model.VoicePartSoprano, plans[0].VoiceParts[0].VoicePartType)
}

func TestSongPlans_SortedByExplicitOrder(t *testing.T) {
	records := []db.SongRecord{
		{SongID: 11, SongDetail: db.SongDetail{Order: 3}},
		{SongID: 10, SongDetail: db.SongDetail{Order: 1}},
	}

	plans := SongPlans(records, testResolver())
	require.Len(t, plans, 2)
	assert.Equal(t, 10, plans[0].SongID)
	assert.Equal(t, 11, plans[1].SongID)
}

func TestSongPlans_NilResolverAndEmptyInput(t *testing.T) {
	assert.Empty(t, SongPlans(nil, nil))

	records := []db.SongRecord{{SongID: 42, SongDetail: db.SongDetail{Order: 1, LeadSingerIDs: []int{9}}}}
	plans := SongPlans(records, nil)
	require.Len(t, plans, 1)
	assert.Equal(t, refdata.UnknownSong, plans[0].SongTitle)
	assert.Equal(t, []string{refdata.UnknownUser}, plans[0].LeadSingerNames)
}

func TestSongPlans_SeparatedWithMissingDetails(t *testing.T) {
	records := []db.SongRecord{{
		RehearsalSongID: 7,
		Song:            &db.SongRef{ID: 10, Title: "Amazing Grace"},
	}}

	plans := SongPlans(records, testResolver())
	require.Len(t, plans, 1)
	assert.Equal(t, 10, plans[0].SongID)
	assert.Empty(t, plans[0].LeadSingerIDs)
	assert.Empty(t, plans[0].VoiceParts)
}

func TestRehearsal_CombinedRead(t *testing.T) {
	rec := &db.RehearsalRecord{
		ID:              1,
		Title:           "Thursday Practice",
		Date:            time.Date(2026, 9, 3, 18, 0, 0, 0, time.UTC),
		Location:        "Main Hall",
		DurationMinutes: 90,
		Type:            "General Practice",
		RehearsalLeadID: 1,
		Status:          "In Progress",
		SongPlans: []db.SongRecord{
			{SongID: 10, SongDetail: db.SongDetail{Order: 1, LeadSingerIDs: []int{2}}},
		},
		SessionMusicians: []db.SessionMusicianRecord{
			{UserID: 3, Instrument: "Piano", IsAccompanist: true},
		},
	}

	r := Rehearsal(rec, testResolver())
	require.NotNil(t, r)
	assert.Equal(t, model.StatusInProgress, r.Status)
	require.Len(t, r.SongPlans, 1)
	assert.Equal(t, "Amazing Grace", r.SongPlans[0].SongTitle)
	require.Len(t, r.SessionMusicians, 1)
	assert.True(t, r.SessionMusicians[0].IsAccompanist)
}

func TestRehearsal_UnknownStatusDefaultsToPlanning(t *testing.T) {
	r := Rehearsal(&db.RehearsalRecord{ID: 1, Status: "???"}, nil)
	assert.Equal(t, model.StatusPlanning, r.Status)
}

func TestRehearsal_NilRecord(t *testing.T) {
	assert.Nil(t, Rehearsal(nil, nil))
}

func TestSeparated(t *testing.T) {
	assert.Nil(t, Separated(nil, nil))

	result := &db.RehearsalSongsResult{
		RehearsalInfo: db.RehearsalInfo{ID: 1, Title: "Thursday Practice"},
		RehearsalSongs: []db.SongRecord{
			{Song: &db.SongRef{ID: 10, Title: "Amazing Grace"}, Details: &db.SongDetail{Order: 1}},
		},
	}
	plans := Separated(result, testResolver())
	require.Len(t, plans, 1)
	assert.Equal(t, "Amazing Grace", plans[0].SongTitle)
}
