package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPlanning.IsValid())
	assert.True(t, StatusInProgress.IsValid())
	assert.True(t, StatusCompleted.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, Status("Done").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStatus_AnyValidTransitionIsAllowed(t *testing.T) {
	statuses := []Status{StatusPlanning, StatusInProgress, StatusCompleted, StatusCancelled}
	for _, from := range statuses {
		for _, to := range statuses {
			assert.True(t, from.CanTransitionTo(to), "%s -> %s should be allowed", from, to)
		}
	}
}

func TestStatus_TransitionToInvalidIsRejected(t *testing.T) {
	assert.False(t, StatusPlanning.CanTransitionTo(Status("Archived")))
	assert.False(t, Status("bogus").CanTransitionTo(StatusPlanning))
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPlanning.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
}

func TestSanitizeVoicePartType(t *testing.T) {
	assert.Equal(t, VoicePartAlto, SanitizeVoicePartType("Alto"))
	assert.Equal(t, VoicePartMezzoSoprano, SanitizeVoicePartType("Mezzo-Soprano"))

	// Values outside the enumeration coerce to Soprano rather than failing.
	assert.Equal(t, VoicePartSoprano, SanitizeVoicePartType("Countertenor"))
	assert.Equal(t, VoicePartSoprano, SanitizeVoicePartType(""))
	assert.Equal(t, VoicePartSoprano, SanitizeVoicePartType("soprano"))
}

func TestRole_IsElevated(t *testing.T) {
	assert.True(t, RoleAdmin.IsElevated())
	assert.True(t, RoleSuperAdmin.IsElevated())
	assert.False(t, RoleLead.IsElevated())
	assert.False(t, RoleMember.IsElevated())
}

func TestRehearsal_NextSongOrder(t *testing.T) {
	r := &Rehearsal{}
	assert.Equal(t, 1, r.NextSongOrder())

	r.SongPlans = []SongPlan{{Order: 1}, {Order: 3}}
	assert.Equal(t, 4, r.NextSongOrder())
}

func TestRehearsal_TotalSongTime(t *testing.T) {
	r := &Rehearsal{SongPlans: []SongPlan{
		{TimeAllocated: 40},
		{TimeAllocated: 30},
	}}
	assert.Equal(t, 70, r.TotalSongTime())
}

func TestRehearsal_FindSongPlan(t *testing.T) {
	r := &Rehearsal{SongPlans: []SongPlan{
		{RehearsalSongID: 10, SongID: 1},
		{RehearsalSongID: 11, SongID: 2},
	}}

	plan := r.FindSongPlan(11)
	assert.NotNil(t, plan)
	assert.Equal(t, 2, plan.SongID)

	assert.Nil(t, r.FindSongPlan(99))
}

func TestRehearsal_IsPersisted(t *testing.T) {
	assert.False(t, (&Rehearsal{}).IsPersisted())
	assert.True(t, (&Rehearsal{ID: 7}).IsPersisted())
}
