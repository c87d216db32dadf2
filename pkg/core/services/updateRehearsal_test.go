package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ciraganenicole/choir-registry/pkg/core/model"
	"github.com/ciraganenicole/choir-registry/pkg/db"
)

// mockUpdateStore implements UpdateRehearsalStore for testing
type mockUpdateStore struct {
	rehearsal      *db.RehearsalRecord
	getErr         error
	updateErr      error
	appliedPatches []db.RehearsalPatch
}

func (m *mockUpdateStore) GetRehearsal(ctx context.Context, id int) (*db.RehearsalRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.rehearsal, nil
}

func (m *mockUpdateStore) UpdateRehearsal(ctx context.Context, id int, patch db.RehearsalPatch) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.appliedPatches = append(m.appliedPatches, patch)
	return nil
}

func TestUpdateRehearsal_PartialPatch(t *testing.T) {
	store := &mockUpdateStore{}
	location := "Side Chapel"
	duration := 60

	err := UpdateRehearsal(context.Background(), store, zap.NewNop(), 1, db.RehearsalPatch{
		Location:        &location,
		DurationMinutes: &duration,
	})
	require.NoError(t, err)
	require.Len(t, store.appliedPatches, 1)
	assert.Equal(t, "Side Chapel", *store.appliedPatches[0].Location)
	assert.Nil(t, store.appliedPatches[0].Title, "unset fields stay untouched")
}

func TestUpdateRehearsal_SessionMusiciansPatch(t *testing.T) {
	store := &mockUpdateStore{}
	musicians := []db.SessionMusicianRecord{
		{UserID: 3, Instrument: "Piano", IsAccompanist: true},
		{UserID: 4, Instrument: "Drums", Order: 1},
	}

	err := UpdateRehearsal(context.Background(), store, zap.NewNop(), 1, db.RehearsalPatch{SessionMusicians: &musicians})
	require.NoError(t, err)
	require.Len(t, store.appliedPatches, 1)
	require.NotNil(t, store.appliedPatches[0].SessionMusicians)
	assert.Len(t, *store.appliedPatches[0].SessionMusicians, 2)
}

func TestUpdateRehearsal_PromotionFlagNotPatchable(t *testing.T) {
	store := &mockUpdateStore{}
	promoted := true

	err := UpdateRehearsal(context.Background(), store, zap.NewNop(), 1, db.RehearsalPatch{IsPromoted: &promoted})
	require.Error(t, err)

	var vErrs ValidationErrors
	require.True(t, errors.As(err, &vErrs))
	assert.Contains(t, vErrs, "isPromoted")
	assert.Empty(t, store.appliedPatches)
}

func TestUpdateRehearsal_StatusNotPatchable(t *testing.T) {
	store := &mockUpdateStore{}
	status := string(model.StatusCompleted)

	err := UpdateRehearsal(context.Background(), store, zap.NewNop(), 1, db.RehearsalPatch{Status: &status})
	require.Error(t, err)

	var vErrs ValidationErrors
	require.True(t, errors.As(err, &vErrs))
	assert.Contains(t, vErrs, "status")
	assert.Empty(t, store.appliedPatches)
}

func TestUpdateRehearsal_DurationFloor(t *testing.T) {
	store := &mockUpdateStore{}
	duration := 10

	err := UpdateRehearsal(context.Background(), store, zap.NewNop(), 1, db.RehearsalPatch{DurationMinutes: &duration})
	require.Error(t, err)

	var vErrs ValidationErrors
	require.True(t, errors.As(err, &vErrs))
	assert.Contains(t, vErrs, "duration")
}

func TestUpdateRehearsal_RequiresPersistedID(t *testing.T) {
	err := UpdateRehearsal(context.Background(), &mockUpdateStore{}, zap.NewNop(), 0, db.RehearsalPatch{})
	assert.Error(t, err)
}

func TestUpdateRehearsalStatus_AnyValidTransition(t *testing.T) {
	// Status is corrector-editable: terminal statuses can be reopened and
	// Planning can jump straight to Completed.
	tests := []struct {
		from model.Status
		to   model.Status
	}{
		{model.StatusPlanning, model.StatusCompleted},
		{model.StatusCompleted, model.StatusPlanning},
		{model.StatusCancelled, model.StatusInProgress},
		{model.StatusInProgress, model.StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+" to "+string(tt.to), func(t *testing.T) {
			store := &mockUpdateStore{rehearsal: &db.RehearsalRecord{ID: 1, Status: string(tt.from)}}

			err := UpdateRehearsalStatus(context.Background(), store, zap.NewNop(), 1, tt.to)
			require.NoError(t, err)
			require.Len(t, store.appliedPatches, 1)
			require.NotNil(t, store.appliedPatches[0].Status)
			assert.Equal(t, string(tt.to), *store.appliedPatches[0].Status)
		})
	}
}

func TestUpdateRehearsalStatus_InvalidTarget(t *testing.T) {
	store := &mockUpdateStore{rehearsal: &db.RehearsalRecord{ID: 1, Status: string(model.StatusPlanning)}}

	err := UpdateRehearsalStatus(context.Background(), store, zap.NewNop(), 1, model.Status("Archived"))
	require.Error(t, err)

	var vErrs ValidationErrors
	require.True(t, errors.As(err, &vErrs))
	assert.Contains(t, vErrs, "status")
	assert.Empty(t, store.appliedPatches)
}

func TestUpdateRehearsalStatus_FetchError(t *testing.T) {
	store := &mockUpdateStore{getErr: errors.New("connection refused")}

	err := UpdateRehearsalStatus(context.Background(), store, zap.NewNop(), 1, model.StatusCompleted)
	assert.Error(t, err)
}

// mockDeleteStore implements DeleteRehearsalStore for testing
type mockDeleteStore struct {
	deleteErr  error
	deletedIDs []int
}

func (m *mockDeleteStore) DeleteRehearsal(ctx context.Context, id int) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

func TestDeleteRehearsal(t *testing.T) {
	store := &mockDeleteStore{}

	require.NoError(t, DeleteRehearsal(context.Background(), store, zap.NewNop(), 3))
	assert.Equal(t, []int{3}, store.deletedIDs)

	assert.Error(t, DeleteRehearsal(context.Background(), store, zap.NewNop(), 0))
	assert.Len(t, store.deletedIDs, 1)
}
