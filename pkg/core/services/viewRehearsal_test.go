package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ciraganenicole/choir-registry/pkg/core/model"
	"github.com/ciraganenicole/choir-registry/pkg/core/refdata"
	"github.com/ciraganenicole/choir-registry/pkg/db"
)

// mockViewStore implements ViewRehearsalStore for testing
type mockViewStore struct {
	rehearsal *db.RehearsalRecord
	users     []model.User
	songs     []model.Song
	getErr    error
	usersErr  error
	songsErr  error
}

func (m *mockViewStore) GetRehearsal(ctx context.Context, id int) (*db.RehearsalRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.rehearsal, nil
}

func (m *mockViewStore) GetUsers(ctx context.Context) ([]model.User, error) {
	if m.usersErr != nil {
		return nil, m.usersErr
	}
	return m.users, nil
}

func (m *mockViewStore) GetSongs(ctx context.Context) ([]model.Song, error) {
	if m.songsErr != nil {
		return nil, m.songsErr
	}
	return m.songs, nil
}

func TestViewRehearsal(t *testing.T) {
	store := &mockViewStore{
		rehearsal: &db.RehearsalRecord{
			ID:     1,
			Title:  "Thursday Practice",
			Status: string(model.StatusInProgress),
			SongPlans: []db.SongRecord{
				{SongID: 10, SongDetail: db.SongDetail{Order: 1, LeadSingerIDs: []int{2}}},
			},
		},
		users: []model.User{{ID: 2, Name: "Jean Bosco"}},
		songs: []model.Song{{ID: 10, Title: "Amazing Grace"}},
	}

	rehearsal, res, err := ViewRehearsal(context.Background(), store, zap.NewNop(), 1)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, model.StatusInProgress, rehearsal.Status)
	require.Len(t, rehearsal.SongPlans, 1)
	assert.Equal(t, "Amazing Grace", rehearsal.SongPlans[0].SongTitle)
	assert.Equal(t, []string{"Jean Bosco"}, rehearsal.SongPlans[0].LeadSingerNames)

	// The resolver stays usable for later lookups in the same session.
	assert.Equal(t, "Jean Bosco", res.ResolveUserName(2))
	assert.Equal(t, refdata.UnknownUser, res.ResolveUserName(999))
}

func TestViewRehearsal_RequiresPersistedID(t *testing.T) {
	_, _, err := ViewRehearsal(context.Background(), &mockViewStore{}, zap.NewNop(), 0)
	assert.Error(t, err)
}

func TestViewRehearsal_DirectoryErrors(t *testing.T) {
	_, _, err := ViewRehearsal(context.Background(), &mockViewStore{usersErr: errors.New("timeout")}, zap.NewNop(), 1)
	assert.Error(t, err)

	_, _, err = ViewRehearsal(context.Background(), &mockViewStore{songsErr: errors.New("timeout")}, zap.NewNop(), 1)
	assert.Error(t, err)
}
