package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ciraganenicole/choir-registry/pkg/core/model"
)

func TestResolveUserName(t *testing.T) {
	res := NewResolver([]model.User{
		{ID: 1, Name: "Alice Uwase"},
		{ID: 2, Name: "Jean Bosco"},
	}, nil)

	assert.Equal(t, "Alice Uwase", res.ResolveUserName(1))
	assert.Equal(t, "Jean Bosco", res.ResolveUserName(2))
	assert.Equal(t, UnknownUser, res.ResolveUserName(99))
}

func TestResolveSongTitle(t *testing.T) {
	res := NewResolver(nil, []model.Song{
		{ID: 5, Title: "Amazing Grace"},
	})

	assert.Equal(t, "Amazing Grace", res.ResolveSongTitle(5))
	assert.Equal(t, UnknownSong, res.ResolveSongTitle(6))
}

func TestResolver_EmptySnapshots(t *testing.T) {
	res := NewResolver(nil, nil)
	assert.Equal(t, UnknownUser, res.ResolveUserName(1))
	assert.Equal(t, UnknownSong, res.ResolveSongTitle(1))
}

func TestResolver_BlankNameFallsBackToPlaceholder(t *testing.T) {
	res := NewResolver([]model.User{{ID: 1, Name: ""}}, nil)
	assert.Equal(t, UnknownUser, res.ResolveUserName(1))
}

func TestResolveUserNames_PreservesOrderAndDuplicates(t *testing.T) {
	res := NewResolver([]model.User{
		{ID: 1, Name: "Alice Uwase"},
		{ID: 2, Name: "Jean Bosco"},
	}, nil)

	names := res.ResolveUserNames([]int{2, 1, 2, 7})
	assert.Equal(t, []string{"Jean Bosco", "Alice Uwase", "Jean Bosco", UnknownUser}, names)
}
