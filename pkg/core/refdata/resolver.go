// Package refdata resolves opaque numeric identifiers to display names using
// user-directory and song-catalog snapshots supplied by the caller. Pure
// lookup over read-only data: resolution never fails and never mutates the
// snapshots.
package refdata

import (
	"github.com/ciraganenicole/choir-registry/pkg/core/model"
)

// Placeholders returned when an id cannot be resolved. Unresolvable ids are
// an expected condition (deleted members, stale references), not an error.
const (
	UnknownUser = "Unknown Member"
	UnknownSong = "Unknown Song"
)

// Resolver answers name lookups for the duration of one edit or rendering
// session. Build it once from the snapshots the caller already fetched.
type Resolver struct {
	users map[int]string
	songs map[int]string
}

// NewResolver indexes the given snapshots. Nil or empty slices are fine; the
// resolver then answers every lookup with a placeholder.
func NewResolver(users []model.User, songs []model.Song) *Resolver {
	r := &Resolver{
		users: make(map[int]string, len(users)),
		songs: make(map[int]string, len(songs)),
	}
	for _, u := range users {
		r.users[u.ID] = u.Name
	}
	for _, s := range songs {
		r.songs[s.ID] = s.Title
	}
	return r
}

// ResolveUserName returns the display name for a user id, or UnknownUser.
func (r *Resolver) ResolveUserName(id int) string {
	if name, ok := r.users[id]; ok && name != "" {
		return name
	}
	return UnknownUser
}

// ResolveSongTitle returns the catalog title for a song id, or UnknownSong.
func (r *Resolver) ResolveSongTitle(id int) string {
	if title, ok := r.songs[id]; ok && title != "" {
		return title
	}
	return UnknownSong
}

// ResolveUserNames resolves a list of user ids in order, preserving
// duplicates. Callers that need unique display names de-duplicate afterwards.
func (r *Resolver) ResolveUserNames(ids []int) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = r.ResolveUserName(id)
	}
	return names
}
