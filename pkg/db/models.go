package db

import "time"

// This package defines the wire shapes crossing the external service
// boundary. Reads come back in one of two historical layouts: the "combined"
// shape (song details inlined on the rehearsal) and the "separated" shape
// (catalog-song reference plus a detail bundle per song). The normalize
// package reconciles both into model.SongPlan.

// UserRef is a name record as it appears in wire data.
type UserRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SongRef is a catalog-song reference. Its presence on a SongRecord marks
// the record as separated-shape.
type SongRef struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Composer string `json:"composer,omitempty"`
	Genre    string `json:"genre,omitempty"`
}

// VoicePartRecord is a voice part as stored. Members (name records) and
// MemberIDs coexist in historical data; normalization probes Members first.
type VoicePartRecord struct {
	VoicePartType string    `json:"voicePartType"`
	Members       []UserRef `json:"members,omitempty"`
	MemberIDs     []int     `json:"memberIds,omitempty"`
	NeedsWork     bool      `json:"needsWork"`
	FocusPoints   string    `json:"focusPoints,omitempty"`
	Notes         string    `json:"notes,omitempty"`
}

// SongMusicianRecord is an instrumentalist row attached to one song.
type SongMusicianRecord struct {
	UserID           int    `json:"userId,omitempty"`
	Instrument       string `json:"instrument,omitempty"`
	CustomInstrument string `json:"customInstrument,omitempty"`
	IsAccompanist    bool   `json:"isAccompanist"`
	Order            int    `json:"order"`
	TimeAllocated    int    `json:"timeAllocated"`
	Notes            string `json:"notes,omitempty"`
	SoloStartMinute  int    `json:"soloStartMinute,omitempty"`
	SoloEndMinute    int    `json:"soloEndMinute,omitempty"`
}

// SessionMusicianRecord is an instrumentalist attached to the rehearsal as a
// whole rather than to one song.
type SessionMusicianRecord struct {
	UserID             int    `json:"userId,omitempty"`
	Instrument         string `json:"instrument,omitempty"`
	CustomInstrument   string `json:"customInstrument,omitempty"`
	IsAccompanist      bool   `json:"isAccompanist"`
	Order              int    `json:"order"`
	TimeAllocated      int    `json:"timeAllocated"`
	NeedsPractice      bool   `json:"needsPractice"`
	PracticeNotes      string `json:"practiceNotes,omitempty"`
	AccompanimentNotes string `json:"accompanimentNotes,omitempty"`
	SoloNotes          string `json:"soloNotes,omitempty"`
}

// SongDetail carries the rehearsal-specific treatment of one song. In the
// combined shape these fields sit inline on the SongRecord; in the separated
// shape they arrive as a nested bundle.
//
// Lead singers have accumulated five field spellings over the life of the
// stored data. The declaration order below matches the probe priority the
// normalizer applies; see normalize.LeadSingerStrategies.
type SongDetail struct {
	Difficulty    string `json:"difficulty,omitempty"`
	MusicalKey    string `json:"musicalKey,omitempty"`
	NeedsWork     bool   `json:"needsWork"`
	Order         int    `json:"order"`
	TimeAllocated int    `json:"timeAllocated"`
	FocusPoints   string `json:"focusPoints,omitempty"`
	Notes         string `json:"notes,omitempty"`
	AddedByID     int    `json:"addedById,omitempty"`

	LeadSingerIDs []int     `json:"leadSingerIds,omitempty"` // current list field
	LeadSingers   []UserRef `json:"leadSingers,omitempty"`   // alternate-name list
	LeadSinger    *UserRef  `json:"leadSinger,omitempty"`    // single-object era
	LeadSingerID  int       `json:"leadSingerId,omitempty"`  // single-id era
	VocalLeadIDs  []int     `json:"vocalLeadIds,omitempty"`  // legacy fallback
	SoloistIDs    []int     `json:"soloistIds,omitempty"`    // legacy fallback

	ChorusMemberIDs []int                `json:"chorusMemberIds,omitempty"`
	VoiceParts      []VoicePartRecord    `json:"voiceParts,omitempty"`
	Musicians       []SongMusicianRecord `json:"musicians,omitempty"`
}

// SongRecord is one song row as read from the boundary, in either shape.
// Combined: SongID plus the embedded SongDetail fields are populated.
// Separated: Song and Details are non-nil; embedded fields are zero.
type SongRecord struct {
	RehearsalSongID int    `json:"rehearsalSongId,omitempty"`
	SongID          int    `json:"songId,omitempty"`
	Title           string `json:"title,omitempty"`
	SongDetail

	Song    *SongRef    `json:"song,omitempty"`
	Details *SongDetail `json:"details,omitempty"`
}

// IsSeparated reports whether the record arrived in the separated shape.
func (r *SongRecord) IsSeparated() bool {
	return r.Song != nil
}

// RehearsalRecord is the combined-shape rehearsal read: scalar fields with
// song plans inlined.
type RehearsalRecord struct {
	ID               int                     `json:"id"`
	Title            string                  `json:"title"`
	Date             time.Time               `json:"date"`
	Location         string                  `json:"location"`
	DurationMinutes  int                     `json:"duration"`
	Type             string                  `json:"type"`
	Objectives       string                  `json:"objectives,omitempty"`
	Notes            string                  `json:"notes,omitempty"`
	Feedback         string                  `json:"feedback,omitempty"`
	IsTemplate       bool                    `json:"isTemplate"`
	PerformanceID    int                     `json:"performanceId,omitempty"`
	RehearsalLeadID  int                     `json:"rehearsalLeadId"`
	ShiftLeadID      int                     `json:"shiftLeadId,omitempty"`
	Status           string                  `json:"status"`
	IsPromoted       bool                    `json:"isPromoted"`
	SongPlans        []SongRecord            `json:"songPlans,omitempty"`
	SessionMusicians []SessionMusicianRecord `json:"sessionMusicians,omitempty"`
}

// RehearsalInfo is the header block of the separated read path.
type RehearsalInfo struct {
	ID     int       `json:"id"`
	Title  string    `json:"title"`
	Date   time.Time `json:"date"`
	Status string    `json:"status"`
}

// RehearsalSongsResult is the response of FetchRehearsalSongs: the separated
// read path.
type RehearsalSongsResult struct {
	RehearsalInfo  RehearsalInfo `json:"rehearsalInfo"`
	RehearsalSongs []SongRecord  `json:"rehearsalSongs"`
}

// RehearsalPatch is a partial rehearsal update. Nil fields are untouched.
// SessionMusicians replaces the rehearsal's whole musician list when set.
type RehearsalPatch struct {
	Title            *string
	Date             *time.Time
	Location         *string
	DurationMinutes  *int
	Type             *string
	Objectives       *string
	Notes            *string
	Feedback         *string
	PerformanceID    *int
	RehearsalLeadID  *int
	ShiftLeadID      *int
	Status           *string
	IsPromoted       *bool
	SessionMusicians *[]SessionMusicianRecord
}

// SongPlanPatch is a partial song-plan update. Any field except the catalog
// song reference may change; there is deliberately no SongID here.
type SongPlanPatch struct {
	Difficulty      *string
	MusicalKey      *string
	NeedsWork       *bool
	Order           *int
	TimeAllocated   *int
	FocusPoints     *string
	Notes           *string
	LeadSingerIDs   *[]int
	ChorusMemberIDs *[]int
	VoiceParts      *[]VoicePartRecord
	Musicians       *[]SongMusicianRecord
}
