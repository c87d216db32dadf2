package model

import "time"

// User is a registry member, consumed read-only to resolve names and roles.
type User struct {
	ID   int
	Name string
	Role Role
}

// Song is a catalog entry from the song library, consumed read-only.
type Song struct {
	ID       int
	Title    string
	Composer string
	Genre    string
}

// Performance is the write target of promotion. Opaque to this engine beyond
// the link back to the rehearsal it came from.
type Performance struct {
	ID          int
	RehearsalID int
	Date        time.Time
}

// DutyShift is the external scheduling context that may gate rehearsal
// creation. Owned by the duty-roster subsystem; read here as a precondition.
type DutyShift struct {
	ID           int
	Date         time.Time
	SupervisorID int
	Status       ShiftStatus
}

// Rehearsal is the aggregate root for rehearsal planning.
type Rehearsal struct {
	ID              int // 0 = draft, not yet persisted
	Title           string
	Date            time.Time
	Location        string
	DurationMinutes int
	Type            RehearsalType
	Objectives      string
	Notes           string
	Feedback        string
	IsTemplate      bool

	PerformanceID   int // 0 = unlinked; required for promotion
	RehearsalLeadID int // conductor
	ShiftLeadID     int // duty supervisor, required only under an active shift

	Status     Status
	IsPromoted bool // set once by promotion, never unset

	SongPlans        []SongPlan // ordered by SongPlan.Order
	SessionMusicians []SessionMusician
}

// IsPersisted reports whether the rehearsal has been saved at the boundary.
func (r *Rehearsal) IsPersisted() bool {
	return r.ID > 0
}

// NextSongOrder returns the order value for a song appended without an
// explicit position: max of existing orders plus one, starting at 1.
func (r *Rehearsal) NextSongOrder() int {
	max := 0
	for _, sp := range r.SongPlans {
		if sp.Order > max {
			max = sp.Order
		}
	}
	return max + 1
}

// TotalSongTime sums the minutes allocated across all song plans.
func (r *Rehearsal) TotalSongTime() int {
	total := 0
	for _, sp := range r.SongPlans {
		total += sp.TimeAllocated
	}
	return total
}

// FindSongPlan returns the song plan with the given subresource id, or nil.
func (r *Rehearsal) FindSongPlan(rehearsalSongID int) *SongPlan {
	for i := range r.SongPlans {
		if r.SongPlans[i].RehearsalSongID == rehearsalSongID {
			return &r.SongPlans[i]
		}
	}
	return nil
}

// SongPlan is one song's rehearsal-specific treatment. One per
// (rehearsal, song) pair.
type SongPlan struct {
	RehearsalSongID int // subresource id, present once persisted
	SongID          int // catalog song, immutable once set
	SongTitle       string

	Difficulty    Difficulty
	MusicalKey    MusicalKey
	NeedsWork     bool
	Order         int // performance sequence, unique within a rehearsal
	TimeAllocated int // minutes
	FocusPoints   string
	Notes         string

	LeadSingerIDs   []int // ordered; multiple simultaneous leads are legal
	LeadSingerNames []string
	ChorusMemberIDs []int

	VoiceParts []VoicePartAssignment
	Musicians  []SongMusician

	AddedByID int // who created the plan, for the delete permission check
}

// VoicePartAssignment is a vocal section with assigned members for one song.
type VoicePartAssignment struct {
	VoicePartType VoicePartType
	MemberIDs     []int
	MemberNames   []string
	NeedsWork     bool
	FocusPoints   string
	Notes         string
}

// SongMusician is an instrumentalist assigned to one song plan.
type SongMusician struct {
	UserID           int // 0 = unassigned
	Instrument       Instrument
	CustomInstrument string
	IsAccompanist    bool
	Order            int
	TimeAllocated    int
	Notes            string

	// Solo-timing fields exist in stored data but are presently unused and
	// always zero. Reserved, not load-bearing.
	SoloStartMinute int
	SoloEndMinute   int
}

// SessionMusician plays for the rehearsal as a whole rather than one song.
type SessionMusician struct {
	UserID             int
	Instrument         Instrument
	CustomInstrument   string
	IsAccompanist      bool
	Order              int
	TimeAllocated      int
	NeedsPractice      bool
	PracticeNotes      string
	AccompanimentNotes string
	SoloNotes          string
}

// RehearsalTemplate is a reusable seed for new rehearsals. Instantiation
// copies scalar fields into a fresh draft; templates and rehearsals never
// share identity.
type RehearsalTemplate struct {
	ID                 int
	Title              string
	Type               RehearsalType
	DurationMinutes    int
	Objectives         string
	Category           string
	Tags               []string
	EstimatedAttendees int
	Difficulty         Difficulty

	// Recurrence holds an optional RRULE used to expand the template into a
	// series of dated drafts. Empty means the template is one-shot.
	Recurrence string
}
