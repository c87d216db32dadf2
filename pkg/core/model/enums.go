package model

// Status is the rehearsal lifecycle status.
type Status string

const (
	StatusPlanning   Status = "Planning"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPlanning, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the status is a closed state. Terminal applies
// to the status only; the rehearsal record itself stays live and editable.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether a status change is allowed. Rehearsal
// status is corrector-editable by a lead user at any time, so every valid
// status can move to every other valid status, including backwards out of a
// terminal state.
func (s Status) CanTransitionTo(next Status) bool {
	return s.IsValid() && next.IsValid()
}

// RehearsalType categorises what a rehearsal session is for.
type RehearsalType string

const (
	TypeGeneralPractice        RehearsalType = "General Practice"
	TypePerformancePreparation RehearsalType = "Performance Preparation"
	TypeSongLearning           RehearsalType = "Song Learning"
	TypeSectionalPractice      RehearsalType = "Sectional Practice"
	TypeFullEnsemble           RehearsalType = "Full Ensemble"
	TypeDressRehearsal         RehearsalType = "Dress Rehearsal"
	TypeOther                  RehearsalType = "Other"
)

func (t RehearsalType) IsValid() bool {
	switch t {
	case TypeGeneralPractice, TypePerformancePreparation, TypeSongLearning,
		TypeSectionalPractice, TypeFullEnsemble, TypeDressRehearsal, TypeOther:
		return true
	}
	return false
}

// Difficulty grades how demanding a song or template is.
type Difficulty string

const (
	DifficultyEasy         Difficulty = "Easy"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

func (d Difficulty) IsValid() bool {
	return d == DifficultyEasy || d == DifficultyIntermediate || d == DifficultyAdvanced
}

// MusicalKey is the key a song is rehearsed in.
type MusicalKey string

const (
	KeyC      MusicalKey = "C"
	KeyCSharp MusicalKey = "C#"
	KeyD      MusicalKey = "D"
	KeyEFlat  MusicalKey = "Eb"
	KeyE      MusicalKey = "E"
	KeyF      MusicalKey = "F"
	KeyFSharp MusicalKey = "F#"
	KeyG      MusicalKey = "G"
	KeyAFlat  MusicalKey = "Ab"
	KeyA      MusicalKey = "A"
	KeyBFlat  MusicalKey = "Bb"
	KeyB      MusicalKey = "B"
)

// VoicePartType is a named vocal section within a song.
type VoicePartType string

const (
	VoicePartSoprano      VoicePartType = "Soprano"
	VoicePartAlto         VoicePartType = "Alto"
	VoicePartTenor        VoicePartType = "Tenor"
	VoicePartBass         VoicePartType = "Bass"
	VoicePartMezzoSoprano VoicePartType = "Mezzo-Soprano"
	VoicePartBaritone     VoicePartType = "Baritone"
)

func (v VoicePartType) IsValid() bool {
	switch v {
	case VoicePartSoprano, VoicePartAlto, VoicePartTenor,
		VoicePartBass, VoicePartMezzoSoprano, VoicePartBaritone:
		return true
	}
	return false
}

// SanitizeVoicePartType coerces a raw voice-part value to a member of the
// allowed enumeration. Values outside it become Soprano. This is intentional
// leniency for historical data, not validation: callers get a usable value
// back no matter what was stored.
func SanitizeVoicePartType(raw string) VoicePartType {
	v := VoicePartType(raw)
	if v.IsValid() {
		return v
	}
	return VoicePartSoprano
}

// Instrument is the set of known accompaniment instruments. Anything else
// goes in a musician's CustomInstrument field.
type Instrument string

const (
	InstrumentPiano      Instrument = "Piano"
	InstrumentGuitar     Instrument = "Guitar"
	InstrumentBassGuitar Instrument = "Bass Guitar"
	InstrumentDrums      Instrument = "Drums"
	InstrumentViolin     Instrument = "Violin"
	InstrumentKeyboard   Instrument = "Keyboard"
	InstrumentSaxophone  Instrument = "Saxophone"
	InstrumentTrumpet    Instrument = "Trumpet"
	InstrumentOther      Instrument = "Other"
)

// Role is a user's registry role, used for the song-plan delete check.
type Role string

const (
	RoleMember     Role = "Member"
	RoleLead       Role = "Lead"
	RoleAdmin      Role = "Admin"
	RoleSuperAdmin Role = "Super Admin"
)

// IsElevated reports whether the role carries administrative rights.
func (r Role) IsElevated() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// ShiftStatus is the lifecycle status of an external duty shift.
type ShiftStatus string

const (
	ShiftScheduled ShiftStatus = "Scheduled"
	ShiftActive    ShiftStatus = "Active"
	ShiftCompleted ShiftStatus = "Completed"
	ShiftCancelled ShiftStatus = "Cancelled"
)

// IsClosed reports whether the shift can no longer host a rehearsal.
func (s ShiftStatus) IsClosed() bool {
	return s == ShiftCompleted || s == ShiftCancelled
}
