package progression

// Saver persists profile snapshots. Satisfied by store.Gateway; a nil
// Saver disables persistence (tests).
type Saver interface {
	// SaveSession overwrites the active-session snapshot.
	SaveSession(Profile) error

	// PutAccountProfile updates the profile fields of the learner's
	// account record, leaving the credential untouched.
	PutAccountProfile(Profile) error
}

// Tracker owns the active learner's profile and applies progression
// transitions. Every mutating transition writes the full profile through
// the Saver; a failed write leaves the in-memory profile authoritative
// and is surfaced via Warning.
type Tracker struct {
	profile Profile
	saver   Saver
	warning string
}

// NewTracker wraps an existing profile for the active session.
func NewTracker(p Profile, saver Saver) *Tracker {
	return &Tracker{profile: p, saver: saver}
}

// Profile returns a copy of the current profile snapshot.
func (t *Tracker) Profile() Profile {
	return t.profile
}

// Warning returns the most recent persistence warning, or "" when the
// last write succeeded.
func (t *Tracker) Warning() string {
	return t.warning
}

// AdvanceLevel increments the level by one and returns the new level.
// No upper bound is enforced; the generator's fallback band absorbs
// levels beyond the trail.
func (t *Tracker) AdvanceLevel() int {
	t.profile.Level++
	t.persist()
	return t.profile.Level
}

// AwardCorrect grants the fixed XP reward for a correct answer.
func (t *Tracker) AwardCorrect() {
	t.profile.XP += XPPerCorrect
	t.persist()
}

// PenalizeIncorrect deducts one life, floored at zero, and reports
// whether the deduction exhausted the life budget.
func (t *Tracker) PenalizeIncorrect() (depleted bool) {
	if t.profile.Lives > 0 {
		t.profile.Lives--
	}
	t.persist()
	return t.profile.Lives == 0
}

// UnlockModule raises the unlocked module id to at least id. Monotonic:
// the unlocked id never decreases.
func (t *Tracker) UnlockModule(id int) {
	if id <= t.profile.UnlockedModule {
		return
	}
	t.profile.UnlockedModule = id
	t.persist()
}

// ResetLives restores the full life budget. The only recovery path out
// of the depleted state.
func (t *Tracker) ResetLives() {
	t.profile.Lives = MaxLives
	t.persist()
}

// persist writes the full profile snapshot through the Saver. Writing is
// idempotent, so repeating a snapshot is harmless. Failures are recorded
// as a warning and do not roll back the in-memory state.
func (t *Tracker) persist() {
	if t.saver == nil {
		return
	}
	t.warning = ""
	if err := t.saver.SaveSession(t.profile); err != nil {
		t.warning = "progresso não salvo: " + err.Error()
		return
	}
	if err := t.saver.PutAccountProfile(t.profile); err != nil {
		t.warning = "progresso não salvo: " + err.Error()
	}
}
