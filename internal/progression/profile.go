package progression

const (
	// StartLevel is the level assigned at signup.
	StartLevel = 1

	// StartSigmas is the currency balance granted at signup. Sigmas are
	// persisted and displayed but no core transition spends them yet.
	StartSigmas = 100

	// MaxLives is the life cap; ResetLives restores to this value.
	MaxLives = 5

	// XPPerCorrect is the fixed experience reward for a correct answer.
	XPPerCorrect = 20
)

// Profile is the learner's persistent progression state. It is mutated
// only through Tracker transitions and persisted by value (full snapshot)
// on every mutation.
type Profile struct {
	// Name is the learner's identity, stored lower-cased.
	Name string `json:"name"`

	// Level is the current practice difficulty, 1..1000 nominally.
	Level int `json:"level"`

	// UnlockedModule is the highest unlocked module id. Monotonically
	// non-decreasing over the profile's lifetime.
	UnlockedModule int `json:"unlockedModuleId"`

	// XP is total experience. Monotonically non-decreasing.
	XP int `json:"xp"`

	// Sigmas is the in-app currency balance.
	Sigmas int `json:"sigmas"`

	// Lives is the remaining failure budget, 0..MaxLives.
	Lives int `json:"lives"`
}

// NewProfile returns a fresh profile with signup defaults.
func NewProfile(name string) Profile {
	return Profile{
		Name:           name,
		Level:          StartLevel,
		UnlockedModule: 1,
		XP:             0,
		Sigmas:         StartSigmas,
		Lives:          MaxLives,
	}
}
