package problemgen

// Problem is a generated question ready for display.
type Problem struct {
	// ID is an opaque unique token for this problem instance.
	ID string

	// Question is the prompt displayed to the learner.
	// Plain text, e.g. "7 + 4 = ?".
	Question string

	// Options holds exactly OptionCount distinct display strings,
	// one of which equals Answer.
	Options []string

	// Answer is the correct option, compared by exact string equality.
	Answer string

	// Hint is a short static hint for the problem's scheme.
	Hint string

	// ModuleName is the display label of the scheme that produced the
	// problem ("Aritmética", "Proporcionalidade", "Geral").
	ModuleName string
}

// OptionCount is the fixed number of options per problem.
const OptionCount = 4

// CheckAnswer reports whether the selected option is correct.
//
// Correctness is exact string equality against Answer. No numeric
// normalization is applied: "025" does not match "25". Options are
// produced by Generate, so a selection always round-trips byte-for-byte.
func CheckAnswer(selected string, p Problem) bool {
	return selected == p.Answer
}
