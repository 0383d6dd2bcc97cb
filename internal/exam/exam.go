// Package exam implements the 10-question certification quiz that gates
// module advancement on the trail.
package exam

import (
	"github.com/google/uuid"

	"github.com/Victor-Rafael0/MATHPATH/internal/catalog"
	"github.com/Victor-Rafael0/MATHPATH/internal/problemgen"
)

const (
	// QuestionCount is the fixed exam length.
	QuestionCount = 10

	// PassThreshold is the minimum score (out of QuestionCount) that
	// certifies the module and unlocks the next one.
	PassThreshold = 8

	// LevelOffset positions every exam question inside the module's
	// band: all questions are generated at Lo+LevelOffset, the same
	// nominal difficulty, not progressively harder.
	LevelOffset = 5
)

// Generator produces a problem for a level. problemgen.Generate is the
// production implementation; tests substitute deterministic ones.
type Generator func(level int) problemgen.Problem

// Session is a bounded sequential quiz. Questions are fixed at start and
// immutable thereafter; only Index and Score move.
type Session struct {
	ID        string
	ModuleID  int
	Questions []problemgen.Problem
	Index     int
	Score     int
}

// Start creates a session for the module's exam. All questions share the
// module's nominal exam difficulty.
func Start(m catalog.Module, gen Generator) *Session {
	if gen == nil {
		gen = problemgen.Generate
	}
	questions := make([]problemgen.Problem, QuestionCount)
	for i := range questions {
		questions[i] = gen(m.Lo + LevelOffset)
	}
	return &Session{
		ID:        uuid.NewString(),
		ModuleID:  m.ID,
		Questions: questions,
	}
}

// Current returns the question under the cursor.
func (s *Session) Current() problemgen.Problem {
	return s.Questions[s.Index]
}

// Submit checks the selected option against the current question by
// exact string equality and counts a hit. It does not advance; wrong
// answers leave the cursor in place so the learner retries.
func (s *Session) Submit(option string) bool {
	if !problemgen.CheckAnswer(option, s.Current()) {
		return false
	}
	s.Score++
	return true
}

// OnLastQuestion reports whether the cursor sits on the final question,
// i.e. the next Advance grades the session instead of moving it.
func (s *Session) OnLastQuestion() bool {
	return s.Index == QuestionCount-1
}

// Advance moves the cursor to the next question. It returns false when
// the session is complete and must be graded instead.
func (s *Session) Advance() bool {
	if s.OnLastQuestion() {
		return false
	}
	s.Index++
	return true
}

// Passed reports whether the final score certifies the module.
func (s *Session) Passed() bool {
	return s.Score >= PassThreshold
}
