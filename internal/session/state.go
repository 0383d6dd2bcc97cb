package session

import "time"

// Mode is the learner-facing area the session is currently in.
type Mode int

const (
	ModeTrail    Mode = iota // module map
	ModePractice             // free practice at the current level
	ModeExam                 // certification exam in progress
	ModeDepleted             // lives exhausted, recovery required
)

// FeedbackKind classifies the transient message shown after an answer
// or a graded exam.
type FeedbackKind int

const (
	FeedbackNone FeedbackKind = iota
	FeedbackSuccess
	FeedbackError
)

// Feedback is the transient message shown to the learner.
type Feedback struct {
	Kind FeedbackKind
	Msg  string
}

// Feedback messages, verbatim from the product copy.
const (
	MsgCorrect   = "+20 XP | Sucesso!"
	MsgIncorrect = "Tente analisar novamente."
	MsgUnlocked  = "Módulo Desbloqueado!"
	MsgExamFail  = "Estude mais e tente novamente."
)

// DeferredKind identifies which delayed transition a timer carries.
type DeferredKind int

const (
	// DeferAdvance moves to the next task after a correct answer:
	// next level in practice, next question (or grading) in an exam.
	DeferAdvance DeferredKind = iota

	// DeferClearFeedback clears the error message and re-enables input
	// after a wrong answer.
	DeferClearFeedback

	// DeferCloseExam dismisses a graded exam and returns to the trail.
	DeferCloseExam

	// DeferDepleted switches to the depleted screen once lives hit 0.
	DeferDepleted
)

// Delays for the deferred transitions.
const (
	AdvanceDelay       = 1200 * time.Millisecond
	ClearFeedbackDelay = 1500 * time.Millisecond
	CloseExamDelay     = 2500 * time.Millisecond
	DepletedDelay      = 1 * time.Second
)

// Deferred is a delayed transition owned by the controller. The caller
// schedules it (the TUI uses a tick command) and hands it back through
// Deliver after Delay. Epoch ties it to the session state it was
// scheduled under: teardown transitions bump the controller's epoch, so
// a timer scheduled before teardown is silently dropped when it fires.
type Deferred struct {
	Kind  DeferredKind
	Delay time.Duration
	Epoch uint64
}
