// Package session owns the runtime state of an authenticated learner:
// the active mode, the current problem or exam, transient feedback, and
// the deferred transitions that pace the flow. The rendering layer sees
// only immutable snapshots and hands events back as discrete commands.
package session

import (
	"errors"
	"time"

	"github.com/Victor-Rafael0/MATHPATH/internal/catalog"
	"github.com/Victor-Rafael0/MATHPATH/internal/exam"
	"github.com/Victor-Rafael0/MATHPATH/internal/problemgen"
	"github.com/Victor-Rafael0/MATHPATH/internal/progression"
)

// ErrExamUnavailable is returned by StartExam for a module other than
// the learner's currently unlocked one.
var ErrExamUnavailable = errors.New("session: exame indisponível para este módulo")

// ExamView is the read-only exam portion of a snapshot.
type ExamView struct {
	ModuleID int
	Index    int
	Total    int
	Score    int
	Question problemgen.Problem
}

// Snapshot is the immutable view handed to the rendering layer after
// every transition.
type Snapshot struct {
	Profile  progression.Profile
	Mode     Mode
	Problem  *problemgen.Problem
	Exam     *ExamView
	Feedback Feedback
	Answered bool
	Warning  string
}

// Controller is the single owner of the active session. All mutation
// goes through its command methods; it is not safe for concurrent use
// and is driven from the single TUI event loop.
type Controller struct {
	tracker  *progression.Tracker
	gen      exam.Generator
	mode     Mode
	problem  *problemgen.Problem
	exam     *exam.Session
	feedback Feedback
	answered bool
	epoch    uint64
}

// New builds a controller for the given profile. saver receives a full
// profile snapshot after every mutation (nil disables persistence). gen
// defaults to the production problem generator.
func New(p progression.Profile, saver progression.Saver, gen exam.Generator) *Controller {
	if gen == nil {
		gen = problemgen.Generate
	}
	c := &Controller{
		tracker: progression.NewTracker(p, saver),
		gen:     gen,
	}
	if p.Lives == 0 {
		c.mode = ModeDepleted
	}
	return c
}

// Snapshot returns the current read-only view.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Profile:  c.tracker.Profile(),
		Mode:     c.mode,
		Feedback: c.feedback,
		Answered: c.answered,
		Warning:  c.tracker.Warning(),
	}
	if c.problem != nil {
		p := *c.problem
		s.Problem = &p
	}
	if c.exam != nil {
		s.Exam = &ExamView{
			ModuleID: c.exam.ModuleID,
			Index:    c.exam.Index,
			Total:    exam.QuestionCount,
			Score:    c.exam.Score,
			Question: c.exam.Current(),
		}
	}
	return s
}

// GoToTrail switches back to the module map. The current practice
// problem is kept so returning to practice resumes where the learner
// left off. Not valid during an exam; use AbandonExam instead.
func (c *Controller) GoToTrail() {
	if c.mode == ModeExam || c.mode == ModeDepleted {
		return
	}
	c.feedback = Feedback{}
	c.answered = false
	c.mode = ModeTrail
	c.epoch++
}

// StartPractice enters practice mode with a fresh problem at the
// learner's current level.
func (c *Controller) StartPractice() {
	if c.mode == ModeDepleted {
		return
	}
	p := c.gen(c.tracker.Profile().Level)
	c.problem = &p
	c.mode = ModePractice
	c.feedback = Feedback{}
	c.answered = false
}

// StartExam begins the certification exam for the learner's currently
// unlocked module. All ten questions are fixed at start.
func (c *Controller) StartExam(moduleID int) error {
	if c.mode == ModeDepleted {
		return ErrExamUnavailable
	}
	if moduleID != c.tracker.Profile().UnlockedModule {
		return ErrExamUnavailable
	}
	m, err := catalog.ByID(moduleID)
	if err != nil {
		return err
	}
	c.exam = exam.Start(m, c.gen)
	c.mode = ModeExam
	c.feedback = Feedback{}
	c.answered = false
	return nil
}

// SelectAnswer processes an answer selection against the current
// question (exam or practice). It returns the deferred transitions the
// caller must schedule; input is locked until one of them re-enables it.
func (c *Controller) SelectAnswer(option string) []Deferred {
	if c.answered {
		return nil
	}
	q := c.currentQuestion()
	if q == nil {
		return nil
	}
	c.answered = true

	var correct bool
	if c.exam != nil {
		correct = c.exam.Submit(option)
	} else {
		correct = problemgen.CheckAnswer(option, *q)
	}
	if correct {
		c.feedback = Feedback{Kind: FeedbackSuccess, Msg: MsgCorrect}
		c.tracker.AwardCorrect()
		return []Deferred{c.schedule(DeferAdvance, AdvanceDelay)}
	}

	c.feedback = Feedback{Kind: FeedbackError, Msg: MsgIncorrect}
	if depleted := c.tracker.PenalizeIncorrect(); depleted {
		return []Deferred{c.schedule(DeferDepleted, DepletedDelay)}
	}
	return []Deferred{c.schedule(DeferClearFeedback, ClearFeedbackDelay)}
}

// Deliver hands a fired timer back to the controller. Timers from a
// torn-down session (stale epoch) are dropped. The advance of a final
// exam question grades the session here and returns the close timer.
func (c *Controller) Deliver(d Deferred) []Deferred {
	if d.Epoch != c.epoch {
		return nil
	}
	switch d.Kind {
	case DeferClearFeedback:
		c.feedback = Feedback{}
		c.answered = false
		return nil

	case DeferAdvance:
		c.feedback = Feedback{}
		c.answered = false
		if c.exam != nil {
			if c.exam.Advance() {
				return nil
			}
			return c.grade()
		}
		level := c.tracker.AdvanceLevel()
		p := c.gen(level)
		c.problem = &p
		return nil

	case DeferCloseExam:
		c.teardown(ModeTrail)
		return nil

	case DeferDepleted:
		c.teardown(ModeDepleted)
		return nil
	}
	return nil
}

// grade resolves a completed exam. A pass unlocks the next module; the
// graded result stays on screen until the close timer fires.
func (c *Controller) grade() []Deferred {
	if c.exam.Passed() {
		c.tracker.UnlockModule(c.exam.ModuleID + 1)
		c.feedback = Feedback{Kind: FeedbackSuccess, Msg: MsgUnlocked}
	} else {
		c.feedback = Feedback{Kind: FeedbackError, Msg: MsgExamFail}
	}
	c.answered = true
	return []Deferred{c.schedule(DeferCloseExam, CloseExamDelay)}
}

// AbandonExam cancels an active exam with no grading and no unlock.
// Profile changes from already-answered questions are kept.
func (c *Controller) AbandonExam() {
	if c.exam == nil {
		return
	}
	c.teardown(ModeTrail)
}

// ResetAfterDepletion restores the full life budget and returns to the
// module map. It is the only way out of the depleted mode.
func (c *Controller) ResetAfterDepletion() {
	if c.mode != ModeDepleted {
		return
	}
	c.tracker.ResetLives()
	c.teardown(ModeTrail)
}

// Logout invalidates all pending timers and detaches the session. The
// caller is responsible for clearing the persisted session record.
func (c *Controller) Logout() {
	c.teardown(ModeTrail)
	c.problem = nil
}

// teardown discards the exam, clears transient state, and bumps the
// epoch so timers scheduled before this point are dropped on delivery.
func (c *Controller) teardown(next Mode) {
	c.exam = nil
	c.feedback = Feedback{}
	c.answered = false
	c.mode = next
	c.epoch++
}

func (c *Controller) currentQuestion() *problemgen.Problem {
	if c.exam != nil {
		q := c.exam.Current()
		return &q
	}
	return c.problem
}

func (c *Controller) schedule(kind DeferredKind, delay time.Duration) Deferred {
	return Deferred{Kind: kind, Delay: delay, Epoch: c.epoch}
}
