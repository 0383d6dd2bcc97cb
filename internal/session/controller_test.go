package session

import (
	"errors"
	"strconv"
	"testing"

	"github.com/Victor-Rafael0/MATHPATH/internal/catalog"
	"github.com/Victor-Rafael0/MATHPATH/internal/exam"
	"github.com/Victor-Rafael0/MATHPATH/internal/problemgen"
	"github.com/Victor-Rafael0/MATHPATH/internal/progression"
)

// stubGen returns problems whose answer encodes the generation level,
// so tests can answer correctly or incorrectly on purpose.
func stubGen(levels *[]int) exam.Generator {
	return func(level int) problemgen.Problem {
		*levels = append(*levels, level)
		ans := "L" + strconv.Itoa(level)
		return problemgen.Problem{
			ID:       strconv.Itoa(len(*levels)),
			Question: "?",
			Options:  []string{ans, "x", "y", "z"},
			Answer:   ans,
		}
	}
}

func newTestController(t *testing.T) (*Controller, *[]int) {
	t.Helper()
	levels := &[]int{}
	c := New(progression.NewProfile("ana"), nil, stubGen(levels))
	return c, levels
}

func deliverAll(c *Controller, ds []Deferred) []Deferred {
	var next []Deferred
	for _, d := range ds {
		next = append(next, c.Deliver(d)...)
	}
	return next
}

func TestFreshSessionSnapshot(t *testing.T) {
	c, _ := newTestController(t)
	s := c.Snapshot()
	if s.Mode != ModeTrail {
		t.Errorf("Mode = %d, want ModeTrail", s.Mode)
	}
	p := s.Profile
	if p.Level != 1 || p.UnlockedModule != 1 || p.XP != 0 || p.Sigmas != 100 || p.Lives != 5 {
		t.Errorf("fresh profile = %+v", p)
	}
	if s.Problem != nil || s.Exam != nil || s.Answered {
		t.Error("fresh session has active task state")
	}
}

// One correct practice answer awards 20 xp, advances to level 2, and
// serves a freshly generated problem for level 2.
func TestPracticeCorrectAnswerAdvances(t *testing.T) {
	c, levels := newTestController(t)
	c.StartPractice()
	if got := c.Snapshot(); got.Mode != ModePractice || got.Problem == nil {
		t.Fatalf("after StartPractice: mode=%d problem=%v", got.Mode, got.Problem)
	}

	ds := c.SelectAnswer("L1")
	if len(ds) != 1 || ds[0].Kind != DeferAdvance || ds[0].Delay != AdvanceDelay {
		t.Fatalf("deferred = %+v, want single DeferAdvance", ds)
	}

	s := c.Snapshot()
	if s.Profile.XP != 20 {
		t.Errorf("XP = %d, want 20", s.Profile.XP)
	}
	if !s.Answered || s.Feedback.Msg != MsgCorrect {
		t.Errorf("feedback = %+v answered = %v", s.Feedback, s.Answered)
	}

	if rest := deliverAll(c, ds); rest != nil {
		t.Fatalf("advance produced follow-up deferreds: %+v", rest)
	}
	s = c.Snapshot()
	if s.Profile.Level != 2 {
		t.Errorf("Level = %d, want 2", s.Profile.Level)
	}
	if s.Problem == nil || s.Problem.Answer != "L2" {
		t.Errorf("problem after advance = %+v, want generated at level 2", s.Problem)
	}
	if s.Answered || s.Feedback.Kind != FeedbackNone {
		t.Error("feedback not cleared after advance")
	}
	if (*levels)[len(*levels)-1] != 2 {
		t.Errorf("last generated level = %d, want 2", (*levels)[len(*levels)-1])
	}
}

func TestPracticeWrongAnswerLosesLife(t *testing.T) {
	c, _ := newTestController(t)
	c.StartPractice()

	ds := c.SelectAnswer("x")
	if len(ds) != 1 || ds[0].Kind != DeferClearFeedback || ds[0].Delay != ClearFeedbackDelay {
		t.Fatalf("deferred = %+v, want single DeferClearFeedback", ds)
	}
	s := c.Snapshot()
	if s.Profile.Lives != 4 {
		t.Errorf("Lives = %d, want 4", s.Profile.Lives)
	}
	if s.Profile.Level != 1 {
		t.Errorf("Level = %d, wrong answer must not advance", s.Profile.Level)
	}
	if s.Feedback.Msg != MsgIncorrect {
		t.Errorf("feedback = %q", s.Feedback.Msg)
	}

	deliverAll(c, ds)
	s = c.Snapshot()
	if s.Answered || s.Feedback.Kind != FeedbackNone {
		t.Error("input not re-enabled after clear")
	}
	// Same problem remains for retry.
	if s.Problem == nil || s.Problem.Answer != "L1" {
		t.Errorf("problem changed after wrong answer: %+v", s.Problem)
	}
}

func TestAnswerLockedWhileFeedbackShowing(t *testing.T) {
	c, _ := newTestController(t)
	c.StartPractice()
	c.SelectAnswer("L1")
	if ds := c.SelectAnswer("L1"); ds != nil {
		t.Errorf("second SelectAnswer accepted while locked: %+v", ds)
	}
	if got := c.Snapshot().Profile.XP; got != 20 {
		t.Errorf("XP = %d, double award through locked input", got)
	}
}

// Five consecutive wrong answers drain all lives and force the depleted
// mode; recovery restores 5 lives with xp and unlocks untouched.
func TestLifeDepletionAndRecovery(t *testing.T) {
	c, _ := newTestController(t)
	c.StartPractice()

	var last []Deferred
	for i := 0; i < 5; i++ {
		last = c.SelectAnswer("x")
		if i < 4 {
			if last[0].Kind != DeferClearFeedback {
				t.Fatalf("wrong answer %d deferred %+v", i+1, last[0])
			}
			deliverAll(c, last)
		}
	}
	if got := c.Snapshot().Profile.Lives; got != 0 {
		t.Fatalf("Lives = %d after 5 wrong answers, want 0", got)
	}
	if len(last) != 1 || last[0].Kind != DeferDepleted || last[0].Delay != DepletedDelay {
		t.Fatalf("final deferred = %+v, want DeferDepleted", last)
	}

	deliverAll(c, last)
	s := c.Snapshot()
	if s.Mode != ModeDepleted {
		t.Fatalf("Mode = %d, want ModeDepleted", s.Mode)
	}

	c.ResetAfterDepletion()
	s = c.Snapshot()
	if s.Mode != ModeTrail {
		t.Errorf("Mode = %d after recovery, want ModeTrail", s.Mode)
	}
	if s.Profile.Lives != progression.MaxLives {
		t.Errorf("Lives = %d after recovery, want %d", s.Profile.Lives, progression.MaxLives)
	}
	if s.Profile.XP != 0 || s.Profile.UnlockedModule != 1 {
		t.Errorf("recovery touched xp/unlock: %+v", s.Profile)
	}
}

func TestResetOnlyWorksWhenDepleted(t *testing.T) {
	c, _ := newTestController(t)
	c.StartPractice()
	c.SelectAnswer("x")
	c.ResetAfterDepletion()
	if got := c.Snapshot().Profile.Lives; got != 4 {
		t.Errorf("Lives = %d, reset must be a no-op outside depleted mode", got)
	}
}

func TestStartExamOnlyForUnlockedModule(t *testing.T) {
	c, levels := newTestController(t)
	if err := c.StartExam(2); err != ErrExamUnavailable {
		t.Errorf("StartExam(2) err = %v, want ErrExamUnavailable", err)
	}
	if err := c.StartExam(1); err != nil {
		t.Fatalf("StartExam(1) err = %v", err)
	}
	s := c.Snapshot()
	if s.Mode != ModeExam || s.Exam == nil {
		t.Fatalf("mode=%d exam=%v", s.Mode, s.Exam)
	}
	if s.Exam.Total != exam.QuestionCount || s.Exam.Index != 0 || s.Exam.Score != 0 {
		t.Errorf("exam view = %+v", s.Exam)
	}
	m, _ := catalog.ByID(1)
	want := m.Lo + exam.LevelOffset
	if len(*levels) != exam.QuestionCount {
		t.Fatalf("generated %d questions, want %d", len(*levels), exam.QuestionCount)
	}
	for i, lv := range *levels {
		if lv != want {
			t.Errorf("question %d at level %d, want %d", i, lv, want)
		}
	}
}

// answerExamCorrectly answers every exam question correctly, delivering
// the advance timers in between, and returns the final undelivered
// deferreds. Wrong answers never move the cursor, so a completed exam
// always scores 10; tests that need a failing score overwrite it before
// the grading delivery.
func answerExamCorrectly(t *testing.T, c *Controller) []Deferred {
	t.Helper()
	var last []Deferred
	for i := 0; i < exam.QuestionCount; i++ {
		s := c.Snapshot()
		if s.Exam == nil {
			t.Fatalf("exam gone at question %d", i)
		}
		last = c.SelectAnswer(s.Exam.Question.Answer)
		if i < exam.QuestionCount-1 {
			deliverAll(c, last)
		}
	}
	return last
}

func TestExamPassUnlocksNextModule(t *testing.T) {
	c, _ := newTestController(t)
	if err := c.StartExam(1); err != nil {
		t.Fatal(err)
	}

	last := answerExamCorrectly(t, c)
	if got := c.Snapshot().Exam.Score; got != exam.QuestionCount {
		t.Fatalf("Score = %d, want %d", got, exam.QuestionCount)
	}

	// Delivering the final advance grades the exam and schedules close.
	follow := deliverAll(c, last)
	s := c.Snapshot()
	if s.Profile.UnlockedModule != 2 {
		t.Errorf("UnlockedModule = %d, want 2", s.Profile.UnlockedModule)
	}
	if s.Feedback.Msg != MsgUnlocked {
		t.Errorf("feedback = %q, want %q", s.Feedback.Msg, MsgUnlocked)
	}
	if len(follow) != 1 || follow[0].Kind != DeferCloseExam || follow[0].Delay != CloseExamDelay {
		t.Fatalf("follow-up = %+v, want DeferCloseExam", follow)
	}

	deliverAll(c, follow)
	s = c.Snapshot()
	if s.Mode != ModeTrail || s.Exam != nil {
		t.Errorf("exam not dismissed: mode=%d exam=%v", s.Mode, s.Exam)
	}
	if s.Feedback.Kind != FeedbackNone {
		t.Error("feedback not cleared on close")
	}
}

func TestExamFailLeavesModuleLocked(t *testing.T) {
	c, _ := newTestController(t)
	if err := c.StartExam(1); err != nil {
		t.Fatal(err)
	}

	last := answerExamCorrectly(t, c)
	// Force a failing score before grading runs.
	c.exam.Score = exam.PassThreshold - 1

	follow := deliverAll(c, last)
	s := c.Snapshot()
	if s.Profile.UnlockedModule != 1 {
		t.Errorf("UnlockedModule = %d, want 1", s.Profile.UnlockedModule)
	}
	if s.Feedback.Msg != MsgExamFail {
		t.Errorf("feedback = %q, want %q", s.Feedback.Msg, MsgExamFail)
	}
	if len(follow) != 1 || follow[0].Kind != DeferCloseExam {
		t.Fatalf("follow-up = %+v", follow)
	}
	deliverAll(c, follow)
	if got := c.Snapshot().Profile.UnlockedModule; got != 1 {
		t.Errorf("UnlockedModule = %d after close, want 1", got)
	}
}

// Abandoning an exam keeps the xp and life changes already accrued.
func TestAbandonExamKeepsPartialProgress(t *testing.T) {
	c, _ := newTestController(t)
	if err := c.StartExam(1); err != nil {
		t.Fatal(err)
	}
	q := c.Snapshot().Exam.Question
	ds := c.SelectAnswer(q.Answer) // +20 xp
	deliverAll(c, ds)
	deliverAll(c, c.SelectAnswer("__wrong__")) // -1 life

	c.AbandonExam()
	s := c.Snapshot()
	if s.Mode != ModeTrail || s.Exam != nil {
		t.Fatalf("abandon left mode=%d exam=%v", s.Mode, s.Exam)
	}
	if s.Profile.XP != 20 || s.Profile.Lives != 4 {
		t.Errorf("profile after abandon = %+v, want xp=20 lives=4", s.Profile)
	}
	if s.Profile.UnlockedModule != 1 {
		t.Errorf("abandon must not unlock: %d", s.Profile.UnlockedModule)
	}
}

// A timer scheduled before a teardown must be dropped when delivered.
func TestStaleTimerIsDropped(t *testing.T) {
	c, _ := newTestController(t)
	if err := c.StartExam(1); err != nil {
		t.Fatal(err)
	}
	q := c.Snapshot().Exam.Question
	stale := c.SelectAnswer(q.Answer)

	c.AbandonExam()
	c.StartPractice()
	before := c.Snapshot()

	if follow := deliverAll(c, stale); follow != nil {
		t.Fatalf("stale timer produced follow-ups: %+v", follow)
	}
	after := c.Snapshot()
	if after.Profile.Level != before.Profile.Level {
		t.Errorf("stale advance mutated level: %d -> %d", before.Profile.Level, after.Profile.Level)
	}
	if after.Problem.ID != before.Problem.ID {
		t.Error("stale advance replaced the current problem")
	}
}

func TestUnlockIsMonotonicAcrossExams(t *testing.T) {
	c, _ := newTestController(t)
	for mod := 1; mod <= 3; mod++ {
		if err := c.StartExam(mod); err != nil {
			t.Fatalf("StartExam(%d): %v", mod, err)
		}
		last := answerExamCorrectly(t, c)
		follow := deliverAll(c, last)
		deliverAll(c, follow)
		if got := c.Snapshot().Profile.UnlockedModule; got != mod+1 {
			t.Fatalf("after exam %d: unlocked = %d, want %d", mod, got, mod+1)
		}
	}
}

func TestSnapshotWarningSurfacesPersistenceFailure(t *testing.T) {
	levels := &[]int{}
	c := New(progression.NewProfile("ana"), failingSaver{}, stubGen(levels))
	c.StartPractice()
	c.SelectAnswer("L1")
	s := c.Snapshot()
	if s.Warning == "" {
		t.Error("warning empty after failed persistence write")
	}
	if s.Profile.XP != 20 {
		t.Errorf("in-memory state not authoritative: xp = %d", s.Profile.XP)
	}
}

type failingSaver struct{}

func (failingSaver) SaveSession(progression.Profile) error {
	return errors.New("store offline")
}

func (failingSaver) PutAccountProfile(progression.Profile) error {
	return errors.New("store offline")
}

func TestDepletedAtLoginEntersDepletedMode(t *testing.T) {
	p := progression.NewProfile("ana")
	p.Lives = 0
	c := New(p, nil, nil)
	if got := c.Snapshot().Mode; got != ModeDepleted {
		t.Errorf("Mode = %d, want ModeDepleted", got)
	}
}
