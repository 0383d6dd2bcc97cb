// Package quiz renders an active practice run or certification exam:
// the current question, its options, answer feedback, and the paced
// transitions between questions.
package quiz

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Victor-Rafael0/MATHPATH/internal/exam"
	"github.com/Victor-Rafael0/MATHPATH/internal/router"
	"github.com/Victor-Rafael0/MATHPATH/internal/screen"
	"github.com/Victor-Rafael0/MATHPATH/internal/screens/gameover"
	"github.com/Victor-Rafael0/MATHPATH/internal/session"
	"github.com/Victor-Rafael0/MATHPATH/internal/ui/components"
	"github.com/Victor-Rafael0/MATHPATH/internal/ui/layout"
	"github.com/Victor-Rafael0/MATHPATH/internal/ui/theme"
)

// deferredMsg carries a fired controller timer back into the update loop.
type deferredMsg struct {
	d session.Deferred
}

// QuizScreen drives a controller already placed in practice or exam mode.
type QuizScreen struct {
	ctrl       *session.Controller
	mc         components.MultiChoice
	problemID  string
	confirming bool
}

var _ screen.Screen = (*QuizScreen)(nil)

// New creates a quiz screen over an active controller.
func New(ctrl *session.Controller) *QuizScreen {
	s := &QuizScreen{ctrl: ctrl}
	s.syncChoice()
	return s
}

func (s *QuizScreen) Title() string {
	if s.ctrl.Snapshot().Exam != nil {
		return "Exame"
	}
	return "Prática"
}

func (s *QuizScreen) Init() tea.Cmd { return nil }

func (s *QuizScreen) HeaderStats() layout.Stats {
	p := s.ctrl.Snapshot().Profile
	return layout.Stats{Name: p.Name, Level: p.Level, XP: p.XP, Sigmas: p.Sigmas, Lives: p.Lives}
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Abandonar exame"},
			{Key: "Esc", Description: "Continuar"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Opção"},
		{Key: "Enter", Description: "Responder"},
	}
	if s.ctrl.Snapshot().Exam != nil {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Abandonar"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Voltar"})
	}
	return hints
}

// syncChoice rebuilds the option selector when the question changed and
// mirrors the controller's input lock onto it.
func (s *QuizScreen) syncChoice() {
	snap := s.ctrl.Snapshot()
	q := snap.Problem
	if snap.Exam != nil {
		q2 := snap.Exam.Question
		q = &q2
	}
	if q == nil {
		return
	}
	if q.ID != s.problemID {
		s.mc = components.NewMultiChoice(q.Question, q.Options, q.Answer)
		s.problemID = q.ID
	}
	if snap.Answered {
		s.mc.Reveal()
	} else if s.mc.Locked {
		s.mc.Reset()
	}
}

// scheduleCmds turns controller deferreds into tick commands.
func scheduleCmds(ds []session.Deferred) tea.Cmd {
	if len(ds) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(ds))
	for _, d := range ds {
		d := d
		cmds = append(cmds, tea.Tick(d.Delay, func(time.Time) tea.Msg {
			return deferredMsg{d: d}
		}))
	}
	return tea.Batch(cmds...)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case deferredMsg:
		follow := s.ctrl.Deliver(msg.d)
		s.syncChoice()
		snap := s.ctrl.Snapshot()
		switch snap.Mode {
		case session.ModeTrail:
			// Graded exam was dismissed.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case session.ModeDepleted:
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: gameover.New(s.ctrl)}
			}
		}
		return s, scheduleCmds(follow)

	case tea.KeyMsg:
		if s.confirming {
			switch msg.String() {
			case "enter", "y":
				s.confirming = false
				s.ctrl.AbandonExam()
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			case "esc", "n":
				s.confirming = false
			}
			return s, nil
		}

		if msg.String() == "esc" {
			if s.ctrl.Snapshot().Exam != nil {
				s.confirming = true
				return s, nil
			}
			s.ctrl.GoToTrail()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}

		var choice string
		s.mc, choice = s.mc.Update(msg)
		if choice != "" {
			ds := s.ctrl.SelectAnswer(choice)
			s.syncChoice()
			return s, scheduleCmds(ds)
		}
		return s, nil
	}

	return s, nil
}

func (s *QuizScreen) View(width, height int) string {
	snap := s.ctrl.Snapshot()
	var parts []string

	if snap.Exam != nil {
		parts = append(parts, s.examHeader(snap))
	} else if snap.Problem != nil {
		header := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render(fmt.Sprintf("%s  ·  Nível %d", snap.Problem.ModuleName, snap.Profile.Level))
		parts = append(parts, header)
	}

	parts = append(parts, "", s.mc.View())

	if snap.Feedback.Kind != session.FeedbackNone {
		style := theme.Correct
		if snap.Feedback.Kind == session.FeedbackError {
			style = theme.Incorrect
		}
		parts = append(parts, style.Render(snap.Feedback.Msg))
	} else if snap.Exam == nil && snap.Problem != nil && snap.Problem.Hint != "" {
		parts = append(parts, theme.Hint.Render("Dica: "+snap.Problem.Hint))
	}

	if snap.Warning != "" {
		parts = append(parts, "", theme.Hint.Render("⚠ "+snap.Warning))
	}

	if s.confirming {
		parts = append(parts, "", theme.Incorrect.Render("Abandonar o exame? O progresso da prova será perdido."))
	}

	card := theme.Card.Width(min(width-4, 64)).Render(strings.Join(parts, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *QuizScreen) examHeader(snap session.Snapshot) string {
	ev := snap.Exam
	label := fmt.Sprintf("Questão %d/%d  ·  Acertos %d", ev.Index+1, ev.Total, ev.Score)
	bar := components.NewProgressBar("", float64(ev.Index)/float64(exam.QuestionCount), false, 40)
	return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(label) + "\n" + bar.View()
}
