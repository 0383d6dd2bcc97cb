// Package trail implements the module map: the six modules with their
// lock status, the learner's position, and the actions available from
// the map (practice, exam, about, logout).
package trail

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Victor-Rafael0/MATHPATH/internal/catalog"
	"github.com/Victor-Rafael0/MATHPATH/internal/router"
	"github.com/Victor-Rafael0/MATHPATH/internal/screen"
	"github.com/Victor-Rafael0/MATHPATH/internal/screens/about"
	"github.com/Victor-Rafael0/MATHPATH/internal/screens/gameover"
	"github.com/Victor-Rafael0/MATHPATH/internal/screens/quiz"
	"github.com/Victor-Rafael0/MATHPATH/internal/session"
	"github.com/Victor-Rafael0/MATHPATH/internal/store"
	"github.com/Victor-Rafael0/MATHPATH/internal/ui/components"
	"github.com/Victor-Rafael0/MATHPATH/internal/ui/layout"
	"github.com/Victor-Rafael0/MATHPATH/internal/ui/theme"
)

// TrailScreen is the authenticated home screen.
type TrailScreen struct {
	ctrl  *session.Controller
	gw    store.Gateway
	login func() screen.Screen
	menu  components.Menu
}

var _ screen.Screen = (*TrailScreen)(nil)

// New creates the trail screen for an active session. login builds the
// screen shown after logout.
func New(ctrl *session.Controller, gw store.Gateway, login func() screen.Screen) *TrailScreen {
	s := &TrailScreen{
		ctrl:  ctrl,
		gw:    gw,
		login: login,
	}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Praticar", Action: s.startPractice},
		{Label: "Fazer exame do módulo", Action: s.startExam},
		{Label: "Sobre", Action: s.openAbout},
		{Label: "Sair", Action: s.logout},
	})
	return s
}

func (s *TrailScreen) Title() string { return "Trilha" }

func (s *TrailScreen) Init() tea.Cmd {
	// A learner persisted with zero lives resumes on the recovery
	// screen, not the map.
	if s.ctrl.Snapshot().Mode == session.ModeDepleted {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: gameover.New(s.ctrl)}
		}
	}
	return nil
}

func (s *TrailScreen) HeaderStats() layout.Stats {
	p := s.ctrl.Snapshot().Profile
	return layout.Stats{Name: p.Name, Level: p.Level, XP: p.XP, Sigmas: p.Sigmas, Lives: p.Lives}
}

func (s *TrailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Selecionar"},
		{Key: "Ctrl+C", Description: "Sair"},
	}
}

func (s *TrailScreen) startPractice() tea.Cmd {
	s.ctrl.StartPractice()
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: quiz.New(s.ctrl)}
	}
}

func (s *TrailScreen) startExam() tea.Cmd {
	moduleID := s.ctrl.Snapshot().Profile.UnlockedModule
	if err := s.ctrl.StartExam(moduleID); err != nil {
		return nil
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: quiz.New(s.ctrl)}
	}
}

func (s *TrailScreen) openAbout() tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: about.New()}
	}
}

func (s *TrailScreen) logout() tea.Cmd {
	_ = s.gw.ClearSession()
	s.ctrl.Logout()
	loginScreen := s.login()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: loginScreen}
	}
}

func (s *TrailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Returning from a quiz with lives exhausted goes to recovery.
	if s.ctrl.Snapshot().Mode == session.ModeDepleted {
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: gameover.New(s.ctrl)}
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *TrailScreen) View(width, height int) string {
	snap := s.ctrl.Snapshot()
	unlocked := snap.Profile.UnlockedModule

	var cards []string
	for _, m := range catalog.All() {
		cards = append(cards, s.renderModule(m, snap, unlocked, width))
	}

	menuCard := theme.Card.Render(s.menu.View())
	body := strings.Join(cards, "\n") + "\n\n" + menuCard

	if snap.Warning != "" {
		body += "\n" + theme.Hint.Render("⚠ "+snap.Warning)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, body)
}

func (s *TrailScreen) renderModule(m catalog.Module, snap session.Snapshot, unlocked, width int) string {
	titleStyle := lipgloss.NewStyle().Foreground(m.Color).Bold(true)
	line := titleStyle.Render(fmt.Sprintf("%d. %s", m.ID, m.Title))

	var status string
	switch {
	case m.ID < unlocked:
		status = theme.Correct.Render("CONCLUÍDO")
	case m.ID == unlocked:
		status = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("ATUAL")
	default:
		status = lipgloss.NewStyle().Foreground(theme.TextDim).Render("BLOQUEADO")
	}

	desc := lipgloss.NewStyle().Foreground(theme.TextDim).Render(m.Description)

	row := line + "  " + status + "\n" + desc

	if m.ID == unlocked && m.Contains(snap.Profile.Level) {
		done := snap.Profile.Level - m.Lo
		pct := float64(done) / float64(catalog.LevelsPerModule)
		bar := components.NewProgressBar("", pct, true, 40)
		row += "\n" + bar.View()
	}

	return row
}
