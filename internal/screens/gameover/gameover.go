// Package gameover implements the recovery screen shown when the
// learner runs out of lives.
package gameover

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Victor-Rafael0/MATHPATH/internal/router"
	"github.com/Victor-Rafael0/MATHPATH/internal/screen"
	"github.com/Victor-Rafael0/MATHPATH/internal/session"
	"github.com/Victor-Rafael0/MATHPATH/internal/ui/components"
	"github.com/Victor-Rafael0/MATHPATH/internal/ui/layout"
	"github.com/Victor-Rafael0/MATHPATH/internal/ui/theme"
)

// GameOverScreen blocks progress until the learner recovers their lives.
type GameOverScreen struct {
	ctrl   *session.Controller
	button components.Button
}

var _ screen.Screen = (*GameOverScreen)(nil)

// New creates the recovery screen.
func New(ctrl *session.Controller) *GameOverScreen {
	s := &GameOverScreen{ctrl: ctrl}
	s.button = components.NewButton("RECUPERAR VIDAS", true, s.recover)
	return s
}

func (s *GameOverScreen) Title() string { return "Sem Vidas" }

func (s *GameOverScreen) Init() tea.Cmd { return nil }

func (s *GameOverScreen) HeaderStats() layout.Stats {
	p := s.ctrl.Snapshot().Profile
	return layout.Stats{Name: p.Name, Level: p.Level, XP: p.XP, Sigmas: p.Sigmas, Lives: p.Lives}
}

func (s *GameOverScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Recuperar"},
		{Key: "Ctrl+C", Description: "Sair"},
	}
}

func (s *GameOverScreen) recover() tea.Cmd {
	s.ctrl.ResetAfterDepletion()
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *GameOverScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.button, cmd = s.button.Update(msg)
	return s, cmd
}

func (s *GameOverScreen) View(width, height int) string {
	title := theme.Incorrect.Render("Suas vidas acabaram!")
	body := theme.Body.Render("Respire fundo, revise os conceitos e volte à trilha.")
	hearts := layout.RenderHearts(0, 5)

	card := theme.Card.Width(48).Render(strings.Join([]string{
		title, "", hearts, "", body, "", s.button.View(),
	}, "\n"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
