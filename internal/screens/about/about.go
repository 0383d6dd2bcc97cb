// Package about shows a short description of the program.
package about

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Victor-Rafael0/MATHPATH/internal/router"
	"github.com/Victor-Rafael0/MATHPATH/internal/screen"
	"github.com/Victor-Rafael0/MATHPATH/internal/ui/layout"
	"github.com/Victor-Rafael0/MATHPATH/internal/ui/theme"
)

// AboutScreen is a static information page.
type AboutScreen struct{}

var _ screen.Screen = (*AboutScreen)(nil)

// New creates the about screen.
func New() *AboutScreen { return &AboutScreen{} }

func (s *AboutScreen) Title() string { return "Sobre" }

func (s *AboutScreen) Init() tea.Cmd { return nil }

func (s *AboutScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Voltar"},
	}
}

func (s *AboutScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "esc" || kmsg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *AboutScreen) View(width, height int) string {
	title := theme.Title.Render("MP.1000")
	lines := []string{
		title,
		"",
		theme.Body.Render("Uma trilha de maestria matemática em 1000 níveis,"),
		theme.Body.Render("dividida em seis módulos temáticos."),
		"",
		theme.Body.Render("Responda problemas, ganhe XP, preserve suas vidas"),
		theme.Body.Render("e certifique cada módulo com um exame de 10 questões."),
		"",
		theme.Hint.Render("Aprovação no exame: 8 de 10 acertos."),
	}

	card := theme.Card.Width(58).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
