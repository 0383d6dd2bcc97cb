// Package login implements the access screen: existing learners sign
// in, new learners create an account. Either path opens a session.
package login

import (
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Victor-Rafael0/MATHPATH/internal/auth"
	"github.com/Victor-Rafael0/MATHPATH/internal/progression"
	"github.com/Victor-Rafael0/MATHPATH/internal/router"
	"github.com/Victor-Rafael0/MATHPATH/internal/screen"
	"github.com/Victor-Rafael0/MATHPATH/internal/ui/components"
	"github.com/Victor-Rafael0/MATHPATH/internal/ui/layout"
	"github.com/Victor-Rafael0/MATHPATH/internal/ui/theme"
)

const (
	focusName = iota
	focusSecret
)

// LoginScreen collects credentials and opens a session through the
// auth service.
type LoginScreen struct {
	svc    *auth.Service
	next   func(progression.Profile) screen.Screen
	name   components.TextInput
	secret components.TextInput
	focus  int
	signup bool
	errMsg string
	notice string
}

var _ screen.Screen = (*LoginScreen)(nil)

// New creates a LoginScreen. next builds the screen shown after a
// successful login or signup.
func New(svc *auth.Service, next func(progression.Profile) screen.Screen) *LoginScreen {
	s := &LoginScreen{
		svc:    svc,
		next:   next,
		name:   components.NewTextInput("Nome", "seu nome", false, 24),
		secret: components.NewTextInput("Senha", "", true, 64),
	}
	return s
}

// SetNotice shows a non-blocking warning on the screen, e.g. when the
// saved session could not be read at startup.
func (s *LoginScreen) SetNotice(msg string) {
	s.notice = msg
}

func (s *LoginScreen) Title() string {
	if s.signup {
		return "Criar Conta"
	}
	return "Acessar"
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.name.Focus()
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	mode := "criar conta"
	if s.signup {
		mode = "acessar"
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Campo"},
		{Key: "Enter", Description: "Confirmar"},
		{Key: "Ctrl+T", Description: mode},
		{Key: "Ctrl+C", Description: "Sair"},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "shift+tab":
			return s, s.toggleFocus()
		case "ctrl+t":
			s.signup = !s.signup
			s.errMsg = ""
			return s, nil
		case "enter":
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	if s.focus == focusName {
		s.name, cmd = s.name.Update(msg)
	} else {
		s.secret, cmd = s.secret.Update(msg)
	}
	return s, cmd
}

func (s *LoginScreen) toggleFocus() tea.Cmd {
	if s.focus == focusName {
		s.focus = focusSecret
		s.name.Blur()
		return s.secret.Focus()
	}
	s.focus = focusName
	s.secret.Blur()
	return s.name.Focus()
}

func (s *LoginScreen) submit() tea.Cmd {
	name := s.name.Value()
	secret := s.secret.Value()

	var (
		profile progression.Profile
		err     error
	)
	if s.signup {
		profile, err = s.svc.Signup(name, secret)
	} else {
		profile, err = s.svc.Login(name, secret)
	}
	if err != nil {
		s.errMsg = errorMessage(err)
		return nil
	}

	s.errMsg = ""
	nextScreen := s.next(profile)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: nextScreen}
	}
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrEmptyInput):
		return "Preencha nome e senha."
	case errors.Is(err, auth.ErrUserExists):
		return "Usuário já existe."
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Erro de acesso. Verifique seus dados."
	default:
		return "Falha inesperada. Tente novamente."
	}
}

func (s *LoginScreen) View(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Italic(true).
		Render("MP.1000")

	subtitle := theme.Subtitle.Render("Plataforma de Maestria Matemática")

	action := "ACESSAR"
	if s.signup {
		action = "CRIAR CONTA"
	}
	button := components.NewButton(action, true, nil)

	var parts []string
	parts = append(parts, title, subtitle, "", s.name.View(), "", s.secret.View(), "", button.View())

	if s.errMsg != "" {
		parts = append(parts, "", theme.Incorrect.Render(s.errMsg))
	}
	if s.notice != "" {
		parts = append(parts, "", theme.Hint.Render("⚠ "+s.notice))
	}

	card := theme.Card.Width(44).Render(strings.Join(parts, "\n"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
