// Package app wires the screens, the session controller, and the
// persistence gateway into the root Bubble Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Victor-Rafael0/MATHPATH/internal/auth"
	"github.com/Victor-Rafael0/MATHPATH/internal/progression"
	"github.com/Victor-Rafael0/MATHPATH/internal/router"
	"github.com/Victor-Rafael0/MATHPATH/internal/screen"
	"github.com/Victor-Rafael0/MATHPATH/internal/screens/login"
	"github.com/Victor-Rafael0/MATHPATH/internal/screens/trail"
	"github.com/Victor-Rafael0/MATHPATH/internal/session"
	"github.com/Victor-Rafael0/MATHPATH/internal/store"
	"github.com/Victor-Rafael0/MATHPATH/internal/ui/layout"
)

// Options carries the collaborators the TUI needs.
type Options struct {
	Gateway store.Gateway
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel builds the screen graph. A persisted session skips the
// login screen and resumes on the trail.
func newAppModel(opts Options) AppModel {
	gw := opts.Gateway
	svc := auth.New(gw)

	var loginFactory func() screen.Screen
	trailFactory := func(p progression.Profile) screen.Screen {
		ctrl := session.New(p, gw, nil)
		return trail.New(ctrl, gw, loginFactory)
	}
	loginFactory = func() screen.Screen {
		return login.New(svc, trailFactory)
	}

	var initial screen.Screen
	switch p, err := gw.LoadSession(); {
	case err != nil:
		// Non-fatal: the learner can still sign in, but the failure
		// must be visible rather than a silent logout.
		ls := login.New(svc, trailFactory)
		ls.SetNotice("sessão salva indisponível: " + err.Error())
		initial = ls
	case p != nil:
		initial = trailFactory(*p)
	default:
		initial = loginFactory()
	}

	return AppModel{
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	var stats *layout.Stats
	if sp, ok := active.(screen.StatsProvider); ok {
		s := sp.HeaderStats()
		stats = &s
	}
	header := layout.RenderHeader(title, stats, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Sair"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
