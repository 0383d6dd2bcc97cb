package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Victor-Rafael0/MATHPATH/internal/ui/theme"
)

// MultiChoice is a multiple-choice option selector. Correctness is
// decided by the owning screen; the component only reports which option
// string was chosen and renders the reveal state it is told to show.
type MultiChoice struct {
	Question string
	Options  []string
	Answer   string
	Selected int
	Locked   bool
	Chosen   int
}

// NewMultiChoice creates a selector for a problem's option list.
func NewMultiChoice(question string, options []string, answer string) MultiChoice {
	return MultiChoice{
		Question: question,
		Options:  options,
		Answer:   answer,
		Selected: 0,
		Chosen:   -1,
	}
}

// Update handles keyboard navigation and returns the chosen option on
// enter. Input is ignored while locked.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, string) {
	if m.Locked {
		return m, ""
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, ""
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Chosen = m.Selected
		return m, m.Options[m.Chosen]
	}

	return m, ""
}

// Reveal freezes input and shows the answer coloring.
func (m *MultiChoice) Reveal() { m.Locked = true }

// Reset re-enables input for a retry on the same question.
func (m *MultiChoice) Reset() {
	m.Locked = false
	m.Chosen = -1
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	labels := []string{"A", "B", "C", "D"}

	for i, opt := range m.Options {
		label := labels[i%len(labels)]
		prefix := "  "
		if i == m.Selected && !m.Locked {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case m.Locked && opt == m.Answer:
			s += theme.Correct.Render(line) + "\n"
		case m.Locked && i == m.Chosen:
			s += theme.Incorrect.Render(line) + "\n"
		case m.Locked:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}
