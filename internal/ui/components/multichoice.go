package components

import (
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Okyu59/TubeLingo/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// MultiChoice renders a question with selectable options. The owning screen
// decides when an answer is submitted; Lock freezes the component in its
// answered state, after which the correct option is highlighted green, an
// incorrectly chosen option red, and the rest dimmed.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int

	Selected int
	Locked   bool
	Chosen   int // option locked in by Lock, -1 before
}

// NewMultiChoice creates an unanswered multiple-choice block.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		Chosen:       -1,
	}
}

// Update handles cursor movement and number-key selection. Locked
// components ignore everything.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Locked {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Options) {
			m.Selected = n - 1
		}
	}

	return m, nil
}

// Lock freezes the component with the given chosen option for outcome
// display.
func (m *MultiChoice) Lock(chosen int) {
	m.Locked = true
	m.Chosen = chosen
}

// View renders the question and option list.
func (m MultiChoice) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		label := strconv.Itoa(i + 1)
		if i < len(optionLabels) {
			label = optionLabels[i]
		}
		prefix := "  "
		if i == m.Selected && !m.Locked {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case m.Locked && i == m.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case m.Locked && i == m.Chosen:
			s += theme.Incorrect.Render(line) + "\n"
		case m.Locked:
			s += theme.DimLine.Render(line) + "\n"
		case i == m.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}
