package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Okyu59/TubeLingo/internal/progress"
	core "github.com/Okyu59/TubeLingo/internal/quiz"
	"github.com/Okyu59/TubeLingo/internal/router"
	"github.com/Okyu59/TubeLingo/internal/screen"
	"github.com/Okyu59/TubeLingo/internal/screens/result"
	"github.com/Okyu59/TubeLingo/internal/ui/components"
	"github.com/Okyu59/TubeLingo/internal/ui/layout"
	"github.com/Okyu59/TubeLingo/internal/ui/theme"
)

// QuizScreen drives one quiz run question by question.
type QuizScreen struct {
	run    *core.Run
	stats  *progress.Stats
	choice components.MultiChoice
	broken bool // current question could not be loaded
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen over an assembled question sequence.
func New(questions []core.SessionQuestion, stats *progress.Stats) *QuizScreen {
	s := &QuizScreen{run: core.NewRun(questions), stats: stats}
	s.loadQuestion()
	return s
}

// loadQuestion rebuilds the choice component for the run's current question.
func (s *QuizScreen) loadQuestion() {
	q, ok := s.run.Current()
	if !ok {
		s.broken = true
		return
	}
	s.broken = false
	s.choice = components.NewMultiChoice(q.Question, q.Options, q.Answer)
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.run.Answered {
		return []layout.KeyHint{{Key: "Enter", Description: "Next"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓ / 1-4", Description: "Select"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return s, nil
	}

	if s.broken {
		if key.String() == "enter" || key.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	switch key.String() {
	case "enter":
		if s.run.Answered {
			return s.advance()
		}
		return s.submit()
	case "esc":
		// Abandon the run; no XP is awarded for an unfinished quiz.
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	s.run.Select(s.choice.Selected)
	return s, cmd
}

// submit locks in the highlighted option and grades it. The cursor counts
// as the selection, so there is always a selected option; the no-selection
// guard in Run.Submit only matters for callers driving a Run directly.
func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	s.run.Select(s.choice.Selected)
	if !s.run.Submit() {
		return s, nil
	}
	s.choice.Lock(s.choice.Selected)
	return s, nil
}

// advance moves to the next question, or ends the run on the last one.
func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	s.run.Advance()
	if s.run.Complete {
		score, total, stats := s.run.Score, s.run.Length(), s.stats
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: result.New(score, total, stats)}
		}
	}
	s.loadQuestion()
	return s, nil
}

func (s *QuizScreen) View(width, height int) string {
	if s.broken {
		return theme.Notice.Width(width).Align(lipgloss.Center).Render("문제를 불러올 수 없습니다.")
	}

	q, ok := s.run.Current()
	if !ok {
		return theme.Notice.Width(width).Align(lipgloss.Center).Render("문제를 불러올 수 없습니다.")
	}

	var b strings.Builder
	header := fmt.Sprintf("문제 %d / %d   맞힌 문제 %d", q.Seq+1, s.run.Length(), s.run.Score)
	b.WriteString(theme.Subtitle.Width(width).Render(header) + "\n\n")
	b.WriteString(s.choice.View())

	if s.run.Answered {
		b.WriteString("\n")
		if s.run.LastCorrect {
			b.WriteString(theme.Correct.Render("정답입니다!") + "\n")
		} else {
			b.WriteString(theme.Incorrect.Render("틀렸습니다.") + "\n")
		}
		if q.Rationale != "" {
			b.WriteString(theme.Hint.Render("해설: "+q.Rationale) + "\n")
		}
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}
