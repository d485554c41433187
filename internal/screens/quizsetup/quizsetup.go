package quizsetup

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Okyu59/TubeLingo/internal/bundle"
	"github.com/Okyu59/TubeLingo/internal/progress"
	core "github.com/Okyu59/TubeLingo/internal/quiz"
	"github.com/Okyu59/TubeLingo/internal/router"
	"github.com/Okyu59/TubeLingo/internal/screen"
	quizscreen "github.com/Okyu59/TubeLingo/internal/screens/quiz"
	"github.com/Okyu59/TubeLingo/internal/ui/layout"
	"github.com/Okyu59/TubeLingo/internal/ui/theme"
)

const (
	rowDifficulty = iota
	rowCount
	rowStart
)

var difficulties = []bundle.Difficulty{
	bundle.DifficultyEasy,
	bundle.DifficultyNormal,
	bundle.DifficultyHard,
}

var difficultyLabels = map[bundle.Difficulty]string{
	bundle.DifficultyEasy:   "쉬움",
	bundle.DifficultyNormal: "보통",
	bundle.DifficultyHard:   "어려움",
}

// SetupScreen lets the user pick quiz difficulty and length before a run.
type SetupScreen struct {
	bundle *bundle.StudyBundle
	stats  *progress.Stats

	row        int
	difficulty int // index into difficulties
	count      int // index into core.AllowedCounts
	notice     string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates the quiz setup screen with normal difficulty and the smallest
// session length preselected.
func New(b *bundle.StudyBundle, stats *progress.Stats) *SetupScreen {
	return &SetupScreen{bundle: b, stats: stats, difficulty: 1}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "Quiz Setup"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key.String() {
	case "up", "k":
		if s.row > rowDifficulty {
			s.row--
		}
	case "down", "j":
		if s.row < rowStart {
			s.row++
		}
	case "left", "h":
		s.cycle(-1)
	case "right", "l":
		s.cycle(1)
	case "enter":
		if s.row == rowStart {
			return s, s.start()
		}
		s.row++
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *SetupScreen) cycle(delta int) {
	switch s.row {
	case rowDifficulty:
		s.difficulty = wrap(s.difficulty+delta, len(difficulties))
	case rowCount:
		s.count = wrap(s.count+delta, len(core.AllowedCounts))
	}
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// start assembles the session and pushes the quiz run. An empty bank keeps
// the user here with a notice instead of starting a hollow quiz.
func (s *SetupScreen) start() tea.Cmd {
	cfg := core.Config{
		Count:      core.AllowedCounts[s.count],
		Difficulty: difficulties[s.difficulty],
	}
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	questions, err := core.Build(s.bundle.QuizBank, cfg, rng)
	if err != nil {
		if errors.Is(err, core.ErrEmptyBank) {
			s.notice = "출제할 문제가 없습니다."
		} else {
			s.notice = "퀴즈를 생성할 수 없습니다."
		}
		return nil
	}

	s.notice = ""
	stats := s.stats
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: quizscreen.New(questions, stats)}
	}
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("퀴즈 설정") + "\n")
	b.WriteString(theme.Subtitle.Width(width).Render(s.bundle.Title) + "\n\n")

	b.WriteString(s.renderPicker("난이도", s.difficultyLabelsRow(), s.row == rowDifficulty) + "\n")
	b.WriteString(s.renderPicker("문항 수", s.countLabelsRow(), s.row == rowCount) + "\n\n")

	startLabel := "  시작하기  "
	if s.row == rowStart {
		b.WriteString(theme.Selected.Render("▸ "+startLabel) + "\n")
	} else {
		b.WriteString(theme.Unselected.Render("  "+startLabel) + "\n")
	}

	if s.notice != "" {
		b.WriteString("\n" + theme.Notice.Render(" "+s.notice))
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (s *SetupScreen) difficultyLabelsRow() []pickerOption {
	opts := make([]pickerOption, len(difficulties))
	for i, d := range difficulties {
		opts[i] = pickerOption{Label: difficultyLabels[d], Active: i == s.difficulty}
	}
	return opts
}

func (s *SetupScreen) countLabelsRow() []pickerOption {
	opts := make([]pickerOption, len(core.AllowedCounts))
	for i, n := range core.AllowedCounts {
		opts[i] = pickerOption{Label: fmt.Sprintf("%d문제", n), Active: i == s.count}
	}
	return opts
}

type pickerOption struct {
	Label  string
	Active bool
}

func (s *SetupScreen) renderPicker(label string, opts []pickerOption, focused bool) string {
	marker := "  "
	if focused {
		marker = "▸ "
	}

	var row strings.Builder
	row.WriteString(marker + label + "   ")
	for _, opt := range opts {
		cell := " " + opt.Label + " "
		switch {
		case opt.Active && focused:
			row.WriteString(theme.Selected.Render("["+cell+"]") + " ")
		case opt.Active:
			row.WriteString(theme.Correct.Render("["+cell+"]") + " ")
		default:
			row.WriteString(theme.DimLine.Render(" "+cell+" ") + " ")
		}
	}
	return row.String()
}
