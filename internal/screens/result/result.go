package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Okyu59/TubeLingo/internal/progress"
	"github.com/Okyu59/TubeLingo/internal/router"
	"github.com/Okyu59/TubeLingo/internal/screen"
	"github.com/Okyu59/TubeLingo/internal/screens/dashboard"
	"github.com/Okyu59/TubeLingo/internal/ui/components"
	"github.com/Okyu59/TubeLingo/internal/ui/layout"
	"github.com/Okyu59/TubeLingo/internal/ui/theme"
)

// ResultScreen shows the outcome of a finished quiz run. The XP reward is
// applied once, when the screen is created.
type ResultScreen struct {
	score  int
	total  int
	gained int
	stats  *progress.Stats
	menu   components.Menu
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New folds the quiz result into the progress stats and builds the screen.
func New(score, total int, stats *progress.Stats) *ResultScreen {
	gained := stats.AddQuizResult(score)

	s := &ResultScreen{score: score, total: total, gained: gained, stats: stats}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "대시보드 보기", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: dashboard.New(stats)}
			}
		}},
		{Label: "처음으로", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopToRootMsg{} }
		}},
	})
	s.menu.Focused = true
	return s
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Result"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Select"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ResultScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("퀴즈 완료!") + "\n\n")

	card := fmt.Sprintf("점수  %d / %d\n획득 XP  +%d", s.score, s.total, s.gained)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(card)) + "\n\n")

	summary := fmt.Sprintf("총 %d XP   🔥 %d일 연속", s.stats.TotalXP, s.stats.Streak)
	b.WriteString(theme.Subtitle.Width(width).Render(summary) + "\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	return b.String()
}
