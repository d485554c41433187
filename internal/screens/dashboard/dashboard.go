package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Okyu59/TubeLingo/internal/progress"
	"github.com/Okyu59/TubeLingo/internal/router"
	"github.com/Okyu59/TubeLingo/internal/screen"
	"github.com/Okyu59/TubeLingo/internal/ui/components"
	"github.com/Okyu59/TubeLingo/internal/ui/layout"
	"github.com/Okyu59/TubeLingo/internal/ui/theme"
)

// DashboardScreen shows cumulative progress and the saved word list.
type DashboardScreen struct {
	stats *progress.Stats
	goal  components.ProgressBar
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates the dashboard over the shared progress state.
func New(stats *progress.Stats) *DashboardScreen {
	return &DashboardScreen{
		stats: stats,
		goal: components.ProgressBar{
			Label:       "오늘의 목표",
			ShowPercent: true,
			Width:       40,
		},
	}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q":
			return d, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return d, nil
}

func (d *DashboardScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("학습 대시보드") + "\n\n")

	stats := fmt.Sprintf("✦ 총 %d XP        🔥 %d일 연속 학습", d.stats.TotalXP, d.stats.Streak)
	b.WriteString(theme.Body.Width(width).Align(lipgloss.Center).Render(stats) + "\n\n")

	d.goal.Percent = d.stats.GoalProgress()
	goalLine := fmt.Sprintf("%s   (%d / %d XP)", d.goal.View(), d.stats.TodayXP, d.stats.TodayGoal)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, goalLine) + "\n\n")

	b.WriteString(theme.Subtitle.Width(width).Render("저장한 단어") + "\n")
	words := d.stats.Words()
	if len(words) == 0 {
		b.WriteString(theme.DimLine.Width(width).Align(lipgloss.Center).Render("아직 저장한 단어가 없습니다.") + "\n")
		return b.String()
	}

	max := height - 9
	if max < 1 {
		max = 1
	}
	for i, w := range words {
		if i >= max {
			b.WriteString(theme.DimLine.Width(width).Align(lipgloss.Center).
				Render(fmt.Sprintf("... 외 %d개", len(words)-max)) + "\n")
			break
		}
		line := fmt.Sprintf("%s (%s)  %s", w.Word, w.Type, w.Meaning)
		b.WriteString(theme.Body.Width(width).Align(lipgloss.Center).Render(line) + "\n")
	}

	return b.String()
}
