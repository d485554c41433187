package analyzing

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/google/uuid"

	"github.com/Okyu59/TubeLingo/internal/analyze"
	"github.com/Okyu59/TubeLingo/internal/bundle"
	"github.com/Okyu59/TubeLingo/internal/progress"
	"github.com/Okyu59/TubeLingo/internal/router"
	"github.com/Okyu59/TubeLingo/internal/screen"
	"github.com/Okyu59/TubeLingo/internal/screens/study"
	"github.com/Okyu59/TubeLingo/internal/ui/layout"
	"github.com/Okyu59/TubeLingo/internal/ui/theme"
)

// FailedMsg reaches the home screen after a failed analysis popped this
// screen off; Detail is the collaborator's user-facing message.
type FailedMsg struct {
	Detail string
}

// resultMsg carries the outcome of one analyze flight. Token ties it to the
// flight that issued it; a result with a stale token is discarded.
type resultMsg struct {
	token  string
	bundle *bundle.StudyBundle
	err    error
}

// spinnerTickMsg animates the waiting indicator.
type spinnerTickMsg time.Time

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// AnalyzingScreen owns the single in-flight analyze request. While it is on
// top of the stack no second submission is possible.
type AnalyzingScreen struct {
	client *analyze.Client
	stats  *progress.Stats
	url    string
	token  string
	frame  int
}

var _ screen.Screen = (*AnalyzingScreen)(nil)
var _ screen.KeyHintProvider = (*AnalyzingScreen)(nil)

// New creates the analyzing screen for one submitted URL.
func New(client *analyze.Client, stats *progress.Stats, url string) *AnalyzingScreen {
	return &AnalyzingScreen{
		client: client,
		stats:  stats,
		url:    url,
		token:  uuid.New().String(),
	}
}

func (a *AnalyzingScreen) Init() tea.Cmd {
	return tea.Batch(a.analyzeCmd(), spinnerTick())
}

func (a *AnalyzingScreen) Title() string {
	return "Analyzing"
}

func (a *AnalyzingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Cancel"},
	}
}

// analyzeCmd issues the request off the event loop and re-enters it as a
// resultMsg stamped with this flight's token.
func (a *AnalyzingScreen) analyzeCmd() tea.Cmd {
	client, url, token := a.client, a.url, a.token
	return func() tea.Msg {
		b, err := client.Analyze(context.Background(), url)
		return resultMsg{token: token, bundle: b, err: err}
	}
}

func (a *AnalyzingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		a.frame = (a.frame + 1) % len(spinnerFrames)
		return a, spinnerTick()

	case resultMsg:
		if msg.token != a.token {
			// A flight the learner already abandoned.
			return a, nil
		}
		if msg.err != nil {
			detail := analyze.DefaultDetail
			var reqErr *analyze.RequestError
			if errors.As(msg.err, &reqErr) {
				detail = reqErr.Message()
			}
			return a, tea.Sequence(
				func() tea.Msg { return router.PopScreenMsg{} },
				func() tea.Msg { return FailedMsg{Detail: detail} },
			)
		}
		b, stats := msg.bundle, a.stats
		return a, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: study.New(b, stats)}
		}

	case tea.KeyMsg:
		if msg.String() == "esc" {
			// Abandon the flight: invalidate the token so the eventual
			// resolution is a no-op, then go back to home.
			a.token = ""
			return a, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return a, nil
}

func (a *AnalyzingScreen) View(width, height int) string {
	content := spinnerFrames[a.frame] + "  영상을 분석하고 있습니다...\n\n" +
		theme.Hint.Render("스크립트, 단어장, 퀴즈를 만드는 중입니다. 잠시만 기다려주세요.")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(content))
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
