package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Okyu59/TubeLingo/internal/analyze"
	"github.com/Okyu59/TubeLingo/internal/bundle"
	"github.com/Okyu59/TubeLingo/internal/progress"
	"github.com/Okyu59/TubeLingo/internal/router"
	"github.com/Okyu59/TubeLingo/internal/screen"
	"github.com/Okyu59/TubeLingo/internal/screens/analyzing"
	"github.com/Okyu59/TubeLingo/internal/screens/dashboard"
	"github.com/Okyu59/TubeLingo/internal/ui/components"
	"github.com/Okyu59/TubeLingo/internal/ui/layout"
	"github.com/Okyu59/TubeLingo/internal/ui/theme"
)

// HomeScreen is the root screen: video URL entry plus navigation to the
// dashboard.
type HomeScreen struct {
	client *analyze.Client
	stats  *progress.Stats

	input     components.URLInput
	menu      components.Menu
	menuFocus bool
	errMsg    string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. initialURL pre-fills the input (the `learn`
// command passes the URL given on the command line).
func New(client *analyze.Client, stats *progress.Stats, initialURL string) *HomeScreen {
	input := components.NewURLInput("Paste a video link to start learning...", 60)
	if initialURL != "" {
		input.Model.SetValue(initialURL)
	}

	h := &HomeScreen{
		client: client,
		stats:  stats,
		input:  input,
	}

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "DASHBOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: dashboard.New(stats)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	h.menu.Focused = false

	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.input.Init()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Analyze"},
		{Key: "Tab", Description: "Menu"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case analyzing.FailedMsg:
		// Delivered after the analyzing screen popped back here.
		h.errMsg = msg.Detail
		return h, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			h.menuFocus = !h.menuFocus
			h.menu.Focused = h.menuFocus
			h.input.Disabled = h.menuFocus
			return h, nil
		case "enter":
			if !h.menuFocus {
				return h, h.submit()
			}
		}
	}

	var cmd tea.Cmd
	if h.menuFocus {
		h.menu, cmd = h.menu.Update(msg)
	} else {
		h.input, cmd = h.input.Update(msg)
	}
	return h, cmd
}

// submit starts analysis for the entered URL. Entering analyzing clears any
// prior error; an empty or obviously malformed URL fails locally instead.
func (h *HomeScreen) submit() tea.Cmd {
	url := h.input.Value()
	if url == "" {
		h.errMsg = "영상 링크를 입력해주세요."
		return nil
	}
	if bundle.ExtractVideoID(url) == "" {
		h.errMsg = "유효하지 않은 유튜브 URL입니다."
		return nil
	}

	h.errMsg = ""
	client, stats := h.client, h.stats
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: analyzing.New(client, stats, url)}
	}
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("TubeLingo"))
	sections = append(sections, theme.Subtitle.Width(width).Render("영상으로 배우는 언어 학습"))
	sections = append(sections, "")

	inputBox := theme.Card.Render(h.input.View())
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, inputBox))

	if h.errMsg != "" {
		sections = append(sections,
			lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Notice.Render(h.errMsg)))
	}

	sections = append(sections, "")
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
