package app

import (
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Okyu59/TubeLingo/internal/analyze"
	"github.com/Okyu59/TubeLingo/internal/config"
	"github.com/Okyu59/TubeLingo/internal/progress"
	"github.com/Okyu59/TubeLingo/internal/router"
	"github.com/Okyu59/TubeLingo/internal/screen"
	"github.com/Okyu59/TubeLingo/internal/screens/home"
	"github.com/Okyu59/TubeLingo/internal/ui/layout"
)

// Options controls how the application starts up.
type Options struct {
	// InitialURL pre-fills the home screen's link input when set.
	InitialURL string
}

// AppModel is the root Bubble Tea model. It owns the screen stack and the
// shared progress state; individual screens handle their own keys,
// including esc, so app-level handling stays minimal.
type AppModel struct {
	router *router.Router
	stats  *progress.Stats
	width  int
	height int
}

// newAppModel wires the collaborator client and progress state into the
// home screen.
func newAppModel(cfg *config.Config, opts Options) AppModel {
	client := analyze.NewClient(cfg.API.BaseURL, cfg.API.AnalyzeTimeout)
	stats := progress.New(cfg.Study.DailyGoalXP)
	homeScreen := home.New(client, stats, opts.InitialURL)
	return AppModel{
		router: router.New(homeScreen),
		stats:  stats,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
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

	header := layout.RenderHeader(title, layout.HeaderStats{
		XP:     m.stats.TotalXP,
		Streak: m.stats.Streak,
	}, m.width)

	footerHints := []layout.KeyHint{}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(footerHints, provider.KeyHints()...)
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
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

// Run loads configuration, sets up logging, and starts the Bubble Tea
// program.
func Run(opts Options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	cleanup, err := setupLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer cleanup()

	slog.Info("starting tubelingo",
		slog.String("api_url", cfg.API.BaseURL),
		slog.Duration("analyze_timeout", cfg.API.AnalyzeTimeout))

	p := tea.NewProgram(newAppModel(cfg, opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
