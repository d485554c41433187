package study

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Okyu59/TubeLingo/internal/bundle"
	"github.com/Okyu59/TubeLingo/internal/player"
	"github.com/Okyu59/TubeLingo/internal/progress"
	"github.com/Okyu59/TubeLingo/internal/router"
	"github.com/Okyu59/TubeLingo/internal/screen"
	"github.com/Okyu59/TubeLingo/internal/screens/quizsetup"
	"github.com/Okyu59/TubeLingo/internal/transcript"
	"github.com/Okyu59/TubeLingo/internal/ui/layout"
	"github.com/Okyu59/TubeLingo/internal/ui/theme"
)

// focus targets within the study screen.
const (
	focusTranscript = iota
	focusVocabulary
)

// savedNoticeDuration is how long the "saved" flash stays visible.
const savedNoticeDuration = 2 * time.Second

// noticeExpiredMsg clears the transient save notice.
type noticeExpiredMsg struct{}

// StudyScreen shows the transcript synchronized to the playback clock,
// with the vocabulary list alongside.
type StudyScreen struct {
	bundle *bundle.StudyBundle
	stats  *progress.Stats

	player *player.Player
	sync   *transcript.Synchronizer

	focus       int
	cursor      int // transcript line under the cursor
	vocabCursor int
	notice      string
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates the study screen for a freshly analyzed bundle.
func New(b *bundle.StudyBundle, stats *progress.Stats) *StudyScreen {
	return &StudyScreen{
		bundle: b,
		stats:  stats,
		player: player.New(b.Duration()),
		sync:   transcript.NewSynchronizer(b.Script),
	}
}

// Init starts playback immediately: entering study mode auto-plays.
func (s *StudyScreen) Init() tea.Cmd {
	return s.player.Play()
}

func (s *StudyScreen) Title() string {
	return "Study"
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Play/Pause"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Seek / Save"},
		{Key: "Tab", Description: "Words"},
		{Key: "F", Description: "Finish & Quiz"},
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case player.TickMsg:
		cmd := s.player.Beat(msg)
		if s.sync.Tick(s.player.Position()) {
			s.cursor = s.sync.Active()
		}
		return s, cmd

	case noticeExpiredMsg:
		s.notice = ""
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case " ", "space":
		return s, s.player.Toggle()

	case "tab":
		if s.focus == focusTranscript {
			s.focus = focusVocabulary
		} else {
			s.focus = focusTranscript
		}
		return s, nil

	case "up", "k":
		if s.focus == focusVocabulary {
			if s.vocabCursor > 0 {
				s.vocabCursor--
			}
		} else if s.cursor > 0 {
			s.cursor--
		}
		return s, nil

	case "down", "j":
		if s.focus == focusVocabulary {
			if s.vocabCursor < len(s.bundle.Vocabulary)-1 {
				s.vocabCursor++
			}
		} else if s.cursor < len(s.bundle.Script)-1 {
			s.cursor++
		}
		return s, nil

	case "enter":
		if s.focus == focusVocabulary {
			return s, s.saveWord()
		}
		return s, s.seekToCursor()

	case "f", "F":
		// Finish & quiz: playback stops on leaving study mode.
		s.player.Pause()
		b, stats := s.bundle, s.stats
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: quizsetup.New(b, stats)}
		}

	case "esc":
		s.player.Pause()
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return s, nil
}

// seekToCursor jumps the player to the cursor line, forces playback on, and
// sets the active line directly without waiting for the next tick.
func (s *StudyScreen) seekToCursor() tea.Cmd {
	target, ok := s.sync.Select(s.cursor)
	if !ok {
		return nil
	}
	s.player.Seek(target)
	return s.player.Play()
}

// saveWord saves the vocabulary entry under the cursor. Re-saving is a
// visible no-op.
func (s *StudyScreen) saveWord() tea.Cmd {
	if s.vocabCursor < 0 || s.vocabCursor >= len(s.bundle.Vocabulary) {
		return nil
	}
	entry := s.bundle.Vocabulary[s.vocabCursor]
	if s.stats.SaveWord(entry) {
		s.notice = fmt.Sprintf("'%s' 단어장에 저장됨", entry.Word)
	} else {
		s.notice = fmt.Sprintf("'%s' 이미 저장된 단어입니다", entry.Word)
	}
	return tea.Tick(savedNoticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{}
	})
}

func (s *StudyScreen) View(width, height int) string {
	var b strings.Builder

	// Title bar with playback position.
	pos := s.player.Position()
	state := "⏸"
	if s.player.Playing() {
		state = "▶"
	}
	head := fmt.Sprintf("%s  %s   %s / %s",
		state,
		s.bundle.Title,
		formatTime(pos),
		formatTime(s.bundle.Duration()))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(width).Render(" "+head) + "\n")
	b.WriteString(theme.DimLine.Width(width).Render(" "+s.bundle.ThumbnailURL) + "\n\n")

	listHeight := height - 6
	if listHeight < 3 {
		listHeight = 3
	}

	transcriptView := s.renderTranscript(width*2/3, listHeight)
	vocabView := s.renderVocabulary(width-width*2/3-2, listHeight)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, transcriptView, "  ", vocabView))

	if s.notice != "" {
		b.WriteString("\n" + theme.Hint.Render(" "+s.notice))
	}

	return b.String()
}

// renderTranscript shows a window of lines around the cursor. The active
// line (synchronized to playback) keeps its highlight even when the cursor
// wanders elsewhere.
func (s *StudyScreen) renderTranscript(width, height int) string {
	lines := s.bundle.Script
	if len(lines) == 0 {
		return theme.DimLine.Render("  (no transcript)")
	}

	// Two rendered rows per line: source + translation.
	window := height / 2
	if window < 1 {
		window = 1
	}
	start := s.cursor - window/2
	if start > len(lines)-window {
		start = len(lines) - window
	}
	if start < 0 {
		start = 0
	}
	end := start + window
	if end > len(lines) {
		end = len(lines)
	}

	active := s.sync.Active()
	var b strings.Builder
	for i := start; i < end; i++ {
		line := lines[i]
		marker := "  "
		if i == s.cursor && s.focus == focusTranscript {
			marker = "▸ "
		}

		text := fmt.Sprintf("%s[%s] %s", marker, formatTime(line.Time), line.Text)
		switch {
		case i == active:
			b.WriteString(theme.ActiveLine.Width(width).Render(text) + "\n")
			b.WriteString(theme.ActiveLine.Width(width).Render(marker+"        "+line.Kr) + "\n")
		default:
			b.WriteString(theme.Body.Render(text) + "\n")
			b.WriteString(theme.DimLine.Render(marker+"        "+line.Kr) + "\n")
		}
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (s *StudyScreen) renderVocabulary(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("단어장") + "\n")

	vocab := s.bundle.Vocabulary
	if len(vocab) == 0 {
		b.WriteString(theme.DimLine.Render("  (no words)"))
		return lipgloss.NewStyle().Width(width).Render(b.String())
	}

	max := height - 1
	for i, v := range vocab {
		if i >= max {
			break
		}
		marker := "  "
		if i == s.vocabCursor && s.focus == focusVocabulary {
			marker = "▸ "
		}
		saved := ""
		if s.stats.HasWord(v.Word) {
			saved = " ✓"
		}
		line := fmt.Sprintf("%s%s (%s): %s%s", marker, v.Word, v.Type, v.Meaning, saved)
		if i == s.vocabCursor && s.focus == focusVocabulary {
			b.WriteString(theme.Selected.Render(line) + "\n")
		} else {
			b.WriteString(theme.Body.Render(line) + "\n")
		}
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func formatTime(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
