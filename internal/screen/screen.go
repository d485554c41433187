package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Okyu59/TubeLingo/internal/ui/layout"
)

// Screen is one view mode of the app (home, analyzing, study, quiz setup,
// quiz, result, dashboard). The router owns which screen is on top.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface for screens that provide custom
// footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
