package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// URLInput wraps bubbles/textinput for video-link entry.
type URLInput struct {
	Model    textinput.Model
	Disabled bool
}

// NewURLInput creates a focused URL input.
func NewURLInput(placeholder string, width int) URLInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetWidth(width)
	ti.Focus()
	return URLInput{Model: ti}
}

// Init returns the initial command.
func (u URLInput) Init() tea.Cmd {
	return u.Model.Focus()
}

// Update handles messages. A disabled input (request in flight) swallows
// keystrokes so the submit guard in the screen stays authoritative.
func (u URLInput) Update(msg tea.Msg) (URLInput, tea.Cmd) {
	if u.Disabled {
		return u, nil
	}
	var cmd tea.Cmd
	u.Model, cmd = u.Model.Update(msg)
	return u, cmd
}

// View renders the input.
func (u URLInput) View() string {
	return u.Model.View()
}

// Value returns the trimmed input value.
func (u URLInput) Value() string {
	return strings.TrimSpace(u.Model.Value())
}
