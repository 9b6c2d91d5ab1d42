package setup

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ServerlessStep collects the optional embedding/credential endpoint URL.
// Without it the Gemini key must come from the next step, and retrieval
// degrades to answering without context.
type ServerlessStep struct {
	input textinput.Model
}

func NewServerlessStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 60
	ti.Placeholder = "https://...lambda-url.us-east-1.on.aws/ (optional)"

	return &ServerlessStep{
		input: ti,
	}
}

func (s *ServerlessStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *ServerlessStep) Update(msg tea.Msg, settings *Settings) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		settings.ServerlessURL = strings.TrimSpace(s.input.Value())
		return nil, nil
	}
	return s, cmd
}

func (s *ServerlessStep) View(settings *Settings) string {
	return "Enter the serverless embedding endpoint URL:\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm, or leave empty to skip)\n"
}
