package setup

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// GeminiKeyStep collects a Google API key. Optional when the serverless
// endpoint was configured, since the key can be fetched from there.
type GeminiKeyStep struct {
	input textinput.Model
	note  string
}

func NewGeminiKeyStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "AIza..."
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	return &GeminiKeyStep{
		input: ti,
	}
}

func (s *GeminiKeyStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *GeminiKeyStep) Update(msg tea.Msg, settings *Settings) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		value := strings.TrimSpace(s.input.Value())
		if value == "" && settings.ServerlessURL == "" {
			s.note = "Either a Google API key or a serverless endpoint is required."
			return s, cmd
		}
		settings.GoogleAPIKey = value
		return nil, nil
	}
	return s, cmd
}

func (s *GeminiKeyStep) View(settings *Settings) string {
	hint := ""
	if settings.ServerlessURL != "" {
		hint = " (optional - press Enter to fetch from the serverless endpoint)"
	}

	out := "Enter your Google API Key" + hint + ":\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
	if s.note != "" {
		out += "\n" + errorStyle.Render(s.note) + "\n"
	}
	return out
}
