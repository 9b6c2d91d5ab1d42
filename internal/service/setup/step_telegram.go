package setup

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TelegramTokenStep collects the bot token. Skipped when the terminal
// transport was selected.
type TelegramTokenStep struct {
	input textinput.Model
}

func NewTelegramTokenStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "123456789:ABCDEF..."
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	return &TelegramTokenStep{
		input: ti,
	}
}

func (s *TelegramTokenStep) Init() tea.Cmd {
	// nextMsg forces an immediate Update so the step can skip itself when
	// the terminal transport was selected.
	return tea.Batch(textinput.Blink, func() tea.Msg { return nextMsg{} })
}

func (s *TelegramTokenStep) Update(msg tea.Msg, settings *Settings) (Step, tea.Cmd) {
	if !settings.EnableTelegram {
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		settings.TelegramToken = strings.TrimSpace(s.input.Value())
		return nil, nil
	}
	return s, cmd
}

func (s *TelegramTokenStep) View(settings *Settings) string {
	if !settings.EnableTelegram {
		return ""
	}
	return "Enter your Telegram Bot Token:\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
}

// TelegramOwnerStep collects the owner's numeric user ID. The bot refuses
// every other user.
type TelegramOwnerStep struct {
	input textinput.Model
}

func NewTelegramOwnerStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 20
	ti.Placeholder = "123456789"

	return &TelegramOwnerStep{
		input: ti,
	}
}

func (s *TelegramOwnerStep) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, func() tea.Msg { return nextMsg{} })
}

func (s *TelegramOwnerStep) Update(msg tea.Msg, settings *Settings) (Step, tea.Cmd) {
	if !settings.EnableTelegram {
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		settings.TelegramOwnerID = strings.TrimSpace(s.input.Value())
		return nil, nil
	}
	return s, cmd
}

func (s *TelegramOwnerStep) View(settings *Settings) string {
	if !settings.EnableTelegram {
		return ""
	}
	return "Enter your Telegram User ID (Owner):\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
}
