package setup

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandevgo/pdfchat/internal/config"
	"github.com/sandevgo/pdfchat/pkg/env"
)

// SaveEnvStep serializes the collected settings into the runtime .env file.
// An existing file is never overwritten.
type SaveEnvStep struct {
	err   error
	saved bool
	path  string
}

func NewSaveEnvStep() Step {
	return &SaveEnvStep{}
}

func (s *SaveEnvStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *SaveEnvStep) Update(msg tea.Msg, settings *Settings) (Step, tea.Cmd) {
	if s.saved {
		return nil, nil
	}

	path := config.GetRuntimePath()
	if err := os.MkdirAll(path, 0o755); err != nil {
		s.err = fmt.Errorf("failed to create runtime directory: %w", err)
		return s, nil
	}
	if err := os.MkdirAll(filepath.Join(path, "pages"), 0o755); err != nil {
		s.err = fmt.Errorf("failed to create pages directory: %w", err)
		return s, nil
	}

	envPath := filepath.Join(path, ".env")
	if _, err := os.Stat(envPath); err == nil {
		s.err = fmt.Errorf(".env file already exists at %s", envPath)
		return s, nil
	}

	content, err := env.MarshalEnv(settings)
	if err != nil {
		s.err = fmt.Errorf("failed to serialize settings: %w", err)
		return s, nil
	}

	if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
		s.err = err
		return s, nil
	}

	s.path = envPath
	s.saved = true
	return nil, nil
}

func (s *SaveEnvStep) View(settings *Settings) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n(press ctrl+c to quit)\n"
	}
	if s.saved {
		return fmt.Sprintf("Configuration saved to %s\n", s.path)
	}
	return "Saving configuration...\n"
}
