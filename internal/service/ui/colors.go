package ui

import "github.com/charmbracelet/lipgloss"

// Plain ANSI colors only, so the palette degrades gracefully on terminals
// without truecolor support.
var (
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// AnswerStyle colors the agent's replies in the interactive shell.
	AnswerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)
