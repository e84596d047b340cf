package cli

import "github.com/charmbracelet/lipgloss"

// Styles for human-readable output. lipgloss drops colors when stdout is not
// a terminal, so piped output stays plain text.
var (
	fileStyle    = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	typeStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)
