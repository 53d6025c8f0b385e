package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used for terminal rendering.
type Styles struct {
	Bold     lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	Success  lipgloss.Style
	FilePath lipgloss.Style
}

// DefaultStyles returns the styles used on interactive terminals.
func DefaultStyles() Styles {
	return Styles{
		Bold:     lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		FilePath: lipgloss.NewStyle().Bold(true).Underline(true),
	}
}

// PlainStyles returns no-op styles for piped and file output.
func PlainStyles() Styles {
	return Styles{
		Bold:     lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle(),
		Error:    lipgloss.NewStyle(),
		Warning:  lipgloss.NewStyle(),
		Info:     lipgloss.NewStyle(),
		Success:  lipgloss.NewStyle(),
		FilePath: lipgloss.NewStyle(),
	}
}
