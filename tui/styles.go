package tui

import "github.com/charmbracelet/lipgloss"

// Palette lifted from the dashboard's teal theme.
const (
	ColorAccent       = "#2e6f75"
	ColorAccentBright = "#2eecb5"
	ColorPrimaryText  = "#ffffff"
	ColorMutedText    = "#8a9ba8"
	ColorError        = "#ff5f5f"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentBright)).
			Bold(true).
			MarginBottom(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorAccent)).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentBright))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMutedText))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorAccentBright)).
				Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccent)).
			Bold(true).
			Underline(true)
)
