package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title       lipgloss.Style
	Arrow       lipgloss.Style
	Label       lipgloss.Style
	Option      lipgloss.Style
	Selected    lipgloss.Style
	Highlighted lipgloss.Style
	Box         lipgloss.Style
	FocusedBox  lipgloss.Style
	Cursor      lipgloss.Style
	Error       lipgloss.Style
	Help        lipgloss.Style
}

// Default is the default theme.
var Default = Theme{
	// Text styles
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Arrow: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7c3aed")).
		Bold(true),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Option: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#7c3aed")).
		Foreground(lipgloss.Color("#fafafa")).
		Bold(true),
	Highlighted: lipgloss.NewStyle().
		Background(lipgloss.Color("#404040")).
		Foreground(lipgloss.Color("#fafafa")),
	Cursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7c3aed")),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),

	// Component styles
	Box: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),
	FocusedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7c3aed")).
		Padding(0, 1),
}
