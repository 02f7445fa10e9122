package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrompt = lipgloss.Color("#10B981")
	colorPath   = lipgloss.Color("#06B6D4")
	colorTitle  = lipgloss.Color("#F59E0B")
	colorError  = lipgloss.Color("#EF4444")
	colorMuted  = lipgloss.Color("#6B7280")
	colorBorder = lipgloss.Color("#374151")

	promptStyle = lipgloss.NewStyle().Foreground(colorPrompt).Bold(true)
	pathStyle   = lipgloss.NewStyle().Foreground(colorPath)
	titleStyle  = lipgloss.NewStyle().Foreground(colorTitle).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(colorError)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	bannerStyle = lipgloss.NewStyle().Foreground(colorPrompt)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
)
