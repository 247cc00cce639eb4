package cli

import "github.com/charmbracelet/lipgloss"

const (
	colorSuccess   = "#10B981"
	colorWarning   = "#F59E0B"
	colorError     = "#EF4444"
	colorSecondary = "#6B7280"
)

var (
	createStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorSuccess))
	updateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorWarning))
	deleteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorError))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorSecondary))
	boldStyle   = lipgloss.NewStyle().Bold(true)
)
