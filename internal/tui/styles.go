package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	appStyle     = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(baseDimFg)
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171")).Bold(true)
	verdictStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399")).Bold(true)
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#22D3EE"))

	// grid markers
	axisStyle   = lipgloss.NewStyle().Foreground(baseFg)
	pointStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	circleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22D3EE"))
	centerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FACC15")).Bold(true)
)
