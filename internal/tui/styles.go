package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	paneStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
	focusedStyle   = paneStyle.BorderForeground(lipgloss.Color("6"))
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	kindStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	menuStyle      = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("5")).Padding(0, 1)
	directiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
)
