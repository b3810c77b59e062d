package app

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	searchLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("110")).Bold(true)
	searchServerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	noteTitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	noteMetaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Faint(true)
	selectedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236"))
	dividerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	fieldLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("110")).Bold(true)
	dialogBorderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("208")).Padding(0, 1)
	toastInfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("29")).Bold(true)
	toastErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("160")).Bold(true)
)
