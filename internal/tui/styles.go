package tui

import "github.com/charmbracelet/lipgloss"

// Color palette shared by the editor views.
var (
	colorPrimary   = lipgloss.Color("#7AA2F7")
	colorMuted     = lipgloss.Color("#565F89")
	colorText      = lipgloss.Color("#C0CAF5")
	colorWarning   = lipgloss.Color("#E0AF68")
	colorHighlight = lipgloss.Color("#292E42")
)

// Styles for the editor panes.
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	stylePane = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1).
			MarginRight(2)

	stylePaneFocused = stylePane.
				BorderForeground(colorPrimary)

	styleItem = lipgloss.NewStyle().
			Foreground(colorText)

	styleItemSelected = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Background(colorHighlight).
				Bold(true)

	styleStatus = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleHelp = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)
)
