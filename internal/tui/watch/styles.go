package watch

import "github.com/charmbracelet/lipgloss"

var (
	paneBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)

	paneLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("250"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("0")).
			Padding(0, 2)

	activeButtonStyle = buttonStyle.Copy().
				Background(lipgloss.Color("10")).
				Foreground(lipgloss.Color("0")).
				Bold(true)

	inactiveButtonStyle = buttonStyle.Copy().
				Background(lipgloss.Color("236")).
				Foreground(lipgloss.Color("252"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)
