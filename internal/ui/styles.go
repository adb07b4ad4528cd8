package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#61AFEF")).
			MarginBottom(1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5C07B")).
			Bold(true).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98C379")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color("243"))

	deletedStyle = lipgloss.NewStyle().
			Faint(true)

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			PaddingLeft(6)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E06C75")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Faint(true).
			MarginTop(1)
)
