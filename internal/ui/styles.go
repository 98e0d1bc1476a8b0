package ui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("63")
	muted  = lipgloss.Color("240")
	danger = lipgloss.Color("203")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	subtitleStyle = lipgloss.NewStyle().Foreground(muted)
	labelStyle    = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(muted)
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	deviceStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(muted)
	activeDeviceStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).
				Foreground(lipgloss.Color("231")).Background(accent)

	buttonStyle = lipgloss.NewStyle().Padding(0, 3).Bold(true).
			Foreground(lipgloss.Color("231")).Background(lipgloss.Color("57"))
	disabledButtonStyle = buttonStyle.Background(muted)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Align(lipgloss.Center, lipgloss.Center)
	placeholderPanelStyle = panelStyle.BorderStyle(lipgloss.Border{
		Top: "╌", Bottom: "╌", Left: "╎", Right: "╎",
		TopLeft: "╭", TopRight: "╮", BottomLeft: "╰", BottomRight: "╯",
	})
	errorPanelStyle  = panelStyle.BorderForeground(danger).Foreground(danger)
	resultPanelStyle = panelStyle.BorderForeground(accent)
)
