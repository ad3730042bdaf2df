package studio

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.Color("99")
	mutedColor  = lipgloss.Color("245")
	dangerColor = lipgloss.Color("203")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginBottom(1)

	promptFrameStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(mutedColor).
				Padding(0, 1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	loadingStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	attachmentStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(dangerColor).
				Bold(true).
				MarginTop(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)
