package tui

import (
	"github.com/MKhiriev/go-key-keeper/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle      = lipgloss.NewStyle().Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	badgeStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Padding(0, 1)
	inputBoxStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)

	severityStyles = map[models.Severity]lipgloss.Style{
		models.SeverityInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		models.SeverityWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		models.SeveritySuccess: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		models.SeverityError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
)

func severityStyle(s models.Severity) lipgloss.Style {
	if style, ok := severityStyles[s]; ok {
		return style
	}
	return helpStyle
}
