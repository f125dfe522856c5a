package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"debris-risk-economics/internal/catalog"
	"debris-risk-economics/internal/views"
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E2E8F0")).Background(lipgloss.Color("#1E3A5F")).Padding(0, 1)
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0B1120")).Background(lipgloss.Color("#38BDF8")).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	sectionStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#38BDF8")).MarginTop(1)
	statStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	barStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#38BDF8"))

	riskStyles = map[catalog.RiskLevel]lipgloss.Style{
		catalog.RiskCritical: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")),
		catalog.RiskHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316")),
		catalog.RiskMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("#EAB308")),
		catalog.RiskLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")),
	}

	scoreStyles = map[views.ScoreClass]lipgloss.Style{
		views.ScoreHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
		views.ScoreMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316")),
		views.ScoreLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")),
	}
)

func riskBadge(level catalog.RiskLevel) string {
	style, ok := riskStyles[level]
	if !ok {
		return string(level)
	}
	return style.Render(string(level))
}

func scoreBadge(score int) string {
	class := views.ClassifyScore(score)
	return scoreStyles[class].Render(string(class))
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#0B1120")).
		Background(lipgloss.Color("#38BDF8")).
		Bold(false)
	return s
}
