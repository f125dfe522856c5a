package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"debris-risk-economics/internal/catalog"
	"debris-risk-economics/internal/views"
)

const barWidth = 40

func (m Model) renderDashboard() string {
	summary := views.Summarize(m.ds.Conjunctions(), m.ds.Debris())

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		statStyle.Render(fmt.Sprintf("Active conjunctions\n%d", summary.ConjunctionCount)),
		statStyle.Render(fmt.Sprintf("Annual impact\n%s", views.Millions(summary.TotalAnnualImpactMillion))),
		statStyle.Render(fmt.Sprintf("Debris objects\n%d", summary.DebrisCount)),
		statStyle.Render(fmt.Sprintf("Avg risk score\n%.1f", summary.AverageRiskScore)),
	)

	var b strings.Builder
	b.WriteString(stats)
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Urgent conjunctions"))
	b.WriteString("\n")
	if len(summary.UrgentConjunctions) == 0 {
		b.WriteString("none\n")
	}
	for _, ev := range summary.UrgentConjunctions {
		fmt.Fprintf(&b, "%-8s %s  %s vs %s  P=%s  TCA %s\n",
			riskBadge(ev.RiskLevel), ev.ID, ev.Satellite, ev.Debris,
			views.ProbabilityPercent(ev.CollisionProbability), views.TCA(ev.TCA))
	}

	b.WriteString(sectionStyle.Render("Highest risk debris"))
	b.WriteString("\n")
	for _, obj := range summary.TopDebris {
		fmt.Fprintf(&b, "%-20s score %3d %s  %s/yr\n",
			obj.Name, obj.EconomicRiskScore, scoreBadge(obj.EconomicRiskScore),
			views.Millions(obj.EstimatedAnnualImpactMillion))
	}
	return b.String()
}

func (m Model) renderPrioritization() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Active debris removal priorities"))
	b.WriteString("\n")
	for _, p := range views.Prioritize(m.ds.Debris()) {
		fmt.Fprintf(&b, "#%d %-20s score %3d  impact %s/yr  removal budget %s\n",
			p.Rank, p.Debris.Name, p.Debris.EconomicRiskScore,
			views.Millions(p.Debris.EstimatedAnnualImpactMillion),
			views.Millions(p.RemovalBudgetMillion))
	}
	return b.String()
}

func (m Model) renderAnalytics() string {
	analytics := m.ds.Analytics()

	impact := catalog.AnalyticsSeries{Title: "Debris Economic Impact", Unit: "USD millions"}
	for _, obj := range views.SortDebris(m.ds.Debris(), views.SortByImpact) {
		impact.Points = append(impact.Points, catalog.AnalyticsPoint{Label: obj.Name, Value: obj.EstimatedAnnualImpactMillion})
	}

	sections := []string{
		renderBars(impact),
		renderBars(analytics.CostBreakdown),
		renderBars(analytics.MonthlyManeuvers),
		renderBars(analytics.OrbitalImpact),
	}
	return strings.Join(sections, "\n")
}

// renderBars draws a horizontal bar per point scaled to the series maximum.
// Non-positive values get an empty bar.
func renderBars(series catalog.AnalyticsSeries) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render(fmt.Sprintf("%s (%s)", series.Title, series.Unit)))
	b.WriteString("\n")

	labelWidth := 0
	peak := 0.0
	for _, p := range series.Points {
		labelWidth = max(labelWidth, len(p.Label))
		peak = math.Max(peak, p.Value)
	}

	for _, p := range series.Points {
		n := 0
		if peak > 0 {
			n = max(int(math.Round(p.Value/peak*barWidth)), 0)
		}
		fmt.Fprintf(&b, "%-*s %s %g\n", labelWidth, p.Label, barStyle.Render(strings.Repeat("█", n)), p.Value)
	}
	return b.String()
}
