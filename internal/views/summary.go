package views

import (
	"debris-risk-economics/internal/catalog"
)

const (
	dashboardHighlights = 3
	// removalROIYears is the payback horizon used for the removal business case.
	removalROIYears = 5
)

// ScoreClass buckets an economic risk score for display.
type ScoreClass string

const (
	ScoreHigh   ScoreClass = "high"
	ScoreMedium ScoreClass = "medium"
	ScoreLow    ScoreClass = "low"
)

// ClassifyScore maps a 0-100 economic risk score onto a display class.
func ClassifyScore(score int) ScoreClass {
	switch {
	case score >= 90:
		return ScoreHigh
	case score >= 75:
		return ScoreMedium
	default:
		return ScoreLow
	}
}

// DashboardSummary is the headline view over a dataset.
type DashboardSummary struct {
	ConjunctionCount         int                        `json:"conjunction_count"`
	TotalAnnualImpactMillion float64                    `json:"total_annual_impact_million"`
	DebrisCount              int                        `json:"debris_count"`
	AverageRiskScore         float64                    `json:"average_risk_score"`
	UrgentConjunctions       []catalog.ConjunctionEvent `json:"urgent_conjunctions"`
	TopDebris                []catalog.DebrisObject     `json:"top_debris"`
}

// Summarize computes headline statistics plus the first HIGH/CRITICAL events
// and the highest-scored debris objects.
func Summarize(events []catalog.ConjunctionEvent, objects []catalog.DebrisObject) DashboardSummary {
	summary := DashboardSummary{
		ConjunctionCount:   len(events),
		DebrisCount:        len(objects),
		UrgentConjunctions: make([]catalog.ConjunctionEvent, 0, dashboardHighlights),
		TopDebris:          TopN(objects, dashboardHighlights, SortByScore),
	}

	var scoreSum int
	for _, obj := range objects {
		summary.TotalAnnualImpactMillion += obj.EstimatedAnnualImpactMillion
		scoreSum += obj.EconomicRiskScore
	}
	if len(objects) > 0 {
		summary.AverageRiskScore = float64(scoreSum) / float64(len(objects))
	}

	for _, ev := range events {
		if len(summary.UrgentConjunctions) == dashboardHighlights {
			break
		}
		if ev.RiskLevel == catalog.RiskCritical || ev.RiskLevel == catalog.RiskHigh {
			summary.UrgentConjunctions = append(summary.UrgentConjunctions, ev)
		}
	}

	return summary
}

// Priority is one row of the removal prioritization ranking.
type Priority struct {
	Rank                 int                  `json:"rank"`
	Debris               catalog.DebrisObject `json:"debris"`
	RemovalBudgetMillion float64              `json:"removal_budget_million"`
}

// Prioritize ranks debris by estimated annual impact (rank 1 is the highest)
// and attaches the maximum removal mission cost that pays back within the
// ROI horizon.
func Prioritize(objects []catalog.DebrisObject) []Priority {
	sorted := SortDebris(objects, SortByImpact)
	ranking := make([]Priority, 0, len(sorted))
	for i, obj := range sorted {
		ranking = append(ranking, Priority{
			Rank:                 i + 1,
			Debris:               obj,
			RemovalBudgetMillion: obj.EstimatedAnnualImpactMillion * removalROIYears,
		})
	}
	return ranking
}
