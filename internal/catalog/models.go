package catalog

import "time"

// RiskLevel is the categorical tag attached to a conjunction event.
// It is authoritative input and never derived from collision probability.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// RiskLevels lists the known levels in ascending severity.
var RiskLevels = []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskCritical}

// Valid reports whether l is one of the four known levels.
func (l RiskLevel) Valid() bool {
	switch l {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	}
	return false
}

// ConjunctionEvent is a predicted close approach between a satellite and a debris object.
type ConjunctionEvent struct {
	ID                   string    `mapstructure:"id" json:"id"`
	Satellite            string    `mapstructure:"satellite" json:"satellite"`
	Debris               string    `mapstructure:"debris" json:"debris"`
	TCA                  time.Time `mapstructure:"tca" json:"tca"`
	MissDistanceKm       float64   `mapstructure:"miss_distance_km" json:"miss_distance_km"`
	CollisionProbability float64   `mapstructure:"collision_probability" json:"collision_probability"`
	RiskLevel            RiskLevel `mapstructure:"risk_level" json:"risk_level"`
	RelativeVelocityKmS  float64   `mapstructure:"relative_velocity_km_s" json:"relative_velocity_km_s"`
}

// DebrisObject is a cataloged piece of debris and its economic footprint.
type DebrisObject struct {
	Name                         string  `mapstructure:"name" json:"name"`
	NoradID                      string  `mapstructure:"norad_id" json:"norad_id"`
	SizeCm                       float64 `mapstructure:"size_cm" json:"size_cm"`
	AltitudeKm                   float64 `mapstructure:"altitude_km" json:"altitude_km"`
	InclinationDeg               float64 `mapstructure:"inclination_deg" json:"inclination_deg"`
	AnnualConjunctions           int     `mapstructure:"annual_conjunctions" json:"annual_conjunctions"`
	ThreatenedSatellites         int     `mapstructure:"threatened_satellites" json:"threatened_satellites"`
	EconomicRiskScore            int     `mapstructure:"economic_risk_score" json:"economic_risk_score"`
	EstimatedAnnualImpactMillion float64 `mapstructure:"estimated_annual_impact_million" json:"estimated_annual_impact_million"`
}

// AnalyticsPoint is one labelled value of a static analytics series.
type AnalyticsPoint struct {
	Label string  `mapstructure:"label" json:"label"`
	Value float64 `mapstructure:"value" json:"value"`
}

// AnalyticsSeries is a labelled sequence of points rendered as a chart.
type AnalyticsSeries struct {
	Title  string           `mapstructure:"title" json:"title"`
	Unit   string           `mapstructure:"unit" json:"unit"`
	Points []AnalyticsPoint `mapstructure:"points" json:"points"`
}

// Analytics groups the fleet-wide series shown on the analytics view.
type Analytics struct {
	CostBreakdown    AnalyticsSeries `mapstructure:"cost_breakdown" json:"cost_breakdown"`
	MonthlyManeuvers AnalyticsSeries `mapstructure:"monthly_maneuvers" json:"monthly_maneuvers"`
	OrbitalImpact    AnalyticsSeries `mapstructure:"orbital_impact" json:"orbital_impact"`
}

func (s AnalyticsSeries) clone() AnalyticsSeries {
	out := s
	out.Points = append([]AnalyticsPoint(nil), s.Points...)
	return out
}

func (a Analytics) clone() Analytics {
	return Analytics{
		CostBreakdown:    a.CostBreakdown.clone(),
		MonthlyManeuvers: a.MonthlyManeuvers.clone(),
		OrbitalImpact:    a.OrbitalImpact.clone(),
	}
}
