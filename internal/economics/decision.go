package economics

import (
	"fmt"

	"github.com/shopspring/decimal"

	"debris-risk-economics/internal/catalog"
)

// DecisionInput asks whether to maneuver for a given conjunction.
// SatelliteValue and ManeuverCost are absolute currency amounts;
// RiskTolerance is a probability fraction.
type DecisionInput struct {
	ConjunctionID  string
	SatelliteValue decimal.Decimal
	ManeuverCost   decimal.Decimal
	RiskTolerance  decimal.Decimal
}

// DecisionResult compares performing a maneuver against accepting the risk.
type DecisionResult struct {
	Event          catalog.ConjunctionEvent `json:"event"`
	SatelliteValue decimal.Decimal          `json:"satellite_value"`
	RiskTolerance  decimal.Decimal          `json:"risk_tolerance"`

	ManeuverCost   decimal.Decimal `json:"maneuver_cost"`
	ExpectedLoss   decimal.Decimal `json:"expected_loss"`
	CostDifference decimal.Decimal `json:"cost_difference"`

	ExceedsManeuverCost bool `json:"exceeds_maneuver_cost"`
	ExceedsTolerance    bool `json:"exceeds_tolerance"`
	ShouldManeuver      bool `json:"should_maneuver"`
}

// Recommendation names the recommended option.
func (r DecisionResult) Recommendation() string {
	if r.ShouldManeuver {
		return "perform maneuver"
	}
	return "accept risk"
}

// AnalyzeDecision weighs the guaranteed maneuver cost against the expected
// collision loss. A maneuver is recommended when the expected loss exceeds
// the maneuver cost or the collision probability exceeds the tolerance.
func AnalyzeDecision(event catalog.ConjunctionEvent, satelliteValue, maneuverCost, riskTolerance decimal.Decimal) DecisionResult {
	probability := decimal.NewFromFloat(event.CollisionProbability)
	expectedLoss := probability.Mul(satelliteValue)

	exceedsCost := expectedLoss.GreaterThan(maneuverCost)
	exceedsTolerance := probability.GreaterThan(riskTolerance)

	return DecisionResult{
		Event:               event,
		SatelliteValue:      satelliteValue,
		RiskTolerance:       riskTolerance,
		ManeuverCost:        maneuverCost,
		ExpectedLoss:        expectedLoss,
		CostDifference:      maneuverCost.Sub(expectedLoss).Abs(),
		ExceedsManeuverCost: exceedsCost,
		ExceedsTolerance:    exceedsTolerance,
		ShouldManeuver:      exceedsCost || exceedsTolerance,
	}
}

// Decide resolves the conjunction and analyzes it. An unknown identifier
// yields an error matching catalog.ErrNotFound.
func Decide(lookup catalog.Lookup, in DecisionInput) (DecisionResult, error) {
	event, err := lookup.Conjunction(in.ConjunctionID)
	if err != nil {
		return DecisionResult{}, fmt.Errorf("analyze decision: %w", err)
	}
	return AnalyzeDecision(event, in.SatelliteValue, in.ManeuverCost, in.RiskTolerance), nil
}
