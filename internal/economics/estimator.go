package economics

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// DowntimeDaysPerManeuver is the fixed operational downtime charged per maneuver.
const DowntimeDaysPerManeuver = 2

// DefaultSatelliteName labels an estimate submitted without a name.
const DefaultSatelliteName = "Unnamed Satellite"

var (
	million = decimal.NewFromInt(1_000_000)
	hundred = decimal.NewFromInt(100)

	numericPrefix = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?`)
)

// Inputs is the raw, user-entered form of the estimator parameters. Every
// numeric field is free text; InsuranceRatePct is a percentage.
type Inputs struct {
	SatelliteName         string
	SatelliteValueMillion string
	InsuranceRatePct      string
	DailyRevenue          string
	FuelCostPerManeuver   string
	MissionLifetimeYears  string
	ManeuversPerYear      string
}

// Parameters is the parsed estimator input. InsuranceRate is a fraction.
type Parameters struct {
	SatelliteName         string          `json:"satellite_name"`
	SatelliteValueMillion decimal.Decimal `json:"satellite_value_million"`
	InsuranceRate         decimal.Decimal `json:"insurance_rate"`
	DailyRevenue          decimal.Decimal `json:"daily_revenue"`
	FuelCostPerManeuver   decimal.Decimal `json:"fuel_cost_per_maneuver"`
	MissionLifetimeYears  decimal.Decimal `json:"mission_lifetime_years"`
	ManeuversPerYear      decimal.Decimal `json:"maneuvers_per_year"`
}

// DefaultParameters returns the values substituted for missing or invalid input.
func DefaultParameters() Parameters {
	return Parameters{
		SatelliteName:         DefaultSatelliteName,
		SatelliteValueMillion: decimal.NewFromInt(150),
		InsuranceRate:         decimal.RequireFromString("0.08"),
		DailyRevenue:          decimal.NewFromInt(50_000),
		FuelCostPerManeuver:   decimal.NewFromInt(15_000),
		MissionLifetimeYears:  decimal.NewFromInt(7),
		ManeuversPerYear:      decimal.NewFromInt(12),
	}
}

// ParseInputs converts raw input into Parameters. It never fails: a field
// that is empty, non-numeric or parses to zero takes its default.
func ParseInputs(in Inputs) Parameters {
	def := DefaultParameters()

	params := Parameters{
		SatelliteName:         strings.TrimSpace(in.SatelliteName),
		SatelliteValueMillion: parseOr(in.SatelliteValueMillion, def.SatelliteValueMillion),
		DailyRevenue:          parseOr(in.DailyRevenue, def.DailyRevenue),
		FuelCostPerManeuver:   parseOr(in.FuelCostPerManeuver, def.FuelCostPerManeuver),
		MissionLifetimeYears:  parseOr(in.MissionLifetimeYears, def.MissionLifetimeYears),
		ManeuversPerYear:      parseOr(in.ManeuversPerYear, def.ManeuversPerYear),
	}
	if params.SatelliteName == "" {
		params.SatelliteName = def.SatelliteName
	}

	params.InsuranceRate = def.InsuranceRate
	if pct, ok := parseNumber(in.InsuranceRatePct); ok {
		if rate := pct.Div(hundred); !rate.IsZero() {
			params.InsuranceRate = rate
		}
	}

	return params
}

func parseOr(raw string, fallback decimal.Decimal) decimal.Decimal {
	value, ok := parseNumber(raw)
	if !ok || value.IsZero() {
		return fallback
	}
	return value
}

// parseNumber reads the leading numeric prefix of raw, ignoring any trailing text.
func parseNumber(raw string) (decimal.Decimal, bool) {
	match := numericPrefix.FindString(strings.TrimSpace(raw))
	if match == "" {
		return decimal.Decimal{}, false
	}
	value, err := decimal.NewFromString(strings.TrimPrefix(match, "+"))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return value, true
}

// CostBreakdown exposes every intermediate of the lifetime cost estimate.
type CostBreakdown struct {
	Parameters Parameters `json:"parameters"`

	AnnualManeuverCost  decimal.Decimal `json:"annual_maneuver_cost"`
	AnnualInsuranceCost decimal.Decimal `json:"annual_insurance_cost"`
	AnnualDowntimeDays  decimal.Decimal `json:"annual_downtime_days"`
	AnnualDowntimeCost  decimal.Decimal `json:"annual_downtime_cost"`

	LifetimeManeuverCost  decimal.Decimal `json:"lifetime_maneuver_cost"`
	LifetimeInsuranceCost decimal.Decimal `json:"lifetime_insurance_cost"`
	LifetimeDowntimeCost  decimal.Decimal `json:"lifetime_downtime_cost"`

	TotalLifetimeCost decimal.Decimal `json:"total_lifetime_cost"`
}

// EstimateLifetimeCost computes the maneuver, insurance and downtime cost of
// operating a satellite over its mission lifetime.
func EstimateLifetimeCost(p Parameters) CostBreakdown {
	b := CostBreakdown{Parameters: p}

	b.AnnualManeuverCost = p.FuelCostPerManeuver.Mul(p.ManeuversPerYear)
	b.AnnualInsuranceCost = p.SatelliteValueMillion.Mul(million).Mul(p.InsuranceRate)
	b.AnnualDowntimeDays = decimal.NewFromInt(DowntimeDaysPerManeuver).Mul(p.ManeuversPerYear)
	b.AnnualDowntimeCost = p.DailyRevenue.Mul(b.AnnualDowntimeDays)

	b.LifetimeManeuverCost = b.AnnualManeuverCost.Mul(p.MissionLifetimeYears)
	b.LifetimeInsuranceCost = b.AnnualInsuranceCost.Mul(p.MissionLifetimeYears)
	b.LifetimeDowntimeCost = b.AnnualDowntimeCost.Mul(p.MissionLifetimeYears)

	b.TotalLifetimeCost = b.LifetimeManeuverCost.Add(b.LifetimeInsuranceCost).Add(b.LifetimeDowntimeCost)
	return b
}
