package economics

import (
	"testing"

	"github.com/shopspring/decimal"
)

func requireEqual(t *testing.T, field string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("%s: want %s, got %s", field, want, got.String())
	}
}

func TestEstimateLifetimeCostDefaults(t *testing.T) {
	b := EstimateLifetimeCost(DefaultParameters())

	requireEqual(t, "annual maneuver", b.AnnualManeuverCost, "180000")
	requireEqual(t, "annual insurance", b.AnnualInsuranceCost, "12000000")
	requireEqual(t, "annual downtime days", b.AnnualDowntimeDays, "24")
	requireEqual(t, "annual downtime", b.AnnualDowntimeCost, "1200000")
	requireEqual(t, "lifetime maneuver", b.LifetimeManeuverCost, "1260000")
	requireEqual(t, "lifetime insurance", b.LifetimeInsuranceCost, "84000000")
	requireEqual(t, "lifetime downtime", b.LifetimeDowntimeCost, "8400000")
	requireEqual(t, "total", b.TotalLifetimeCost, "93660000")
}

func TestEstimateTotalIsSumOfLifetimeParts(t *testing.T) {
	cases := []Inputs{
		{SatelliteValueMillion: "320.5", InsuranceRatePct: "6.25", DailyRevenue: "81234.56", FuelCostPerManeuver: "9999.99", MissionLifetimeYears: "12", ManeuversPerYear: "3.5"},
		{SatelliteValueMillion: "1", InsuranceRatePct: "0.1", DailyRevenue: "10", FuelCostPerManeuver: "1", MissionLifetimeYears: "1", ManeuversPerYear: "1"},
		{},
	}
	for _, in := range cases {
		b := EstimateLifetimeCost(ParseInputs(in))
		sum := b.LifetimeManeuverCost.Add(b.LifetimeInsuranceCost).Add(b.LifetimeDowntimeCost)
		if !b.TotalLifetimeCost.Equal(sum) {
			t.Fatalf("total %s != sum of parts %s for %+v", b.TotalLifetimeCost, sum, in)
		}
	}
}

func TestEstimateManeuverAndInsurance(t *testing.T) {
	params := ParseInputs(Inputs{
		SatelliteValueMillion: "150",
		InsuranceRatePct:      "8",
		FuelCostPerManeuver:   "15000",
		MissionLifetimeYears:  "7",
		ManeuversPerYear:      "12",
	})
	b := EstimateLifetimeCost(params)

	requireEqual(t, "annual maneuver", b.AnnualManeuverCost, "180000")
	requireEqual(t, "lifetime maneuver", b.LifetimeManeuverCost, "1260000")
	requireEqual(t, "annual insurance", b.AnnualInsuranceCost, "12000000")
}

func TestParseInputsFallsBackToDefaults(t *testing.T) {
	params := ParseInputs(Inputs{
		SatelliteName:         "  ",
		SatelliteValueMillion: "lots",
		InsuranceRatePct:      "n/a",
		DailyRevenue:          "",
		FuelCostPerManeuver:   "0",
		MissionLifetimeYears:  "-",
		ManeuversPerYear:      ".",
	})
	def := DefaultParameters()

	if params.SatelliteName != DefaultSatelliteName {
		t.Fatalf("blank name should default, got %q", params.SatelliteName)
	}
	requireEqual(t, "satellite value", params.SatelliteValueMillion, def.SatelliteValueMillion.String())
	requireEqual(t, "insurance rate", params.InsuranceRate, "0.08")
	requireEqual(t, "daily revenue", params.DailyRevenue, "50000")
	requireEqual(t, "fuel cost", params.FuelCostPerManeuver, "15000")
	requireEqual(t, "lifetime", params.MissionLifetimeYears, "7")
	requireEqual(t, "maneuvers", params.ManeuversPerYear, "12")
}

func TestParseInputsReadsNumericPrefix(t *testing.T) {
	params := ParseInputs(Inputs{
		SatelliteName:         "SENTINEL-3A",
		SatelliteValueMillion: "200M",
		InsuranceRatePct:      "5 %",
		DailyRevenue:          " 1.5e4 per day",
		FuelCostPerManeuver:   "+12000",
		MissionLifetimeYears:  "10years",
		ManeuversPerYear:      ".5",
	})

	if params.SatelliteName != "SENTINEL-3A" {
		t.Fatalf("unexpected name %q", params.SatelliteName)
	}
	requireEqual(t, "satellite value", params.SatelliteValueMillion, "200")
	requireEqual(t, "insurance rate", params.InsuranceRate, "0.05")
	requireEqual(t, "daily revenue", params.DailyRevenue, "15000")
	requireEqual(t, "fuel cost", params.FuelCostPerManeuver, "12000")
	requireEqual(t, "lifetime", params.MissionLifetimeYears, "10")
	requireEqual(t, "maneuvers", params.ManeuversPerYear, "0.5")
}

func TestParseInputsKeepsNegativeValues(t *testing.T) {
	params := ParseInputs(Inputs{ManeuversPerYear: "-2"})
	requireEqual(t, "maneuvers", params.ManeuversPerYear, "-2")
}
