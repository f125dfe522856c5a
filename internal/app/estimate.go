package app

import (
	"context"
	"fmt"
	"text/tabwriter"

	"debris-risk-economics/internal/economics"
	"debris-risk-economics/internal/views"
)

// Estimate parses the raw inputs (falling back to defaults) and prints the
// lifetime collision-avoidance cost breakdown.
func (a *App) Estimate(_ context.Context, in economics.Inputs) error {
	params := economics.ParseInputs(in)
	breakdown := economics.EstimateLifetimeCost(params)

	a.Logger.Debug().
		Str("satellite", params.SatelliteName).
		Str("total_lifetime_cost", breakdown.TotalLifetimeCost.String()).
		Msg("lifetime cost estimated")

	if a.jsonOutput() {
		return a.writeJSON(breakdown)
	}

	writer := tabwriter.NewWriter(a.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "Satellite\t%s\n", params.SatelliteName)
	fmt.Fprintf(writer, "Satellite value\t$%sM\n", params.SatelliteValueMillion.String())
	fmt.Fprintf(writer, "Insurance rate\t%s\n", views.Percent(params.InsuranceRate))
	fmt.Fprintf(writer, "Mission lifetime (years)\t%s\n", params.MissionLifetimeYears.String())
	fmt.Fprintf(writer, "Maneuvers per year\t%s\n", params.ManeuversPerYear.String())
	fmt.Fprintln(writer, "\t")
	fmt.Fprintln(writer, "Cost\tAnnual\tLifetime")
	fmt.Fprintf(writer, "Maneuvers\t%s\t%s\n", views.Money(breakdown.AnnualManeuverCost), views.Money(breakdown.LifetimeManeuverCost))
	fmt.Fprintf(writer, "Insurance\t%s\t%s\n", views.Money(breakdown.AnnualInsuranceCost), views.Money(breakdown.LifetimeInsuranceCost))
	fmt.Fprintf(writer, "Downtime (%s days/yr)\t%s\t%s\n",
		breakdown.AnnualDowntimeDays.String(),
		views.Money(breakdown.AnnualDowntimeCost),
		views.Money(breakdown.LifetimeDowntimeCost))
	fmt.Fprintf(writer, "Total\t\t%s\n", views.Money(breakdown.TotalLifetimeCost))
	return writer.Flush()
}
