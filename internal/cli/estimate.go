package cli

import (
	"github.com/spf13/cobra"

	"debris-risk-economics/internal/economics"
)

var estimateInputs economics.Inputs

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate lifetime collision-avoidance cost for a satellite",
	Long: `Estimate lifetime collision-avoidance cost for a satellite.

Values that are empty, non-numeric or zero fall back to their defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().Estimate(cmd.Context(), estimateInputs)
	},
}

func init() {
	flags := estimateCmd.Flags()
	flags.StringVar(&estimateInputs.SatelliteName, "satellite", "", "Satellite name")
	flags.StringVar(&estimateInputs.SatelliteValueMillion, "value", "", "Satellite value in USD millions (default 150)")
	flags.StringVar(&estimateInputs.InsuranceRatePct, "insurance-rate", "", "Annual insurance rate in percent (default 8)")
	flags.StringVar(&estimateInputs.DailyRevenue, "daily-revenue", "", "Daily revenue in USD (default 50000)")
	flags.StringVar(&estimateInputs.FuelCostPerManeuver, "fuel-cost", "", "Fuel cost per maneuver in USD (default 15000)")
	flags.StringVar(&estimateInputs.MissionLifetimeYears, "lifetime", "", "Mission lifetime in years (default 7)")
	flags.StringVar(&estimateInputs.ManeuversPerYear, "maneuvers", "", "Maneuvers per year (default 12)")
}
