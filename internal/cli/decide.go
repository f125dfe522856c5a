package cli

import (
	"errors"
	"math"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"debris-risk-economics/internal/app"
)

var (
	decideID             string
	decideSatelliteValue float64
	decideManeuverCost   float64
	decideRiskTolerance  float64
	decideNotify         bool
)

var decideCmd = &cobra.Command{
	Use:   "decide",
	Short: "Compare maneuver cost with expected collision loss for a conjunction",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := decideOptions(cmd.Flags())
		if err != nil {
			return err
		}
		return getApp().Decide(cmd.Context(), opts)
	},
}

// decideOptions passes only the flags the user set, so an explicit zero
// overrides the configured default.
func decideOptions(flags *pflag.FlagSet) (app.DecideOptions, error) {
	if decideID == "" {
		return app.DecideOptions{}, errors.New("--id is required")
	}

	opts := app.DecideOptions{ConjunctionID: decideID, Notify: decideNotify}
	overrides := []struct {
		name  string
		value float64
		dst   **float64
	}{
		{"satellite-value", decideSatelliteValue, &opts.SatelliteValueMillion},
		{"maneuver-cost", decideManeuverCost, &opts.ManeuverCost},
		{"risk-tolerance", decideRiskTolerance, &opts.RiskTolerancePct},
	}
	for _, o := range overrides {
		if !flags.Changed(o.name) {
			continue
		}
		if o.value < 0 || math.IsNaN(o.value) || math.IsInf(o.value, 0) {
			return app.DecideOptions{}, errors.New("--" + o.name + " must be a finite, non-negative number")
		}
		v := o.value
		*o.dst = &v
	}
	if opts.RiskTolerancePct != nil && *opts.RiskTolerancePct > 100 {
		return app.DecideOptions{}, errors.New("--risk-tolerance must be within [0,100]")
	}
	return opts, nil
}

func init() {
	decideCmd.Flags().StringVar(&decideID, "id", "", "Conjunction identifier, e.g. CDM-003")
	decideCmd.Flags().Float64Var(&decideSatelliteValue, "satellite-value", 0, "Satellite value in USD millions (defaults to config)")
	decideCmd.Flags().Float64Var(&decideManeuverCost, "maneuver-cost", 0, "Maneuver cost in USD (defaults to config)")
	decideCmd.Flags().Float64Var(&decideRiskTolerance, "risk-tolerance", 0, "Risk tolerance in percent (defaults to config)")
	decideCmd.Flags().BoolVar(&decideNotify, "notify", false, "Send the recommendation through the configured alert channel")
}
