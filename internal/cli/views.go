package cli

import (
	"github.com/spf13/cobra"

	"debris-risk-economics/internal/app"
	"debris-risk-economics/internal/views"
)

var (
	conjunctionRisk string
	debrisSort      string
	debrisTop       int
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show headline statistics, urgent conjunctions and top risk debris",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().Dashboard(cmd.Context())
	},
}

var conjunctionsCmd = &cobra.Command{
	Use:   "conjunctions",
	Short: "List conjunction events, optionally filtered by risk level",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().Conjunctions(cmd.Context(), app.ConjunctionOptions{Risk: conjunctionRisk})
	},
}

var debrisCmd = &cobra.Command{
	Use:   "debris",
	Short: "List tracked debris objects ranked by a sort key",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().Debris(cmd.Context(), app.DebrisOptions{Sort: debrisSort, Top: debrisTop})
	},
}

var prioritizeCmd = &cobra.Command{
	Use:   "prioritize",
	Short: "Rank debris for active removal with a five-year removal budget",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().Prioritize(cmd.Context())
	},
}

func init() {
	conjunctionsCmd.Flags().StringVar(&conjunctionRisk, "risk", views.FilterAll, "Risk filter: all, CRITICAL, HIGH, MEDIUM or LOW")
	debrisCmd.Flags().StringVar(&debrisSort, "sort", string(views.SortByScore), "Sort key: score, impact, conjunctions or satellites")
	debrisCmd.Flags().IntVar(&debrisTop, "top", 0, "Only show the first N objects (0 shows all)")
}
