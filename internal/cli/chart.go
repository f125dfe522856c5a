package cli

import (
	"github.com/spf13/cobra"

	"debris-risk-economics/internal/app"
)

var (
	chartNames []string
	chartOut   string
	chartDir   string
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render analytics charts as PNG or SVG",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().Chart(cmd.Context(), app.ChartOptions{
			Names:  chartNames,
			Output: chartOut,
			Dir:    chartDir,
		})
	},
}

func init() {
	chartCmd.Flags().StringSliceVar(&chartNames, "name", nil, "Chart to render: debris-impact, cost-breakdown, maneuvers, orbital-impact or all (default all)")
	chartCmd.Flags().StringVar(&chartOut, "out", "", "Output path for a single chart; the extension selects png or svg")
	chartCmd.Flags().StringVar(&chartDir, "dir", "", "Output directory when rendering several charts (defaults to config)")
}
