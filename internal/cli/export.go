package cli

import (
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a risk report (not yet available)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().Export(cmd.Context())
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive terminal dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().TUI(cmd.Context())
	},
}
