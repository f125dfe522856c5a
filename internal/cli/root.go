package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"debris-risk-economics/internal/app"
	"debris-risk-economics/internal/config"
	"debris-risk-economics/internal/logging"
)

var (
	cfgFile      string
	logLevel     string
	datasetPath  string
	outputFormat string
	appHandle    *app.App
)

var rootCmd = &cobra.Command{
	Use:   "debriswatch",
	Short: "Explore the economics of space debris conjunctions",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if appHandle != nil {
			return nil
		}

		switch outputFormat {
		case app.OutputTable, app.OutputJSON:
		default:
			return fmt.Errorf("--output must be %q or %q", app.OutputTable, app.OutputJSON)
		}

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		if err := applyOverrides(cfg, logLevel, datasetPath); err != nil {
			return err
		}

		logger := logging.NewLogger(cfg.Logging)
		appHandle = app.NewApp(cfg, logger)
		appHandle.Out = cmd.OutOrStdout()
		appHandle.Output = outputFormat
		return nil
	},
	SilenceUsage: true,
}

// applyOverrides folds the global flags into cfg. Load already validated
// the file values, so an overridden log level is checked here.
func applyOverrides(cfg *config.Config, level, dataset string) error {
	if level != "" {
		cfg.Logging.Level = level
		if err := cfg.Logging.Validate(); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}
	cfg.ResolveDatasetPath(dataset)
	return nil
}

// Execute runs the root command. Interrupts cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log level defined in config")
	rootCmd.PersistentFlags().StringVar(&datasetPath, "dataset", "", "Load the catalog from a YAML/JSON dataset file")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", app.OutputTable, "Output format: table or json")

	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(conjunctionsCmd)
	rootCmd.AddCommand(debrisCmd)
	rootCmd.AddCommand(prioritizeCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(decideCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

func getApp() *app.App {
	if appHandle == nil {
		panic("application not initialized; PersistentPreRunE not executed")
	}
	return appHandle
}
