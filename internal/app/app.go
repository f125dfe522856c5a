package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"debris-risk-economics/internal/alerting"
	"debris-risk-economics/internal/catalog"
	"debris-risk-economics/internal/charts"
	"debris-risk-economics/internal/config"
)

// Output formats for command results.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// App aggregates configuration and shared dependencies for the CLI commands.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Out    io.Writer
	Output string

	mu       sync.Mutex
	dataset  *catalog.Dataset
	registry *charts.Registry
}

// NewApp constructs a new application handle.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	return &App{
		Config: cfg,
		Logger: logger.With().Str("component", "app").Logger(),
		Out:    os.Stdout,
		Output: OutputTable,
	}
}

func (a *App) newNotifier() alerting.Notifier {
	if a.Config.Alerting.Enabled && a.Config.Alerting.Telegram.Enabled {
		cfg := a.Config.Alerting.Telegram
		return alerting.NewTelegramNotifier(cfg.BotToken, cfg.ChatID, cfg.APIBase, a.Config.Alerting.Timeout, a.Logger)
	}
	return nil
}

func (a *App) chartRegistry(ds *catalog.Dataset) *charts.Registry {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.registry == nil {
		a.registry = charts.NewRegistry(ds, charts.Options{
			Width:  a.Config.Charts.Width,
			Height: a.Config.Charts.Height,
		}, a.Logger)
	}
	return a.registry
}

func (a *App) jsonOutput() bool {
	return a.Output == OutputJSON
}

func (a *App) writeJSON(v any) error {
	enc := json.NewEncoder(a.Out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json output: %w", err)
	}
	return nil
}

// ConjunctionOptions configure the conjunctions command.
type ConjunctionOptions struct {
	Risk string
}

// DebrisOptions configure the debris command.
type DebrisOptions struct {
	Sort string
	Top  int
}

// DecideOptions configure the decide command. Nil overrides take the
// decision defaults from configuration.
type DecideOptions struct {
	ConjunctionID         string
	SatelliteValueMillion *float64
	ManeuverCost          *float64
	RiskTolerancePct      *float64
	Notify                bool
}

// ChartOptions configure chart rendering.
type ChartOptions struct {
	Names  []string
	Output string
	Dir    string
}

// ImportOptions configure seeding the PostgreSQL catalog.
type ImportOptions struct {
	From    string
	Migrate bool
}
