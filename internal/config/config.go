package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"debris-risk-economics/internal/logging"
)

// Dataset sources.
const (
	SourceBuiltin  = "builtin"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config materialises application configuration.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Logging  logging.Config `mapstructure:"logging"`
	Dataset  DatasetConfig  `mapstructure:"dataset"`
	Database DatabaseConfig `mapstructure:"database"`
	Decision DecisionConfig `mapstructure:"decision"`
	Charts   ChartsConfig   `mapstructure:"charts"`
	Alerting AlertingConfig `mapstructure:"alerting"`
}

// AppConfig general metadata.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

// DatasetConfig selects where conjunction and debris data is read from.
type DatasetConfig struct {
	Source string `mapstructure:"source"`
	Path   string `mapstructure:"path"`
}

// DatabaseConfig encapsulates PostgreSQL connectivity.
type DatabaseConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	QueryTimeout    time.Duration `mapstructure:"query_timeout"`
}

// DecisionConfig holds the defaults offered by the decision command.
type DecisionConfig struct {
	SatelliteValueMillion float64 `mapstructure:"satellite_value_million"`
	ManeuverCost          float64 `mapstructure:"maneuver_cost"`
	RiskTolerancePct      float64 `mapstructure:"risk_tolerance_pct"`
}

// ChartsConfig sizes rendered charts.
type ChartsConfig struct {
	Width     int    `mapstructure:"width"`
	Height    int    `mapstructure:"height"`
	OutputDir string `mapstructure:"output_dir"`
}

// AlertingConfig defines recommendation routing.
type AlertingConfig struct {
	Enabled  bool           `mapstructure:"enabled"`
	Timeout  time.Duration  `mapstructure:"timeout"`
	Telegram TelegramConfig `mapstructure:"telegram"`
}

// TelegramConfig describes the Telegram bot used for notifications.
type TelegramConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token"`
	ChatID   string `mapstructure:"chat_id"`
	APIBase  string `mapstructure:"api_base"`
}

// Load builds configuration from file, environment, and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DEBRISWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("debriswatch")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "debriswatch")
	v.SetDefault("app.environment", "development")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("dataset.source", SourceBuiltin)
	v.SetDefault("dataset.path", "")

	v.SetDefault("database.max_open_conns", 4)
	v.SetDefault("database.max_idle_conns", 1)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.query_timeout", "10s")

	v.SetDefault("decision.satellite_value_million", 150.0)
	v.SetDefault("decision.maneuver_cost", 15000.0)
	v.SetDefault("decision.risk_tolerance_pct", 0.01)

	v.SetDefault("charts.width", 1280)
	v.SetDefault("charts.height", 720)
	v.SetDefault("charts.output_dir", "charts")

	v.SetDefault("alerting.enabled", false)
	v.SetDefault("alerting.timeout", "10s")
	v.SetDefault("alerting.telegram.enabled", false)
	v.SetDefault("alerting.telegram.api_base", "https://api.telegram.org")
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}
}

// Validate performs basic sanity checks on the configuration values.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	switch c.Dataset.Source {
	case SourceBuiltin:
	case SourceFile:
		if c.Dataset.Path == "" {
			return fmt.Errorf("dataset.path is required when dataset.source is %q", SourceFile)
		}
	case SourcePostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required when dataset.source is %q", SourcePostgres)
		}
	default:
		return fmt.Errorf("dataset.source must be one of %s, %s, %s", SourceBuiltin, SourceFile, SourcePostgres)
	}
	if c.Charts.Width <= 0 || c.Charts.Height <= 0 {
		return fmt.Errorf("charts.width and charts.height must be greater than zero")
	}
	if c.Decision.RiskTolerancePct < 0 || c.Decision.RiskTolerancePct > 100 {
		return fmt.Errorf("decision.risk_tolerance_pct must be within [0,100]")
	}
	if c.Alerting.Telegram.Enabled {
		if c.Alerting.Telegram.BotToken == "" {
			return fmt.Errorf("alerting.telegram.bot_token must be set")
		}
		if c.Alerting.Telegram.ChatID == "" {
			return fmt.Errorf("alerting.telegram.chat_id must be set")
		}
	}
	return nil
}

// ResolveDatasetPath applies a CLI dataset override, switching the source to file.
func (c *Config) ResolveDatasetPath(override string) {
	if override == "" {
		return
	}
	c.Dataset.Source = SourceFile
	c.Dataset.Path = override
}
