package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Formats accepted by Config.Format.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config describes logger runtime configuration.
type Config struct {
	Level       string `mapstructure:"level"`
	Format      string `mapstructure:"format"`
	TimeFormat  string `mapstructure:"time_format"`
	Caller      bool   `mapstructure:"caller"`
	PrettyPrint bool   `mapstructure:"pretty"`
}

// Validate rejects unknown levels and formats. Empty values take defaults.
func (c Config) Validate() error {
	if c.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(c.Level)); err != nil {
			return fmt.Errorf("logging.level %q: %w", c.Level, err)
		}
	}
	switch strings.ToLower(c.Format) {
	case "", FormatJSON, FormatConsole:
		return nil
	default:
		return fmt.Errorf("logging.format must be %q or %q", FormatJSON, FormatConsole)
	}
}

// NewLogger writes to stderr so stdout carries only command output.
func NewLogger(cfg Config) zerolog.Logger {
	return New(cfg, os.Stderr)
}

// New constructs a logger writing to out. Unknown levels fall back to info.
func New(cfg Config, out io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.TimeFormat != "" {
		zerolog.TimeFieldFormat = cfg.TimeFormat
	}

	ctx := zerolog.New(writerFor(cfg, out)).Level(levelOf(cfg.Level)).With().Timestamp()
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

func levelOf(raw string) zerolog.Level {
	if raw == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func writerFor(cfg Config, out io.Writer) io.Writer {
	if !cfg.PrettyPrint && !strings.EqualFold(cfg.Format, FormatConsole) {
		return out
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: zerolog.TimeFieldFormat,
		NoColor:    out != os.Stderr,
	}
}
