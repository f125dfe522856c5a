package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("defaults should load without a config file: %v", err)
	}
	if cfg.Dataset.Source != SourceBuiltin {
		t.Fatalf("default source should be builtin, got %q", cfg.Dataset.Source)
	}
	if cfg.Decision.SatelliteValueMillion != 150 || cfg.Decision.ManeuverCost != 15000 {
		t.Fatalf("unexpected decision defaults %+v", cfg.Decision)
	}
	if cfg.Database.QueryTimeout != 10*time.Second {
		t.Fatalf("unexpected query timeout %s", cfg.Database.QueryTimeout)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debriswatch.yaml")
	doc := `dataset:
  source: file
  path: /data/catalog.yaml
charts:
  width: 800
  height: 600
alerting:
  timeout: 3s
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Dataset.Path != "/data/catalog.yaml" || cfg.Charts.Width != 800 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Alerting.Timeout != 3*time.Second {
		t.Fatalf("duration hook not applied: %s", cfg.Alerting.Timeout)
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Dataset: DatasetConfig{Source: SourceBuiltin},
			Charts:  ChartsConfig{Width: 10, Height: 10},
		}
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown source", func(c *Config) { c.Dataset.Source = "s3" }},
		{"file without path", func(c *Config) { c.Dataset.Source = SourceFile }},
		{"postgres without dsn", func(c *Config) { c.Dataset.Source = SourcePostgres }},
		{"zero chart size", func(c *Config) { c.Charts.Width = 0 }},
		{"tolerance above 100", func(c *Config) { c.Decision.RiskTolerancePct = 101 }},
		{"telegram without token", func(c *Config) { c.Alerting.Telegram.Enabled = true }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	cfg := base()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("base config should be valid: %v", err)
	}
}

func TestResolveDatasetPath(t *testing.T) {
	cfg := Config{Dataset: DatasetConfig{Source: SourceBuiltin}}
	cfg.ResolveDatasetPath("")
	if cfg.Dataset.Source != SourceBuiltin {
		t.Fatal("empty override must not change the source")
	}
	cfg.ResolveDatasetPath("other.yaml")
	if cfg.Dataset.Source != SourceFile || cfg.Dataset.Path != "other.yaml" {
		t.Fatalf("override not applied: %+v", cfg.Dataset)
	}
}
