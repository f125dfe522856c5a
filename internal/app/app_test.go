package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"debris-risk-economics/internal/catalog"
	"debris-risk-economics/internal/config"
	"debris-risk-economics/internal/economics"
	"debris-risk-economics/internal/storage"
)

func testConfig() *config.Config {
	return &config.Config{
		App:     config.AppConfig{Name: "debriswatch-test"},
		Dataset: config.DatasetConfig{Source: config.SourceBuiltin},
		Decision: config.DecisionConfig{
			SatelliteValueMillion: 150,
			ManeuverCost:          15000,
			RiskTolerancePct:      0.01,
		},
		Charts:   config.ChartsConfig{Width: 640, Height: 360},
		Alerting: config.AlertingConfig{Timeout: time.Second},
	}
}

func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	a := NewApp(testConfig(), zerolog.Nop())
	a.Out = &out
	return a, &out
}

func TestDatasetLoadedOnce(t *testing.T) {
	a, _ := newTestApp(t)

	first, err := a.Dataset(context.Background())
	if err != nil {
		t.Fatalf("Dataset: %v", err)
	}
	second, err := a.Dataset(context.Background())
	if err != nil {
		t.Fatalf("Dataset: %v", err)
	}
	if first != second {
		t.Fatal("dataset should be loaded once and reused")
	}
}

func TestDatasetPostgresRequiresDSN(t *testing.T) {
	a, _ := newTestApp(t)
	a.Config.Dataset.Source = config.SourcePostgres

	if _, err := a.Dataset(context.Background()); !errors.Is(err, storage.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestDashboardTable(t *testing.T) {
	a, out := newTestApp(t)

	if err := a.Dashboard(context.Background()); err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	text := out.String()
	for _, want := range []string{"Active conjunctions", "$537.4M", "85.2", "CDM-001", "FENGYUN-1C DEB"} {
		if !strings.Contains(text, want) {
			t.Fatalf("dashboard output missing %q:\n%s", want, text)
		}
	}
}

func TestConjunctionsJSON(t *testing.T) {
	a, out := newTestApp(t)
	a.Output = OutputJSON

	if err := a.Conjunctions(context.Background(), ConjunctionOptions{Risk: "MEDIUM"}); err != nil {
		t.Fatalf("Conjunctions: %v", err)
	}

	var events []catalog.ConjunctionEvent
	if err := json.Unmarshal(out.Bytes(), &events); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(events) != 2 || events[0].ID != "CDM-002" || events[1].ID != "CDM-005" {
		t.Fatalf("unexpected MEDIUM selection: %+v", events)
	}
}

func TestConjunctionsUnknownFilter(t *testing.T) {
	a, out := newTestApp(t)

	if err := a.Conjunctions(context.Background(), ConjunctionOptions{Risk: "SEVERE"}); err != nil {
		t.Fatalf("Conjunctions: %v", err)
	}
	if !strings.Contains(out.String(), "no conjunctions match") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestDebrisTopByImpact(t *testing.T) {
	a, out := newTestApp(t)
	a.Output = OutputJSON

	if err := a.Debris(context.Background(), DebrisOptions{Sort: "impact", Top: 2}); err != nil {
		t.Fatalf("Debris: %v", err)
	}

	var objects []catalog.DebrisObject
	if err := json.Unmarshal(out.Bytes(), &objects); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(objects) != 2 || objects[0].Name != "FENGYUN-1C DEB" || objects[1].Name != "COSMOS 2251 DEB" {
		t.Fatalf("unexpected top debris: %+v", objects)
	}
}

func TestEstimateDefaults(t *testing.T) {
	a, out := newTestApp(t)

	if err := a.Estimate(context.Background(), economics.Inputs{}); err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	for _, want := range []string{"Unnamed Satellite", "$12,000,000", "$93,660,000"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("estimate output missing %q:\n%s", want, out.String())
		}
	}
}

func TestDecideUsesConfigDefaults(t *testing.T) {
	a, out := newTestApp(t)
	a.Output = OutputJSON

	if err := a.Decide(context.Background(), DecideOptions{ConjunctionID: "CDM-003"}); err != nil {
		t.Fatalf("Decide: %v", err)
	}

	var result economics.DecisionResult
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if !result.ShouldManeuver || result.ExpectedLoss.String() != "133500" {
		t.Fatalf("unexpected decision: %+v", result)
	}
}

func TestDecideExplicitZeroTolerance(t *testing.T) {
	decide := func(opts DecideOptions) economics.DecisionResult {
		t.Helper()
		a, out := newTestApp(t)
		a.Output = OutputJSON
		if err := a.Decide(context.Background(), opts); err != nil {
			t.Fatalf("Decide: %v", err)
		}
		var result economics.DecisionResult
		if err := json.Unmarshal(out.Bytes(), &result); err != nil {
			t.Fatalf("decode output: %v", err)
		}
		return result
	}

	// CDM-004 is LOW risk and well under the 0.01% default tolerance.
	if got := decide(DecideOptions{ConjunctionID: "CDM-004"}); got.ShouldManeuver {
		t.Fatalf("expected accept risk with config tolerance: %+v", got)
	}

	zero := 0.0
	got := decide(DecideOptions{ConjunctionID: "CDM-004", RiskTolerancePct: &zero})
	if !got.ShouldManeuver || !got.ExceedsTolerance || !got.RiskTolerance.IsZero() {
		t.Fatalf("zero tolerance should force a maneuver: %+v", got)
	}
}

func TestDecideNotFound(t *testing.T) {
	a, _ := newTestApp(t)

	err := a.Decide(context.Background(), DecideOptions{ConjunctionID: "CDM-999"})
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDecideNotifyRequiresAlerting(t *testing.T) {
	a, _ := newTestApp(t)

	err := a.Decide(context.Background(), DecideOptions{ConjunctionID: "CDM-001", Notify: true})
	if !errors.Is(err, errNoNotifier) {
		t.Fatalf("expected errNoNotifier, got %v", err)
	}
}

func TestDecideNotifyTelegram(t *testing.T) {
	var received map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}))
	defer srv.Close()

	a, _ := newTestApp(t)
	a.Config.Alerting.Enabled = true
	a.Config.Alerting.Telegram = config.TelegramConfig{Enabled: true, BotToken: "token", ChatID: "chat", APIBase: srv.URL}

	if err := a.Decide(context.Background(), DecideOptions{ConjunctionID: "CDM-003", Notify: true}); err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if !strings.Contains(received["text"], "CDM-003") || !strings.Contains(received["text"], "debriswatch-test") {
		t.Fatalf("unexpected notification: %#v", received)
	}
}

func TestChartWritesFiles(t *testing.T) {
	a, out := newTestApp(t)
	dir := t.TempDir()

	if err := a.Chart(context.Background(), ChartOptions{Dir: dir}); err != nil {
		t.Fatalf("Chart: %v", err)
	}
	for _, name := range []string{"debris-impact", "cost-breakdown", "maneuvers", "orbital-impact"} {
		path := filepath.Join(dir, name+".png")
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Fatalf("expected non-empty %s: %v", path, err)
		}
		if !strings.Contains(out.String(), path) {
			t.Fatalf("output should list %s", path)
		}
	}

	svg := filepath.Join(dir, "nested", "maneuvers.svg")
	if err := a.Chart(context.Background(), ChartOptions{Names: []string{"maneuvers"}, Output: svg}); err != nil {
		t.Fatalf("Chart svg: %v", err)
	}
	if _, err := os.Stat(svg); err != nil {
		t.Fatalf("expected svg output: %v", err)
	}
}

func TestChartRejectsOutWithMultipleNames(t *testing.T) {
	a, _ := newTestApp(t)

	err := a.Chart(context.Background(), ChartOptions{Names: []string{"maneuvers", "debris-impact"}, Output: "x.png"})
	if err == nil {
		t.Fatal("expected error for --out with multiple charts")
	}
}

func TestExportStub(t *testing.T) {
	a, out := newTestApp(t)

	if err := a.Export(context.Background()); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(out.String(), "not available") || !strings.Contains(out.String(), "Debris removal recommendations") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}
