package charts

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	chart "github.com/wcharczuk/go-chart/v2"

	"debris-risk-economics/internal/catalog"
)

func newRegistry(t *testing.T) *Registry {
	t.Helper()
	ds, err := catalog.Builtin()
	if err != nil {
		t.Fatalf("load builtin dataset: %v", err)
	}
	return NewRegistry(ds, Options{Width: 640, Height: 360}, zerolog.Nop())
}

func TestActivateReusesChart(t *testing.T) {
	reg := newRegistry(t)

	if got := reg.Activated(); len(got) != 0 {
		t.Fatalf("nothing should be built before activation, got %v", got)
	}

	first, err := reg.Activate(DebrisImpact)
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	second, err := reg.Activate(DebrisImpact)
	if err != nil {
		t.Fatalf("activate again: %v", err)
	}
	if first != second {
		t.Fatal("second activation should return the cached chart")
	}
	if got := reg.Activated(); len(got) != 1 || got[0] != DebrisImpact {
		t.Fatalf("unexpected activated set %v", got)
	}
}

func TestDebrisImpactOrderedByImpact(t *testing.T) {
	reg := newRegistry(t)
	c, err := reg.Activate(DebrisImpact)
	if err != nil {
		t.Fatal(err)
	}
	bc, ok := c.(*chart.BarChart)
	if !ok {
		t.Fatalf("debris impact should be a bar chart, got %T", c)
	}
	if len(bc.Bars) != 5 {
		t.Fatalf("expected 5 bars, got %d", len(bc.Bars))
	}
	if bc.Bars[0].Label != "FENGYUN-1C DEB" || bc.Bars[4].Label != "CZ-2D DEB" {
		t.Fatalf("bars not sorted by impact: %s .. %s", bc.Bars[0].Label, bc.Bars[4].Label)
	}
}

func TestRenderAllChartsPNG(t *testing.T) {
	reg := newRegistry(t)
	for _, id := range IDs {
		t.Run(string(id), func(t *testing.T) {
			var buf bytes.Buffer
			if err := reg.Render(id, PNG, &buf); err != nil {
				t.Fatalf("render %s: %v", id, err)
			}
			if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
				t.Fatalf("%s output is not a PNG", id)
			}
		})
	}
	if got := reg.Activated(); len(got) != len(IDs) {
		t.Fatalf("all charts should be activated, got %v", got)
	}
}

func TestRenderSVG(t *testing.T) {
	reg := newRegistry(t)
	var buf bytes.Buffer
	if err := reg.Render(OrbitalImpact, SVG, &buf); err != nil {
		t.Fatalf("render svg: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("<svg")) {
		t.Fatal("svg output should contain an svg element")
	}
}

func TestUnknownChartAndFormat(t *testing.T) {
	reg := newRegistry(t)

	if _, err := reg.Activate("radar"); !errors.Is(err, ErrUnknownChart) {
		t.Fatalf("expected ErrUnknownChart, got %v", err)
	}
	if _, err := ParseID("radar"); !errors.Is(err, ErrUnknownChart) {
		t.Fatalf("expected ErrUnknownChart from ParseID, got %v", err)
	}
	if err := reg.Render(Maneuvers, Format("gif"), &bytes.Buffer{}); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]Format{"out/a.png": PNG, "b.SVG": SVG, "noext": PNG}
	for path, want := range cases {
		got, err := FormatFromPath(path)
		if err != nil || got != want {
			t.Fatalf("%s: want %s, got %s (%v)", path, want, got, err)
		}
	}
	if _, err := FormatFromPath("c.jpg"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("jpg should be rejected, got %v", err)
	}
}
