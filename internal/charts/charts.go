package charts

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"debris-risk-economics/internal/catalog"
	"debris-risk-economics/internal/views"
)

var (
	// ErrUnknownChart is returned for a chart identity the registry cannot build.
	ErrUnknownChart = errors.New("charts: unknown chart")
	// ErrUnknownFormat is returned for an output format other than png or svg.
	ErrUnknownFormat = errors.New("charts: unknown format")
)

// ID identifies a chart.
type ID string

const (
	DebrisImpact  ID = "debris-impact"
	CostBreakdown ID = "cost-breakdown"
	Maneuvers     ID = "maneuvers"
	OrbitalImpact ID = "orbital-impact"
)

// IDs lists every chart the registry can build.
var IDs = []ID{DebrisImpact, CostBreakdown, Maneuvers, OrbitalImpact}

// ParseID validates a chart name.
func ParseID(raw string) (ID, error) {
	for _, id := range IDs {
		if string(id) == raw {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownChart, raw)
}

// Format is a rendered image encoding.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// FormatFromPath picks the format from the file extension, defaulting to PNG.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "", "png":
		return PNG, nil
	case "svg":
		return SVG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

func (f Format) provider() (chart.RendererProvider, error) {
	switch f {
	case PNG:
		return chart.PNG, nil
	case SVG:
		return chart.SVG, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// Renderable is a chart definition go-chart can draw.
type Renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// Options size the rendered charts.
type Options struct {
	Width  int
	Height int
}

// Registry owns chart definitions keyed by identity. A chart is built the
// first time it is activated and reused afterwards.
type Registry struct {
	dataset *catalog.Dataset
	opts    Options
	logger  zerolog.Logger

	mu     sync.Mutex
	charts map[ID]Renderable
}

// NewRegistry constructs an empty registry over ds.
func NewRegistry(ds *catalog.Dataset, opts Options, logger zerolog.Logger) *Registry {
	if opts.Width <= 0 {
		opts.Width = 1280
	}
	if opts.Height <= 0 {
		opts.Height = 720
	}
	return &Registry{
		dataset: ds,
		opts:    opts,
		logger:  logger.With().Str("component", "charts").Logger(),
		charts:  make(map[ID]Renderable),
	}
}

// Activate returns the chart for id, building it on first use.
func (r *Registry) Activate(id ID) (Renderable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.charts[id]; ok {
		return c, nil
	}

	c, err := r.build(id)
	if err != nil {
		return nil, err
	}
	r.charts[id] = c
	r.logger.Debug().Str("chart", string(id)).Msg("chart created")
	return c, nil
}

// Activated lists the charts built so far, sorted by name.
func (r *Registry) Activated() []ID {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]ID, 0, len(r.charts))
	for id := range r.charts {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Render activates id and writes it to w in the requested format.
func (r *Registry) Render(id ID, format Format, w io.Writer) error {
	provider, err := format.provider()
	if err != nil {
		return err
	}
	c, err := r.Activate(id)
	if err != nil {
		return err
	}
	if err := c.Render(provider, w); err != nil {
		return fmt.Errorf("render %s: %w", id, err)
	}
	return nil
}

func (r *Registry) build(id ID) (Renderable, error) {
	analytics := r.dataset.Analytics()
	switch id {
	case DebrisImpact:
		return r.debrisImpactChart(), nil
	case CostBreakdown:
		return r.pieChart(analytics.CostBreakdown), nil
	case Maneuvers:
		return r.lineChart(analytics.MonthlyManeuvers), nil
	case OrbitalImpact:
		return r.barChart(analytics.OrbitalImpact), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChart, string(id))
	}
}

var palette = []drawing.Color{
	drawing.ColorFromHex("2FA36B"),
	drawing.ColorFromHex("7CB342"),
	drawing.ColorFromHex("E6A700"),
	drawing.ColorFromHex("D94B4B"),
	drawing.ColorFromHex("0B1E3C"),
	drawing.ColorFromHex("6B7A90"),
}

func paletteStyle(i int) chart.Style {
	c := palette[i%len(palette)]
	return chart.Style{FillColor: c, StrokeColor: c}
}

func (r *Registry) debrisImpactChart() *chart.BarChart {
	sorted := views.SortDebris(r.dataset.Debris(), views.SortByImpact)
	bars := make([]chart.Value, 0, len(sorted))
	for i, obj := range sorted {
		bars = append(bars, chart.Value{
			Label: obj.Name,
			Value: obj.EstimatedAnnualImpactMillion,
			Style: paletteStyle(i),
		})
	}
	return &chart.BarChart{
		Title:    "Annual Economic Impact ($M)",
		Width:    r.opts.Width,
		Height:   r.opts.Height,
		BarWidth: barWidth(r.opts.Width, len(bars)),
		YAxis:    chart.YAxis{Name: "Annual Impact (Million USD)"},
		Bars:     bars,
	}
}

func (r *Registry) barChart(series catalog.AnalyticsSeries) *chart.BarChart {
	bars := make([]chart.Value, 0, len(series.Points))
	for i, p := range series.Points {
		bars = append(bars, chart.Value{Label: p.Label, Value: p.Value, Style: paletteStyle(i)})
	}
	return &chart.BarChart{
		Title:    series.Title,
		Width:    r.opts.Width,
		Height:   r.opts.Height,
		BarWidth: barWidth(r.opts.Width, len(bars)),
		YAxis:    chart.YAxis{Name: series.Unit},
		Bars:     bars,
	}
}

func (r *Registry) pieChart(series catalog.AnalyticsSeries) *chart.PieChart {
	values := make([]chart.Value, 0, len(series.Points))
	for i, p := range series.Points {
		values = append(values, chart.Value{Label: p.Label, Value: p.Value, Style: paletteStyle(i)})
	}
	return &chart.PieChart{
		Title:  series.Title,
		Width:  r.opts.Width,
		Height: r.opts.Height,
		Values: values,
	}
}

func (r *Registry) lineChart(series catalog.AnalyticsSeries) *chart.Chart {
	x := make([]float64, len(series.Points))
	y := make([]float64, len(series.Points))
	ticks := make([]chart.Tick, len(series.Points))
	for i, p := range series.Points {
		x[i] = float64(i + 1)
		y[i] = p.Value
		ticks[i] = chart.Tick{Value: x[i], Label: p.Label}
	}

	graph := &chart.Chart{
		Title:  series.Title,
		Width:  r.opts.Width,
		Height: r.opts.Height,
		XAxis:  chart.XAxis{Ticks: ticks},
		YAxis:  chart.YAxis{Name: "Number of " + series.Unit},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    series.Title,
				XValues: x,
				YValues: y,
				Style: chart.Style{
					StrokeColor: palette[0],
					StrokeWidth: 2,
					FillColor:   palette[0].WithAlpha(26),
				},
			},
		},
	}
	return graph
}

func barWidth(width, bars int) int {
	if bars == 0 {
		return 0
	}
	w := width / (bars * 2)
	if w > 120 {
		w = 120
	}
	return w
}
