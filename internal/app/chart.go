package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"debris-risk-economics/internal/charts"
)

// Chart renders the requested charts. A single chart may be written to an
// explicit output path; otherwise each chart lands in the output directory as
// <name>.png.
func (a *App) Chart(ctx context.Context, opts ChartOptions) error {
	ids, err := resolveChartIDs(opts.Names)
	if err != nil {
		return err
	}
	if opts.Output != "" && len(ids) != 1 {
		return errors.New("--out can only be used with a single --name")
	}

	ds, err := a.Dataset(ctx)
	if err != nil {
		return err
	}
	registry := a.chartRegistry(ds)

	dir := opts.Dir
	if dir == "" {
		dir = a.Config.Charts.OutputDir
	}

	for _, id := range ids {
		path := opts.Output
		if path == "" {
			path = filepath.Join(dir, string(id)+".png")
		}
		if err := writeChart(registry, id, path); err != nil {
			return err
		}
		a.Logger.Info().Str("chart", string(id)).Str("path", path).Msg("chart written")
		fmt.Fprintln(a.Out, path)
	}
	return nil
}

func resolveChartIDs(names []string) ([]charts.ID, error) {
	if len(names) == 0 {
		return charts.IDs, nil
	}
	ids := make([]charts.ID, 0, len(names))
	for _, name := range names {
		if name == "all" {
			return charts.IDs, nil
		}
		id, err := charts.ParseID(name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func writeChart(registry *charts.Registry, id charts.ID, path string) error {
	format, err := charts.FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := ensureDir(path); err != nil {
		return fmt.Errorf("create chart directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer file.Close()

	return registry.Render(id, format, file)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
