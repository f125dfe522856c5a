package app

import (
	"context"
	"fmt"
	"text/tabwriter"

	"debris-risk-economics/internal/catalog"
	"debris-risk-economics/internal/views"
)

// Dashboard prints the headline statistics with urgent conjunctions and the
// highest-scored debris.
func (a *App) Dashboard(ctx context.Context) error {
	ds, err := a.Dataset(ctx)
	if err != nil {
		return err
	}

	summary := views.Summarize(ds.Conjunctions(), ds.Debris())
	if a.jsonOutput() {
		return a.writeJSON(summary)
	}

	writer := tabwriter.NewWriter(a.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "Active conjunctions\t%d\n", summary.ConjunctionCount)
	fmt.Fprintf(writer, "Annual economic impact\t%s\n", views.Millions(summary.TotalAnnualImpactMillion))
	fmt.Fprintf(writer, "Tracked debris objects\t%d\n", summary.DebrisCount)
	fmt.Fprintf(writer, "Average risk score\t%.1f\n", summary.AverageRiskScore)
	if err := writer.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(a.Out)
	fmt.Fprintln(a.Out, "Urgent conjunctions")
	if err := a.printConjunctions(summary.UrgentConjunctions); err != nil {
		return err
	}

	fmt.Fprintln(a.Out)
	fmt.Fprintln(a.Out, "Highest risk debris")
	return a.printDebris(summary.TopDebris)
}

// Conjunctions lists events matching the risk filter ("all" or a risk level).
func (a *App) Conjunctions(ctx context.Context, opts ConjunctionOptions) error {
	ds, err := a.Dataset(ctx)
	if err != nil {
		return err
	}

	filter := opts.Risk
	if filter == "" {
		filter = views.FilterAll
	}

	events := views.SelectConjunctions(ds.Conjunctions(), filter)
	a.Logger.Debug().Str("filter", filter).Int("matched", len(events)).Msg("conjunctions selected")

	if a.jsonOutput() {
		return a.writeJSON(events)
	}
	if len(events) == 0 {
		fmt.Fprintf(a.Out, "no conjunctions match risk filter %q\n", filter)
		return nil
	}
	return a.printConjunctions(events)
}

// Debris lists debris objects sorted by the requested key, optionally
// truncated to the top N.
func (a *App) Debris(ctx context.Context, opts DebrisOptions) error {
	ds, err := a.Dataset(ctx)
	if err != nil {
		return err
	}

	key := views.ParseSortKey(opts.Sort)
	objects := views.SortDebris(ds.Debris(), key)
	if opts.Top > 0 {
		objects = views.TopN(objects, opts.Top, key)
	}

	if a.jsonOutput() {
		return a.writeJSON(objects)
	}
	return a.printDebris(objects)
}

// Prioritize prints the removal ranking with a five-year removal budget per object.
func (a *App) Prioritize(ctx context.Context) error {
	ds, err := a.Dataset(ctx)
	if err != nil {
		return err
	}

	ranking := views.Prioritize(ds.Debris())
	if a.jsonOutput() {
		return a.writeJSON(ranking)
	}

	writer := tabwriter.NewWriter(a.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Rank\tDebris\tScore\tAnnual impact\tRemoval budget")
	for _, p := range ranking {
		fmt.Fprintf(
			writer,
			"%d\t%s\t%d\t%s\t%s\n",
			p.Rank,
			p.Debris.Name,
			p.Debris.EconomicRiskScore,
			views.Millions(p.Debris.EstimatedAnnualImpactMillion),
			views.Millions(p.RemovalBudgetMillion),
		)
	}
	return writer.Flush()
}

func (a *App) printConjunctions(events []catalog.ConjunctionEvent) error {
	writer := tabwriter.NewWriter(a.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tSatellite\tDebris\tTCA\tMiss (km)\tProbability\tRisk\tVelocity (km/s)")
	for _, ev := range events {
		fmt.Fprintf(
			writer,
			"%s\t%s\t%s\t%s\t%.3f\t%s\t%s\t%.1f\n",
			ev.ID,
			ev.Satellite,
			ev.Debris,
			views.TCA(ev.TCA),
			ev.MissDistanceKm,
			views.ProbabilityPercent(ev.CollisionProbability),
			ev.RiskLevel,
			ev.RelativeVelocityKmS,
		)
	}
	return writer.Flush()
}

func (a *App) printDebris(objects []catalog.DebrisObject) error {
	writer := tabwriter.NewWriter(a.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Name\tNORAD\tSize (cm)\tAltitude (km)\tConjunctions/yr\tSatellites\tScore\tAnnual impact")
	for _, obj := range objects {
		fmt.Fprintf(
			writer,
			"%s\t%s\t%.0f\t%.0f\t%s\t%s\t%d (%s)\t%s\n",
			obj.Name,
			obj.NoradID,
			obj.SizeCm,
			obj.AltitudeKm,
			views.Count(obj.AnnualConjunctions),
			views.Count(obj.ThreatenedSatellites),
			obj.EconomicRiskScore,
			views.ClassifyScore(obj.EconomicRiskScore),
			views.Millions(obj.EstimatedAnnualImpactMillion),
		)
	}
	return writer.Flush()
}
