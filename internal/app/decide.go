package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"debris-risk-economics/internal/alerting"
	"debris-risk-economics/internal/catalog"
	"debris-risk-economics/internal/economics"
	"debris-risk-economics/internal/views"
)

var errNoNotifier = errors.New("alerting is not enabled; configure alerting.telegram to use --notify")

// Decide runs the maneuver decision for one conjunction.
func (a *App) Decide(ctx context.Context, opts DecideOptions) error {
	ds, err := a.Dataset(ctx)
	if err != nil {
		return err
	}

	in := a.decisionInput(opts)
	result, err := economics.Decide(ds, in)
	if errors.Is(err, catalog.ErrNotFound) {
		return fmt.Errorf("%w (known conjunctions: %s)", err, strings.Join(conjunctionIDs(ds), ", "))
	}
	if err != nil {
		return err
	}

	a.Logger.Info().
		Str("conjunction", result.Event.ID).
		Str("expected_loss", result.ExpectedLoss.String()).
		Bool("should_maneuver", result.ShouldManeuver).
		Msg("decision analyzed")

	if a.jsonOutput() {
		if err := a.writeJSON(result); err != nil {
			return err
		}
	} else if err := a.printDecision(result); err != nil {
		return err
	}

	if !opts.Notify {
		return nil
	}
	return a.notifyDecision(ctx, result)
}

func conjunctionIDs(ds *catalog.Dataset) []string {
	events := ds.Conjunctions()
	ids := make([]string, 0, len(events))
	for _, ev := range events {
		ids = append(ids, ev.ID)
	}
	return ids
}

func (a *App) decisionInput(opts DecideOptions) economics.DecisionInput {
	defaults := a.Config.Decision

	return economics.DecisionInput{
		ConjunctionID:  opts.ConjunctionID,
		SatelliteValue: decimal.NewFromFloat(orDefault(opts.SatelliteValueMillion, defaults.SatelliteValueMillion)).Shift(6),
		ManeuverCost:   decimal.NewFromFloat(orDefault(opts.ManeuverCost, defaults.ManeuverCost)),
		RiskTolerance:  decimal.NewFromFloat(orDefault(opts.RiskTolerancePct, defaults.RiskTolerancePct)).Shift(-2),
	}
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func (a *App) printDecision(result economics.DecisionResult) error {
	ev := result.Event

	writer := tabwriter.NewWriter(a.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "Conjunction\t%s (%s vs %s)\n", ev.ID, ev.Satellite, ev.Debris)
	fmt.Fprintf(writer, "TCA\t%s\n", views.TCA(ev.TCA))
	fmt.Fprintf(writer, "Risk level\t%s\n", ev.RiskLevel)
	fmt.Fprintf(writer, "Collision probability\t%s (tolerance %s)\n",
		views.ProbabilityPercent(ev.CollisionProbability), views.Percent(result.RiskTolerance))
	fmt.Fprintf(writer, "Satellite value\t%s\n", views.Money(result.SatelliteValue))
	fmt.Fprintln(writer, "\t")
	fmt.Fprintf(writer, "Option A: maneuver\t%s guaranteed cost\n", views.Money(result.ManeuverCost))
	fmt.Fprintf(writer, "Option B: accept risk\t%s expected loss\n", views.Money(result.ExpectedLoss))
	fmt.Fprintf(writer, "Difference\t%s\n", views.Money(result.CostDifference))
	fmt.Fprintf(writer, "Recommendation\t%s\n", result.Recommendation())
	if err := writer.Flush(); err != nil {
		return err
	}

	if result.ShouldManeuver {
		reasons := make([]string, 0, 2)
		if result.ExceedsManeuverCost {
			reasons = append(reasons, "expected loss exceeds maneuver cost")
		}
		if result.ExceedsTolerance {
			reasons = append(reasons, "probability exceeds risk tolerance")
		}
		for _, reason := range reasons {
			fmt.Fprintf(a.Out, "  - %s\n", reason)
		}
	}
	return nil
}

func (a *App) notifyDecision(ctx context.Context, result economics.DecisionResult) error {
	notifier := a.newNotifier()
	if notifier == nil {
		return errNoNotifier
	}

	ev := result.Event
	note := alerting.Notification{
		ConjunctionID:        ev.ID,
		Satellite:            ev.Satellite,
		Debris:               ev.Debris,
		TCA:                  ev.TCA,
		RiskLevel:            string(ev.RiskLevel),
		CollisionProbability: decimal.NewFromFloat(ev.CollisionProbability),
		RiskTolerance:        result.RiskTolerance,
		ManeuverCost:         result.ManeuverCost,
		ExpectedLoss:         result.ExpectedLoss,
		ShouldManeuver:       result.ShouldManeuver,
	}
	if name := a.Config.App.Name; name != "" {
		note.AdditionalMsg = fmt.Sprintf("sent by %s", name)
	}

	if err := notifier.Notify(ctx, note); err != nil {
		return fmt.Errorf("notify decision: %w", err)
	}
	return nil
}
