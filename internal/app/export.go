package app

import (
	"context"
	"fmt"
)

var reportSections = []string{
	"Executive summary",
	"Conjunction analysis",
	"Economic impact assessment",
	"Risk scores and prioritization",
	"Debris removal recommendations",
	"Detailed analytics and charts",
}

// Export is a placeholder for report generation. It lists the sections a
// report would contain and writes nothing.
func (a *App) Export(_ context.Context) error {
	a.Logger.Warn().Msg("export requested but report generation is not implemented")

	fmt.Fprintln(a.Out, "Report export is not available yet. A report would include:")
	for _, section := range reportSections {
		fmt.Fprintf(a.Out, "  - %s\n", section)
	}
	return nil
}
