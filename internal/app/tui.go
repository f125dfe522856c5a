package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"debris-risk-economics/internal/tui"
)

// TUI runs the interactive dashboard until the user quits or ctx is cancelled.
func (a *App) TUI(ctx context.Context) error {
	ds, err := a.Dataset(ctx)
	if err != nil {
		return err
	}

	program := tea.NewProgram(tui.New(ds, a.Logger), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
