package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/pillars"
	"github.com/aretw0/pillars/pkg/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the widget full screen until the user quits or ctx is cancelled.
// The widget is torn down before Run returns.
func Run(ctx context.Context, w *pillars.Widget) (domain.RollState, error) {
	defer w.Close()

	updates, unsubscribe, err := w.Subscribe()
	if err != nil {
		return w.State(), err
	}
	defer unsubscribe()

	p := tea.NewProgram(NewModel(w, updates),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err = p.Run()
	state := w.State()

	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return state, ctx.Err()
		}
		return state, fmt.Errorf("tui: %w", err)
	}
	return state, nil
}
