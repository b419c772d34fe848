package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/kurmi-workspace/internal/common"
	"github.com/Veraticus/kurmi-workspace/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
)

// RunChecklist shows items as a full-screen checklist and returns the names
// the operator confirmed. Quitting returns common.ErrCancelled.
func RunChecklist(ctx context.Context, items []components.ChecklistItem, opts ...Option) ([]string, error) {
	m := NewModel(items, opts...)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if m.config.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if m.config.Input != nil {
		programOpts = append(programOpts, tea.WithInput(m.config.Input))
	}
	if m.config.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(m.config.Output))
	}

	final, err := tea.NewProgram(m, programOpts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrCancelled, err)
		}
		return nil, fmt.Errorf("TUI error: %w", err)
	}

	result, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("TUI returned unexpected model %T", final)
	}
	if result.Outcome() != OutcomeConfirmed {
		return nil, common.ErrCancelled
	}
	return result.Selected(), nil
}
