package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/plu/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive table over records and blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, records []model.Record, opts ...Option) error {
	m := New(records, opts...)

	programOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}
	if m.config.MouseSupport {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	m.config.Logger.Debug("starting TUI",
		"records", len(records),
		"page_size", m.config.PageSize,
		"mouse", m.config.MouseSupport)

	if _, err := tea.NewProgram(m, programOpts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
