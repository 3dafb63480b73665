package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"todolist/internal/tui"
)

var tuiFilters filterFlags

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI",
	Long: `Launch the interactive Text User Interface.

The TUI provides:
  - A task table filtered by the committed importance and date filters
  - A detail view where a task's name and importance can be edited
  - A filter side panel with importance check boxes and date pickers

Keyboard shortcuts:
  Table view:
    ↑/k     Move up
    ↓/j     Move down
    Enter   View task details
    f       Open the filter panel
    y       Copy the task name

  Detail view:
    e       Edit (enter confirms, esc cancels)
    tab     Focus the task name
    h / l   Toggle high / low importance
    Esc     Back to table

  Filter panel:
    space   Toggle the highlighted item
    [ / ]   Previous / next month in a date picker
    x       Clear a date bound
    Esc     Close without applying

  Global:
    q       Quit
    ?       Toggle help

Examples:
  todolist tui
  todolist tui --importance high
  todolist tui --from 2021-03-01 --to 2021-05-01`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiFilters.register(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	filters, err := tuiFilters.parse(time.Now())
	if err != nil {
		return err
	}

	ctx := context.Background()
	a, err := newApp(ctx, true)
	if err != nil {
		return err
	}
	defer a.Close()

	a.store.CommitFilters(filters)

	model := tui.NewModel(a.store, a.theme, a.styles, tui.Options{
		Context:      ctx,
		Logger:       a.logger,
		FadeFrames:   a.cfg.FadeFrames,
		FadeInterval: a.cfg.FadeInterval(),
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	a.logger.Info("tui started", "filters", !filters.IsZero())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	a.logger.Info("tui stopped")

	return nil
}
