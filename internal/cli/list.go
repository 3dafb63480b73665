package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"todolist/internal/display"
	"todolist/internal/domain"
	"todolist/internal/repository"
	"todolist/internal/theme"
)

var (
	listFilters filterFlags
	listPage    pageFlags
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List the seeded tasks with optional filtering.

An importance filter keeps the tasks whose importance is any of the listed
levels. Creation date bounds are inclusive and either side may be left open.

Examples:
  todolist list
  todolist list --importance high
  todolist list --importance high,none --from 2021-03-01
  todolist list --created 2021-03-01..2021-05-01
  todolist list --from -30d
  todolist list --limit 2 --offset 2`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listFilters.register(listCmd)
	listPage.register(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	filters, err := listFilters.parse(time.Now())
	if err != nil {
		return err
	}
	filter, err := listPage.apply(filters.TaskFilter())
	if err != nil {
		return err
	}

	ctx := context.Background()
	a, err := newApp(ctx, false)
	if err != nil {
		return err
	}
	defer a.Close()

	rows, total, err := fetchPage(ctx, a.repo, filter)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), a.styles.Error.Render(fmt.Sprintf("✗ Failed to list tasks: %v", err)))
		return nil
	}

	out := cmd.OutOrStdout()
	if len(rows) == 0 {
		fmt.Fprintln(out)
		if total > 0 {
			fmt.Fprintln(out, a.styles.Info.Render(fmt.Sprintf("No tasks on this page (%d matching).", total)))
		} else {
			fmt.Fprintln(out, a.styles.Info.Render("No tasks found."))
		}
		fmt.Fprintln(out)
		return nil
	}

	writeTasksTable(out, a.styles, rows, total)
	return nil
}

// fetchPage returns one page of the matching tasks and how many match in all.
func fetchPage(ctx context.Context, repo repository.TaskRepository, filter repository.TaskFilter) ([]*domain.Task, int64, error) {
	rows, err := repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total := int64(len(rows))
	if filter.Limit > 0 || filter.Offset > 0 {
		if total, err = repo.Count(ctx, filter); err != nil {
			return nil, 0, err
		}
	}

	return rows, total, nil
}

func writeTasksTable(w io.Writer, styles *theme.Styles, tasks []*domain.Task, total int64) {
	fmt.Fprintln(w)

	headers := []string{
		styles.Header.Render(fmt.Sprintf("%-4s", "ID")),
		styles.Header.Render(fmt.Sprintf("%-14s", "Status")),
		styles.Header.Render(fmt.Sprintf("%-34s", "Task")),
		styles.Header.Render(fmt.Sprintf("%-12s", "Importance")),
		styles.Header.Render(fmt.Sprintf("%-10s", "Created")),
		styles.Header.Render(fmt.Sprintf("%-10s", "Updated")),
	}
	fmt.Fprintln(w, strings.Join(headers, " "))
	fmt.Fprintln(w, styles.Separator.Render(strings.Repeat("─", 100)))

	for _, task := range tasks {
		writeTaskRow(w, styles, task)
	}

	fmt.Fprintln(w)
	if int64(len(tasks)) == total {
		fmt.Fprintf(w, "Total: %d task(s)\n", total)
	} else {
		fmt.Fprintf(w, "Showing %d of %d task(s)\n", len(tasks), total)
	}
	fmt.Fprintln(w)
}

func writeTaskRow(w io.Writer, styles *theme.Styles, task *domain.Task) {
	status := fmt.Sprintf("%s %s", display.GetStatusIcon(task.Status), display.GetStatusLabel(task.Status))
	importance := fmt.Sprintf("%s %s", display.GetImportanceIcon(task.Importance), display.GetImportanceLabel(task.Importance))

	cells := []string{
		styles.Cell.Render(fmt.Sprintf("%-4d", task.ID)),
		styles.GetStatusStyle(task.Status).Render(fmt.Sprintf("%-14s", status)),
		styles.Cell.Render(fmt.Sprintf("%-34s", display.Truncate(task.TaskName, 34))),
		styles.GetImportanceStyle(task.Importance).Render(fmt.Sprintf("%-12s", importance)),
		styles.Cell.Render(fmt.Sprintf("%-10s", display.FormatDate(task.CreatedAt))),
		styles.Cell.Render(fmt.Sprintf("%-10s", display.FormatDate(task.UpdatedAt))),
	}
	fmt.Fprintln(w, strings.Join(cells, " "))
}
