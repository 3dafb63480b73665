package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"todolist/internal/display"
	"todolist/internal/domain"
	"todolist/internal/repository"
	"todolist/internal/theme"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one task",
	Long: `Show every field of a single seeded task.

Examples:
  todolist show 1
  todolist show 3`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid task id %q", args[0])
	}

	ctx := context.Background()
	a, err := newApp(ctx, false)
	if err != nil {
		return err
	}
	defer a.Close()

	task, err := findTask(ctx, a.repo, id)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), a.styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		return nil
	}

	writeTaskDetail(cmd.OutOrStdout(), a.styles, task)
	return nil
}

func findTask(ctx context.Context, repo repository.TaskRepository, id int64) (*domain.Task, error) {
	task, err := repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrTaskNotFound) {
		return nil, fmt.Errorf("no task with id %d", id)
	}
	return task, err
}

func writeTaskDetail(w io.Writer, styles *theme.Styles, task *domain.Task) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Title.Render(fmt.Sprintf("Task %d", task.ID)))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %s %s\n", styles.DetailLabel.Render("Name:      "), styles.DetailValue.Render(task.TaskName))
	fmt.Fprintf(w, "  %s %s\n", styles.DetailLabel.Render("Status:    "),
		styles.GetStatusStyle(task.Status).Render(display.GetStatusIcon(task.Status)+" "+display.GetStatusLabel(task.Status)))
	fmt.Fprintf(w, "  %s %s\n", styles.DetailLabel.Render("Importance:"),
		styles.GetImportanceStyle(task.Importance).Render(display.GetImportanceIcon(task.Importance)+" "+display.GetImportanceLabel(task.Importance)))
	fmt.Fprintf(w, "  %s %s\n", styles.DetailLabel.Render("Created:   "), styles.DetailValue.Render(display.FormatDate(task.CreatedAt)))
	fmt.Fprintf(w, "  %s %s\n", styles.DetailLabel.Render("Updated:   "), styles.DetailValue.Render(display.FormatDate(task.UpdatedAt)))
	fmt.Fprintln(w)
}
