package export

import (
	"context"
	"fmt"
	"io"

	"todolist/internal/display"
	"todolist/internal/domain"
	"todolist/internal/repository"
)

type MarkdownExporter struct {
	taskRepo repository.TaskRepository
}

func NewMarkdownExporter(taskRepo repository.TaskRepository) *MarkdownExporter {
	return &MarkdownExporter{taskRepo: taskRepo}
}

// Export writes one section per status, in board order.
func (e *MarkdownExporter) Export(ctx context.Context, w io.Writer, filter repository.TaskFilter) error {
	tasks, err := e.taskRepo.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	fmt.Fprintln(w, "# Tasks")
	fmt.Fprintln(w)

	byStatus := make(map[domain.Status][]*domain.Task)
	for _, task := range tasks {
		byStatus[task.Status] = append(byStatus[task.Status], task)
	}

	for _, status := range domain.Statuses {
		if tasks, ok := byStatus[status]; ok && len(tasks) > 0 {
			fmt.Fprintf(w, "## %s (%d)\n\n", display.GetStatusLabel(status), len(tasks))
			for _, task := range tasks {
				writeTask(w, task)
			}
			fmt.Fprintln(w)
		}
	}

	return nil
}

func writeTask(w io.Writer, task *domain.Task) {
	checkbox := "[ ]"
	if task.Status == domain.StatusFinished {
		checkbox = "[x]"
	}

	marker := ""
	switch task.Importance {
	case domain.ImportanceHigh:
		marker = "🔴 "
	case domain.ImportanceLow:
		marker = "🟢 "
	}

	fmt.Fprintf(w, "- %s %s**%s** (created %s, updated %s)\n",
		checkbox, marker, task.TaskName, task.CreatedAt, task.UpdatedAt)
}
