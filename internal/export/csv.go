package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"todolist/internal/repository"
)

type CSVExporter struct {
	taskRepo repository.TaskRepository
}

func NewCSVExporter(taskRepo repository.TaskRepository) *CSVExporter {
	return &CSVExporter{taskRepo: taskRepo}
}

func (e *CSVExporter) Export(ctx context.Context, w io.Writer, filter repository.TaskFilter) error {
	tasks, err := e.taskRepo.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	writer := csv.NewWriter(w)

	header := []string{"ID", "Task", "Status", "Importance", "Created At", "Updated At"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, task := range tasks {
		row := []string{
			strconv.FormatInt(task.ID, 10),
			task.TaskName,
			string(task.Status),
			string(task.Importance),
			task.CreatedAt.String(),
			task.UpdatedAt.String(),
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
