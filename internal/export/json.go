package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"todolist/internal/domain"
	"todolist/internal/repository"
)

type JSONExporter struct {
	taskRepo repository.TaskRepository
	now      func() time.Time
}

func NewJSONExporter(taskRepo repository.TaskRepository) *JSONExporter {
	return &JSONExporter{
		taskRepo: taskRepo,
		now:      time.Now,
	}
}

func (e *JSONExporter) ExportTasks(ctx context.Context, filter repository.TaskFilter) (*TasksExport, error) {
	tasks, err := e.taskRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	taskData := make([]*TaskData, 0, len(tasks))
	for _, task := range tasks {
		taskData = append(taskData, convertTask(task))
	}

	return &TasksExport{
		Version:    Version,
		ExportedAt: e.now().UTC(),
		Tasks:      taskData,
	}, nil
}

func (e *JSONExporter) Export(ctx context.Context, w io.Writer, filter repository.TaskFilter) error {
	export, err := e.ExportTasks(ctx, filter)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(export)
}

func convertTask(task *domain.Task) *TaskData {
	return &TaskData{
		ID:         task.ID,
		TaskName:   task.TaskName,
		Status:     string(task.Status),
		Importance: string(task.Importance),
		CreatedAt:  task.CreatedAt.String(),
		UpdatedAt:  task.UpdatedAt.String(),
	}
}
