package export

import (
	"encoding/json"
	"fmt"
	"io"

	"todolist/internal/domain"
)

// ReadTasks decodes a JSON export back into tasks, so an export can be used
// as the seed of a later session.
func ReadTasks(r io.Reader) ([]domain.Task, error) {
	var export TasksExport
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return nil, fmt.Errorf("failed to decode task export: %w", err)
	}

	if export.Tasks == nil {
		return nil, fmt.Errorf("no tasks in export")
	}

	tasks := make([]domain.Task, 0, len(export.Tasks))
	seen := make(map[int64]bool, len(export.Tasks))
	for _, td := range export.Tasks {
		task, err := td.toTask()
		if err != nil {
			return nil, err
		}
		if seen[task.ID] {
			return nil, fmt.Errorf("duplicate task id %d in export", task.ID)
		}
		seen[task.ID] = true
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (td *TaskData) toTask() (domain.Task, error) {
	status, err := domain.ParseStatus(td.Status)
	if err != nil {
		return domain.Task{}, fmt.Errorf("task %d: %w", td.ID, err)
	}

	importance := domain.ImportanceNone
	if td.Importance != "" {
		if importance, err = domain.ParseImportance(td.Importance); err != nil {
			return domain.Task{}, fmt.Errorf("task %d: %w", td.ID, err)
		}
	}

	task := domain.Task{
		ID:         td.ID,
		TaskName:   td.TaskName,
		Status:     status,
		CreatedAt:  domain.Date(td.CreatedAt),
		UpdatedAt:  domain.Date(td.UpdatedAt),
		Importance: importance,
	}
	if task.UpdatedAt.IsZero() {
		task.UpdatedAt = task.CreatedAt
	}

	if err := task.Validate(); err != nil {
		return domain.Task{}, fmt.Errorf("task %d: %w", td.ID, err)
	}
	return task, nil
}
