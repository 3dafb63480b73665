package repository

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"todolist/internal/domain"
)

type seedFile struct {
	Tasks []domain.Task `yaml:"tasks"`
}

// DefaultSeed returns the built-in task list loaded at startup.
func DefaultSeed() []domain.Task {
	return []domain.Task{
		{
			ID:         1,
			TaskName:   "Write cover letter",
			Status:     domain.StatusNotStarted,
			CreatedAt:  domain.MustParseDate("2021-02-03"),
			UpdatedAt:  domain.MustParseDate("2021-07-08"),
			Importance: domain.ImportanceHigh,
		},
		{
			ID:         2,
			TaskName:   "Todo 2",
			Status:     domain.StatusNotStarted,
			CreatedAt:  domain.MustParseDate("2021-03-03"),
			UpdatedAt:  domain.MustParseDate("2021-07-17"),
			Importance: domain.ImportanceNone,
		},
		{
			ID:         3,
			TaskName:   "Todo 3",
			Status:     domain.StatusOngoing,
			CreatedAt:  domain.MustParseDate("2021-04-03"),
			UpdatedAt:  domain.MustParseDate("2021-07-27"),
			Importance: domain.ImportanceLow,
		},
		{
			ID:         4,
			TaskName:   "Todo 4",
			Status:     domain.StatusFinished,
			CreatedAt:  domain.MustParseDate("2021-05-03"),
			UpdatedAt:  domain.MustParseDate("2021-08-07"),
			Importance: domain.ImportanceNone,
		},
	}
}

// LoadSeed reads a YAML task list. The file is only ever read; edits made
// while the app runs are not written back.
func LoadSeed(path string) ([]domain.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	seen := make(map[int64]bool, len(sf.Tasks))
	for i := range sf.Tasks {
		task := &sf.Tasks[i]
		if task.Importance == "" {
			task.Importance = domain.ImportanceNone
		}
		if task.UpdatedAt.IsZero() {
			task.UpdatedAt = task.CreatedAt
		}
		if err := task.Validate(); err != nil {
			return nil, fmt.Errorf("seed task %d: %w", i+1, err)
		}
		if seen[task.ID] {
			return nil, fmt.Errorf("seed task %d: duplicate id %d", i+1, task.ID)
		}
		seen[task.ID] = true
	}

	return sf.Tasks, nil
}

// Seed inserts tasks into repo in order.
func Seed(ctx context.Context, repo TaskRepository, tasks []domain.Task) error {
	for i := range tasks {
		task := tasks[i]
		if err := repo.Create(ctx, &task); err != nil {
			return fmt.Errorf("failed to seed task %d: %w", task.ID, err)
		}
	}
	return nil
}
