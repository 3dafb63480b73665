package repository

import (
	"context"

	"todolist/internal/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]*domain.Task, error)
	Count(ctx context.Context, filter TaskFilter) (int64, error)
	Update(ctx context.Context, task *domain.Task) error
}

// filtering options for task lists
type TaskFilter struct {
	// importance levels to keep (empty = all)
	Importance []domain.Importance

	// inclusive creation date range (zero = open side)
	CreatedFrom domain.Date
	CreatedTo   domain.Date

	// pagination
	Limit  int // max number of results (0 = no limit)
	Offset int // number of results to skip
}
