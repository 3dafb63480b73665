package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"todolist/internal/domain"
	"todolist/internal/repository"
)

type TaskRepository struct {
	db *DB
}

func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db}
}

type dbTask struct {
	ID         int64  `db:"id"`
	TaskName   string `db:"task_name"`
	Status     string `db:"status"`
	CreatedAt  string `db:"created_at"`
	UpdatedAt  string `db:"updated_at"`
	Importance string `db:"importance"`
}

// converts dbTask to a domain.Task
func (dt *dbTask) toTask() *domain.Task {
	return &domain.Task{
		ID:         dt.ID,
		TaskName:   dt.TaskName,
		Status:     domain.Status(dt.Status),
		CreatedAt:  domain.Date(dt.CreatedAt),
		UpdatedAt:  domain.Date(dt.UpdatedAt),
		Importance: domain.Importance(dt.Importance),
	}
}

const selectColumns = "SELECT id, task_name, status, created_at, updated_at, importance FROM tasks"

// insert a task, keeping its id
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if task.Importance == "" {
		task.Importance = domain.ImportanceNone
	}
	if task.Status == "" {
		task.Status = domain.StatusNotStarted
	}

	if err := task.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO tasks (id, task_name, status, created_at, updated_at, importance)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	if _, err := r.db.ExecContext(ctx, query,
		task.ID,
		task.TaskName,
		string(task.Status),
		string(task.CreatedAt),
		string(task.UpdatedAt),
		string(task.Importance),
	); err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}

	return nil
}

// get a task by its ID
func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := selectColumns + " WHERE id = ?"

	var row dbTask
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", domain.ErrTaskNotFound, id)
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return row.toTask(), nil
}

// count tasks with filtering
func (r *TaskRepository) Count(ctx context.Context, filter repository.TaskFilter) (int64, error) {
	query, args, err := r.buildWhereClause("SELECT COUNT(*) FROM tasks", filter)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	return count, nil
}

// get tasks in seed order (with filters)
func (r *TaskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]*domain.Task, error) {
	query, args, err := r.buildWhereClause(selectColumns, filter)
	if err != nil {
		return nil, err
	}

	query += " ORDER BY id ASC"

	if filter.Limit > 0 || filter.Offset > 0 {
		// sqlite only accepts OFFSET after LIMIT; -1 means no limit
		limit := filter.Limit
		if limit <= 0 {
			limit = -1
		}
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, max(filter.Offset, 0))
	}

	var rows []dbTask
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*domain.Task, 0, len(rows))
	for i := range rows {
		tasks = append(tasks, rows[i].toTask())
	}

	return tasks, nil
}

// constructs the WHERE clause; mirrors store.VisibleTasks
func (r *TaskRepository) buildWhereClause(base string, filter repository.TaskFilter) (string, []interface{}, error) {
	query := base + " WHERE 1=1"
	args := make([]interface{}, 0)

	if len(filter.Importance) > 0 {
		levels := make([]string, 0, len(filter.Importance))
		for _, imp := range filter.Importance {
			levels = append(levels, string(imp))
		}

		in, inArgs, err := sqlx.In(" AND importance IN (?)", levels)
		if err != nil {
			return "", nil, fmt.Errorf("failed to build importance filter: %w", err)
		}
		query += in
		args = append(args, inArgs...)
	}

	// YYYY-MM-DD text compares chronologically
	if !filter.CreatedFrom.IsZero() {
		query += " AND created_at >= ?"
		args = append(args, string(filter.CreatedFrom))
	}
	if !filter.CreatedTo.IsZero() {
		query += " AND created_at <= ?"
		args = append(args, string(filter.CreatedTo))
	}

	return r.db.Rebind(query), args, nil
}

// overwrite the mutable fields of a task
func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		UPDATE tasks
		SET task_name = ?, status = ?, updated_at = ?, importance = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		task.TaskName,
		string(task.Status),
		string(task.UpdatedAt),
		string(task.Importance),
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("%w: %d", domain.ErrTaskNotFound, task.ID)
	}

	return nil
}
