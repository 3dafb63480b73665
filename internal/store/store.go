// Package store owns the task collection and the committed filters.
//
// A single *Store is created at startup and handed to every component that
// needs to read tasks or dispatch actions. It is confined to the UI event
// loop: callers never touch it from more than one goroutine, so it carries
// no locks.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"todolist/internal/domain"
	"todolist/internal/logging"
	"todolist/internal/repository"
)

var ErrUnknownAction = errors.New("unknown action")

type ActionType string

const (
	ActionUpdate ActionType = "UPDATE"
)

// Action is a request to change the task collection.
type Action struct {
	Type          ActionType
	ID            int64
	NewText       string
	NewDate       domain.Date
	NewImportance domain.Importance
}

// Update builds an UPDATE action.
func Update(id int64, text string, date domain.Date, importance domain.Importance) Action {
	return Action{
		Type:          ActionUpdate,
		ID:            id,
		NewText:       text,
		NewDate:       date,
		NewImportance: importance,
	}
}

// Filters is the committed filter state. Both fields always change together.
type Filters struct {
	Importance domain.ImportanceFilter
	Period     domain.DateRange
}

func (f Filters) IsZero() bool {
	return f.Importance.IsNoop() && f.Period.IsZero()
}

// TaskFilter converts f to the repository query with the same semantics.
func (f Filters) TaskFilter() repository.TaskFilter {
	return repository.TaskFilter{
		Importance:  f.Importance.Active(),
		CreatedFrom: f.Period.Start,
		CreatedTo:   f.Period.End,
	}
}

// Reduce applies a to tasks and returns the new collection. The input slice
// is never modified. An unknown id yields ErrTaskNotFound and a nil slice.
func Reduce(tasks []domain.Task, a Action) ([]domain.Task, error) {
	switch a.Type {
	case ActionUpdate:
		idx := indexOf(tasks, a.ID)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %d", domain.ErrTaskNotFound, a.ID)
		}

		next := make([]domain.Task, len(tasks))
		copy(next, tasks)
		next[idx].TaskName = a.NewText
		next[idx].UpdatedAt = a.NewDate
		next[idx].Importance = a.NewImportance
		return next, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}
}

// VisibleTasks returns the tasks passing both filters, in input order.
func VisibleTasks(tasks []domain.Task, importance domain.ImportanceFilter, period domain.DateRange) []domain.Task {
	visible := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if !period.Contains(task.CreatedAt) {
			continue
		}
		if !importance.Matches(task.Importance) {
			continue
		}
		visible = append(visible, task)
	}
	return visible
}

type Store struct {
	repo    repository.TaskRepository
	logger  *log.Logger
	tasks   []domain.Task
	filters Filters
}

// New loads the full task collection from repo.
func New(ctx context.Context, repo repository.TaskRepository, logger *log.Logger) (*Store, error) {
	rows, err := repo.List(ctx, repository.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, *row)
	}

	s := &Store{
		repo:   repo,
		logger: logging.OrNop(logger),
		tasks:  tasks,
	}
	s.logger.Debug("store loaded", "tasks", len(tasks))
	return s, nil
}

// Apply reduces a into the collection and writes the changed task through to
// the repository. On any error the collection is left as it was.
func (s *Store) Apply(ctx context.Context, a Action) ([]domain.Task, error) {
	if a.Type == ActionUpdate {
		if !a.NewDate.Valid() {
			return nil, fmt.Errorf("invalid update date %q", a.NewDate)
		}
	}

	next, err := Reduce(s.tasks, a)
	if err != nil {
		s.logger.Warn("action rejected", "action", a.Type, "task_id", a.ID, "err", err)
		return nil, err
	}

	changed := next[indexOf(next, a.ID)]
	if err := s.repo.Update(ctx, &changed); err != nil {
		s.logger.Error("write-through failed", "task_id", a.ID, "err", err)
		return nil, fmt.Errorf("failed to save task %d: %w", a.ID, err)
	}

	s.tasks = next
	s.logger.Debug("action applied", "action", a.Type, "task_id", a.ID,
		"importance", a.NewImportance, "updated_at", a.NewDate)

	return s.Tasks(), nil
}

// Tasks returns a copy of the full collection.
func (s *Store) Tasks() []domain.Task {
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Task looks up a single task by id.
func (s *Store) Task(id int64) (domain.Task, bool) {
	idx := indexOf(s.tasks, id)
	if idx < 0 {
		return domain.Task{}, false
	}
	return s.tasks[idx], true
}

func (s *Store) Filters() Filters {
	return s.filters
}

// CommitFilters replaces the committed importance filter and date range in
// one assignment.
func (s *Store) CommitFilters(f Filters) {
	s.filters = f
	s.logger.Debug("filters committed",
		"importance", f.Importance.Active(), "start", f.Period.Start, "end", f.Period.End)
}

// Visible derives the visible tasks from the committed state.
func (s *Store) Visible() []domain.Task {
	return VisibleTasks(s.tasks, s.filters.Importance, s.filters.Period)
}

func indexOf(tasks []domain.Task, id int64) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
